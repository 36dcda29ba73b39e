package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tgrullon/social_network_api/internal/apiresponse"
	authmw "github.com/tgrullon/social_network_api/internal/middleware/auth"
	"github.com/tgrullon/social_network_api/internal/models"
	"github.com/tgrullon/social_network_api/internal/repo"
)

type PostCommentHandler struct {
	PostComments *repo.PostCommentRepo
	Posts        *repo.PostRepo
}

type postCommentRequest struct {
	PostID  uint   `json:"post_id" validate:"required"`
	Comment string `json:"comment" validate:"required"`
}

func (h *PostCommentHandler) Index(c echo.Context) error {
	items, err := h.PostComments.All(c.Request().Context())
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the post comments: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "Success", http.StatusOK, items)
}

func (h *PostCommentHandler) Store(c echo.Context) error {
	var req postCommentRequest
	if err := c.Bind(&req); err != nil {
		return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
	}
	if err := c.Validate(&req); err != nil {
		return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
	}

	caller := authmw.Caller(c)
	if caller == nil {
		return apiresponse.Error(c, "Unauthenticated", http.StatusUnauthorized)
	}

	ctx := c.Request().Context()

	if _, err := h.Posts.ByID(ctx, req.PostID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the post: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}

	item := models.PostComment{
		PostID:  req.PostID,
		Comment: req.Comment,
		UserID:  caller.ID,
	}
	if err := h.PostComments.Create(ctx, &item); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "The comment has been successfully created", http.StatusOK, item)
}

func (h *PostCommentHandler) Show(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the comments: invalid id", http.StatusNotFound)
	}

	item, err := h.PostComments.ByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the comments: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "Success", http.StatusOK, item)
}

func (h *PostCommentHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the comments: invalid id", http.StatusNotFound)
	}

	var req postCommentRequest
	if err := c.Bind(&req); err != nil {
		return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
	}
	if err := c.Validate(&req); err != nil {
		return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
	}

	ctx := c.Request().Context()

	item, err := h.PostComments.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the comments: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}

	item.PostID = req.PostID
	item.Comment = req.Comment
	if err := h.PostComments.Save(ctx, item); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "The comment has been successfully updated", http.StatusOK, item)
}

func (h *PostCommentHandler) Destroy(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the comments: invalid id", http.StatusNotFound)
	}

	if err := h.PostComments.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the comments: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "The comment has been successfully deleted", http.StatusOK, nil)
}
