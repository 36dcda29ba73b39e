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

type CommentHandler struct {
	Comments *repo.CommentRepo
	Posts    *repo.PostRepo
}

type commentRequest struct {
	Comment string `json:"comment" validate:"required"`
	PostID  uint   `json:"post_id" validate:"required"`
}

func (h *CommentHandler) Index(c echo.Context) error {
	comments, err := h.Comments.All(c.Request().Context())
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the comments: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "Success", http.StatusOK, comments)
}

func (h *CommentHandler) Store(c echo.Context) error {
	var req commentRequest
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

	comment := models.Comment{
		Comment: req.Comment,
		PostID:  req.PostID,
		UserID:  caller.ID,
	}
	if err := h.Comments.Create(ctx, &comment); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "The comment has been successfully created", http.StatusOK, comment)
}

func (h *CommentHandler) Show(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the comments: invalid id", http.StatusNotFound)
	}

	comment, err := h.Comments.ByIDFull(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the comments: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "Success", http.StatusOK, newCommentResourceFull(comment))
}

func (h *CommentHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the comments: invalid id", http.StatusNotFound)
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
	}
	if err := c.Validate(&req); err != nil {
		return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
	}

	ctx := c.Request().Context()

	comment, err := h.Comments.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the comments: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}

	comment.Comment = req.Comment
	comment.PostID = req.PostID
	if err := h.Comments.Save(ctx, comment); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "The comment has been successfully updated", http.StatusOK, comment)
}

func (h *CommentHandler) Destroy(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the comments: invalid id", http.StatusNotFound)
	}

	if err := h.Comments.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the comments: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "The comment has been successfully deleted", http.StatusOK, nil)
}
