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

type PostHandler struct {
	Posts *repo.PostRepo
}

type postRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (h *PostHandler) Index(c echo.Context) error {
	posts, err := h.Posts.All(c.Request().Context())
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the posts: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "Success", http.StatusOK, posts)
}

func (h *PostHandler) Store(c echo.Context) error {
	var req postRequest
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

	// the owner is always the caller, whatever the body says
	post := models.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  caller.ID,
	}
	if err := h.Posts.Create(c.Request().Context(), &post); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "The post has been successfully created", http.StatusOK, post)
}

func (h *PostHandler) Show(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the post: invalid id", http.StatusNotFound)
	}

	post, err := h.Posts.ByIDFull(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the post: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "Success", http.StatusOK, newPostResourceFull(post))
}

func (h *PostHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the post: invalid id", http.StatusNotFound)
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
	}
	if err := c.Validate(&req); err != nil {
		return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
	}

	ctx := c.Request().Context()

	post, err := h.Posts.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the post: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}

	post.Title = req.Title
	post.Content = req.Content
	if err := h.Posts.Save(ctx, post); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "The post has been successfully updated", http.StatusOK, post)
}

func (h *PostHandler) Destroy(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the post: invalid id", http.StatusNotFound)
	}

	if err := h.Posts.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the post: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "The post has been successfully deleted", http.StatusOK, nil)
}
