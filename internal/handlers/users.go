package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tgrullon/social_network_api/internal/apiresponse"
	"github.com/tgrullon/social_network_api/internal/hash"
	"github.com/tgrullon/social_network_api/internal/models"
	"github.com/tgrullon/social_network_api/internal/repo"
)

type UserHandler struct {
	Users *repo.UserRepo
}

type updateUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Username  string `json:"username"   validate:"required"`
	Telephone string `json:"telephone"`
	Age       int    `json:"age"        validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
}

func (h *UserHandler) Store(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
	}
	if err := c.Validate(&req); err != nil {
		return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
	}

	ctx := c.Request().Context()

	if err := h.Users.CheckUnique(ctx, req.Email, req.Username, 0); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) || errors.Is(err, repo.ErrUsernameTaken) {
			return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		Telephone:    req.Telephone,
		Age:          req.Age,
		Email:        req.Email,
		PasswordHash: pwHash,
	}
	if err := h.Users.Create(ctx, &user); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "The user has been successfully created", http.StatusOK, newUserResource(&user))
}

func (h *UserHandler) Index(c echo.Context) error {
	users, err := h.Users.All(c.Request().Context())
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the users: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "Success", http.StatusOK, newUserResources(users))
}

func (h *UserHandler) Show(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the user: invalid id", http.StatusNotFound)
	}

	user, err := h.Users.ByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the user: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "Success", http.StatusOK, newUserResource(user))
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the user: invalid id", http.StatusNotFound)
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
	}
	if err := c.Validate(&req); err != nil {
		return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
	}

	ctx := c.Request().Context()

	user, err := h.Users.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the user: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}

	// uniqueness excludes the row being updated
	if err := h.Users.CheckUnique(ctx, req.Email, req.Username, user.ID); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) || errors.Is(err, repo.ErrUsernameTaken) {
			return apiresponse.Error(c, "Validation errors: "+err.Error(), http.StatusUnprocessableEntity)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Username = req.Username
	user.Telephone = req.Telephone
	user.Age = req.Age
	user.Email = req.Email
	user.PasswordHash = pwHash

	if err := h.Users.Save(ctx, user); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "Success", http.StatusOK, newUserResource(user))
}

func (h *UserHandler) Destroy(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the user: invalid id", http.StatusNotFound)
	}

	if err := h.Users.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the user: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusUnprocessableEntity)
	}
	return apiresponse.Success(c, "The user has been successfully deleted", http.StatusOK, nil)
}
