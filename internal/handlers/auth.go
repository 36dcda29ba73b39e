package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tgrullon/social_network_api/internal/apiresponse"
	"github.com/tgrullon/social_network_api/internal/logging"
	authmw "github.com/tgrullon/social_network_api/internal/middleware/auth"
	"github.com/tgrullon/social_network_api/internal/mykafka"
	"github.com/tgrullon/social_network_api/internal/repo"
	"github.com/tgrullon/social_network_api/internal/service"
)

type AuthHandler struct {
	Svc      *service.AuthService
	Producer *mykafka.Producer
}

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Username  string `json:"username"   validate:"required"`
	Telephone string `json:"telephone"`
	Age       int    `json:"age"        validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) publish(c echo.Context, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusUnprocessableEntity)
	}
	if err := c.Validate(&req); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusUnprocessableEntity)
	}

	user, err := h.Svc.Register(c.Request().Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Telephone: req.Telephone,
		Age:       req.Age,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) || errors.Is(err, repo.ErrUsernameTaken) {
			return apiresponse.Error(c, "Error: "+err.Error(), http.StatusUnprocessableEntity)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}

	h.publish(c, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":     "user_registered",
		"UserID":   user.ID,
		"username": user.Username,
	})

	return apiresponse.Success(c, "The user has been successfully created", http.StatusOK, newUserResource(user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusUnprocessableEntity)
	}
	if err := c.Validate(&req); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusUnprocessableEntity)
	}

	user, token, err := h.Svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			return apiresponse.Error(c, "Sorry, the password is incorrect", http.StatusBadRequest)
		case errors.Is(err, service.ErrUnauthenticated):
			return apiresponse.Error(c, "Invalid credentials", http.StatusUnauthorized)
		default:
			return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
		}
	}

	h.publish(c, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":     "user_logged_in",
		"UserID":   user.ID,
		"username": user.Username,
	})

	return apiresponse.Success(c, "Success", http.StatusOK, map[string]any{
		"user":  newUserResource(user),
		"token": token,
	})
}

func (h *AuthHandler) Profile(c echo.Context) error {
	caller := authmw.Caller(c)
	if caller == nil {
		return apiresponse.Error(c, "Unauthenticated", http.StatusUnauthorized)
	}
	return apiresponse.Success(c, "Success", http.StatusOK, newUserResource(caller))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	jti := authmw.JTI(c)
	if jti == "" {
		return apiresponse.Error(c, "Unauthenticated", http.StatusUnauthorized)
	}
	if err := h.Svc.Logout(c.Request().Context(), jti); err != nil {
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "Successfully logged out", http.StatusOK, nil)
}
