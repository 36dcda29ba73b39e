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

type FriendHandler struct {
	Svc      *service.FriendshipService
	Producer *mykafka.Producer
}

type storeFriendRequest struct {
	TargetID uint   `json:"target_id" validate:"required"`
	Type     string `json:"type"`
}

type updateFriendRequest struct {
	TargetID uint   `json:"target_id"`
	Type     string `json:"type"`
}

func (h *FriendHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "friend_events", fmt.Sprint(event["SourceID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *FriendHandler) Index(c echo.Context) error {
	edges, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the user friends: "+err.Error(), http.StatusInternalServerError)
	}

	out := make([]friendshipResource, 0, len(edges))
	for i := range edges {
		out = append(out, newFriendshipResource(&edges[i]))
	}
	return apiresponse.Success(c, "Success", http.StatusOK, out)
}

func (h *FriendHandler) Store(c echo.Context) error {
	var req storeFriendRequest
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

	edge, err := h.Svc.Create(c.Request().Context(), caller.ID, service.FriendshipInput{
		TargetID: req.TargetID,
		Type:     req.Type,
	})
	if err != nil {
		if errors.Is(err, service.ErrTargetNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the target id: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}

	h.publish(c, map[string]any{
		"type":     "friend_request_sent",
		"SourceID": edge.SourceID,
		"TargetID": edge.TargetID,
	})

	return apiresponse.Success(c, "Friend request sent", http.StatusOK, newFriendshipResource(edge))
}

func (h *FriendHandler) Show(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the user friends: invalid id", http.StatusNotFound)
	}

	edge, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the user friends: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "Success", http.StatusOK, newFriendshipResourceFull(edge))
}

func (h *FriendHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the user friend: invalid id", http.StatusNotFound)
	}

	var req updateFriendRequest
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

	edge, err := h.Svc.Update(c.Request().Context(), caller.ID, id, service.FriendshipInput{
		TargetID: req.TargetID,
		Type:     req.Type,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the user friend: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "The user friend has been successfully updated", http.StatusOK, newFriendshipResource(edge))
}

func (h *FriendHandler) Destroy(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apiresponse.Error(c, "An error ocurred while trying to get the user friend: invalid id", http.StatusNotFound)
	}

	caller := authmw.Caller(c)
	if caller == nil {
		return apiresponse.Error(c, "Unauthenticated", http.StatusUnauthorized)
	}

	if err := h.Svc.Delete(c.Request().Context(), caller.ID, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiresponse.Error(c, "An error ocurred while trying to get the user friend: "+err.Error(), http.StatusNotFound)
		}
		return apiresponse.Error(c, "Error: "+err.Error(), http.StatusInternalServerError)
	}
	return apiresponse.Success(c, "The user friend has been successfully deleted", http.StatusOK, nil)
}
