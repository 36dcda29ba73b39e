package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsersIndexAndShow(t *testing.T) {
	env := newTestEnv(t)
	aliceID, token := env.registerAndLogin("alice", "alice@example.net")
	env.register("bob", "bob@example.net")

	rec, body := env.do(http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &list))
	require.Len(t, list, 2)
	for _, u := range list {
		require.NotContains(t, u, "password")
	}

	rec, body = env.do(http.MethodGet, fmt.Sprintf("/api/users/%d", aliceID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var shown map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &shown))
	require.Equal(t, "alice", shown["username"])

	rec, _ = env.do(http.MethodGet, "/api/users/9999", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserStore(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerAndLogin("alice", "alice@example.net")

	rec, body := env.do(http.MethodPost, "/api/users", token, registerPayload("bob", "bob@example.net"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "The user has been successfully created", body.Message)

	var created map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &created))
	require.Equal(t, "bob", created["username"])
	require.NotContains(t, created, "password")

	// duplicates rejected the same way as at registration
	rec, _ = env.do(http.MethodPost, "/api/users", token, registerPayload("bob", "other@example.net"))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUserUpdate(t *testing.T) {
	env := newTestEnv(t)
	aliceID, token := env.registerAndLogin("alice", "alice@example.net")

	payload := registerPayload("alice", "alice@example.net")
	payload["first_name"] = "Alicia"

	rec, body := env.do(http.MethodPatch, fmt.Sprintf("/api/users/%d", aliceID), token, payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var shown map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &shown))
	require.Equal(t, "Alicia", shown["first_name"])
	// keeping your own email and username is not a uniqueness violation
	require.Equal(t, "alice@example.net", shown["email"])
}

func TestUserUpdateUniqueness(t *testing.T) {
	env := newTestEnv(t)
	env.register("alice", "alice@example.net")
	bobID, token := env.registerAndLogin("bob", "bob@example.net")

	payload := registerPayload("bob", "alice@example.net")
	rec, body := env.do(http.MethodPatch, fmt.Sprintf("/api/users/%d", bobID), token, payload)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.True(t, body.Error)

	payload = registerPayload("alice", "bob@example.net")
	rec, _ = env.do(http.MethodPatch, fmt.Sprintf("/api/users/%d", bobID), token, payload)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUserUpdateMisses(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerAndLogin("alice", "alice@example.net")

	rec, _ := env.do(http.MethodPatch, "/api/users/9999", token, registerPayload("ghost", "ghost@example.net"))
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = env.do(http.MethodPatch, "/api/users/abc", token, registerPayload("ghost", "ghost@example.net"))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserDestroy(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerAndLogin("alice", "alice@example.net")
	bobID := env.register("bob", "bob@example.net")

	rec, body := env.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", bobID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "The user has been successfully deleted", body.Message)

	rec, _ = env.do(http.MethodGet, fmt.Sprintf("/api/users/%d", bobID), token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = env.do(http.MethodDelete, "/api/users/9999", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
