package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tgrullon/social_network_api/internal/models"
)

type friendData struct {
	ID       uint   `json:"id"`
	SourceID uint   `json:"source_id"`
	TargetID uint   `json:"target_id"`
	Type     string `json:"type"`
	Status   string `json:"status"`
}

func TestCreateFriendship(t *testing.T) {
	env := newTestEnv(t)
	callerID, token := env.registerAndLogin("alice", "alice@example.net")
	targetID := env.register("bob", "bob@example.net")

	rec, body := env.do(http.MethodPost, "/api/user_friends", token, map[string]any{
		"target_id": targetID,
		"type":      "School",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Friend request sent", body.Message)

	var data friendData
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Equal(t, callerID, data.SourceID)
	require.Equal(t, targetID, data.TargetID)
	require.Equal(t, "School", data.Type)
	require.Equal(t, "New", data.Status)
}

// A client-supplied source_id never makes it into the stored edge.
func TestCreateFriendshipForcesSource(t *testing.T) {
	env := newTestEnv(t)
	callerID, token := env.registerAndLogin("alice", "alice@example.net")
	targetID := env.register("bob", "bob@example.net")
	otherID := env.register("carol", "carol@example.net")

	rec, body := env.do(http.MethodPost, "/api/user_friends", token, map[string]any{
		"source_id": otherID,
		"target_id": targetID,
		"type":      "Work",
		"status":    "Accepted",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var data friendData
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Equal(t, callerID, data.SourceID)
	require.Equal(t, "New", data.Status)

	var stored models.Friendship
	require.NoError(t, env.DB.First(&stored, data.ID).Error)
	require.Equal(t, callerID, stored.SourceID)
	require.Equal(t, "New", stored.Status)
}

func TestCreateFriendshipUnknownTarget(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerAndLogin("alice", "alice@example.net")

	rec, body := env.do(http.MethodPost, "/api/user_friends", token, map[string]any{
		"target_id": 9999,
		"type":      "School",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.True(t, body.Error)
}

func TestCreateFriendshipValidation(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerAndLogin("alice", "alice@example.net")

	rec, body := env.do(http.MethodPost, "/api/user_friends", token, map[string]any{
		"type": "School",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.True(t, body.Error)
}

func TestShowFriendship(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerAndLogin("alice", "alice@example.net")
	targetID := env.register("bob", "bob@example.net")

	_, body := env.do(http.MethodPost, "/api/user_friends", token, map[string]any{
		"target_id": targetID,
		"type":      "School",
	})
	var created friendData
	require.NoError(t, json.Unmarshal(body.Data, &created))

	rec, body := env.do(http.MethodGet, fmt.Sprintf("/api/user_friends/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var full struct {
		ID           uint           `json:"id"`
		Type         string         `json:"type"`
		Status       string         `json:"status"`
		SourceFriend map[string]any `json:"source_friend"`
		TargetFriend map[string]any `json:"target_friend"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &full))
	require.Equal(t, "alice", full.SourceFriend["username"])
	require.Equal(t, "bob", full.TargetFriend["username"])
	require.NotContains(t, full.SourceFriend, "password")

	rec, _ = env.do(http.MethodGet, "/api/user_friends/9999", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

// Updating an edge forces the source back to the caller and the status
// back to "New", whatever state it was in.
func TestUpdateFriendshipResetsStatus(t *testing.T) {
	env := newTestEnv(t)
	callerID, token := env.registerAndLogin("alice", "alice@example.net")
	targetID := env.register("bob", "bob@example.net")

	_, body := env.do(http.MethodPost, "/api/user_friends", token, map[string]any{
		"target_id": targetID,
		"type":      "School",
	})
	var created friendData
	require.NoError(t, json.Unmarshal(body.Data, &created))

	require.NoError(t, env.DB.Model(&models.Friendship{}).
		Where("id = ?", created.ID).
		Update("status", "Accepted").Error)

	rec, body := env.do(http.MethodPatch, fmt.Sprintf("/api/user_friends/%d", created.ID), token, map[string]any{
		"type": "Work",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated friendData
	require.NoError(t, json.Unmarshal(body.Data, &updated))
	require.Equal(t, "New", updated.Status)
	require.Equal(t, "Work", updated.Type)
	require.Equal(t, callerID, updated.SourceID)
	require.Equal(t, targetID, updated.TargetID)
}

func TestUpdateFriendshipNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerAndLogin("alice", "alice@example.net")

	rec, _ := env.do(http.MethodPatch, "/api/user_friends/9999", token, map[string]any{
		"type": "Work",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDestroyFriendship(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerAndLogin("alice", "alice@example.net")
	targetID := env.register("bob", "bob@example.net")

	_, body := env.do(http.MethodPost, "/api/user_friends", token, map[string]any{
		"target_id": targetID,
		"type":      "School",
	})
	var created friendData
	require.NoError(t, json.Unmarshal(body.Data, &created))

	rec, _ := env.do(http.MethodDelete, fmt.Sprintf("/api/user_friends/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.do(http.MethodGet, fmt.Sprintf("/api/user_friends/%d", created.ID), token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = env.do(http.MethodDelete, "/api/user_friends/9999", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

// Deletion has no ownership check: any authenticated caller may remove
// any edge by id. Current behavior, kept behind the service's
// authorization hook.
func TestDestroyFriendshipByNonOwner(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.registerAndLogin("alice", "alice@example.net")
	targetID := env.register("bob", "bob@example.net")
	_, carolToken := env.registerAndLogin("carol", "carol@example.net")

	_, body := env.do(http.MethodPost, "/api/user_friends", aliceToken, map[string]any{
		"target_id": targetID,
		"type":      "School",
	})
	var created friendData
	require.NoError(t, json.Unmarshal(body.Data, &created))

	rec, _ := env.do(http.MethodDelete, fmt.Sprintf("/api/user_friends/%d", created.ID), carolToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestFriendshipIndex(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerAndLogin("alice", "alice@example.net")
	targetID := env.register("bob", "bob@example.net")

	for _, typ := range []string{"School", "Work"} {
		rec, _ := env.do(http.MethodPost, "/api/user_friends", token, map[string]any{
			"target_id": targetID,
			"type":      typ,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, body := env.do(http.MethodGet, "/api/user_friends", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []friendData
	require.NoError(t, json.Unmarshal(body.Data, &list))
	require.Len(t, list, 2)
}
