package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tgrullon/social_network_api/internal/config"
	"github.com/tgrullon/social_network_api/internal/handlers"
	"github.com/tgrullon/social_network_api/internal/middleware/auth"
	"github.com/tgrullon/social_network_api/internal/repo"
	"github.com/tgrullon/social_network_api/internal/service"
	httpserver "github.com/tgrullon/social_network_api/internal/transport/http"
	"github.com/tgrullon/social_network_api/internal/validate"
)

var testSecret = []byte("test_secret")

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

type envelope struct {
	Message    string          `json:"message"`
	Error      bool            `json:"error"`
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
}

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := initTestDB(t)

	users := &repo.UserRepo{DB: db}
	tokens := &repo.TokenRepo{DB: db}
	friendships := &repo.FriendshipRepo{DB: db}
	posts := &repo.PostRepo{DB: db}
	comments := &repo.CommentRepo{DB: db}
	postComments := &repo.PostCommentRepo{DB: db}

	authSvc := &service.AuthService{Users: users, Tokens: tokens, JWTSecret: testSecret}
	friendSvc := &service.FriendshipService{Friendships: friendships, Users: users}

	e := echo.New()
	e.Validator = validate.New()

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:        &handlers.AuthHandler{Svc: authSvc},
		UserHandler:        &handlers.UserHandler{Users: users},
		PostHandler:        &handlers.PostHandler{Posts: posts},
		CommentHandler:     &handlers.CommentHandler{Comments: comments, Posts: posts},
		PostCommentHandler: &handlers.PostCommentHandler{PostComments: postComments, Posts: posts},
		FriendHandler:      &handlers.FriendHandler{Svc: friendSvc},
		Auth:               &auth.TokenAuth{Users: users, Tokens: tokens, JWTSecret: testSecret},
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)

	var resp envelope
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func registerPayload(username, email string) map[string]any {
	return map[string]any{
		"first_name": "Tommy",
		"last_name":  "Grullon",
		"username":   username,
		"telephone":  "829-754-6150",
		"age":        20,
		"email":      email,
		"password":   "password123",
	}
}

// register registers a user and returns its id.
func (env *testEnv) register(username, email string) uint {
	env.T.Helper()

	rec, body := env.do(http.MethodPost, "/api/auth/register", "", registerPayload(username, email))
	require.Equal(env.T, http.StatusOK, rec.Code)

	var user struct {
		ID uint `json:"id"`
	}
	require.NoError(env.T, json.Unmarshal(body.Data, &user))
	require.NotZero(env.T, user.ID)
	return user.ID
}

// login logs in with the registered password and returns the bearer token.
func (env *testEnv) login(email string) string {
	env.T.Helper()

	rec, body := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(env.T, http.StatusOK, rec.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(env.T, json.Unmarshal(body.Data, &data))
	require.NotEmpty(env.T, data.Token)
	return data.Token
}

func (env *testEnv) registerAndLogin(username, email string) (uint, string) {
	env.T.Helper()
	id := env.register(username, email)
	return id, env.login(email)
}
