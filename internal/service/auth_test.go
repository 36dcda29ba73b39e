package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tgrullon/social_network_api/internal/config"
	"github.com/tgrullon/social_network_api/internal/models"
	"github.com/tgrullon/social_network_api/internal/repo"
)

func newTestAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	svc := &AuthService{
		Users:     &repo.UserRepo{DB: db},
		Tokens:    &repo.TokenRepo{DB: db},
		JWTSecret: []byte("test-jwt-secret"),
	}
	return svc, db
}

func registerTestUser(t *testing.T, svc *AuthService) *models.User {
	t.Helper()

	user, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Tommy",
		LastName:  "Grullon",
		Username:  "tommy11",
		Age:       20,
		Email:     "tommy@example.net",
		Password:  "password123",
	})
	require.NoError(t, err)
	return user
}

func TestAuthService_IssueToken_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	svc, db := newTestAuthService(t)
	user := registerTestUser(t, svc)

	token, err := svc.IssueToken(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (any, error) {
		return svc.JWTSecret, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, strconv.FormatUint(uint64(user.ID), 10), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)

	var stored models.AuthToken
	require.NoError(t, db.Where("jti = ?", claims.ID).First(&stored).Error)
	assert.Equal(t, user.ID, stored.UserID)
	assert.False(t, stored.Revoked)
}

func TestAuthService_Login_PasswordMismatchIs400Path(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)
	registerTestUser(t, svc)

	_, _, err := svc.Login(context.Background(), "tommy@example.net", "wrongpassword")
	require.ErrorIs(t, err, ErrInvalidPassword)

	// unknown email fails the hash comparison the same way
	_, _, err = svc.Login(context.Background(), "nobody@example.net", "password123")
	require.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)
	registered := registerTestUser(t, svc)

	user, token, err := svc.Login(context.Background(), "tommy@example.net", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthService_Logout_IsTerminal(t *testing.T) {
	t.Parallel()

	svc, db := newTestAuthService(t)
	user := registerTestUser(t, svc)

	token, err := svc.IssueToken(context.Background(), user.ID)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (any, error) {
		return svc.JWTSecret, nil
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims.ID))

	var stored models.AuthToken
	require.NoError(t, db.Where("jti = ?", claims.ID).First(&stored).Error)
	assert.True(t, stored.Revoked)
	require.NotNil(t, stored.RevokedAt)

	// revoking an unknown jti reports not found
	require.ErrorIs(t, svc.Logout(context.Background(), "missing-jti"), repo.ErrNotFound)
}

func TestAuthService_Register_Uniqueness(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Other",
		LastName:  "User",
		Username:  "other",
		Age:       30,
		Email:     "tommy@example.net",
		Password:  "password123",
	})
	require.ErrorIs(t, err, repo.ErrEmailTaken)

	_, err = svc.Register(context.Background(), RegisterInput{
		FirstName: "Other",
		LastName:  "User",
		Username:  "tommy11",
		Age:       30,
		Email:     "other@example.net",
		Password:  "password123",
	})
	require.ErrorIs(t, err, repo.ErrUsernameTaken)
}
