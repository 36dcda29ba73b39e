package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tgrullon/social_network_api/internal/hash"
	"github.com/tgrullon/social_network_api/internal/logging"
	"github.com/tgrullon/social_network_api/internal/models"
	"github.com/tgrullon/social_network_api/internal/repo"
)

var (
	// ErrInvalidPassword is the login 400 path: the stored hash did not
	// match, whether or not the email exists.
	ErrInvalidPassword = errors.New("the password is incorrect")
	// ErrUnauthenticated is the login 401 path from the second
	// credential-store check.
	ErrUnauthenticated = errors.New("invalid credentials")
)

const tokenTTL = 30 * 24 * time.Hour

type AuthService struct {
	Users     *repo.UserRepo
	Tokens    *repo.TokenRepo
	JWTSecret []byte
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Telephone string
	Age       int
	Email     string
	Password  string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if err := s.Users.CheckUnique(ctx, in.Email, in.Username, 0); err != nil {
		l.Warn("register_rejected", "reason", err.Error())
		return nil, err
	}

	pwHash, err := hash.HashPassword(in.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Telephone:    in.Telephone,
		Age:          in.Age,
		Email:        in.Email,
		PasswordHash: pwHash,
	}
	if err := s.Users.Create(ctx, &user); err != nil {
		l.Error("register_error", "error", err)
		return nil, err
	}
	return &user, nil
}

// Login mirrors the two-step check of the original flow: a bare hash
// comparison against whatever the email lookup returned, then a full
// re-authentication through the credential store.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	stored, err := s.Users.PasswordHashByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if !hash.CheckPassword(stored, password) {
		l.Warn("login_failed", "reason", "password mismatch")
		return nil, "", ErrInvalidPassword
	}

	user, err := s.Users.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			l.Warn("login_failed", "reason", "credential check failed")
			return nil, "", ErrUnauthenticated
		}
		return nil, "", err
	}

	token, err := s.IssueToken(ctx, user.ID)
	if err != nil {
		l.Error("login_error", "error", err)
		return nil, "", err
	}

	l.Info("login_successful", "user_id", user.ID)
	return user, token, nil
}

// IssueToken signs a bearer token and records its JTI so it can be
// revoked later. Several live tokens per user are fine.
func (s *AuthService) IssueToken(ctx context.Context, userID uint) (string, error) {
	jti := uuid.NewString()
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.JWTSecret)
	if err != nil {
		return "", err
	}

	record := models.AuthToken{
		JTI:      jti,
		UserID:   userID,
		IssuedAt: now.Unix(),
	}
	if err := s.Tokens.Create(ctx, &record); err != nil {
		return "", err
	}
	return signed, nil
}

// Logout revokes only the token presented on the current request.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	l := logging.FromContext(ctx).With("svc", "auth.logout")
	if err := s.Tokens.Revoke(ctx, jti); err != nil {
		l.Error("logout_failed", "error", err)
		return err
	}
	l.Info("logout_successful")
	return nil
}
