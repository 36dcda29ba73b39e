package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/tgrullon/social_network_api/internal/apiresponse"
	"github.com/tgrullon/social_network_api/internal/models"
	"github.com/tgrullon/social_network_api/internal/repo"
)

const (
	userContextKey = "authUser"
	jtiContextKey  = "authJTI"
)

type TokenAuth struct {
	Users     *repo.UserRepo
	Tokens    *repo.TokenRepo
	JWTSecret []byte
}

// RequireAuth authenticates the bearer token on the request. The token
// must carry a valid signature and its JTI must still be live in the
// store; a revoked JTI never authenticates again.
func (t *TokenAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := bearerToken(c.Request())
		if raw == "" {
			return apiresponse.Error(c, "Unauthenticated", http.StatusUnauthorized)
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(tk *jwt.Token) (any, error) {
			if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", tk.Header["alg"])
			}
			return t.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			return apiresponse.Error(c, "Unauthenticated", http.StatusUnauthorized)
		}

		ctx := c.Request().Context()

		stored, err := t.Tokens.ByJTI(ctx, claims.ID)
		if err != nil || stored.Revoked {
			return apiresponse.Error(c, "Unauthenticated", http.StatusUnauthorized)
		}

		userID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			return apiresponse.Error(c, "Unauthenticated", http.StatusUnauthorized)
		}
		user, err := t.Users.ByID(ctx, uint(userID))
		if err != nil {
			return apiresponse.Error(c, "Unauthenticated", http.StatusUnauthorized)
		}

		c.Set(userContextKey, user)
		c.Set(jtiContextKey, claims.ID)
		return next(c)
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(header)
}

// Caller returns the user resolved by RequireAuth, nil outside of it.
func Caller(c echo.Context) *models.User {
	if u, ok := c.Get(userContextKey).(*models.User); ok {
		return u
	}
	return nil
}

// JTI returns the id of the token used on the current request.
func JTI(c echo.Context) string {
	if jti, ok := c.Get(jtiContextKey).(string); ok {
		return jti
	}
	return ""
}
