package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tgrullon/social_network_api/internal/models"
)

type TokenRepo struct {
	DB *gorm.DB
}

func (r *TokenRepo) Create(ctx context.Context, t *models.AuthToken) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *TokenRepo) ByJTI(ctx context.Context, jti string) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.DB.WithContext(ctx).Where("jti = ?", jti).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

// Revoke is terminal: there is no path back to a live token.
func (r *TokenRepo) Revoke(ctx context.Context, jti string) error {
	now := time.Now().UTC()
	result := r.DB.WithContext(ctx).Model(&models.AuthToken{}).
		Where("jti = ?", jti).
		Updates(map[string]any{"revoked": true, "revoked_at": &now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
