package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tgrullon/social_network_api/internal/models"
)

type FriendshipRepo struct {
	DB *gorm.DB
}

func (r *FriendshipRepo) All(ctx context.Context) ([]models.Friendship, error) {
	var edges []models.Friendship
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

func (r *FriendshipRepo) ByID(ctx context.Context, id uint) (*models.Friendship, error) {
	var edge models.Friendship
	if err := r.DB.WithContext(ctx).First(&edge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &edge, nil
}

// ByIDWithUsers loads the edge together with both endpoint users.
func (r *FriendshipRepo) ByIDWithUsers(ctx context.Context, id uint) (*models.Friendship, error) {
	var edge models.Friendship
	if err := r.DB.WithContext(ctx).
		Preload("Source").
		Preload("Target").
		First(&edge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &edge, nil
}

func (r *FriendshipRepo) Create(ctx context.Context, edge *models.Friendship) error {
	return r.DB.WithContext(ctx).Create(edge).Error
}

func (r *FriendshipRepo) Save(ctx context.Context, edge *models.Friendship) error {
	return r.DB.WithContext(ctx).Save(edge).Error
}

func (r *FriendshipRepo) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Friendship{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
