package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tgrullon/social_network_api/internal/models"
)

type PostRepo struct {
	DB *gorm.DB
}

func (r *PostRepo) All(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepo) ByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.DB.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ByIDFull loads the post with its owner and comments attached.
func (r *PostRepo) ByIDFull(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.DB.WithContext(ctx).
		Preload("User").
		Preload("Comments").
		First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepo) Create(ctx context.Context, post *models.Post) error {
	return r.DB.WithContext(ctx).Create(post).Error
}

func (r *PostRepo) Save(ctx context.Context, post *models.Post) error {
	return r.DB.WithContext(ctx).Save(post).Error
}

func (r *PostRepo) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
