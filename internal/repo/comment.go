package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tgrullon/social_network_api/internal/models"
)

type CommentRepo struct {
	DB *gorm.DB
}

func (r *CommentRepo) All(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepo) ByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.DB.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// ByIDFull loads the comment with its author and post attached.
func (r *CommentRepo) ByIDFull(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.DB.WithContext(ctx).
		Preload("User").
		Preload("Post").
		First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return r.DB.WithContext(ctx).Create(comment).Error
}

func (r *CommentRepo) Save(ctx context.Context, comment *models.Comment) error {
	return r.DB.WithContext(ctx).Save(comment).Error
}

func (r *CommentRepo) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
