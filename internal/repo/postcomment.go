package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tgrullon/social_network_api/internal/models"
)

type PostCommentRepo struct {
	DB *gorm.DB
}

func (r *PostCommentRepo) All(ctx context.Context) ([]models.PostComment, error) {
	var items []models.PostComment
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostCommentRepo) ByID(ctx context.Context, id uint) (*models.PostComment, error) {
	var item models.PostComment
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PostCommentRepo) Create(ctx context.Context, item *models.PostComment) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *PostCommentRepo) Save(ctx context.Context, item *models.PostComment) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *PostCommentRepo) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.PostComment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
