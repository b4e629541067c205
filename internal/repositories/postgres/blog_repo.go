package postgres

import (
	"context"
	"errors"

	"github.com/cryptdox/site-api/internal/models"
	"github.com/cryptdox/site-api/internal/utils"
	"gorm.io/gorm"
)

type BlogRepository interface {
	List(ctx context.Context, p ListParams) (Page[models.BlogPost], error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
}

type blogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) BlogRepository {
	return &blogRepo{db: db}
}

func (r *blogRepo) List(ctx context.Context, p ListParams) (Page[models.BlogPost], error) {
	return listPage[models.BlogPost](ctx, r.db, listConfig{
		searchColumn: "title",
		orderColumn:  "created_at",
		orderDesc:    true,
	}, p)
}

func (r *blogRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	var row models.BlogPost
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
