package postgres

import (
	"context"

	"github.com/cryptdox/site-api/internal/models"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Insert(ctx context.Context, a *models.Application) error
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Insert(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}
