package postgres

import (
	"context"

	"github.com/cryptdox/site-api/internal/models"
	"gorm.io/gorm"
)

type ContactRepository interface {
	Insert(ctx context.Context, m *models.ContactMessage) error
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Insert(ctx context.Context, m *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}
