package postgres

import (
	"context"
	"errors"

	"github.com/cryptdox/site-api/internal/models"
	"github.com/cryptdox/site-api/internal/utils"
	"gorm.io/gorm"
)

type JobRepository interface {
	// ListOpen returns postings whose recruitment window has not closed.
	// Open-ended postings (no expiry date) are always included.
	ListOpen(ctx context.Context, p ListParams) (Page[models.JobCircular], error)
	GetByID(ctx context.Context, id string) (*models.JobCircular, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) ListOpen(ctx context.Context, p ListParams) (Page[models.JobCircular], error) {
	return listPage[models.JobCircular](ctx, r.db, listConfig{
		searchColumn: "title",
		orderColumn:  "created_at",
		orderDesc:    true,
	}, p, func(q *gorm.DB) *gorm.DB {
		return q.Where("recruitment_expire_date >= CURRENT_DATE OR recruitment_expire_date IS NULL")
	})
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.JobCircular, error) {
	var row models.JobCircular
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
