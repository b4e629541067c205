package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/cryptdox/site-api/internal/models"
	"github.com/cryptdox/site-api/internal/utils"
	"gorm.io/gorm"
)

// SiteRepository backs the home and about pages: a handful of fixed reads
// that do not fit the paginated listing shape.
type SiteRepository interface {
	LatestAbout(ctx context.Context) (*models.About, error)
	ApprovedTestimonials(ctx context.Context, limit int) ([]models.Testimonial, error)
	FeaturedServices(ctx context.Context, limit int) ([]models.Service, error)
	CountProjects(ctx context.Context) (int64, error)
	CountClients(ctx context.Context) (int64, error)
	CountTeams(ctx context.Context) (int64, error)
	OldestPlatformUserJoined(ctx context.Context) (*time.Time, error)
}

type siteRepo struct {
	db *gorm.DB
}

func NewSiteRepo(db *gorm.DB) SiteRepository {
	return &siteRepo{db: db}
}

func (r *siteRepo) LatestAbout(ctx context.Context) (*models.About, error) {
	var row models.About
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *siteRepo) ApprovedTestimonials(ctx context.Context, limit int) ([]models.Testimonial, error) {
	if limit <= 0 {
		limit = 6
	}
	var rows []models.Testimonial
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("approved = ? AND is_deleted = ?", true, false).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *siteRepo) FeaturedServices(ctx context.Context, limit int) ([]models.Service, error) {
	if limit <= 0 {
		limit = 4
	}
	var rows []models.Service
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *siteRepo) CountProjects(ctx context.Context) (int64, error) {
	return r.countNotDeleted(ctx, &models.Project{})
}

func (r *siteRepo) CountClients(ctx context.Context) (int64, error) {
	return r.countNotDeleted(ctx, &models.Client{})
}

func (r *siteRepo) CountTeams(ctx context.Context) (int64, error) {
	return r.countNotDeleted(ctx, &models.Team{})
}

func (r *siteRepo) countNotDeleted(ctx context.Context, model any) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(model).
		Where("is_deleted = ?", false).
		Count(&n).Error
	return n, err
}

func (r *siteRepo) OldestPlatformUserJoined(ctx context.Context) (*time.Time, error) {
	var row models.PlatformUser
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at ASC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row.CreatedAt, nil
}
