package postgres

import (
	"context"

	"github.com/cryptdox/site-api/internal/models"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	List(ctx context.Context, p ListParams) (Page[models.Service], error)
}

type serviceRepo struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) ServiceRepository {
	return &serviceRepo{db: db}
}

func (r *serviceRepo) List(ctx context.Context, p ListParams) (Page[models.Service], error) {
	return listPage[models.Service](ctx, r.db, listConfig{
		searchColumn: "name",
		orderColumn:  "name",
	}, p)
}

type ProductRepository interface {
	List(ctx context.Context, p ListParams) (Page[models.Product], error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) List(ctx context.Context, p ListParams) (Page[models.Product], error) {
	return listPage[models.Product](ctx, r.db, listConfig{
		searchColumn: "name",
		orderColumn:  "created_at",
		orderDesc:    true,
	}, p)
}
