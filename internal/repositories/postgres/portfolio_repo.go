package postgres

import (
	"context"

	"github.com/cryptdox/site-api/internal/models"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	List(ctx context.Context, p ListParams) (Page[models.Project], error)
}

type projectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) List(ctx context.Context, p ListParams) (Page[models.Project], error) {
	return listPage[models.Project](ctx, r.db, listConfig{
		searchColumn: "title",
		orderColumn:  "created_at",
		orderDesc:    true,
	}, p)
}

type TeamRepository interface {
	List(ctx context.Context, p ListParams) (Page[models.Team], error)
}

type teamRepo struct {
	db *gorm.DB
}

func NewTeamRepo(db *gorm.DB) TeamRepository {
	return &teamRepo{db: db}
}

func (r *teamRepo) List(ctx context.Context, p ListParams) (Page[models.Team], error) {
	return listPage[models.Team](ctx, r.db, listConfig{
		searchColumn: "name",
		orderColumn:  "name",
	}, p)
}
