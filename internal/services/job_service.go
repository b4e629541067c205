package services

import (
	"context"
	"errors"
	"time"

	"github.com/cryptdox/site-api/internal/models"
	pgrepo "github.com/cryptdox/site-api/internal/repositories/postgres"
	"github.com/cryptdox/site-api/internal/utils"
)

type JobService interface {
	ListOpen(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.JobCircular], error)
	// Get distinguishes three outcomes: the posting exists and is open, the
	// posting exists but its recruitment window has closed (CodeExpired), or
	// the posting is absent or soft-deleted (CodeNotFound).
	Get(ctx context.Context, id string) (*models.JobCircular, error)
}

type jobService struct {
	jobs pgrepo.JobRepository
	now  func() time.Time
}

func NewJobService(jobs pgrepo.JobRepository) JobService {
	return &jobService{jobs: jobs, now: time.Now}
}

func (s *jobService) ListOpen(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.JobCircular], error) {
	const op = "JobService.ListOpen"

	page, err := s.jobs.ListOpen(ctx, p)
	if err != nil {
		return pgrepo.Page[models.JobCircular]{}, utils.E(utils.CodeUnavailable, op, "failed to load job listings", err)
	}
	return page, nil
}

func (s *jobService) Get(ctx context.Context, id string) (*models.JobCircular, error) {
	const op = "JobService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeUnavailable, op, "failed to load job details", err)
	}

	if job.ExpiredAt(s.now().UTC()) {
		return nil, utils.E(utils.CodeExpired, op, "this job posting has expired", nil)
	}
	return job, nil
}
