package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/cryptdox/site-api/internal/models"
	pgrepo "github.com/cryptdox/site-api/internal/repositories/postgres"
	"github.com/cryptdox/site-api/internal/utils"
)

// Display floors for the home-page stats. Real counts below these are shown
// as the floor value.
const (
	minShownProjects   = 50
	minShownClients    = 30
	minShownTeam       = 15
	minShownExperience = 8
)

type HomeStats struct {
	Projects        int64 `json:"projects"`
	Clients         int64 `json:"clients"`
	TeamMembers     int64 `json:"team_members"`
	YearsExperience int   `json:"years_experience"`
}

type HomeContent struct {
	Testimonials []models.Testimonial `json:"testimonials"`
	Services     []models.Service     `json:"services"`
	Stats        HomeStats            `json:"stats"`
}

// ContentService serves the presentational pages that are not blog or
// careers: catalog listings, the about page, and the home aggregate.
type ContentService interface {
	Services(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.Service], error)
	Products(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.Product], error)
	Portfolio(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.Project], error)
	Team(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.Team], error)
	About(ctx context.Context) (*models.About, error)
	Home(ctx context.Context) (*HomeContent, error)
}

type contentService struct {
	services pgrepo.ServiceRepository
	products pgrepo.ProductRepository
	projects pgrepo.ProjectRepository
	teams    pgrepo.TeamRepository
	site     pgrepo.SiteRepository
	now      func() time.Time
}

func NewContentService(
	services pgrepo.ServiceRepository,
	products pgrepo.ProductRepository,
	projects pgrepo.ProjectRepository,
	teams pgrepo.TeamRepository,
	site pgrepo.SiteRepository,
) ContentService {
	return &contentService{
		services: services,
		products: products,
		projects: projects,
		teams:    teams,
		site:     site,
		now:      time.Now,
	}
}

func (s *contentService) Services(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.Service], error) {
	const op = "ContentService.Services"

	page, err := s.services.List(ctx, p)
	if err != nil {
		return pgrepo.Page[models.Service]{}, utils.E(utils.CodeUnavailable, op, "failed to load services", err)
	}
	return page, nil
}

func (s *contentService) Products(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.Product], error) {
	const op = "ContentService.Products"

	page, err := s.products.List(ctx, p)
	if err != nil {
		return pgrepo.Page[models.Product]{}, utils.E(utils.CodeUnavailable, op, "failed to load products", err)
	}
	return page, nil
}

func (s *contentService) Portfolio(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.Project], error) {
	const op = "ContentService.Portfolio"

	page, err := s.projects.List(ctx, p)
	if err != nil {
		return pgrepo.Page[models.Project]{}, utils.E(utils.CodeUnavailable, op, "failed to load portfolio", err)
	}
	return page, nil
}

func (s *contentService) Team(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.Team], error) {
	const op = "ContentService.Team"

	page, err := s.teams.List(ctx, p)
	if err != nil {
		return pgrepo.Page[models.Team]{}, utils.E(utils.CodeUnavailable, op, "failed to load team", err)
	}
	return page, nil
}

func (s *contentService) About(ctx context.Context) (*models.About, error) {
	const op = "ContentService.About"

	about, err := s.site.LatestAbout(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "about content not found", err)
		}
		return nil, utils.E(utils.CodeUnavailable, op, "failed to load about content", err)
	}
	return about, nil
}

// Home gathers the landing-page aggregate with sequential reads, mirroring
// how the page consumes them.
func (s *contentService) Home(ctx context.Context) (*HomeContent, error) {
	const op = "ContentService.Home"

	testimonials, err := s.site.ApprovedTestimonials(ctx, 6)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to load testimonials", err)
	}

	featured, err := s.site.FeaturedServices(ctx, 4)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to load services", err)
	}

	projects, err := s.site.CountProjects(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to count projects", err)
	}
	clients, err := s.site.CountClients(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to count clients", err)
	}
	teams, err := s.site.CountTeams(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to count team members", err)
	}

	// the experience figure is cosmetic; if platform_user cannot be read
	// the page still renders with the default floor
	oldest, err := s.site.OldestPlatformUserJoined(ctx)
	if err != nil {
		oldest = nil
	}

	return &HomeContent{
		Testimonials: testimonials,
		Services:     featured,
		Stats: HomeStats{
			Projects:        max64(projects, minShownProjects),
			Clients:         max64(clients, minShownClients),
			TeamMembers:     max64(teams, minShownTeam),
			YearsExperience: s.yearsExperience(oldest),
		},
	}, nil
}

func (s *contentService) yearsExperience(oldest *time.Time) int {
	years := minShownExperience
	if oldest != nil {
		elapsed := s.now().Sub(*oldest)
		derived := int(math.Ceil(elapsed.Hours() / (24 * 365)))
		if derived < 1 {
			derived = 1
		}
		if derived > years {
			years = derived
		}
	}
	return years
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
