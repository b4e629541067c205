package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptdox/site-api/internal/models"
	"github.com/cryptdox/site-api/internal/utils"
)

type fakeSiteRepo struct {
	about        *models.About
	testimonials []models.Testimonial
	featured     []models.Service
	projects     int64
	clients      int64
	teams        int64
	oldest       *time.Time
	oldestErr    error
	err          error
}

func (f *fakeSiteRepo) LatestAbout(ctx context.Context) (*models.About, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.about == nil {
		return nil, utils.ErrNotFound
	}
	return f.about, nil
}

func (f *fakeSiteRepo) ApprovedTestimonials(ctx context.Context, limit int) ([]models.Testimonial, error) {
	return f.testimonials, f.err
}

func (f *fakeSiteRepo) FeaturedServices(ctx context.Context, limit int) ([]models.Service, error) {
	return f.featured, f.err
}

func (f *fakeSiteRepo) CountProjects(ctx context.Context) (int64, error) { return f.projects, f.err }
func (f *fakeSiteRepo) CountClients(ctx context.Context) (int64, error)  { return f.clients, f.err }
func (f *fakeSiteRepo) CountTeams(ctx context.Context) (int64, error)    { return f.teams, f.err }

func (f *fakeSiteRepo) OldestPlatformUserJoined(ctx context.Context) (*time.Time, error) {
	if f.oldestErr != nil {
		return nil, f.oldestErr
	}
	return f.oldest, f.err
}

func TestContentServiceHomeStatsFloors(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	joined := now.AddDate(-2, 0, 0)

	site := &fakeSiteRepo{projects: 3, clients: 1, teams: 2, oldest: &joined}
	svc := &contentService{site: site, now: func() time.Time { return now }}

	home, err := svc.Home(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(50), home.Stats.Projects)
	assert.Equal(t, int64(30), home.Stats.Clients)
	assert.Equal(t, int64(15), home.Stats.TeamMembers)
	assert.Equal(t, 8, home.Stats.YearsExperience)
}

func TestContentServiceHomeStatsRealCounts(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	joined := now.AddDate(-12, 0, 0)

	site := &fakeSiteRepo{
		projects:     120,
		clients:      64,
		teams:        22,
		oldest:       &joined,
		testimonials: []models.Testimonial{{ID: "t1", Content: "great team"}},
		featured:     []models.Service{{ID: "s1", Name: "Custom Software"}},
	}
	svc := &contentService{site: site, now: func() time.Time { return now }}

	home, err := svc.Home(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(120), home.Stats.Projects)
	assert.Equal(t, int64(64), home.Stats.Clients)
	assert.Equal(t, int64(22), home.Stats.TeamMembers)
	assert.GreaterOrEqual(t, home.Stats.YearsExperience, 12)
	assert.Len(t, home.Testimonials, 1)
	assert.Len(t, home.Services, 1)
}

func TestContentServiceHomePlatformUserFailureDegrades(t *testing.T) {
	joined := time.Now().AddDate(-12, 0, 0)
	site := &fakeSiteRepo{projects: 120, clients: 64, teams: 22, oldest: &joined, oldestErr: errors.New("timeout")}
	svc := &contentService{site: site, now: time.Now}

	home, err := svc.Home(context.Background())
	require.NoError(t, err)

	// counts still come through; experience falls back to the floor
	assert.Equal(t, int64(120), home.Stats.Projects)
	assert.Equal(t, 8, home.Stats.YearsExperience)
}

func TestContentServiceHomeNoPlatformUsers(t *testing.T) {
	site := &fakeSiteRepo{}
	svc := &contentService{site: site, now: time.Now}

	home, err := svc.Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, home.Stats.YearsExperience)
}

func TestContentServiceAbout(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &contentService{site: &fakeSiteRepo{about: &models.About{ID: "a1", Title: "About Us"}}, now: time.Now}
		about, err := svc.About(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "About Us", about.Title)
	})

	t.Run("missing", func(t *testing.T) {
		svc := &contentService{site: &fakeSiteRepo{}, now: time.Now}
		_, err := svc.About(context.Background())
		assert.True(t, utils.IsCode(err, utils.CodeNotFound))
	})

	t.Run("gateway failure", func(t *testing.T) {
		svc := &contentService{site: &fakeSiteRepo{err: errors.New("timeout")}, now: time.Now}
		_, err := svc.About(context.Background())
		assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
	})
}
