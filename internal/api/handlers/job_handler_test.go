package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cryptdox/site-api/internal/models"
	pgrepo "github.com/cryptdox/site-api/internal/repositories/postgres"
	"github.com/cryptdox/site-api/internal/services"
	"github.com/cryptdox/site-api/internal/utils"
)

type stubJobService struct {
	job *models.JobCircular
	err error
}

func (s *stubJobService) ListOpen(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.JobCircular], error) {
	return pgrepo.Page[models.JobCircular]{Page: 1, PerPage: 6}, s.err
}

func (s *stubJobService) Get(ctx context.Context, id string) (*models.JobCircular, error) {
	return s.job, s.err
}

func newJobRouter(svc services.JobService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewJobHandler(svc)
	r.GET("/api/careers", h.List)
	r.GET("/api/careers/:id", h.Get)
	return r
}

func TestJobGetStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		svc  *stubJobService
		want int
	}{
		{"open posting", &stubJobService{job: &models.JobCircular{ID: "j1", Title: "Backend Engineer"}}, http.StatusOK},
		{"missing posting", &stubJobService{err: utils.E(utils.CodeNotFound, "JobService.Get", "job not found", nil)}, http.StatusNotFound},
		{"expired posting", &stubJobService{err: utils.E(utils.CodeExpired, "JobService.Get", "this job posting has expired", nil)}, http.StatusGone},
		{"gateway down", &stubJobService{err: utils.E(utils.CodeUnavailable, "JobService.Get", "failed to load job details", nil)}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newJobRouter(tt.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/careers/j1", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestJobListResponseShape(t *testing.T) {
	router := newJobRouter(&stubJobService{})
	req := httptest.NewRequest(http.MethodGet, "/api/careers?page=1&per_page=6", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_pages"`)
	assert.Contains(t, w.Body.String(), `"total_count"`)
}
