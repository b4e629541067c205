package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cryptdox/site-api/internal/services"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

func (h *JobHandler) List(c *gin.Context) {
	page, err := h.svc.ListOpen(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageJSON(page))
}

// Get returns 404 for an absent or soft-deleted posting and 410 for one whose
// recruitment window has closed, so the page can tell the two apart.
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
