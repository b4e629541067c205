package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cryptdox/site-api/internal/services"
	"github.com/cryptdox/site-api/internal/utils"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Submit accepts a multipart form: applicant_name, email, objective, and the
// CV under the "cv" field.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	in := services.SubmitApplicationInput{
		JobID:         c.Param("id"),
		ApplicantName: c.PostForm("applicant_name"),
		Email:         c.PostForm("email"),
		Objective:     c.PostForm("objective"),
	}

	if fh, err := c.FormFile("cv"); err == nil {
		f, err := fh.Open()
		if err != nil {
			writeError(c, utils.E(utils.CodeInternal, "ApplicationHandler.Submit", "failed to open upload", err))
			return
		}
		defer f.Close()

		in.FileName = fh.Filename
		in.FileSize = fh.Size
		in.MimeType = fh.Header.Get("Content-Type")
		in.File = f
	}

	row, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}
