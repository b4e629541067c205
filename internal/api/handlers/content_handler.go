package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cryptdox/site-api/internal/services"
)

// ContentHandler serves the catalog listings plus the about and home pages.
type ContentHandler struct {
	svc services.ContentService
}

func NewContentHandler(svc services.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

func (h *ContentHandler) Services(c *gin.Context) {
	page, err := h.svc.Services(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageJSON(page))
}

func (h *ContentHandler) Products(c *gin.Context) {
	page, err := h.svc.Products(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageJSON(page))
}

func (h *ContentHandler) Portfolio(c *gin.Context) {
	page, err := h.svc.Portfolio(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageJSON(page))
}

func (h *ContentHandler) Team(c *gin.Context) {
	page, err := h.svc.Team(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageJSON(page))
}

func (h *ContentHandler) About(c *gin.Context) {
	about, err := h.svc.About(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, about)
}

func (h *ContentHandler) Home(c *gin.Context) {
	home, err := h.svc.Home(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, home)
}
