package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cryptdox/site-api/internal/services"
)

type BlogHandler struct {
	svc services.BlogService
}

func NewBlogHandler(svc services.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

func (h *BlogHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageJSON(page))
}

func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
