package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	pgrepo "github.com/cryptdox/site-api/internal/repositories/postgres"
	"github.com/cryptdox/site-api/internal/utils"
)

type APIError struct {
	Code    utils.Code         `json:"code"`
	Message string             `json:"message"`
	Fields  []utils.FieldError `json:"fields,omitempty"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
			Fields:  ae.Fields,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

// listParams reads page/per_page/search from the query string. Out-of-range
// values are normalized at the repository layer.
func listParams(c *gin.Context) pgrepo.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(pgrepo.DefaultPerPage)))
	return pgrepo.ListParams{
		Page:    page,
		PerPage: perPage,
		Search:  strings.TrimSpace(c.Query("search")),
	}
}

func pageJSON[T any](p pgrepo.Page[T]) gin.H {
	return gin.H{
		"items":       p.Items,
		"total_count": p.TotalCount,
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total_pages": p.TotalPages(),
	}
}
