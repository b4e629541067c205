package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cryptdox/site-api/internal/api/handlers"
)

type Deps struct {
	Blog        *handlers.BlogHandler
	Job         *handlers.JobHandler
	Application *handlers.ApplicationHandler
	Contact     *handlers.ContactHandler
	Content     *handlers.ContentHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	api.GET("/home", d.Content.Home)
	api.GET("/about", d.Content.About)
	api.GET("/services", d.Content.Services)
	api.GET("/products", d.Content.Products)
	api.GET("/portfolio", d.Content.Portfolio)
	api.GET("/team", d.Content.Team)

	api.GET("/blog", d.Blog.List)
	api.GET("/blog/:id", d.Blog.Get)

	api.GET("/careers", d.Job.List)
	api.GET("/careers/:id", d.Job.Get)
	api.POST("/careers/:id/apply", d.Application.Submit)

	api.POST("/contact", d.Contact.Submit)
}
