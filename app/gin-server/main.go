package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cryptdox/site-api/config"
	"github.com/cryptdox/site-api/internal/api/handlers"
	"github.com/cryptdox/site-api/internal/api/middleware"
	"github.com/cryptdox/site-api/internal/api/routes"
	"github.com/cryptdox/site-api/internal/logger"
	pgrepo "github.com/cryptdox/site-api/internal/repositories/postgres"
	"github.com/cryptdox/site-api/internal/services"
	"github.com/cryptdox/site-api/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	db, err := config.NewPostgres()
	if err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	log.Info("PostgreSQL connected")

	bucket := os.Getenv("GCS_BUCKET")
	if bucket == "" {
		log.Fatal("GCS_BUCKET environment variable is not set")
	}
	uploader, err := storage.NewGCSUploader(context.Background(), bucket)
	if err != nil {
		log.Fatalf("GCS init error: %v", err)
	}
	defer uploader.Close()

	// Repositories
	blogRepo := pgrepo.NewBlogRepo(db)
	jobRepo := pgrepo.NewJobRepo(db)
	applicationRepo := pgrepo.NewApplicationRepo(db)
	contactRepo := pgrepo.NewContactRepo(db)
	serviceRepo := pgrepo.NewServiceRepo(db)
	productRepo := pgrepo.NewProductRepo(db)
	projectRepo := pgrepo.NewProjectRepo(db)
	teamRepo := pgrepo.NewTeamRepo(db)
	siteRepo := pgrepo.NewSiteRepo(db)

	// Services
	blogSvc := services.NewBlogService(blogRepo)
	jobSvc := services.NewJobService(jobRepo)
	applicationSvc := services.NewApplicationService(jobSvc, applicationRepo, uploader)
	contactSvc := services.NewContactService(contactRepo)
	contentSvc := services.NewContentService(serviceRepo, productRepo, projectRepo, teamRepo, siteRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Blog:        handlers.NewBlogHandler(blogSvc),
		Job:         handlers.NewJobHandler(jobSvc),
		Application: handlers.NewApplicationHandler(applicationSvc),
		Contact:     handlers.NewContactHandler(contactSvc),
		Content:     handlers.NewContentHandler(contentSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
