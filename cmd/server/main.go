package main

import (
	"log"
	"net/http"

	"portfolio/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handler"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/router"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// @title Portfolio Admin API
// @version 1.0
// @description Content management API for a portfolio website: projects, image galleries, homepage content, and admin authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ProjectImage{},
		&model.HomePage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Ensure the homepage singleton exists
	if err := ensureHomepage(gormDB); err != nil {
		log.Fatalf("homepage bootstrap: %v", err)
	}

	fileStore, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("file store init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	imageRepo := repository.NewImageRepository(gormDB)
	homepageRepo := repository.NewHomepageRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	projectService := service.NewProjectService(projectRepo, fileStore, cacheClient)
	imageService := service.NewImageService(imageRepo, projectRepo, fileStore, cacheClient)
	homepageService := service.NewHomepageService(homepageRepo, cacheClient)
	statsService := service.NewStatsService(projectRepo, imageRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	imageHandler := handler.NewImageHandler(imageService, fileStore)
	homepageHandler := handler.NewHomepageHandler(homepageService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		projectHandler,
		imageHandler,
		homepageHandler,
		statsHandler,
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	log.Printf("swagger ui available at http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// ensureHomepage inserts the singleton homepage row on first boot.
func ensureHomepage(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.HomePage{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gormDB.Create(&model.HomePage{}).Error
	}
	return nil
}
