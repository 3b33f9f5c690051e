package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/adayportal/backend/config"
	"github.com/adayportal/backend/internal/api/handlers"
	"github.com/adayportal/backend/internal/api/middleware"
	"github.com/adayportal/backend/internal/api/routes"
	"github.com/adayportal/backend/internal/logger"
	"github.com/adayportal/backend/internal/models"
	"github.com/adayportal/backend/internal/repositories"
	mongorepo "github.com/adayportal/backend/internal/repositories/mongo"
	pgrepo "github.com/adayportal/backend/internal/repositories/postgres"
	"github.com/adayportal/backend/internal/services"
	"github.com/adayportal/backend/internal/sessions"
	"github.com/adayportal/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New(cfg.LogLevel)
	ctx := context.Background()

	// Record store
	var repo repositories.ApplicationRepository
	switch cfg.Database.Driver {
	case config.DriverMongo:
		client, err := config.NewMongo(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("MongoDB init error: %v", err)
		}
		repo = mongorepo.NewApplicationRepo(client.Database(cfg.Database.MongoDB))
		fmt.Println("MongoDB connected")
	default:
		db, err := config.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("PostgreSQL init error: %v", err)
		}
		if err := db.AutoMigrate(&models.Application{}); err != nil {
			log.Fatalf("migration error: %v", err)
		}
		repo = pgrepo.NewApplicationRepo(db)
		fmt.Println("PostgreSQL connected")
	}

	// Admin sessions
	rdb, err := config.NewRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	fmt.Println("Redis connected")
	store := sessions.NewRedisStore(rdb, cfg.Admin.SessionTTL)

	// Remote file hosting
	var remote storage.Client
	switch cfg.Storage.Backend {
	case config.StorageGCS:
		remote, err = storage.NewGCSClient(ctx, cfg.Storage.Bucket)
	default:
		remote, err = storage.NewDriveClient(ctx, cfg.Storage)
	}
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}

	reports := services.NewReportGenerator(cfg.Uploads.Dir)
	submissions := services.NewSubmissionService(repo, remote, reports, cfg.Storage.RootFolderID, l)
	auth := services.NewAuthService(store, cfg.Admin)

	r := gin.New()
	r.Use(middleware.RequestLogger(l), gin.Recovery())
	r.LoadHTMLGlob("web/templates/*.html")

	routes.RegisterRoutes(r, routes.Deps{
		Application: handlers.NewApplicationHandler(submissions, cfg.Uploads.Dir, l),
		Admin:       handlers.NewAdminHandler(repo),
		Auth:        handlers.NewAuthHandler(auth, cfg.Admin.SessionTTL),
		AuthService: auth,
	})

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
