// @title           Restoration Admin API
// @version         1.0.0
// @description     Operator dashboard backend for photo restoration orders stored in Supabase.

// @host      localhost:8080
// @BasePath  /api/v1

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"restoration-admin-backend/internal/config"
	"restoration-admin-backend/internal/database"
	"restoration-admin-backend/internal/handlers"
	"restoration-admin-backend/internal/logger"
	"restoration-admin-backend/internal/middleware"
	"restoration-admin-backend/internal/services"
	"restoration-admin-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.LogLevel, cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, migrations will be skipped")
	} else {
		runMigrations(cfg.DatabaseURL, log)
	}

	if missing := cfg.MissingSupabaseCredentials(); len(missing) > 0 {
		log.WithField("missing", missing).Warn("Supabase credentials not configured, remote operations will fail")
	}

	gateway, err := supabase.NewGateway(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase gateway: %v", err)
	}

	store := services.NewRequestStore(gateway, log)
	store.Fetch()

	// A nil *StorageClient must not reach the interface, so the uploader
	// stays untyped nil when storage is unavailable.
	var uploader services.ImageUploader
	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.WithError(err).Warn("Storage client unavailable, restored image uploads are disabled")
	} else {
		uploader = storageClient
	}

	storageService := services.NewStorageService(uploader, store, log)
	fetcher := services.NewImageFetcher(cfg.ImageFetchTimeout)
	links := services.NewContactLinks(cfg.BrandName, cfg.WhatsAppCountryCode)

	h := &handlers.Handlers{
		Health:   handlers.NewHealthHandler(store),
		Requests: handlers.NewRequestsHandler(store),
		Images:   handlers.NewImagesHandler(store, storageService, fetcher, cfg.MaxUploadSizeMB<<20, log),
		Contact:  handlers.NewContactHandler(store, links),
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	h.Register(router, middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitPeriod))

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := http.ListenAndServe(":"+cfg.Port, middleware.CORS(cfg.AllowedOrigins)(router)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func runMigrations(dbURL string, log logrus.FieldLogger) {
	migrator, err := database.NewMigrator(dbURL, log)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize migrator")
		return
	}
	defer migrator.Close()

	if err := migrator.Run(); err != nil {
		log.WithError(err).Warn("Migration failed")
		return
	}
	log.Info("Migrations completed successfully")
}
