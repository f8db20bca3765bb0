// @title           Maquete Admin Backend API
// @version         1.0.0
// @description     Administrative backend for the maquete catalog: protected JSON CRUD API over maquetes and their images, HTML admin pages and startup schema bootstrapping.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.basic BasicAuth

package main

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maquete-admin-backend/docs"
	"maquete-admin-backend/internal/config"
	"maquete-admin-backend/internal/database"
	"maquete-admin-backend/internal/handlers"
	"maquete-admin-backend/internal/middleware"
	"maquete-admin-backend/internal/storage"
	"maquete-admin-backend/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func main() {
	// A missing .env is fine in production; variables come from the
	// environment there.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Update Swagger docs with the dynamic base URL.
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
		}
	}

	// The store stays nil when no connection string is configured;
	// handlers degrade to 503 and health reports missing_config.
	var store *database.Store
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set; data operations are unavailable")
	} else {
		store, err = database.New(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Warn("failed to open database; data operations are unavailable", zap.Error(err))
			store = nil
		} else {
			defer store.Close()

			// An unreachable database is a distinct state from an
			// unconfigured one: the store stays non-nil so health
			// reports "error" and the pool reconnects when the
			// database comes back. Migrations wait for the next boot.
			if err := store.Probe(); err != nil {
				logger.Warn("database unreachable at startup; skipping migrations and bootstrap", zap.Error(err))
			} else {
				if err := store.RunMigrations(); err != nil {
					logger.Warn("migrations failed", zap.Error(err))
				}
				if err := store.Bootstrap(); err != nil {
					logger.Warn("schema bootstrap failed", zap.Error(err))
				}
			}
		}
	}

	var storageClient *storage.Client
	if cfg.SupabaseURL != "" && cfg.SupabasePublishableKey != "" {
		storageClient, err = storage.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket, logger)
		if err != nil {
			logger.Warn("failed to initialize storage client; hosted images will not be cleaned up", zap.Error(err))
		}
	} else {
		logger.Warn("supabase storage not configured; hosted images will not be cleaned up")
	}

	healthHandler := handlers.NewHealthHandler(store)
	maquetesHandler := handlers.NewMaquetesHandler(store, storageClient, logger)
	imagesHandler := handlers.NewImagesHandler(store, storageClient, logger)
	uploadsHandler := handlers.NewUploadsHandler(storageClient)
	pagesHandler := handlers.NewPagesHandler(cfg)

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())

	templates, err := web.Templates()
	if err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}
	router.SetHTMLTemplate(templates)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", healthHandler.Health)

	// Admin pages
	pages := router.Group("/")
	pages.Use(middleware.BasicAuth(cfg))
	pages.GET("/", pagesHandler.Index)
	pages.GET("/admin", pagesHandler.Admin)
	pages.GET("/admin/maquetes/:id/editar", pagesHandler.Edit)

	// JSON API
	api := router.Group("/api")
	api.Use(middleware.BasicAuth(cfg))

	api.GET("/maquetes", maquetesHandler.ListMaquetes)
	api.POST("/maquetes", maquetesHandler.CreateMaquete)
	api.GET("/maquetes/:id", maquetesHandler.GetMaquete)
	api.PUT("/maquetes/:id", maquetesHandler.UpdateMaquete)
	api.DELETE("/maquetes/:id", maquetesHandler.DeleteMaquete)

	api.GET("/maquetes/:id/images", imagesHandler.ListImages)
	api.POST("/maquetes/:id/images", imagesHandler.CreateImage)
	api.DELETE("/maquetes/:id/images/:imgId", imagesHandler.DeleteImage)

	api.GET("/uploads/config", uploadsHandler.GetConfig)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
