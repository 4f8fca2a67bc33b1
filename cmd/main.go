// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"iejimai_com/internal/config"
	"iejimai_com/internal/handlers"
	"iejimai_com/internal/middleware"
	"iejimai_com/internal/repository"
	"iejimai_com/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		// 開発環境は色付きの読みやすいログにする
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 3. Dependency Injection
	areaRepo := repository.NewGormAreaRepository()
	vendorRepo := repository.NewGormVendorRepository()
	vendorDetailRepo := repository.NewGormVendorDetailRepository()
	leadRepo := repository.NewGormLeadRepository()
	reviewRepo := repository.NewGormReviewRepository()

	mailer := service.NewMailer(&config.Cfg)
	imageStorage := service.NewImageStorage(&config.Cfg)

	areaService := service.NewAreaService(db, areaRepo, vendorRepo)
	vendorService := service.NewVendorService(db, vendorRepo, vendorDetailRepo, reviewRepo)
	leadService := service.NewLeadService(db, leadRepo, mailer, &config.Cfg)
	reviewService := service.NewReviewService(db, reviewRepo)

	areaHandler := handlers.NewAreaHandler(areaService, logger)
	vendorHandler := handlers.NewVendorHandler(vendorService, logger)
	contactHandler := handlers.NewContactHandler(leadService, logger)
	leadHandler := handlers.NewLeadHandler(leadService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	uploadHandler := handlers.NewUploadHandler(imageStorage, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api", func(r chi.Router) {
		// --- Public routes ---
		r.Get("/areas", areaHandler.GetAreas)
		r.Get("/areas/{slug}", areaHandler.GetArea)
		r.Get("/areas/{slug}/vendors", areaHandler.GetAreaVendors)

		r.Get("/vendors", vendorHandler.GetVendors)
		r.Get("/vendors/{vendor_id}", vendorHandler.GetVendor)

		r.Post("/contact", contactHandler.PostContact)

		r.Get("/reviews", reviewHandler.GetReviews)
		r.Post("/reviews", reviewHandler.PostReview)

		// --- Admin routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuthMiddleware(&config.Cfg))

			r.Post("/vendors", vendorHandler.PostVendor)
			r.Put("/vendors/{vendor_id}", vendorHandler.PutVendor)
			r.Delete("/vendors/{vendor_id}", vendorHandler.DeleteVendor)

			r.Get("/leads", leadHandler.GetLeads)
			r.Get("/leads/{lead_id}", leadHandler.GetLead)
			r.Put("/leads/{lead_id}", leadHandler.PutLead)

			r.Put("/reviews/{review_id}/approval", reviewHandler.PutReviewApproval)

			r.Post("/uploads", uploadHandler.PostUpload)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
