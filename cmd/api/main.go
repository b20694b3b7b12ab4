package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stravigo-website-backend/config"
	_ "stravigo-website-backend/docs" // Important for Swagger
	v1 "stravigo-website-backend/internal/delivery/http/v1"
	"stravigo-website-backend/internal/repository/postgres"
	"stravigo-website-backend/internal/usecase"
	"stravigo-website-backend/pkg/database"
	"stravigo-website-backend/pkg/email"
	"stravigo-website-backend/pkg/logger"
	"stravigo-website-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Stravigo Website Backend API
// @version         1.0
// @description     Public content and lead-intake API for the Stravigo marketing site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting website backend", "port", cfg.Port, "env", cfg.AppEnv)

	// 3. Setup Databases. Two pools against the same database: the anon role
	// for content reads under row-level security, the service role for the
	// lead-pipeline writes that anonymous visitors cannot perform directly.
	anonPool, err := database.NewPostgresConnection(cfg.DBAnonURL, "anon")
	if err != nil {
		logger.Log.Error("Failed to connect to database (anon)", "error", err)
		os.Exit(1)
	}
	defer anonPool.Close()

	servicePool, err := database.NewPostgresConnection(cfg.DBServiceURL, "service")
	if err != nil {
		logger.Log.Error("Failed to connect to database (service)", "error", err)
		os.Exit(1)
	}
	defer servicePool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	submissionRepo := postgres.NewSubmissionRepository(servicePool)
	careerRepo := postgres.NewCareerRepository(anonPool)
	pageRepo := postgres.NewPageRepository(anonPool)
	caseStudyRepo := postgres.NewCaseStudyRepository(anonPool)
	insightRepo := postgres.NewInsightRepository(anonPool)

	// 6. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notifications will be skipped")
	}

	// 7. Setup UseCases
	validate := validator.New()
	leadUC := usecase.NewLeadUsecase(submissionRepo, careerRepo, emailService, validate)
	pageUC := usecase.NewPageUsecase(pageRepo, caseStudyRepo)
	caseStudyUC := usecase.NewCaseStudyUsecase(caseStudyRepo)
	insightUC := usecase.NewInsightUsecase(insightRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		LeadUC:      leadUC,
		PageUC:      pageUC,
		CaseStudyUC: caseStudyUC,
		InsightUC:   insightUC,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
