package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/opencampus/campus-backend/internal/config"
	"github.com/opencampus/campus-backend/internal/database"
	"github.com/opencampus/campus-backend/internal/handler"
	"github.com/opencampus/campus-backend/internal/logger"
	"github.com/opencampus/campus-backend/internal/repository"
	"github.com/opencampus/campus-backend/internal/router"
	"github.com/opencampus/campus-backend/internal/service"
	"github.com/opencampus/campus-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Campus Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Initialize In-Memory Store ────────────────────────────────────
	var opts []database.Option
	if cfg.StoreStrict {
		opts = append(opts, database.Strict())
	}
	db := database.NewMemDB(opts...)

	// Seed demo records so the API is usable out of the box. Every seeded
	// account shares the configured demo password.
	authService := service.NewAuthService(cfg)
	seedHash, err := authService.HashPassword(cfg.SeedPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash seed password")
	}
	database.Seed(db, seedHash)
	log.Info().Bool("strict", cfg.StoreStrict).Msg("In-memory store seeded")

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	feeRepo := repository.NewFeeRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)

	// ─── Initialize Services ──────────────────────────────────────────
	userService := service.NewUserService(userRepo)
	courseService := service.NewCourseService(courseRepo, userRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, submissionRepo, courseRepo)
	gradebookService := service.NewGradebookService(courseRepo, assignmentRepo, submissionRepo, userRepo)
	feeService := service.NewFeeService(feeRepo, userRepo)
	timetableService := service.NewTimetableService(timetableRepo)
	dashboardService := service.NewDashboardService(userRepo, courseRepo, assignmentRepo, submissionRepo, feeRepo, gradebookService)

	var chatClient service.ChatClient
	if cfg.TutorAPIKey != "" {
		chatClient = service.NewHTTPChatClient(cfg.TutorEndpoint, cfg.TutorAPIKey, cfg.TutorModel)
		log.Info().Str("model", cfg.TutorModel).Msg("AI tutor enabled")
	} else {
		log.Info().Msg("AI tutor disabled: no TUTOR_API_KEY set")
	}
	tutorService := service.NewTutorService(courseRepo, chatClient)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService, userService),
		User:       handler.NewUserHandler(authService, userService),
		Course:     handler.NewCourseHandler(courseService, userService),
		Assignment: handler.NewAssignmentHandler(assignmentService, gradebookService, userService),
		Gradebook:  handler.NewGradebookHandler(gradebookService, userService),
		Fee:        handler.NewFeeHandler(feeService),
		Timetable:  handler.NewTimetableHandler(timetableService),
		Dashboard:  handler.NewDashboardHandler(dashboardService, userService),
		Tutor:      handler.NewTutorHandler(tutorService, userService, log, cfg.AllowedOrigins),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
