package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/podomus/clinic-api/config"
	"github.com/podomus/clinic-api/internal/email"
	"github.com/podomus/clinic-api/internal/handler"
	appointmentHandler "github.com/podomus/clinic-api/internal/handler/appointment"
	catalogHandler "github.com/podomus/clinic-api/internal/handler/catalog"
	messageHandler "github.com/podomus/clinic-api/internal/handler/message"
	patientHandler "github.com/podomus/clinic-api/internal/handler/patient"
	"github.com/podomus/clinic-api/internal/middleware"
	"github.com/podomus/clinic-api/internal/repository/postgres"
	"github.com/podomus/clinic-api/internal/router"
	appointmentService "github.com/podomus/clinic-api/internal/service/appointment"
	catalogService "github.com/podomus/clinic-api/internal/service/catalog"
	messageService "github.com/podomus/clinic-api/internal/service/message"
	patientService "github.com/podomus/clinic-api/internal/service/patient"
	"github.com/podomus/clinic-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Pretty)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply database schema")
	}

	// Repositories
	patientRepo := postgres.NewPatientRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	messageRepo := postgres.NewContactMessageRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)

	// Services
	notifier := email.NewNotifier(cfg.SMTP)
	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo)
	messageSvc := messageService.NewService(messageRepo, notifier)
	catalogSvc := catalogService.NewService(serviceRepo)

	// Handlers
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins

	r := router.NewRouter(
		handler.NewHandler(),
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		messageHandler.NewHandler(messageSvc),
		catalogHandler.NewHandler(catalogSvc),
		router.Config{
			RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:     cfg.RateLimit.Burst,
			CORSConfig:    corsConfig,
			MetricsPrefix: "clinic_api",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
