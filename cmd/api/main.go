package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/vidaplus/sghss-api/internal/config"
	"github.com/vidaplus/sghss-api/internal/handler"
	auditHandler "github.com/vidaplus/sghss-api/internal/handler/audit"
	authHandler "github.com/vidaplus/sghss-api/internal/handler/auth"
	consultationHandler "github.com/vidaplus/sghss-api/internal/handler/consultation"
	medicalRecordHandler "github.com/vidaplus/sghss-api/internal/handler/medicalrecord"
	patientHandler "github.com/vidaplus/sghss-api/internal/handler/patient"
	professionalHandler "github.com/vidaplus/sghss-api/internal/handler/professional"
	unitHandler "github.com/vidaplus/sghss-api/internal/handler/unit"
	"github.com/vidaplus/sghss-api/internal/middleware"
	"github.com/vidaplus/sghss-api/internal/repository/postgres"
	"github.com/vidaplus/sghss-api/internal/router"
	auditService "github.com/vidaplus/sghss-api/internal/service/audit"
	authService "github.com/vidaplus/sghss-api/internal/service/auth"
	consultationService "github.com/vidaplus/sghss-api/internal/service/consultation"
	medicalRecordService "github.com/vidaplus/sghss-api/internal/service/medicalrecord"
	patientService "github.com/vidaplus/sghss-api/internal/service/patient"
	professionalService "github.com/vidaplus/sghss-api/internal/service/professional"
	unitService "github.com/vidaplus/sghss-api/internal/service/unit"
	"github.com/vidaplus/sghss-api/pkg/auth"
	"github.com/vidaplus/sghss-api/pkg/logger"
	"github.com/vidaplus/sghss-api/pkg/security"
	"github.com/vidaplus/sghss-api/pkg/validator"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	appLogger := logger.NewLogger(nil)

	if err := validator.RegisterCPF(); err != nil {
		log.Fatal().Err(err).Msg("failed to register cpf validation")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	migrator := postgres.NewMigrator(db, cfg.Database.MigrationsDir)
	if err := migrator.Up(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	professionalRepo := postgres.NewProfessionalRepository(db)
	unitRepo := postgres.NewUnitRepository(db)
	consultationRepo := postgres.NewConsultationRepository(db)
	recordRepo := postgres.NewMedicalRecordRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	// Services
	hasher := security.NewBcryptHasher(security.DefaultHashCost)
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	auditSvc := auditService.NewService(auditRepo, appLogger)
	authSvc := authService.NewService(userRepo, hasher, jwtSvc, auditSvc)
	patientSvc := patientService.NewService(patientRepo, userRepo, hasher)
	professionalSvc := professionalService.NewService(professionalRepo, userRepo, unitRepo, hasher)
	unitSvc := unitService.NewService(unitRepo)
	consultationSvc := consultationService.NewService(consultationRepo, patientRepo, professionalRepo, unitRepo, auditSvc)
	recordSvc := medicalRecordService.NewService(recordRepo, patientRepo, professionalRepo, consultationRepo, auditSvc)

	// Handlers
	h := handler.NewHandler()
	r := router.NewRouter(
		authSvc,
		authHandler.NewHandler(authSvc),
		patientHandler.NewHandler(patientSvc),
		professionalHandler.NewHandler(professionalSvc),
		unitHandler.NewHandler(unitSvc),
		consultationHandler.NewHandler(consultationSvc),
		medicalRecordHandler.NewHandler(recordSvc),
		auditHandler.NewHandler(auditSvc),
		h,
		router.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimit: middleware.RateLimiterConfig{
				Rate:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
				Burst: cfg.RateLimit.Burst,
			},
			CORS:          middleware.DefaultCORSConfig(),
			MetricsPrefix: "sghss",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
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
