// @title Festival Hub API
// @version 1.0
// @description Backend for the Cape Town Festival: events, RSVPs, ratings, statistics, and notification emails.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"festivalhub/config"
	_ "festivalhub/docs"
	"festivalhub/internal/adapters/auth"
	"festivalhub/internal/adapters/email"
	delivery "festivalhub/internal/delivery/http"
	"festivalhub/internal/delivery/http/controllers"
	"festivalhub/internal/delivery/http/middleware"
	"festivalhub/internal/repository/postgres"
	"festivalhub/internal/services"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
	bcryptCost      = 12
	migrationsPath  = "db/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger := config.NewLogger()
	slog.SetDefault(logger)

	db, err := postgres.Open(cfg.DBUrl)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	version, err := postgres.RunMigrations(cfg.DBUrl, migrationsPath)
	if err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}
	logger.Info("migrations applied", "version", version)

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)
	rsvpRepo := postgres.NewRSVPRepository(db)
	transactor := postgres.NewTransactor(db)

	hasher := auth.NewBcryptHasher(bcryptCost)
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()

	emailService := services.NewEmailService(mailer, renderer, cfg.ContactAddress)
	eventService := services.NewEventService(eventRepo, userRepo, rsvpRepo, serviceTimeout)
	rsvpService := services.NewRSVPService(transactor, eventRepo, userRepo, rsvpRepo, emailService, logger, serviceTimeout)
	userService := services.NewUserService(userRepo, rsvpRepo, hasher, tokenIssuer, cfg.TokenExpiry, serviceTimeout)
	statsService := services.NewStatsService(userRepo, eventRepo, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventService, rsvpService)
	userController := controllers.NewUserController(logger, userService)
	adminController := controllers.NewAdminController(logger, statsService)
	contactController := controllers.NewContactController(logger, eventService, userService, emailService)

	mux := delivery.NewRouter(eventController, userController, adminController, contactController, tokenVerifier)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.Logging(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
	}
	logger.Info("server stopped")
}
