package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jobinkurian/parishdesk/internal/api"
	"github.com/jobinkurian/parishdesk/internal/config"
	"github.com/jobinkurian/parishdesk/internal/db"
	"github.com/jobinkurian/parishdesk/internal/logging"
	"github.com/jobinkurian/parishdesk/internal/models"
	"github.com/jobinkurian/parishdesk/internal/services"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	database, err := db.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		logger.Fatalf("database init failed: %v", err)
	}

	if err := seedBootstrapAdmin(database, cfg, logger); err != nil {
		logger.Fatalf("bootstrap admin seed failed: %v", err)
	}

	metrics := api.NewMetrics()
	handler, err := api.NewHandler(database, cfg.SecretKey, cfg.CookieSecure, logger, metrics)
	if err != nil {
		logger.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "ParishDesk",
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())
	app.Use(metrics.Middleware())

	api.RegisterRoutes(app, handler)

	go metrics.Serve(cfg.MetricsPort, logger)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.WithError(err).Error("server shutdown failed")
		}
	}()

	logger.WithFields(logrus.Fields{
		"port":         cfg.Port,
		"metrics_port": cfg.MetricsPort,
	}).Info("ParishDesk listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}

// seedBootstrapAdmin creates the first admin account from ADMIN_*
// environment variables when the users table is empty. Accounts are
// otherwise only created by an admin through the API.
func seedBootstrapAdmin(database *gorm.DB, cfg *config.Config, logger *logrus.Logger) error {
	users := db.NewUserRepository(database)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := users.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		logger.Warn("users table is empty and ADMIN_USERNAME/ADMIN_PASSWORD are not set; no account can sign in")
		return nil
	}

	passwordHash, err := services.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         cfg.AdminUsername,
		Username:     cfg.AdminUsername,
		PasswordHash: passwordHash,
		IsAdmin:      true,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(ctx, &admin); err != nil {
		return err
	}

	logger.WithField("username", cfg.AdminUsername).Info("seeded bootstrap admin account")
	return nil
}
