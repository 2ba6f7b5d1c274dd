package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/handlers"
	"github.com/budgetbuddy/budget_buddy_app/internal/middleware"
	"github.com/budgetbuddy/budget_buddy_app/internal/repositories/database/pgsql"
	"github.com/budgetbuddy/budget_buddy_app/pkg/config"
	"github.com/budgetbuddy/budget_buddy_app/pkg/database"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(&repos)

	// Startup sequence: one-time data repairs first, then the ledger engines
	// catch up on anything missed while the process was down.
	startupCtx := context.Background()

	if err := serviceContainer.DataRepair.RepairIfNeeded(startupCtx); err != nil {
		logger.Error("Data repair failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	created, err := serviceContainer.Recurrence.Run(startupCtx, time.Now().UTC())
	if err != nil {
		logger.Error("Recurrence engine run failed at startup", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Recurrence engine startup run complete", slog.Int("created", created))

	applied, err := serviceContainer.CarryOver.ApplyIfNeeded(startupCtx, time.Now().UTC())
	if err != nil {
		logger.Error("Carry-over run failed at startup", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if applied {
		logger.Info("Monthly carry-over applied at startup")
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
