package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"mentoring_backend/internals/configs"
	database "mentoring_backend/internals/databases"
	statsRepo "mentoring_backend/internals/features/dashboard/stats/repository"
	statsScheduler "mentoring_backend/internals/features/dashboard/stats/scheduler"
	helper "mentoring_backend/internals/helpers"
	"mentoring_backend/internals/logging"
	"mentoring_backend/internals/middlewares"
	routes "mentoring_backend/internals/route"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// NewApp builds the Fiber app with the shared middleware chain and every route.
func NewApp(db *gorm.DB, cfg configs.AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg)
	routes.SetupRoutes(app, db, cfg)
	return app
}

func runServe(ctx context.Context) error {
	cfg := configs.App
	log := logging.L()

	db, err := database.ConnectDB(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn().Err(err).Msg("closing database pool")
		}
	}()
	database.TunePool(db)
	database.WarmUpQueries(db)
	if err := database.RegisterPoolMetrics(db, prometheus.DefaultRegisterer); err != nil {
		log.Warn().Err(err).Msg("pool metrics not registered")
	}

	gauges, err := statsScheduler.StartGaugeScheduler(statsRepo.NewStatsRepository(db), cfg.StatsCron)
	if err != nil {
		return err
	}
	defer gauges.Stop()

	app := NewApp(db, cfg)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("✅ listening")
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
