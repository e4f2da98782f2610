// @title Inventory API
// @version 1.0
// @description Inventory management backend: accounts, item CRUD and generated inventory insights.
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/user/inventory-go/auth"
	"github.com/user/inventory-go/config"
	"github.com/user/inventory-go/db"
	"github.com/user/inventory-go/items"
	"github.com/user/inventory-go/logger"
	"github.com/user/inventory-go/metrics"
	"github.com/user/inventory-go/server"
	"github.com/user/inventory-go/summary"
	"github.com/user/inventory-go/users"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	app := &cli.App{
		Name:  "inventory",
		Usage: "inventory management API",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the HTTP server",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "migrate",
						Usage:   "apply pending migrations before serving",
						EnvVars: []string{"AUTO_MIGRATE"},
					},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending database migrations and exit",
				Action: migrateUp,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfigAndLogger() (*config.AppConfig, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.NewLogger(cfg.Log.ServiceName, cfg.Log.Level), nil
}

func migrateUp(_ *cli.Context) error {
	cfg, zlog, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer zlog.Sync() //nolint:errcheck

	return db.RunMigrations(cfg.DB, zlog)
}

func serve(c *cli.Context) error {
	cfg, zlog, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer zlog.Sync() //nolint:errcheck

	if c.Bool("migrate") {
		if err := db.RunMigrations(cfg.DB, zlog); err != nil {
			return err
		}
	}

	pool, err := db.NewDBPool(cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	zlog.Info("Database pool ready", zap.String("host", cfg.DB.Host), zap.Int("max_conns", cfg.DB.MaxSize))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(reg)

	validate := validator.New()

	userStore := auth.NewPgUserStore(pool, zlog)
	authService := auth.NewService(userStore, *cfg.Auth, zlog)
	authHandlers := auth.NewHandlers(authService, validate, zlog)

	userService := users.NewUserService(userStore, zlog)
	userHandlers := users.NewUserHandlers(userService, zlog)

	itemStore := items.NewPgStore(pool, zlog)
	itemService := items.NewService(itemStore, zlog)
	itemHandlers := items.NewHandlers(itemService, validate, zlog)

	generator := summary.NewOllamaClient(cfg.Generation)
	summaryService := summary.NewService(itemStore, generator, *cfg.Generation, appMetrics, zlog)
	summaryHandlers := summary.NewHandlers(summaryService, zlog)

	router := server.NewRouter(server.Deps{
		Auth:            cfg.Auth,
		Log:             zlog,
		DB:              pool,
		Metrics:         appMetrics,
		Gatherer:        reg,
		AuthHandlers:    authHandlers,
		UserHandlers:    userHandlers,
		ItemHandlers:    itemHandlers,
		SummaryHandlers: summaryHandlers,
	})

	srv := server.NewHTTPServer(cfg.Server.Port, router, cfg.Generation.Timeout)

	serverErr := make(chan error, 1)
	go func() {
		zlog.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		zlog.Info("Server shutting down...", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Server shutdown failed", zap.Error(err))
		return err
	}
	zlog.Info("Server stopped gracefully")
	return nil
}
