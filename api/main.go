package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/coffee-maker/internal/alert"
	"github.com/rogerio-castellano/coffee-maker/internal/auth"
	"github.com/rogerio-castellano/coffee-maker/internal/coffeemaker"
	"github.com/rogerio-castellano/coffee-maker/internal/config"
	"github.com/rogerio-castellano/coffee-maker/internal/db"
	"github.com/rogerio-castellano/coffee-maker/internal/http/handlers"
	rl "github.com/rogerio-castellano/coffee-maker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/coffee-maker/internal/http/router"
	"github.com/rogerio-castellano/coffee-maker/internal/logging"
	"github.com/rogerio-castellano/coffee-maker/internal/redissvc"
	"github.com/rogerio-castellano/coffee-maker/internal/repo"
	"github.com/rogerio-castellano/coffee-maker/internal/seed"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// @title Coffee Maker API
// @version 1.0
// @description REST API for a simulated coffee vending machine: recipes, inventory and purchases.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "coffee-maker:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("COFFEE_CONFIG"))
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auth.Configure(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	rl.SetLimits(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	var (
		saleRepo    repo.SaleRepository
		metricsRepo repo.MetricsRepository
		userRepo    repo.UserRepository
	)
	switch cfg.Storage {
	case config.StoragePostgres:
		database, err := openDatabase(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()

		saleRepo = repo.NewPostgresSaleRepository(database)
		metricsRepo = repo.NewPostgresMetricsRepository(database)
		userRepo = repo.NewPostgresUserRepository(database)
	default:
		sales := repo.NewInMemorySaleRepository()
		saleRepo = sales
		metricsRepo = repo.NewInMemoryMetricsRepository(sales)
		userRepo = repo.NewInMemoryUserRepository()
	}
	logger.Info("storage ready", zap.String("storage", cfg.Storage))

	var store alert.Store = alert.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rs, err := redissvc.Connect(context.Background(), cfg.RedisAddr)
		if err != nil {
			return err
		}
		defer rs.Close()
		store = alert.NewRedisStore(rs)
		logger.Info("alerts stored in redis", zap.String("addr", cfg.RedisAddr))
	}

	notifier := alert.NewNotifier(store, alert.SMTPConfig{
		From:         cfg.Alert.From,
		To:           cfg.Alert.To,
		Server:       cfg.Alert.SMTPServer,
		Port:         cfg.Alert.SMTPPort,
		User:         cfg.Alert.SMTPUser,
		Password:     cfg.Alert.SMTPPassword,
		AuthDisabled: cfg.Alert.SMTPAuthDisabled,
	}, logger)
	defer notifier.Wait()

	machine := coffeemaker.New(
		coffeemaker.WithLogger(logger),
		coffeemaker.WithSaleRepository(saleRepo),
		coffeemaker.WithLowStockNotifier(notifier, cfg.Alert.LowStockThreshold),
	)

	if cfg.RecipesFile != "" {
		entries, err := seed.LoadFile(cfg.RecipesFile)
		if err != nil {
			return err
		}
		seed.Apply(machine, entries, logger.With(zap.String("file", cfg.RecipesFile)))
	}

	if cfg.Auth.AdminPassword != "" {
		created, err := auth.EnsureAdmin(userRepo, cfg.Auth.AdminUser, cfg.Auth.AdminPassword)
		if err != nil {
			return fmt.Errorf("could not bootstrap admin user: %w", err)
		}
		if created {
			logger.Info("admin user created", zap.String("username", cfg.Auth.AdminUser))
		}
	}

	handlers.SetCoffeeMaker(machine)
	handlers.SetSaleRepo(saleRepo)
	handlers.SetMetricsRepo(metricsRepo)
	handlers.SetUserRepo(userRepo)
	handlers.SetLogger(logger)
	handlers.SetLowStockThreshold(cfg.Alert.LowStockThreshold)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.NewRouter(logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server running", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return notifier.StartDailySummary(gctx)
	})
	g.Go(func() error {
		return rl.StartVisitorCleanupLoop(gctx)
	})

	return g.Wait()
}

func openDatabase(url string) (*sql.DB, error) {
	database, err := db.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	if err := db.Migrate(database); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
