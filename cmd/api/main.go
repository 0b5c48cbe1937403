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

	"jewelry-inventory-api/internal/activity"
	"jewelry-inventory-api/internal/config"
	"jewelry-inventory-api/internal/handler"
	"jewelry-inventory-api/internal/metrics"
	"jewelry-inventory-api/internal/query"
	"jewelry-inventory-api/internal/repository"
	"jewelry-inventory-api/internal/router"
	"jewelry-inventory-api/internal/service"
	"jewelry-inventory-api/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := logger.New(cfg.App.Environment)
	defer log.Sync()

	log.Info("starting inventory API",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	// Open the inventory database; main owns its lifecycle
	db, dialect, err := openInventoryDB(cfg.InventoryDB)
	if err != nil {
		log.Fatal("failed to open inventory database",
			zap.String("type", cfg.InventoryDB.Type), zap.Error(err))
	}
	defer db.Close()
	log.Info("inventory database initialized",
		zap.String("type", cfg.InventoryDB.Type), zap.String("dialect", dialect.String()))

	builder := query.NewBuilder(dialect)
	inventoryRepo := repository.NewSQLInventoryRepository(db, builder, log)
	inventoryService := service.NewInventoryService(inventoryRepo, builder)

	// Activity sinks. Log and memory are always on; Redis and Kafka are
	// optional and only warn when unavailable.
	memorySink := activity.NewMemorySink(cfg.Activity.MemorySize)
	sinks := []activity.Sink{activity.NewLogSink(log), memorySink}

	var redisSink *activity.RedisSink
	if cfg.Activity.RedisEnabled {
		redisSink, err = activity.NewRedisSink(activity.RedisSinkConfig{
			Addr:       cfg.Activity.RedisAddress(),
			Password:   cfg.Activity.RedisPassword,
			DB:         cfg.Activity.RedisDB,
			Key:        cfg.Activity.RedisKey,
			MaxEntries: cfg.Activity.RedisMaxEntries,
		})
		if err != nil {
			log.Warn("redis activity sink disabled", zap.Error(err))
			redisSink = nil
		} else {
			sinks = append(sinks, redisSink)
			log.Info("redis activity sink initialized", zap.String("addr", cfg.Activity.RedisAddress()))
		}
	}

	if cfg.Activity.KafkaEnabled() {
		kafkaSink, err := activity.NewKafkaSink(cfg.Activity.KafkaBrokers, cfg.Activity.KafkaTopic, log)
		if err != nil {
			log.Warn("kafka activity sink disabled", zap.Error(err))
		} else {
			sinks = append(sinks, kafkaSink)
			log.Info("kafka activity sink initialized",
				zap.Strings("brokers", cfg.Activity.KafkaBrokers), zap.String("topic", cfg.Activity.KafkaTopic))
		}
	}

	reporter := activity.NewReporter(log, cfg.Activity.QueueSize, sinks...)

	// Initialize handlers
	routerCfg := router.Config{
		Logger:           log,
		Handler:          handler.New(inventoryService, cfg.App.Name, cfg.App.Version),
		InventoryHandler: handler.NewInventoryHandler(inventoryService, log),
		StatsHandler: handler.NewStatsHandler(handler.StatsConfig{
			Inventory: inventoryService,
			DBType:    cfg.InventoryDB.Type,
			Memory:    memorySink,
			Redis:     redisSink,
			Sinks:     reporter.Sinks(),
		}),
		ActivityHandler: handler.NewActivityHandler(memorySink),
		Activity:        reporter,
	}
	if cfg.Metrics.Enabled {
		routerCfg.MetricsHandler = metrics.Handler()
		routerCfg.MetricsPath = cfg.Metrics.Path
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.New(routerCfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("addr", cfg.Server.Address()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}

	// Sinks close after the server so queued reports are still delivered
	if err := reporter.Close(); err != nil {
		log.Warn("activity sink close error", zap.Error(err))
	}

	log.Info("server stopped")
}

// openInventoryDB opens the configured backend and returns the matching
// placeholder dialect.
func openInventoryDB(cfg config.InventoryDBConfig) (*sql.DB, query.Dialect, error) {
	pool := repository.PoolConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	}

	switch cfg.Type {
	case config.DBTypePostgres:
		db, err := repository.OpenPostgres(repository.DriverPQ, cfg.PostgresDSN(), pool)
		return db, query.Postgres, err
	case config.DBTypePgx:
		db, err := repository.OpenPostgres(repository.DriverPgx, cfg.PostgresDSN(), pool)
		return db, query.Postgres, err
	case config.DBTypeMySQL:
		db, err := repository.OpenMySQL(cfg.MySQLDSN(), pool)
		return db, query.MySQL, err
	case config.DBTypeSQLite:
		db, err := repository.OpenSQLite(cfg.Path, pool)
		return db, query.SQLite, err
	default:
		return nil, query.SQLite, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}
