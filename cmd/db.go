package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/barber-booking/internal/config"
	"github.com/m04kA/barber-booking/pkg/dbmetrics"
	"github.com/m04kA/barber-booking/pkg/logger"
	"github.com/m04kA/barber-booking/pkg/metrics"
)

// openDB подключается к PostgreSQL и оборачивает соединение сбором метрик.
// Если metricsCollector == nil, обёртка работает без метрик
func openDB(cfg *config.Config, log *logger.Logger, metricsCollector *metrics.Metrics, stopCh <-chan struct{}) (*sql.DB, *dbmetrics.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if metricsCollector == nil {
		return db, dbmetrics.Wrap(db, nil), nil
	}

	wrapped := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopCh)
	log.Info("Database metrics collection started")
	return db, wrapped, nil
}

// loadConfig загружает конфигурацию и создаёт логгер
func loadConfig(path string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Info("Configuration loaded from %s", path)
	return cfg, log, nil
}
