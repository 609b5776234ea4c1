// Package migrations применяет SQL-схему сервиса. Файлы *.up.sql встроены в бинарник
// и применяются по порядку имён; применённые версии хранятся в schema_migrations
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.sql
var files embed.FS

const upSuffix = ".up.sql"

var (
	// ErrReadMigrations не удалось прочитать встроенные файлы
	ErrReadMigrations = errors.New("migrations: failed to read files")

	// ErrApply ошибка применения миграции
	ErrApply = errors.New("migrations: failed to apply")
)

// DB минимальный набор методов для применения миграций (реализуется *sql.DB и *dbmetrics.DB)
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Versions список up-миграций по порядку
func Versions() ([]string, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}

	var versions []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), upSuffix) {
			versions = append(versions, e.Name())
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// Up применяет все ещё не применённые миграции. Возвращает число применённых
func Up(ctx context.Context, db DB, log Logger) (int, error) {
	versions, err := Versions()
	if err != nil {
		return 0, err
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)`); err != nil {
		return 0, fmt.Errorf("%w: schema_migrations: %v", ErrApply, err)
	}

	applied := 0
	for _, version := range versions {
		var exists bool
		if err := db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists); err != nil {
			return applied, fmt.Errorf("%w: check %s: %v", ErrApply, version, err)
		}
		if exists {
			continue
		}

		body, err := files.ReadFile(version)
		if err != nil {
			return applied, fmt.Errorf("%w: %v", ErrReadMigrations, err)
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return applied, fmt.Errorf("%w: %s: %v", ErrApply, version, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return applied, fmt.Errorf("%w: record %s: %v", ErrApply, version, err)
		}

		log.Info("Migration applied: %s", version)
		applied++
	}
	return applied, nil
}
