// Package repo implements the read-only analytics queries over the companion
// app's relational store, backed by GORM. This file contains database
// bootstrapping for PostgreSQL (production) and SQLite (local development and
// tests).
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/companion-insights/internal/config"
	"github.com/tbourn/companion-insights/internal/domain"
)

// sqliteParams are applied by the driver to every pooled connection.
// _time_format stores time.Time as "2006-01-02 15:04:05.999999999-07:00",
// which SQLite date functions parse.
var sqliteParams = []string{
	"_time_format=sqlite",
	"_pragma=busy_timeout(5000)",
	"_pragma=journal_mode(WAL)",
	"_pragma=synchronous(NORMAL)",
}

// pgSession are startup parameters every postgres session gets unless the
// DSN sets them: UTC rendering and read-only transactions.
var pgSession = [][2]string{
	{"TimeZone", "UTC"},
	{"default_transaction_read_only", "on"},
}

// Open connects to the store selected by cfg.Driver, tunes the pool, and
// installs SQL tracing. It never migrates unless cfg.AutoMigrate is set and
// the driver is sqlite.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "postgres":
		db, err = OpenPostgres(cfg.URL)
	case "sqlite":
		// Only a database we are allowed to migrate is opened writable.
		db, err = openSQLite(cfg.Path, !cfg.AutoMigrate)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, fmt.Errorf("install tracing plugin: %w", err)
	}

	if cfg.AutoMigrate {
		if cfg.Driver != "sqlite" {
			log.Warn().Str("driver", cfg.Driver).Msg("DB_AUTO_MIGRATE ignored: schema is owned by the companion app")
		} else if err := AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("automigrate: %w", err)
		}
	}
	return db, nil
}

// OpenPostgres opens the production store with read-only UTC sessions.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(pgDSN(dsn)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// OpenSQLite opens (or creates) a writable SQLite database. Tests and the
// local seeding path use it directly.
func OpenSQLite(path string) (*gorm.DB, error) {
	return openSQLite(path, false)
}

func openSQLite(path string, readOnly bool) (*gorm.DB, error) {
	// A missing parent directory otherwise surfaces as a cryptic driver error.
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("sqlite path: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(path, readOnly)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}
	return db, nil
}

// AutoMigrate creates the companion tables in a local development database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(domain.All()...)
}

// pgDSN adds every pgSession parameter the DSN does not already set, in URL
// or key/value form.
func pgDSN(dsn string) string {
	out := strings.TrimSpace(dsn)
	isURL := strings.HasPrefix(out, "postgres://") || strings.HasPrefix(out, "postgresql://")
	lower := strings.ToLower(out)
	for _, kv := range pgSession {
		if strings.Contains(lower, strings.ToLower(kv[0])+"=") {
			continue
		}
		param := kv[0] + "=" + kv[1]
		switch {
		case isURL && strings.Contains(out, "?"):
			out += "&" + param
		case isURL:
			out += "?" + param
		case out == "":
			out = param
		default:
			out += " " + param
		}
	}
	return out
}

// sqliteDSN appends sqliteParams to a path or URI; readOnly adds query_only.
func sqliteDSN(path string, readOnly bool) string {
	params := sqliteParams
	if readOnly {
		params = append(params[:len(params):len(params)], "_pragma=query_only(1)")
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}
