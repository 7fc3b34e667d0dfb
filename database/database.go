package database

import (
	"fmt"
	"hoteldisplay/config"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens the SQLite store described by cfg, configures the connection
// pool and PRAGMAs, and returns the handle. The caller owns it and must
// release it with Close. Schema and seed data are applied by Init.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if err := ensureParentDir(cfg.DatabaseURL); err != nil {
		return nil, err
	}

	// Configure GORM log level
	logLevel := logger.Silent
	if cfg.IsDebug() {
		logLevel = logger.Info
	}

	dsn := buildSQLiteDSN(cfg.DatabaseURL, cfg)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: sqliteMetricsLogger{inner: logger.New(
			log.New(log.Writer(), "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logLevel,
				IgnoreRecordNotFoundError: true,
			},
		)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Get underlying SQL DB and configure the connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}

	pool := currentSQLitePoolConfig(cfg)
	sqlDB.SetMaxIdleConns(pool.maxIdleConns)
	sqlDB.SetMaxOpenConns(pool.maxOpenConns)
	sqlDB.SetConnMaxIdleTime(time.Duration(pool.maxIdleSec) * time.Second)
	sqlDB.SetConnMaxLifetime(time.Duration(pool.maxLifeSec) * time.Second)

	// Best-effort for database files created before the DSN carried PRAGMAs.
	if cfg.SQLitePragmasEnabled {
		if cfg.SQLiteBusyTimeoutMS > 0 {
			db.Exec("PRAGMA busy_timeout = ?", cfg.SQLiteBusyTimeoutMS)
		}
		if journalMode := normalizeSQLiteJournalMode(cfg.SQLiteJournalMode); journalMode != "" {
			db.Exec("PRAGMA journal_mode = " + journalMode)
		}
		if synchronous := normalizeSQLiteSynchronous(cfg.SQLiteSynchronous); synchronous != "" {
			db.Exec("PRAGMA synchronous = " + synchronous)
		}
	}

	return db, nil
}

// Init creates the schema, applies additive migrations and seeds defaults.
// It is safe to call on every startup.
func Init(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return err
	}
	if err := Seed(db); err != nil {
		return err
	}
	log.Println("Database initialized successfully")
	return nil
}

// Close closes the database connection and releases resources
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	log.Println("Closing database connection...")
	return sqlDB.Close()
}

// ensureParentDir creates the directory holding a file-backed database.
func ensureParentDir(dsn string) error {
	path, _, _ := strings.Cut(dsn, "?")
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}
	return nil
}
