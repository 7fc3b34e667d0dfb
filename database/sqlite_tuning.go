package database

import (
	"fmt"
	"hoteldisplay/config"
	"net/url"
	"strings"
)

// sqlitePoolConfig mirrors the database/sql pool knobs applied to the store.
// Durations are in seconds; zero disables the corresponding limit.
type sqlitePoolConfig struct {
	maxOpenConns int
	maxIdleConns int
	maxIdleSec   int
	maxLifeSec   int
}

// sanitizeSQLitePoolConfig returns cfg with its fields forced into usable bounds.
// maxOpenConns is at least 1, maxIdleConns is clamped to the range
// [0, maxOpenConns], and negative idle or lifetime durations are reset to 0
// (no limit).
func sanitizeSQLitePoolConfig(cfg sqlitePoolConfig) sqlitePoolConfig {
	if cfg.maxOpenConns < 1 {
		cfg.maxOpenConns = 1
	}
	if cfg.maxIdleConns < 0 {
		cfg.maxIdleConns = 0
	}
	if cfg.maxIdleConns > cfg.maxOpenConns {
		cfg.maxIdleConns = cfg.maxOpenConns
	}
	if cfg.maxIdleSec < 0 {
		cfg.maxIdleSec = 0
	}
	if cfg.maxLifeSec < 0 {
		cfg.maxLifeSec = 0
	}
	return cfg
}

// buildSQLiteDSN turns the configured database path into a DSN for the
// glebarez driver. When settings.SQLitePragmasEnabled is set it adds
// busy_timeout, journal_mode and synchronous as `_pragma` query parameters so
// that every pooled connection opens with them applied. Parameters already
// present on dbPath are kept. Invalid journal or synchronous values are
// dropped rather than passed through, and a path without any parameters is
// returned unchanged.
func buildSQLiteDSN(dbPath string, settings *config.Config) string {
	base, rawQuery, _ := strings.Cut(dbPath, "?")

	query, _ := url.ParseQuery(rawQuery)

	if settings.SQLitePragmasEnabled {
		if settings.SQLiteBusyTimeoutMS > 0 {
			query.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", settings.SQLiteBusyTimeoutMS))
		}
		if journalMode := normalizeSQLiteJournalMode(settings.SQLiteJournalMode); journalMode != "" {
			query.Add("_pragma", fmt.Sprintf("journal_mode(%s)", journalMode))
		}
		if synchronous := normalizeSQLiteSynchronous(settings.SQLiteSynchronous); synchronous != "" {
			query.Add("_pragma", fmt.Sprintf("synchronous(%s)", synchronous))
		}
	}

	if len(query) == 0 {
		return base
	}
	return base + "?" + query.Encode()
}

// currentSQLitePoolConfig reads the SQLite pool settings from settings
// (SQLiteMaxOpenConns, SQLiteMaxIdleConns, SQLiteConnMaxIdleSec and
// SQLiteConnMaxLifeSec) and returns them sanitized.
func currentSQLitePoolConfig(settings *config.Config) sqlitePoolConfig {
	return sanitizeSQLitePoolConfig(sqlitePoolConfig{
		maxOpenConns: settings.SQLiteMaxOpenConns,
		maxIdleConns: settings.SQLiteMaxIdleConns,
		maxIdleSec:   settings.SQLiteConnMaxIdleSec,
		maxLifeSec:   settings.SQLiteConnMaxLifeSec,
	})
}

// normalizeSQLiteJournalMode trims and uppercases value and returns it when it
// names a journal mode SQLite understands: WAL, DELETE, TRUNCATE, PERSIST,
// MEMORY or OFF. Anything else yields "", which callers treat as "leave the
// database default alone".
func normalizeSQLiteJournalMode(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	switch value {
	case "WAL", "DELETE", "TRUNCATE", "PERSIST", "MEMORY", "OFF":
		return value
	default:
		return ""
	}
}

// normalizeSQLiteSynchronous trims and uppercases value and returns it when it
// is a valid `synchronous` level, either by name (OFF, NORMAL, FULL, EXTRA) or
// by number (0 to 3). Anything else yields "".
func normalizeSQLiteSynchronous(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	switch value {
	case "OFF", "NORMAL", "FULL", "EXTRA", "0", "1", "2", "3":
		return value
	default:
		return ""
	}
}
