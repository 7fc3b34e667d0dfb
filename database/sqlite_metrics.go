package database

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Process-wide counters of contention errors seen by the store, reported by
// /api/health.
var sqliteBusyErrors uint64
var sqliteLockedErrors uint64

// classifySQLiteError reports whether err looks like SQLITE_BUSY or
// SQLITE_LOCKED. The pure-Go driver only surfaces these as message text, so
// the check matches on the lowercased error string. Context cancellation and
// deadlines are never counted.
func classifySQLiteError(err error) (busy bool, locked bool) {
	if err == nil {
		return false, false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false, false
	}

	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "sqlite_busy") || strings.Contains(msg, "database is locked") || strings.Contains(msg, "busy timeout") {
		busy = true
	}
	if strings.Contains(msg, "sqlite_locked") || strings.Contains(msg, "database table is locked") {
		locked = true
	}

	return busy, locked
}

// recordSQLiteError bumps the busy and locked counters that apply to err.
func recordSQLiteError(err error) {
	busy, locked := classifySQLiteError(err)
	if busy {
		atomic.AddUint64(&sqliteBusyErrors, 1)
	}
	if locked {
		atomic.AddUint64(&sqliteLockedErrors, 1)
	}
}

// SQLiteBusyErrorsTotal returns how many busy errors were observed since start.
func SQLiteBusyErrorsTotal() uint64 {
	return atomic.LoadUint64(&sqliteBusyErrors)
}

// SQLiteLockedErrorsTotal returns how many locked errors were observed since start.
func SQLiteLockedErrorsTotal() uint64 {
	return atomic.LoadUint64(&sqliteLockedErrors)
}

// SQLiteUp reports whether db answers a ping. A nil handle, or one whose
// underlying *sql.DB cannot be obtained, counts as down. When ctx carries no
// usable deadline the ping is bounded to 200ms.
func SQLiteUp(ctx context.Context, db *gorm.DB) bool {
	if db == nil {
		return false
	}

	sqlDB, err := db.DB()
	if err != nil {
		return false
	}

	if deadline, ok := ctx.Deadline(); !ok || time.Until(deadline) <= 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 200*time.Millisecond)
		defer cancel()
	}

	return sqlDB.PingContext(ctx) == nil
}

// sqliteMetricsLogger wraps the gorm logger so every traced statement that
// fails feeds the busy/locked counters. Logging itself is delegated unchanged
// to inner, including the configured log level.
type sqliteMetricsLogger struct {
	inner logger.Interface
}

func (l sqliteMetricsLogger) LogMode(level logger.LogLevel) logger.Interface {
	return sqliteMetricsLogger{inner: l.inner.LogMode(level)}
}

func (l sqliteMetricsLogger) Info(ctx context.Context, s string, args ...interface{}) {
	l.inner.Info(ctx, s, args...)
}

func (l sqliteMetricsLogger) Warn(ctx context.Context, s string, args ...interface{}) {
	l.inner.Warn(ctx, s, args...)
}

func (l sqliteMetricsLogger) Error(ctx context.Context, s string, args ...interface{}) {
	l.inner.Error(ctx, s, args...)
}

func (l sqliteMetricsLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err != nil {
		recordSQLiteError(err)
	}
	l.inner.Trace(ctx, begin, fc, err)
}
