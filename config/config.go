package config

import (
	"flag"
	"fmt"
	"hoteldisplay/version"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the display server runtime configuration.
type Config struct {
	LogLevel    string
	LogFilePath string
	Host        string
	Port        int
	DatabaseURL string
	PublicDir   string
	ImagesDir   string

	// MaxBodyBytes caps JSON request bodies, uploads included.
	MaxBodyBytes int64

	SQLitePragmasEnabled bool
	SQLiteBusyTimeoutMS  int
	SQLiteJournalMode    string
	SQLiteSynchronous    string
	SQLiteMaxOpenConns   int
	SQLiteMaxIdleConns   int
	SQLiteConnMaxIdleSec int
	SQLiteConnMaxLifeSec int
}

// Settings is the global configuration instance populated from environment variables and flags.
var Settings *Config

func init() {
	Settings = Load()
}

// Load builds a Config from environment variables, falling back to defaults.
func Load() *Config {
	publicDir := getEnv("PUBLIC_DIR", "public")
	return &Config{
		LogLevel:             getEnv("LOG_LEVEL", "INFO"),
		LogFilePath:          getEnv("LOG_FILE", ""),
		Host:                 getEnv("HOST", "0.0.0.0"),
		Port:                 getEnvInt("PORT", 3000),
		DatabaseURL:          getEnv("DATABASE_URL", filepath.Join("data", "hotel.db")),
		PublicDir:            publicDir,
		ImagesDir:            getEnv("IMAGES_DIR", filepath.Join(publicDir, "images")),
		MaxBodyBytes:         int64(getEnvInt("MAX_BODY_BYTES", 10<<20)),
		SQLitePragmasEnabled: getEnvBool("SQLITE_PRAGMAS_ENABLED", true),
		SQLiteBusyTimeoutMS:  getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
		SQLiteJournalMode:    getEnv("SQLITE_JOURNAL_MODE", "WAL"),
		SQLiteSynchronous:    getEnv("SQLITE_SYNCHRONOUS", "NORMAL"),
		SQLiteMaxOpenConns:   getEnvInt("SQLITE_MAX_OPEN_CONNS", 1),
		SQLiteMaxIdleConns:   getEnvInt("SQLITE_MAX_IDLE_CONNS", 1),
		SQLiteConnMaxIdleSec: getEnvInt("SQLITE_CONN_MAX_IDLE_SECONDS", 300),
		SQLiteConnMaxLifeSec: getEnvInt("SQLITE_CONN_MAX_LIFETIME_SECONDS", 0),
	}
}

// ParseFlags loads an optional .env file, rebuilds Settings from the
// environment and applies command-line overrides. It handles --help and
// --version by printing and exiting.
func ParseFlags() {
	// A missing .env is the normal case; variables already set in the
	// environment take precedence over the file.
	_ = godotenv.Load()
	Settings = Load()

	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Hotel info display server\n\n")
		fmt.Fprintf(out, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
		fmt.Fprintln(out, "\nEnvironment variables:")
		fmt.Fprintln(out, "  PORT                              HTTP server port (default 3000)")
		fmt.Fprintln(out, "  HOST                              Bind address (default 0.0.0.0)")
		fmt.Fprintln(out, "  DATABASE_URL                      SQLite database path (default data/hotel.db)")
		fmt.Fprintln(out, "  PUBLIC_DIR                        Static files root (default public)")
		fmt.Fprintln(out, "  IMAGES_DIR                        Upload directory (default <PUBLIC_DIR>/images)")
		fmt.Fprintln(out, "  MAX_BODY_BYTES                    Maximum JSON body size (default 10485760)")
		fmt.Fprintln(out, "  LOG_LEVEL                         Log level (DEBUG, INFO, WARN, ERROR)")
		fmt.Fprintln(out, "  LOG_FILE                          Optional log file, rotated once on startup")
		fmt.Fprintln(out, "  SQLITE_PRAGMAS_ENABLED            Enable SQLite PRAGMAs (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_BUSY_TIMEOUT_MS            SQLite busy_timeout in milliseconds (default 5000)")
		fmt.Fprintln(out, "  SQLITE_JOURNAL_MODE               SQLite journal_mode (default WAL)")
		fmt.Fprintln(out, "  SQLITE_SYNCHRONOUS                SQLite synchronous (default NORMAL)")
		fmt.Fprintln(out, "  SQLITE_MAX_OPEN_CONNS             SQLite MaxOpenConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_MAX_IDLE_CONNS             SQLite MaxIdleConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_IDLE_SECONDS      SQLite ConnMaxIdleTime in seconds (default 300)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_LIFETIME_SECONDS  SQLite ConnMaxLifetime in seconds (default 0)")
		fmt.Fprintln(out, "\nA .env file in the working directory is read when present.")
	}

	port := flag.Int("port", Settings.Port, "HTTP server port (overrides PORT)")
	host := flag.String("host", Settings.Host, "Bind address (overrides HOST)")
	db := flag.String("db", Settings.DatabaseURL, "SQLite database path (overrides DATABASE_URL)")
	publicDir := flag.String("public", Settings.PublicDir, "Static files root (overrides PUBLIC_DIR)")
	imagesDir := flag.String("images", "", "Upload directory (overrides IMAGES_DIR)")
	maxBody := flag.Int64("max-body-bytes", Settings.MaxBodyBytes, "Maximum JSON body size in bytes (overrides MAX_BODY_BYTES)")
	logLevel := flag.String("log-level", Settings.LogLevel, "Log level: DEBUG, INFO, WARN, ERROR (overrides LOG_LEVEL)")
	logFile := flag.String("log-file", Settings.LogFilePath, "Log file path (overrides LOG_FILE)")
	sqlitePragmasEnabled := flag.Bool("sqlite-pragmas", Settings.SQLitePragmasEnabled, "Enable SQLite PRAGMAs (overrides SQLITE_PRAGMAS_ENABLED)")
	sqliteBusyTimeoutMS := flag.Int("sqlite-busy-timeout-ms", Settings.SQLiteBusyTimeoutMS, "SQLite busy_timeout in milliseconds (overrides SQLITE_BUSY_TIMEOUT_MS)")
	sqliteJournalMode := flag.String("sqlite-journal-mode", Settings.SQLiteJournalMode, "SQLite journal_mode (overrides SQLITE_JOURNAL_MODE)")
	sqliteSynchronous := flag.String("sqlite-synchronous", Settings.SQLiteSynchronous, "SQLite synchronous (overrides SQLITE_SYNCHRONOUS)")
	sqliteMaxOpenConns := flag.Int("sqlite-max-open-conns", Settings.SQLiteMaxOpenConns, "SQLite MaxOpenConns (overrides SQLITE_MAX_OPEN_CONNS)")
	sqliteMaxIdleConns := flag.Int("sqlite-max-idle-conns", Settings.SQLiteMaxIdleConns, "SQLite MaxIdleConns (overrides SQLITE_MAX_IDLE_CONNS)")

	showHelp := flag.Bool("help", false, "Show help and exit")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetBuildInfo())
		os.Exit(0)
	}

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// The images directory follows -public unless set explicitly.
	if *imagesDir != "" {
		Settings.ImagesDir = *imagesDir
	} else if *publicDir != Settings.PublicDir && os.Getenv("IMAGES_DIR") == "" {
		Settings.ImagesDir = filepath.Join(*publicDir, "images")
	}

	Settings.Port = *port
	Settings.Host = *host
	Settings.DatabaseURL = *db
	Settings.PublicDir = *publicDir
	Settings.MaxBodyBytes = *maxBody
	Settings.LogLevel = *logLevel
	Settings.LogFilePath = *logFile
	Settings.SQLitePragmasEnabled = *sqlitePragmasEnabled
	Settings.SQLiteBusyTimeoutMS = *sqliteBusyTimeoutMS
	Settings.SQLiteJournalMode = *sqliteJournalMode
	Settings.SQLiteSynchronous = *sqliteSynchronous
	Settings.SQLiteMaxOpenConns = *sqliteMaxOpenConns
	Settings.SQLiteMaxIdleConns = *sqliteMaxIdleConns
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug reports whether verbose logging was requested.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "DEBUG"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
