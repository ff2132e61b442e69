package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	SQLite SQLiteConfig
	Admin  AdminConfig
	Report ReportConfig
}

type ServerConfig struct {
	AppEnv string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SQLiteConfig struct {
	Path          string
	JournalMode   string
	BusyTimeoutMS int
	MaxOpenConns  int
}

// AdminConfig seeds the placeholder super-admin on first launch only.
type AdminConfig struct {
	Username        string
	DefaultPassword string
}

type ReportConfig struct {
	LowStockThreshold int64
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "json"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		SQLite: SQLiteConfig{
			Path:          getEnv("SQLITE_PATH", defaultDBPath()),
			JournalMode:   getEnv("SQLITE_JOURNAL_MODE", "WAL"),
			BusyTimeoutMS: getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
			MaxOpenConns:  getEnvInt("SQLITE_MAX_OPEN_CONNS", 1),
		},
		Admin: AdminConfig{
			Username:        getEnv("ADMIN_USERNAME", "admin"),
			DefaultPassword: getEnv("ADMIN_DEFAULT_PASSWORD", "change-me-on-first-login"),
		},
		Report: ReportConfig{
			LowStockThreshold: int64(getEnvInt("REPORT_LOW_STOCK_THRESHOLD", 5)),
		},
	}
}

// defaultDBPath puts the store under the per-user application data directory,
// falling back to the working directory when the OS does not report one.
func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "ledger.db"
	}
	return filepath.Join(dir, "omnipos-ledger", "ledger.db")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
