package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort          string
	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	SQLitePath        string
	RedisURL          string
	DraftTTL          time.Duration
	OrderBoardRefresh string
	OrderBoardTTL     time.Duration
	LogLevel          slog.Level
	AutoMigrate       bool
}

// LoadConfig reads the environment. A .env file in the working directory is
// loaded first when present; variables already set win over it.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	draftTTL, err := getEnvAsInt("DRAFT_TTL_MINUTES", 120)
	if err != nil {
		return Config{}, err
	}
	boardTTL, err := getEnvAsInt("ORDER_BOARD_TTL_SECONDS", 60)
	if err != nil {
		return Config{}, err
	}
	autoMigrate, err := strconv.ParseBool(getEnv("AUTO_MIGRATE", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("AUTO_MIGRATE: %w", err)
	}
	var level slog.Level
	if err = level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	config := Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", DBDriverPostgres)),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "backoffice"),
		DBSslMode:         getEnv("DB_SSLMODE", "disable"),
		SQLitePath:        getEnv("SQLITE_PATH", "backoffice.db"),
		RedisURL:          getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DraftTTL:          time.Duration(draftTTL) * time.Minute,
		OrderBoardRefresh: getEnv("ORDER_BOARD_REFRESH", "@every 10s"),
		OrderBoardTTL:     time.Duration(boardTTL) * time.Second,
		LogLevel:          level,
		AutoMigrate:       autoMigrate,
	}

	if config.DBDriver != DBDriverPostgres && config.DBDriver != DBDriverSQLite {
		return Config{}, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DBDriverPostgres, DBDriverSQLite, config.DBDriver)
	}
	return config, nil
}

// PostgresDSN builds the keyword/value connection string of lib/pq and pgx.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, value)
	}
	return value, nil
}
