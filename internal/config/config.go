package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	Port       string

	DBType            string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	DatabaseURL       string
	DBPath            string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBMigrate         bool

	QueryTimeout       time.Duration
	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string
}

func Default() Config {
	return Config{
		ListenAddr:         ":5000",
		Port:               "5000",
		DBType:             "postgres",
		DBHost:             "localhost",
		DBPort:             "5432",
		DBUser:             "postgres",
		DBName:             "lotto",
		DBSSLMode:          "disable",
		DBPath:             "lottostats.db",
		DBMaxOpenConns:     10,
		DBMaxIdleConns:     5,
		DBConnMaxLifetime:  30 * time.Minute,
		QueryTimeout:       5 * time.Second,
		CORSAllowedOrigins: []string{"*"},
		LogLevel:           "info",
		LogFormat:          "text",
	}
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first; variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
		cfg.ListenAddr = ":" + port
	}
	if listen := os.Getenv("LISTEN_ADDR"); listen != "" {
		cfg.ListenAddr = listen
	}

	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		switch dbType {
		case "postgres", "sqlite":
			cfg.DBType = dbType
		default:
			return nil, fmt.Errorf("DB_TYPE must be postgres or sqlite, got %q", dbType)
		}
	}

	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBPort, "DB_PORT")
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD")
	setString(&cfg.DBName, "DB_DATABASE")
	setString(&cfg.DBSSLMode, "DB_SSLMODE")
	setString(&cfg.DatabaseURL, "DATABASE_URL")
	setString(&cfg.DBPath, "DB_PATH")

	if err := setInt(&cfg.DBMaxOpenConns, "DB_MAX_OPEN_CONNS"); err != nil {
		return nil, err
	}
	if err := setInt(&cfg.DBMaxIdleConns, "DB_MAX_IDLE_CONNS"); err != nil {
		return nil, err
	}
	if err := setDuration(&cfg.DBConnMaxLifetime, "DB_CONN_MAX_LIFETIME"); err != nil {
		return nil, err
	}
	if err := setDuration(&cfg.QueryTimeout, "QUERY_TIMEOUT"); err != nil {
		return nil, err
	}

	if os.Getenv("DB_MIGRATE") == "true" {
		cfg.DBMigrate = true
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	setString(&cfg.LogLevel, "LOG_LEVEL")
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		if format != "text" && format != "json" {
			return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", format)
		}
		cfg.LogFormat = format
	}

	return &cfg, nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fmt.Errorf("%s must be a non-negative integer, got %q", key, v)
	}
	*dst = n
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fmt.Errorf("%s must be a positive duration, got %q", key, v)
	}
	*dst = d
	return nil
}
