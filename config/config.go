package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	ServiceName string
	Environment string
	LoggerLevel string

	HTTPPort int

	DatabaseURL      string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	PostgresMaxConns int32
	MigrationsPath   string

	// FirebaseCredentials holds the service account JSON, raw or base64-encoded.
	FirebaseCredentials string
	FirebaseProjectID   string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "driverapp"))
	cfg.Environment = cast.ToString(getOrReturnDefault("ENVIRONMENT", EnvDevelopment))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))

	// PORT is what most PaaS hosts inject; HTTP_PORT wins when both are set.
	cfg.HTTPPort = cast.ToInt(getOrReturnDefault("HTTP_PORT", getOrReturnDefault("PORT", 5000)))

	cfg.DatabaseURL = cast.ToString(getOrReturnDefault("DATABASE_URL", ""))
	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "1234"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "driverapp"))
	cfg.PostgresSSLMode = cast.ToString(getOrReturnDefault("POSTGRES_SSLMODE", "disable"))
	cfg.PostgresMaxConns = cast.ToInt32(getOrReturnDefault("POSTGRES_MAX_CONNS", 0))
	cfg.MigrationsPath = cast.ToString(getOrReturnDefault("MIGRATIONS_PATH", "migrations"))

	cfg.FirebaseCredentials = cast.ToString(getOrReturnDefault("FIREBASE_CREDENTIALS", ""))
	cfg.FirebaseProjectID = cast.ToString(getOrReturnDefault("FIREBASE_PROJECT_ID", ""))

	return cfg
}

// PostgresURL returns DATABASE_URL when set, otherwise a URL built from the POSTGRES_* parts.
func (c Config) PostgresURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
		c.PostgresSSLMode,
	)
}

func (c Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
