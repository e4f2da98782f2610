// Package config loads the service configuration from environment variables.
// Required variables, defaults and parse failures are all checked in one pass so that a
// misconfigured deployment reports every problem at once instead of one per restart.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/user/inventory-go/apperror"
)

// DatabaseConfig describes the PostgreSQL connection pool.
type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	MaxSize        int
	MigrationsPath string
}

// DSN returns a postgres:// URL usable by both pgx and golang-migrate.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName,
	)
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret           string        // Secret key for signing JWTs
	AccessTokenDuration time.Duration // Lifetime of tokens issued at login
	BcryptCost          int
	ProtectInventory    bool // Require a bearer token on /api/items and /api/summary
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string
}

// LogConfig selects the logger's service name and level.
type LogConfig struct {
	ServiceName string
	Level       string
}

// GenerationConfig points at the text-generation service used by the summary endpoint.
type GenerationConfig struct {
	URL            string
	Model          string
	Timeout        time.Duration
	CurrencySymbol string
	// CurrencyName is how the prompt names the currency, e.g. "Philippine pesos".
	CurrencyName string
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB         *DatabaseConfig
	Auth       *AuthConfig
	Server     *ServerConfig
	Log        *LogConfig
	Generation *GenerationConfig
}

const (
	defaultGenerationURL   = "http://localhost:11434/api/generate"
	defaultGenerationModel = "deepseek-r1:1.5b"
	defaultCurrencySymbol  = "₱"
	defaultCurrencyName    = "Philippine pesos"
)

func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvBool(key string, defaultValue bool, errors *[]string) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected boolean, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueBool
}

// `time.ParseDuration` expects a string like "15m", "1h30s".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool between 5 and 100 connections.
func clampPoolSize(size int) int {
	if size < 5 {
		return 5
	}
	if size > 100 {
		return 100
	}
	return size
}

// LoadConfig creates an AppConfig from the environment. All errors encountered are
// returned together as a single error.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	dbConfig := &DatabaseConfig{
		User:           getRequiredEnv("DB_USER", &errors),
		Password:       getRequiredEnv("DB_PASSWORD", &errors),
		DBName:         getRequiredEnv("DB_NAME", &errors),
		Host:           getOptionalEnv("DB_HOST", "localhost"),
		Port:           getOptionalEnvInt("DB_PORT", 5432, &errors),
		MaxSize:        clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errors)),
		MigrationsPath: getOptionalEnv("MIGRATIONS_PATH", "./migrations"),
	}

	authConfig := &AuthConfig{
		JWTSecret:           getRequiredEnv("JWT_SECRET", &errors),
		AccessTokenDuration: getOptionalEnvDuration("JWT_ACCESS_TOKEN_DURATION", 6*time.Hour, &errors),
		BcryptCost:          getOptionalEnvInt("AUTH_BCRYPT_COST", 10, &errors),
		ProtectInventory:    getOptionalEnvBool("AUTH_PROTECT_INVENTORY", false, &errors),
	}
	if authConfig.BcryptCost < 4 || authConfig.BcryptCost > 31 {
		errors = append(errors, fmt.Sprintf("AUTH_BCRYPT_COST must be between 4 and 31, got %d", authConfig.BcryptCost))
	}

	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", "8080"),
	}

	logConfig := &LogConfig{
		ServiceName: getOptionalEnv("SERVICE_NAME", "inventory"),
		Level:       strings.ToLower(getOptionalEnv("LOG_LEVEL", "info")),
	}

	generationConfig := &GenerationConfig{
		URL:            getOptionalEnv("GENERATION_URL", defaultGenerationURL),
		Model:          getOptionalEnv("GENERATION_MODEL", defaultGenerationModel),
		Timeout:        getOptionalEnvDuration("GENERATION_TIMEOUT", 120*time.Second, &errors),
		CurrencySymbol: getOptionalEnv("CURRENCY_SYMBOL", defaultCurrencySymbol),
		CurrencyName:   getOptionalEnv("CURRENCY_NAME", defaultCurrencyName),
	}

	if len(errors) > 0 {
		return nil, apperror.NewConfigError("invalid configuration",
			fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- ")))
	}

	return &AppConfig{
		DB:         dbConfig,
		Auth:       authConfig,
		Server:     serverConfig,
		Log:        logConfig,
		Generation: generationConfig,
	}, nil
}
