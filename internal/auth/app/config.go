package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/credhaus/credhaus/pkg/jwtx"
)

type Config struct {
	JWTSecret  []byte        // Required: HMAC signing secret (min 32 bytes)
	Algorithm  string        // Required: JWT signing algorithm (HS256, HS384, HS512)
	AccessTTL  time.Duration // Required: access token lifetime
	RefreshTTL time.Duration // Required: refresh token lifetime

	Issuer              string        // Optional: issuer claim for tokens (default: credhaus)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./auth.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment. The signing secret,
// algorithm and token lifetimes have no safe defaults and must be set; the
// service refuses to start without them.
func LoadConfig() (Config, error) {
	cfg := Config{
		Issuer:              getEnvOrDefault("AUTH_ISSUER", "credhaus"),
		DatabaseFile:        getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		PepperFile:          getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	if len(secret) < jwtx.MinSecretBytes {
		return Config{}, fmt.Errorf("AUTH_JWT_SECRET must be at least %d bytes", jwtx.MinSecretBytes)
	}
	cfg.JWTSecret = []byte(secret)

	cfg.Algorithm = os.Getenv("AUTH_JWT_ALGORITHM")
	if cfg.Algorithm == "" {
		return Config{}, fmt.Errorf("AUTH_JWT_ALGORITHM is required (one of %s)",
			strings.Join(jwtx.SupportedAlgorithms(), ", "))
	}
	if !jwtx.IsSupportedAlgorithm(cfg.Algorithm) {
		return Config{}, fmt.Errorf("AUTH_JWT_ALGORITHM %q is not supported (one of %s)",
			cfg.Algorithm, strings.Join(jwtx.SupportedAlgorithms(), ", "))
	}

	var err error
	if cfg.AccessTTL, err = requireEnvDuration("AUTH_ACCESS_TOKEN_TTL"); err != nil {
		return Config{}, err
	}
	if cfg.RefreshTTL, err = requireEnvDuration("AUTH_REFRESH_TOKEN_TTL"); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func requireEnvDuration(key string) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, fmt.Errorf("%s is required", key)
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, value)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %q", key, value)
	}

	return d, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
