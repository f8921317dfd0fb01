package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/scribe/pkg/cryptox"
	"github.com/joho/godotenv"
)

// minSecretLength is the shortest JWT_SECRET accepted outside dev.
const minSecretLength = 32

// insecureSecrets are placeholder values that must never sign real tokens.
var insecureSecrets = map[string]struct{}{
	"secret":          {},
	"changeme":        {},
	"change-me":       {},
	"your-secret-key": {},
	"jwt-secret":      {},
	"supersecret":     {},
	"password":        {},
}

var (
	ErrMissingSecret  = errors.New("JWT_SECRET is required outside dev")
	ErrInsecureSecret = errors.New("JWT_SECRET is a well-known placeholder")
	ErrShortSecret    = fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretLength)
)

type Config struct {
	DatabaseURL string        // postgres:// URL, SQLite file path or :memory: (default: scribe.db)
	JWTSecret   string        // HS256 shared secret, required outside dev
	Issuer      string        // iss claim (default: scribe)
	TokenTTL    time.Duration // access token lifetime (default: 24h)
	PepperFile  string        // Optional: password pepper file, generated when missing

	Env                 string        // Environment (dev, test, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Host                string        // HTTP bind host (default: all interfaces)
	Port                int           // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	RequestTimeout      time.Duration // Per-request context deadline (default: 15s)
	CORSAllowedOrigins  []string      // Allowed CORS origins (default: *)
	MetricsEnabled      bool          // Serve /metrics (default: true)

	// generatedSecret is set when Validate filled in an ephemeral dev secret.
	generatedSecret bool
}

// LoadConfig reads the environment, loading a .env file first if present.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DatabaseURL:         getEnvOrDefault("DATABASE_URL", "scribe.db"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		Issuer:              getEnvOrDefault("JWT_ISSUER", "scribe"),
		TokenTTL:            getEnvDurationOrDefault("TOKEN_TTL", 24*time.Hour),
		PepperFile:          os.Getenv("PEPPER_FILE"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Host:                os.Getenv("HOST"),
		Port:                getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		RequestTimeout:      getEnvDurationOrDefault("REQUEST_TIMEOUT", 15*time.Second),
		CORSAllowedOrigins:  getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MetricsEnabled:      getEnvBoolOrDefault("METRICS_ENABLED", true),
	}
}

// Validate checks the JWT secret. In dev an empty secret is replaced with a
// random one, which invalidates every token on restart.
func (c *Config) Validate() error {
	isDev := c.Env == "dev"

	if c.JWTSecret == "" {
		if !isDev {
			return ErrMissingSecret
		}
		secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("generate dev secret: %w", err)
		}
		c.JWTSecret = secret
		c.generatedSecret = true
		return nil
	}

	if isDev {
		return nil
	}

	if _, ok := insecureSecrets[strings.ToLower(c.JWTSecret)]; ok {
		return ErrInsecureSecret
	}
	if len(c.JWTSecret) < minSecretLength {
		return ErrShortSecret
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
