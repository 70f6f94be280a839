package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends.
const (
	BackendMemory    = "memory"
	BackendPostgREST = "postgrest"
	BackendPostgres  = "postgres"
)

// Edit session stores.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// DefaultEditPassword is the shared secret of the edit-mode gate when none
// is configured. The gate is a UI toggle, not a security boundary.
const DefaultEditPassword = "life2024"

// Server captures process level configuration.
type Server struct {
	Addr      string
	LogLevel  string
	LogFormat string
	Storage   StorageConfig
	Gateway   GatewayConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	EditMode  EditModeConfig
}

// StorageConfig picks the rowstore backend.
type StorageConfig struct {
	Backend string
}

// GatewayConfig addresses the hosted data API. Missing URL or key degrades
// every data operation to failure.
type GatewayConfig struct {
	URL             string
	APIKey          string
	BreakerFailures uint32
	BreakerCooldown time.Duration
}

// Configured reports whether both endpoint and key are present.
func (g GatewayConfig) Configured() bool {
	return g.URL != "" && g.APIKey != ""
}

// DatabaseConfig is used by the direct postgres backend.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig is used by the redis edit session store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// EditModeConfig configures the edit-mode gate.
type EditModeConfig struct {
	// Password is compared in plaintext unless PasswordHash is set.
	Password string
	// PasswordHash is a bcrypt hash; takes precedence over Password.
	PasswordHash string
	SessionStore string
	CookieSecure bool
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:      envOr("STRATA_ADDR", ":8080"),
		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogFormat: envOr("LOG_FORMAT", "json"),
		Storage: StorageConfig{
			Backend: strings.ToLower(envOr("STORAGE_BACKEND", BackendMemory)),
		},
		Gateway: GatewayConfig{
			URL:             strings.TrimSpace(os.Getenv("GATEWAY_URL")),
			APIKey:          strings.TrimSpace(os.Getenv("GATEWAY_API_KEY")),
			BreakerFailures: uint32(envInt("GATEWAY_BREAKER_FAILURES", 5)),
			BreakerCooldown: envDuration("GATEWAY_BREAKER_COOLDOWN", 30*time.Second),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    envInt("DATABASE_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    envInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		EditMode: EditModeConfig{
			Password:     envOr("EDIT_MODE_PASSWORD", DefaultEditPassword),
			PasswordHash: os.Getenv("EDIT_MODE_PASSWORD_HASH"),
			SessionStore: strings.ToLower(envOr("EDIT_SESSION_STORE", SessionStoreMemory)),
			CookieSecure: os.Getenv("EDIT_COOKIE_SECURE") == "true",
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
