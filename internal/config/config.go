package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported values for DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// defaultJWTSecret is only acceptable when APP_ENV is development.
const defaultJWTSecret = "dev-secret"

// Config aggregates runtime configuration for the bot and its HTTP surface.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Bot      BotConfig
	Auth     AuthConfig
}

// AppConfig carries process identity.
type AppConfig struct {
	Name    string
	Env     string
	Version string
}

// HTTPConfig controls the query server.
type HTTPConfig struct {
	Host                  string
	Port                  string
	RequestTimeoutSeconds int
}

// DatabaseConfig holds relational store connection values.
type DatabaseConfig struct {
	Driver         string
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds lookup cache connection values. An empty Addr disables the cache.
type RedisConfig struct {
	Addr             string
	Password         string
	DB               int
	LookupTTLSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// BotConfig holds gateway credentials and command dispatch settings.
type BotConfig struct {
	Token          string
	ApplicationID  string
	GuildID        string
	DevPrefix      string
	DeveloperIDs   []string
	EnforceDevOnly bool
	AuditChannelID string
}

// AuthConfig defines bearer token parameters for the query routes.
type AuthConfig struct {
	JWTSecret       string
	TokenTTLMinutes int
}

// Load reads configuration from the environment (and an optional .env file),
// applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "staff-bot"),
			Env:     getEnv("APP_ENV", "development"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		HTTP: HTTPConfig{
			Host:                  getEnv("HTTP_HOST", "0.0.0.0"),
			Port:                  getEnv("HTTP_PORT", "3000"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Database: DatabaseConfig{
			Driver:         strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			DSN:            os.Getenv("DB_DSN"),
			MaxConns:       int32(getEnvAsInt("DB_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("DB_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("DB_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("DB_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("DB_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:             os.Getenv("REDIS_ADDR"),
			Password:         os.Getenv("REDIS_PASSWORD"),
			DB:               redisDB,
			LookupTTLSeconds: getEnvAsInt("REDIS_LOOKUP_TTL_SECONDS", 300),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Bot: BotConfig{
			Token:          os.Getenv("DISCORD_TOKEN"),
			ApplicationID:  os.Getenv("DISCORD_APPLICATION_ID"),
			GuildID:        os.Getenv("DISCORD_GUILD_ID"),
			DevPrefix:      os.Getenv("BOT_DEV_PREFIX"),
			DeveloperIDs:   getEnvAsList("BOT_DEVELOPER_IDS"),
			EnforceDevOnly: getEnvAsBool("BOT_ENFORCE_DEV_ONLY", false),
			AuditChannelID: os.Getenv("BOT_AUDIT_CHANNEL_ID"),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("AUTH_JWT_SECRET", defaultJWTSecret),
			TokenTTLMinutes: getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", 60*24),
		},
	}

	return cfg, nil
}

// Validate performs the boot check. Any error is fatal: the process must not
// open the gateway connection or the HTTP listener.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Bot.Token) == "" {
		errs = append(errs, errors.New("DISCORD_TOKEN is required"))
	}
	if strings.TrimSpace(c.Bot.DevPrefix) == "" {
		errs = append(errs, errors.New("BOT_DEV_PREFIX is required"))
	}
	if err := c.Database.Validate(); err != nil {
		errs = append(errs, err)
	}
	if !c.App.IsDevelopment() && (c.Auth.JWTSecret == "" || c.Auth.JWTSecret == defaultJWTSecret) {
		errs = append(errs, errors.New("AUTH_JWT_SECRET must be set to a non-default value outside development"))
	}
	return errors.Join(errs...)
}

// IsDevelopment reports whether APP_ENV names the development environment.
func (a AppConfig) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(a.Env), "development")
}

// Validate checks the database settings on their own, for commands that only
// need the store.
func (d DatabaseConfig) Validate() error {
	var errs []error
	switch d.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", d.Driver))
	}
	if strings.TrimSpace(d.DSN) == "" {
		errs = append(errs, errors.New("DB_DSN is required"))
	}
	return errors.Join(errs...)
}

// Addr returns the HTTP bind address.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%s", h.Host, h.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (h HTTPConfig) RequestTimeout() time.Duration {
	if h.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(h.RequestTimeoutSeconds) * time.Second
}

// LookupTTL returns how long cached staff lookups live.
func (r RedisConfig) LookupTTL() time.Duration {
	if r.LookupTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(r.LookupTTLSeconds) * time.Second
}

// TokenTTL returns the lifetime of issued query tokens.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsList(key string) []string {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
