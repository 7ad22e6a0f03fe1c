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

// DevSessionSecret signs sessions when SESSION_SECRET is unset outside production.
const DevSessionSecret = "dev-session-secret-change-in-production"

// DefaultBcryptCost is the single work factor used by every hashing flow.
const DefaultBcryptCost = 12

// Administrator created by the seed command when ADMIN_* is unset.
const (
	DefaultAdminEmail    = "admin@tenx.mn"
	DefaultAdminPassword = "Admin123!"
	DefaultAdminName     = "System Admin"
)

// ErrMissingSessionSecret is returned for production deployments without SESSION_SECRET.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set in production")

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Locale       LocaleConfig
	Storage      StorageConfig
	Web          WebConfig
	Notification NotificationConfig
	Seed         SeedConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
	BodyLimitBytes        int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	SessionSecret      string
	SessionSecretIsDev bool
	BcryptCost         int
	LoginMaxAttempts   int
	LoginWindowSeconds int
}

// LocaleConfig lists the supported site locales.
type LocaleConfig struct {
	Supported []string
	Default   string
}

// StorageConfig points at the S3-compatible bucket used for uploads.
type StorageConfig struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
	UsePathStyle  bool
}

// WebConfig holds the directories of the prebuilt site.
type WebConfig struct {
	PublicDir    string
	DashboardDir string
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailFrom  string
	WebhookURL string
}

// SeedConfig names the initial administrator.
type SeedConfig struct {
	AdminEmail             string
	AdminPassword          string
	AdminName              string
	AdminPasswordIsDefault bool
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	secret := os.Getenv("SESSION_SECRET")
	secretIsDev := secret == ""
	if secretIsDev {
		secret = DevSessionSecret
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminPasswordIsDefault := adminPassword == ""
	if adminPasswordIsDefault {
		adminPassword = DefaultAdminPassword
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "catering-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
			BodyLimitBytes:        getEnvAsInt("HTTP_BODY_LIMIT_BYTES", 10*1024*1024),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			SessionSecret:      secret,
			SessionSecretIsDev: secretIsDev,
			BcryptCost:         getEnvAsInt("AUTH_BCRYPT_COST", DefaultBcryptCost),
			LoginMaxAttempts:   getEnvAsInt("AUTH_LOGIN_MAX_ATTEMPTS", 10),
			LoginWindowSeconds: getEnvAsInt("AUTH_LOGIN_WINDOW_SECONDS", 900),
		},
		Locale: LocaleConfig{
			Supported: getEnvAsList("LOCALES", []string{"en", "mn"}),
			Default:   getEnv("DEFAULT_LOCALE", "en"),
		},
		Storage: StorageConfig{
			Endpoint:      os.Getenv("S3_ENDPOINT"),
			Region:        getEnv("S3_REGION", "us-east-1"),
			Bucket:        getEnv("S3_BUCKET", "uploads"),
			AccessKey:     os.Getenv("S3_ACCESS_KEY"),
			SecretKey:     os.Getenv("S3_SECRET_KEY"),
			PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
			UsePathStyle:  getEnvAsBool("S3_USE_PATH_STYLE", true),
		},
		Web: WebConfig{
			PublicDir:    getEnv("WEB_PUBLIC_DIR", "./web/public"),
			DashboardDir: getEnv("WEB_DASHBOARD_DIR", "./web/dashboard"),
		},
		Notification: NotificationConfig{
			EmailFrom:  getEnv("NOTIFY_EMAIL_FROM", "noreply@tenx.mn"),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
		Seed: SeedConfig{
			AdminEmail:             getEnv("ADMIN_EMAIL", DefaultAdminEmail),
			AdminPassword:          adminPassword,
			AdminName:              getEnv("ADMIN_NAME", DefaultAdminName),
			AdminPasswordIsDefault: adminPasswordIsDefault,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that must not reach a running server.
func (c *Config) Validate() error {
	if c.App.IsProduction() && c.Auth.SessionSecretIsDev {
		return ErrMissingSessionSecret
	}
	if !containsString(c.Locale.Supported, c.Locale.Default) {
		return fmt.Errorf("DEFAULT_LOCALE %q is not in LOCALES %v", c.Locale.Default, c.Locale.Supported)
	}
	return nil
}

// IsProduction reports whether the service runs with production cookie settings.
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// LoginWindow returns the throttling window for login attempts.
func (a AuthConfig) LoginWindow() time.Duration {
	if a.LoginWindowSeconds <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(a.LoginWindowSeconds) * time.Second
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

func getEnvAsList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
