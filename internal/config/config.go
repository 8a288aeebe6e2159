package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	Notify    NotifyConfig    `yaml:"notify"`
	Invite    InviteConfig    `yaml:"invite"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// StreamHeartbeat is the keep-alive interval of live partner streams.
	StreamHeartbeat time.Duration `yaml:"stream_heartbeat" env:"SERVER_STREAM_HEARTBEAT" env-default:"25s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// AutoMigrate applies pending migrations on serve startup.
	AutoMigrate bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE" env-default:"true"`
}

// AuthConfig holds session token and identity provider settings.
type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"           env:"AUTH_JWT_SECRET"           env-required:"true"`
	JWTIssuer          string        `yaml:"jwt_issuer"           env:"AUTH_JWT_ISSUER"           env-default:"menowell"`
	AccessTokenTTL     time.Duration `yaml:"access_token_ttl"     env:"AUTH_ACCESS_TOKEN_TTL"     env-default:"24h"`
	GoogleClientID     string        `yaml:"google_client_id"     env:"AUTH_GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `yaml:"google_client_secret" env:"AUTH_GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string        `yaml:"google_redirect_uri"  env:"AUTH_GOOGLE_REDIRECT_URI"`
	// DevLogin enables the "dev" provider, which trusts the code as an
	// email address. Never enable it in production.
	DevLogin bool `yaml:"dev_login" env:"AUTH_DEV_LOGIN" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SentimentConfig holds settings of the external sentiment analysis API.
type SentimentConfig struct {
	URL     string        `yaml:"url"     env:"SENTIMENT_API_URL"`
	Apps    string        `yaml:"apps"    env:"SENTIMENT_APPS"    env-default:"MenoWellness"`
	Timeout time.Duration `yaml:"timeout" env:"SENTIMENT_TIMEOUT" env-default:"30s"`
}

// NotifyConfig selects the change feed backend.
type NotifyConfig struct {
	Backend  string `yaml:"backend"   env:"NOTIFY_BACKEND"   env-default:"postgres"`
	RedisURL string `yaml:"redis_url" env:"NOTIFY_REDIS_URL"`
	Channel  string `yaml:"channel"   env:"NOTIFY_CHANNEL"   env-default:"menowell_changes"`
}

// InviteConfig holds invite issuance settings.
type InviteConfig struct {
	MaxIssueAttempts int `yaml:"max_issue_attempts" env:"INVITE_MAX_ISSUE_ATTEMPTS" env-default:"5"`
}

// RateLimitConfig holds per-IP limits, in requests per minute.
type RateLimitConfig struct {
	Redeem  int `yaml:"redeem"  env:"RATE_LIMIT_REDEEM"  env-default:"10"`
	SignIn  int `yaml:"signin"  env:"RATE_LIMIT_SIGNIN"  env-default:"20"`
	Default int `yaml:"default" env:"RATE_LIMIT_DEFAULT" env-default:"120"`
}

// Notify backends.
const (
	NotifyBackendPostgres = "postgres"
	NotifyBackendRedis    = "redis"
)

// AllowedProviders returns the list of configured identity providers.
// A provider is considered configured if ALL its required settings are present.
func (c AuthConfig) AllowedProviders() []string {
	var providers []string
	if c.GoogleClientID != "" && c.GoogleClientSecret != "" {
		providers = append(providers, "google")
	}
	if c.DevLogin {
		providers = append(providers, "dev")
	}
	return providers
}

// IsProviderAllowed checks if the given provider string is configured.
func (c AuthConfig) IsProviderAllowed(provider string) bool {
	return slices.Contains(c.AllowedProviders(), provider)
}
