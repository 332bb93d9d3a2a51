package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig      `yaml:"server"`
	Database     DatabaseConfig    `yaml:"database"`
	Auth         AuthConfig        `yaml:"auth"`
	Log          LogConfig         `yaml:"log"`
	CORS         CORSConfig        `yaml:"cors"`
	RateLimit    RateLimitConfig   `yaml:"rate_limit"`
	Mail         MailConfig        `yaml:"mail"`
	Certificates CertificateConfig `yaml:"certificates"`
	Cleanup      CleanupConfig     `yaml:"cleanup"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
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
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName  string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"fairplay"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"30s"`
	AutoMigrate      bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds access token settings. Tokens are optional on requests;
// a valid one identifies the acting user.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"fairplay"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"300"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"50"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"1m"`
}

// MailConfig holds outgoing mail settings. Without an API key mail is only
// logged.
type MailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key" env:"MAIL_SENDGRID_API_KEY"`
	SendGridHost   string `yaml:"sendgrid_host"    env:"MAIL_SENDGRID_HOST"    env-default:"https://api.sendgrid.com"`
	FromName       string `yaml:"from_name"        env:"MAIL_FROM_NAME"        env-default:"FairPlay"`
	FromEmail      string `yaml:"from_email"       env:"MAIL_FROM_EMAIL"       env-default:"no-reply@fairplay.local"`
}

// CertificateConfig holds where rendered certificates are written.
type CertificateConfig struct {
	Dir string `yaml:"dir" env:"CERTIFICATES_DIR" env-default:"./data/certificates"`
}

// CleanupConfig holds retention for soft-deleted rows.
type CleanupConfig struct {
	RetentionDays int `yaml:"retention_days" env:"CLEANUP_RETENTION_DAYS" env-default:"30"`
}

// Retention returns how long soft-deleted rows are kept.
func (c CleanupConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// Enabled reports whether a real mail provider is configured.
func (c MailConfig) Enabled() bool { return c.SendGridAPIKey != "" }
