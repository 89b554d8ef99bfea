package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Practice   PracticeConfig   `yaml:"practice"`
	Prediction PredictionConfig `yaml:"prediction"`
	Storage    StorageConfig    `yaml:"storage"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password hashing settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"speakup"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-IP limits for unauthenticated endpoints.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP"         env-default:"5m"`
}

// PracticeConfig holds scoring and history settings.
type PracticeConfig struct {
	PassThreshold   float64 `yaml:"pass_threshold"    env:"PRACTICE_PASS_THRESHOLD"    env-default:"0.8"`
	PhoneticCheck   bool    `yaml:"phonetic_check"    env:"PRACTICE_PHONETIC_CHECK"    env-default:"true"`
	MaxAnswers      int     `yaml:"max_answers"       env:"PRACTICE_MAX_ANSWERS"       env-default:"100"`
	RetentionDays   int     `yaml:"retention_days"    env:"PRACTICE_RETENTION_DAYS"    env-default:"365"`
	MaxAnalyzeBatch int     `yaml:"max_analyze_batch" env:"PRACTICE_MAX_ANALYZE_BATCH" env-default:"20"`
}

// PredictionConfig points at the remote pronunciation analysis endpoint.
type PredictionConfig struct {
	Enabled bool          `yaml:"enabled" env:"PREDICTION_ENABLED" env-default:"false"`
	URL     string        `yaml:"url"     env:"PREDICTION_URL"`
	Timeout time.Duration `yaml:"timeout" env:"PREDICTION_TIMEOUT" env-default:"30s"`
}

// StorageConfig holds S3-compatible object storage settings for recordings.
type StorageConfig struct {
	Enabled        bool          `yaml:"enabled"          env:"STORAGE_ENABLED"          env-default:"false"`
	Endpoint       string        `yaml:"endpoint"         env:"STORAGE_ENDPOINT"`
	AccessKey      string        `yaml:"access_key"       env:"STORAGE_ACCESS_KEY"`
	SecretKey      string        `yaml:"secret_key"       env:"STORAGE_SECRET_KEY"`
	Bucket         string        `yaml:"bucket"           env:"STORAGE_BUCKET"           env-default:"recordings"`
	UseSSL         bool          `yaml:"use_ssl"          env:"STORAGE_USE_SSL"          env-default:"false"`
	PresignTTL     time.Duration `yaml:"presign_ttl"      env:"STORAGE_PRESIGN_TTL"      env-default:"15m"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	MetricsEnabled bool   `yaml:"metrics_enabled" env:"TELEMETRY_METRICS_ENABLED" env-default:"true"`
	ServiceName    string `yaml:"service_name"    env:"TELEMETRY_SERVICE_NAME"    env-default:"speakup-backend"`
}
