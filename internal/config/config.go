package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Admin     AdminConfig     `yaml:"admin"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN,DATABASE_URL"   env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AdminConfig holds the single shared admin credential.
// PasswordHash, when set, is a bcrypt hash and takes precedence over Password.
type AdminConfig struct {
	User         string `yaml:"user"          env:"ADMIN_USER"      env-default:"admin"`
	Password     string `yaml:"password"      env:"ADMIN_PASS"      env-default:"1234"`
	PasswordHash string `yaml:"password_hash" env:"ADMIN_PASS_HASH"`
	Realm        string `yaml:"realm"         env:"ADMIN_REALM"     env-default:"Amulet Admin"`
}

// Default admin credentials, accepted but reported at startup.
const (
	DefaultAdminUser     = "admin"
	DefaultAdminPassword = "1234"
)

// UsesDefaults reports whether the built-in admin credential is active.
func (c AdminConfig) UsesDefaults() bool {
	return c.PasswordHash == "" && c.User == DefaultAdminUser && c.Password == DefaultAdminPassword
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-IP limits. Zero disables the limit. The client
// API is unthrottled by default since many installs can share one NAT
// address.
type RateLimitConfig struct {
	ClientPerMinute int           `yaml:"client_per_minute" env:"RATE_LIMIT_CLIENT_PER_MINUTE" env-default:"0"`
	AdminPerMinute  int           `yaml:"admin_per_minute"  env:"RATE_LIMIT_ADMIN_PER_MINUTE"  env-default:"60"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// CacheConfig selects the read cache for config and voices.
// An empty RedisURL selects the in-process cache.
type CacheConfig struct {
	RedisURL  string        `yaml:"redis_url"  env:"CACHE_REDIS_URL,REDIS_URL"`
	TTL       time.Duration `yaml:"ttl"        env:"CACHE_TTL"        env-default:"30s"`
	KeyPrefix string        `yaml:"key_prefix" env:"CACHE_KEY_PREFIX" env-default:"amulet:"`
}
