package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	SecretKey string `env:"SECRET_KEY, required"`
	LoginURL  string `env:"LOGIN_URL, default=/account/login/"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Media   MediaConfig
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE_NAME,   default=sessionid"`
	TTL        time.Duration `env:"SESSION_TTL,           default=336h"`
	Secure     bool          `env:"SESSION_COOKIE_SECURE, default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bookmarks"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type MediaConfig struct {
	Bucket         string `env:"MEDIA_BUCKET,           default=media"`
	Region         string `env:"MEDIA_REGION,           default=us-east-1"`
	Endpoint       string `env:"MEDIA_ENDPOINT"`
	AccessKey      string `env:"MEDIA_ACCESS_KEY"`
	SecretKey      string `env:"MEDIA_SECRET_KEY"`
	UsePathStyle   bool   `env:"MEDIA_USE_PATH_STYLE,   default=true"`
	MaxUploadBytes int64  `env:"MEDIA_MAX_UPLOAD_BYTES, default=5242880"`
}

// IsDevelopment reports whether the service runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
