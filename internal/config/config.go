package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server      ServerConfig
	Upstream    UpstreamConfig
	RedisConfig RedisConfig
	Web         WebConfig
	CacheEnable bool `env:"CACHE_ENABLE"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"2m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
	MaxUploadSize   int64         `env:"SERVER_MAX_UPLOAD_SIZE" envDefault:"16777216"`
}

// UpstreamConfig points at the service that performs the actual conversion.
type UpstreamConfig struct {
	URL     string        `env:"UPSTREAM_URL" envDefault:"http://localhost:5000"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"90s"`
}

type WebConfig struct {
	StaticDir   string   `env:"WEB_STATIC_DIR" envDefault:"web/static"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
}

// ClientConfig is shared by the command line tools.
type ClientConfig struct {
	URL     string        `env:"CONVERTER_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"CONVERTER_TIMEOUT" envDefault:"2m"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
