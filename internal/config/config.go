package config

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,       default=8080"`
	Env      string `env:"ENV,        default=development"`
	AppName  string `env:"APP_NAME,   default=vet-clinic"`
	LogLevel string `env:"LOG_LEVEL,  default=info"`
	LogFmt   string `env:"LOG_FORMAT, default=json"`
	Timezone string `env:"TIMEZONE,   default=UTC"`

	Swagger bool `env:"SWAGGER_ENABLED, default=true"`

	DB        DBConfig
	RateLimit RateLimitConfig
}

// DBConfig: DSN vacío => store en memoria.
type DBConfig struct {
	DSN          string `env:"DB_DSN"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS, default=10"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS, default=5"`
	AutoMigrate  bool   `env:"DB_AUTO_MIGRATE,   default=true"`
}

type RateLimitConfig struct {
	Enabled bool    `env:"RATE_LIMIT_ENABLED, default=true"`
	RPS     float64 `env:"RATE_LIMIT_RPS,     default=20"`
	Burst   int     `env:"RATE_LIMIT_BURST,   default=40"`
}

// Load lee la configuración del entorno.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("config: TIMEZONE: %w", err)
	}
	return &cfg, nil
}

// Location es la zona con la que se interpretan fecha+hora de las citas.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) UsesPostgres() bool {
	return c.DB.DSN != ""
}
