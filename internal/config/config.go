package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is populated from environment variables. Every field has a
// development default; SECRET_KEY must be overridden in production.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DBPath       string `env:"DB_PATH" envDefault:"data/nutriform.db"`
	SecretKey    string `env:"SECRET_KEY" envDefault:"change_me_in_production"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"false"`
	Timezone     string `env:"TZ" envDefault:"UTC"`
}

func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment config: %w", err)
	}
	return cfg, nil
}
