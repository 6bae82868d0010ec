// Package config loads the service configuration from the environment, with
// an optional .env file for local runs.
package config

import (
	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config carries everything the binaries read from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8000"`

	// GinMode is left to gin when set; an empty value selects release mode.
	GinMode string `env:"GIN_MODE"`

	// DatabaseURL selects Postgres for the key/usage tables when set;
	// otherwise a SQLite file at DataPath is used.
	DatabaseURL string `env:"DATABASE_URL"`
	DataPath    string `env:"DATA_PATH" envDefault:"api_keys.db"`

	JWTSecret    string `env:"JWT_SECRET"`
	MasterSecret string `env:"API_MASTER_SECRET"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	// LeaderLevel is the experience level that qualifies a worker to lead
	// an event.
	LeaderLevel int `env:"LEADER_EXPERIENCE_LEVEL" envDefault:"3"`

	// RosterFile, when set, is loaded into the store on boot. SeedDemo
	// fills the store with a small built-in roster instead.
	RosterFile string `env:"ROSTER_FILE"`
	SeedDemo   bool   `env:"SEED_DEMO_DATA" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file, then parses the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
