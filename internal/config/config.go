package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"lms-admin-service/internal/domain"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`

		// Origin is the public base URL used in share links.
		Origin string `yaml:"origin"`

		MaxBodyBytes int64 `yaml:"maxBodyBytes"`
	} `yaml:"server"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`
	RateLimit struct {
		Requests int    `yaml:"requests"`
		Window   string `yaml:"window"`
	} `yaml:"rateLimit"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
		Channel  string `yaml:"channel"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Catalog struct {
		// TTL bounds how long participants are cached in process.
		TTL  string `yaml:"ttl"`
		Seed bool   `yaml:"seed"`
	} `yaml:"catalog"`
	ResponsiblePersons []string `yaml:"responsiblePersons"`

	Quiz struct {
		Rewards domain.QuizRewards `yaml:"rewards"`
	} `yaml:"quiz"`
	Settings domain.Settings `yaml:"settings"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Server.Port = "8080"
	cfg.Server.Origin = "http://localhost:8080"
	cfg.Server.MaxBodyBytes = 1 << 20
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.RateLimit.Requests = 100
	cfg.RateLimit.Window = "1m"
	cfg.Logging.Level = "info"
	cfg.Catalog.TTL = "1m"
	cfg.Catalog.Seed = true
	cfg.Quiz.Rewards = domain.DefaultRewards
	cfg.Settings = domain.DefaultSettings()
	return cfg
}

// Load reads YAML config from path over the defaults. A missing file is not
// an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
