package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var ErrNoToken = errors.New("bot needs a token")

// Options son los flags de línea de comandos (go-flags).
type Options struct {
	Token  string `short:"t" long:"token" description:"Discord bot token"`
	Config string `short:"c" long:"config" description:"Path to a JSON config file"`
}

type Config struct {
	Token          string `json:"token"`
	Prefix         string `json:"prefix"`
	DatabaseDriver string `json:"databaseDriver"`
	DatabaseURL    string `json:"databaseUrl"`
	HTTPAddr       string `json:"httpAddr"` // vacío = sin server de estado
	Workers        int    `json:"workers"`
	LogLevel       string `json:"logLevel"`
	LogFormat      string `json:"logFormat"`
	Env            string `json:"env"`
}

func Defaults() Config {
	return Config{
		Prefix:         "!",
		DatabaseDriver: "sqlite3",
		DatabaseURL:    "harmony.db",
		Workers:        8,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Development es true con HARMONY_ENV=development; fuerza logs en debug.
func (c Config) Development() bool { return strings.EqualFold(c.Env, "development") }

// Load combina defaults, archivo, env y flags; cada uno pisa al anterior.
// getenv suele ser os.Getenv.
func Load(opts Options, getenv func(string) string) (Config, error) {
	cfg := Defaults()

	if opts.Config != "" {
		if err := mergeFile(&cfg, opts.Config); err != nil {
			return Config{}, err
		}
	}

	str := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	str(&cfg.Token, "DISCORD_BOT_TOKEN")
	str(&cfg.Prefix, "HARMONY_PREFIX")
	str(&cfg.DatabaseDriver, "DATABASE_DRIVER")
	str(&cfg.DatabaseURL, "DATABASE_URL")
	str(&cfg.HTTPAddr, "HTTP_ADDR")
	str(&cfg.LogLevel, "LOG_LEVEL")
	str(&cfg.LogFormat, "LOG_FORMAT")
	str(&cfg.Env, "HARMONY_ENV")
	if v := strings.TrimSpace(getenv("HARMONY_WORKERS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("HARMONY_WORKERS: %w", err)
		}
		cfg.Workers = n
	}

	if opts.Token != "" {
		cfg.Token = opts.Token
	}

	if cfg.Token == "" {
		return Config{}, ErrNoToken
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "!"
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
