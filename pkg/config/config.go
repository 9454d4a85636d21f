// Package config holds the runtime settings of the catalog browser.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIBase  = "https://pokeapi.co/api/v2"
	DefaultMax      = 700
	DefaultPerPage  = 20
	DefaultBatch    = 20
	DefaultDebounce = 300 * time.Millisecond
)

type Config struct {
	APIBase        string        `yaml:"api_base"`
	Max            int           `yaml:"max"`
	PerPage        int           `yaml:"per_page"`
	BatchSize      int           `yaml:"batch_size"`
	Debounce       time.Duration `yaml:"debounce"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	DBPath         string        `yaml:"db_path"`
	LogFile        string        `yaml:"log_file"`
	LogLevel       string        `yaml:"log_level"`
	MetricsAddr    string        `yaml:"metrics_addr"`
}

// Default returns the built-in configuration. Paths live under ~/.pokedex.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".pokedex")
	return Config{
		APIBase:        DefaultAPIBase,
		Max:            DefaultMax,
		PerPage:        DefaultPerPage,
		BatchSize:      DefaultBatch,
		Debounce:       DefaultDebounce,
		RequestTimeout: 30 * time.Second,
		DBPath:         filepath.Join(dir, "pokedex.db"),
		LogFile:        filepath.Join(dir, "pokedex.log"),
		LogLevel:       "info",
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path, a .env file in the working directory and POKEDEX_* variables, in
// that order of precedence (later wins).
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	// .env is optional
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	str := map[string]*string{
		"POKEDEX_API_BASE":     &c.APIBase,
		"POKEDEX_DB_PATH":      &c.DBPath,
		"POKEDEX_LOG_FILE":     &c.LogFile,
		"POKEDEX_LOG_LEVEL":    &c.LogLevel,
		"POKEDEX_METRICS_ADDR": &c.MetricsAddr,
	}
	for key, dst := range str {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"POKEDEX_MAX":        &c.Max,
		"POKEDEX_PER_PAGE":   &c.PerPage,
		"POKEDEX_BATCH_SIZE": &c.BatchSize,
	}
	for key, dst := range ints {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"POKEDEX_DEBOUNCE":        &c.Debounce,
		"POKEDEX_REQUEST_TIMEOUT": &c.RequestTimeout,
	}
	for key, dst := range durations {
		if v, ok := os.LookupEnv(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = d
		}
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.APIBase == "":
		return errors.New("api_base must not be empty")
	case c.Max <= 0:
		return fmt.Errorf("max must be positive, got %d", c.Max)
	case c.PerPage <= 0:
		return fmt.Errorf("per_page must be positive, got %d", c.PerPage)
	case c.BatchSize <= 0:
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	case c.Debounce < 0:
		return fmt.Errorf("debounce must not be negative, got %s", c.Debounce)
	case c.DBPath == "":
		return errors.New("db_path must not be empty")
	}
	return nil
}
