// Package config loads process settings from an optional .env file and
// GRIDSEARCH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel    = "GRIDSEARCH_LOG_LEVEL"
	EnvAddr        = "GRIDSEARCH_ADDR"
	EnvDelay       = "GRIDSEARCH_DELAY"
	EnvFastDelay   = "GRIDSEARCH_FAST_DELAY"
	EnvScenarioDir = "GRIDSEARCH_SCENARIO_DIR"
	EnvMaxEvents   = "GRIDSEARCH_MAX_EVENTS"
	EnvMaxCells    = "GRIDSEARCH_MAX_CELLS"
)

// ErrInvalid wraps a variable that is set but cannot be parsed.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	LogLevel    string        // debug, info, warn or error
	Addr        string        // listen address for serve
	Delay       time.Duration // animation pause per explored cell
	FastDelay   time.Duration // animation pause in fast mode
	ScenarioDir string        // extra scenario files; empty for built-ins only
	MaxEvents   int           // cap on events returned by the HTTP API
	MaxCells    int           // largest map the HTTP API will search
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Addr:      ":8080",
		Delay:     20 * time.Millisecond,
		FastDelay: 2 * time.Millisecond,
		MaxEvents: 10000,
		MaxCells:  40000,
	}
}

// Load reads the given .env files (".env" when none are named; a missing
// file is not an error), then overlays environment variables on Default.
// Variables already in the environment win over .env entries.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvAddr); ok {
		c.Addr = v
	}
	if v, ok := lookup(EnvScenarioDir); ok {
		c.ScenarioDir = v
	}

	var err error
	if c.Delay, err = duration(lookup, EnvDelay, c.Delay); err != nil {
		return Config{}, err
	}
	if c.FastDelay, err = duration(lookup, EnvFastDelay, c.FastDelay); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvMaxEvents); ok {
		n, perr := strconv.Atoi(v)
		if perr != nil || n < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvMaxEvents, v)
		}
		c.MaxEvents = n
	}
	if v, ok := lookup(EnvMaxCells); ok {
		n, perr := strconv.Atoi(v)
		if perr != nil || n < 1 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvMaxCells, v)
		}
		c.MaxCells = n
	}

	return c, nil
}

func duration(lookup func(string) (string, bool), key string, def time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
	}

	return d, nil
}
