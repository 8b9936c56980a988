package remote

import (
	"os"
	"strconv"
)

// Op identifies the kind of remote call being performed.
type Op string

const (
	OpFetchTrip  Op = "fetch_trip"
	OpUpdateItem Op = "update_item"
	OpAnalyze    Op = "analyze_image"
	OpAudioFetch Op = "audio_fetch"
)

// OpConfig holds per-operation request parameters.
type OpConfig struct {
	TimeoutMs int // overrides global if > 0
}

// Config holds all configuration for the remote client.
type Config struct {
	BaseURL    string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Ops        map[Op]OpConfig
}

// DefaultConfig returns a Config with sensible defaults. The image
// analysis upload gets a longer timeout than the small JSON calls.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:8080",
		TimeoutMs:  10000,
		MaxRetries: 1,
		LogCalls:   false,
		Ops: map[Op]OpConfig{
			OpFetchTrip:  {TimeoutMs: 10000},
			OpUpdateItem: {TimeoutMs: 8000},
			OpAnalyze:    {TimeoutMs: 60000},
			OpAudioFetch: {TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads remote client configuration from environment
// variables, falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RIHLA_API"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("RIHLA_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("RIHLA_API_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("RIHLA_DEBUG"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyOpTimeoutEnv(&cfg, OpAnalyze, "RIHLA_API_ANALYZE_TIMEOUT_MS")
	applyOpTimeoutEnv(&cfg, OpAudioFetch, "RIHLA_API_AUDIO_TIMEOUT_MS")

	return cfg
}

// OpTimeout returns the effective timeout for a given operation.
func (c Config) OpTimeout(op Op) int {
	if oc, ok := c.Ops[op]; ok && oc.TimeoutMs > 0 {
		return oc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyOpTimeoutEnv(cfg *Config, op Op, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	oc := cfg.Ops[op]
	oc.TimeoutMs = n
	cfg.Ops[op] = oc
}
