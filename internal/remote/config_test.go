package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpTimeout(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 60000, cfg.OpTimeout(OpAnalyze), "uploads get the long timeout")
	assert.Equal(t, 30000, cfg.OpTimeout(OpAudioFetch))
	assert.Equal(t, cfg.TimeoutMs, cfg.OpTimeout(Op("unknown")), "unknown ops fall back to the global timeout")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RIHLA_API", "http://example.test:9090")
	t.Setenv("RIHLA_API_TIMEOUT_MS", "2500")
	t.Setenv("RIHLA_API_ANALYZE_TIMEOUT_MS", "90000")
	t.Setenv("RIHLA_API_AUDIO_TIMEOUT_MS", "5000")

	cfg := LoadConfig()

	assert.Equal(t, "http://example.test:9090", cfg.BaseURL)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 90000, cfg.OpTimeout(OpAnalyze))
	assert.Equal(t, 5000, cfg.OpTimeout(OpAudioFetch))
}

func TestLoadConfig_IgnoresInvalidTimeouts(t *testing.T) {
	t.Setenv("RIHLA_API_TIMEOUT_MS", "not-a-number")
	t.Setenv("RIHLA_API_AUDIO_TIMEOUT_MS", "-1")

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, 30000, cfg.OpTimeout(OpAudioFetch))
}
