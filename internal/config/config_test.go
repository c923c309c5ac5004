package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCookieSecureByEnv(t *testing.T) {
	assert.False(t, Config{Env: "dev"}.CookieSecure())
	assert.True(t, Config{Env: "prod"}.CookieSecure())
	assert.True(t, Config{Env: "staging"}.CookieSecure())
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://localhost:5173"}, splitOrigins(""))
	assert.Equal(t, []string{"https://a.example", "https://b.example"},
		splitOrigins(" https://a.example, https://b.example ,"))
}

func TestEnvHelpersDefaults(t *testing.T) {
	// Unset variables fall back to the provided defaults.
	assert.Equal(t, "d", envStr("HRB_TEST_UNSET", "d"))
	assert.True(t, envBool("HRB_TEST_UNSET", true))
	assert.Equal(t, 7, envInt("HRB_TEST_UNSET", 7))
	assert.Equal(t, time.Minute, envDur("HRB_TEST_UNSET", time.Minute))
}

func TestEnvHelpersParsing(t *testing.T) {
	t.Setenv("HRB_TEST_BOOL", "true")
	t.Setenv("HRB_TEST_INT", "42")
	t.Setenv("HRB_TEST_DUR", "90s")
	assert.True(t, envBool("HRB_TEST_BOOL", false))
	assert.Equal(t, 42, envInt("HRB_TEST_INT", 0))
	assert.Equal(t, 90*time.Second, envDur("HRB_TEST_DUR", 0))
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_LIMIT", "-5")
	t.Setenv("RATE_LIMIT_WINDOW", "0s")
	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Limit)
	assert.Equal(t, time.Minute, cfg.Window)
}
