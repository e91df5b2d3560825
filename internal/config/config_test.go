package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/temco-admin/internal/config"
	"github.com/stretchr/testify/require"
)

func TestGetPort_AddsColon(t *testing.T) {
	t.Setenv("PORT", "9090")
	require.Equal(t, ":9090", config.New().GetPort())

	t.Setenv("PORT", ":7070")
	require.Equal(t, ":7070", config.New().GetPort())
}

func TestDefaults(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("API_TIMEOUT", "")
	t.Setenv("ENV", "")

	c := config.New()
	require.Equal(t, "http://localhost:8080/temco-bank/api/v1", c.GetAPIURL())
	require.Equal(t, 30*time.Second, c.GetAPITimeout())
	require.Equal(t, "DEV", c.GetEnv())
	require.Equal(t, "/login", c.GetLoginURL())
}

func TestGetAPITimeout_InvalidFallsBack(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")
	require.Equal(t, 30*time.Second, config.New().GetAPITimeout())

	t.Setenv("API_TIMEOUT", "5s")
	require.Equal(t, 5*time.Second, config.New().GetAPITimeout())
}

func TestParseAllowedOrigins(t *testing.T) {
	origins := config.ParseAllowedOrigins(" https://a.example , ,https://b.example")
	require.True(t, origins.IsAllowedOrigin("https://a.example"))
	require.True(t, origins.IsAllowedOrigin("https://b.example"))
	require.False(t, origins.IsAllowedOrigin("*"))
	require.Equal(t, "https://a.example, https://b.example", origins.String())
}
