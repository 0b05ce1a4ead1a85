package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	req := require.New(t)

	cfg := NewDefaultConfig()

	req.Equal(3000, cfg.Web.ListenPort)
	req.Equal("localhost", cfg.Web.DisplayHost)
	req.Empty(cfg.Web.ListenHost)
	req.Positive(cfg.Web.ReadHeaderTimeout)
	req.Positive(cfg.Web.ShutdownTimeout)
	req.Equal(AppVersion, cfg.AppVersion)
}

func TestWebConfig_ListenAddr(t *testing.T) {
	testCases := []struct {
		host     string
		port     int
		expected string
	}{
		{host: "", port: 3000, expected: ":3000"},
		{host: "127.0.0.1", port: 0, expected: "127.0.0.1:0"},
		{host: "::1", port: 3000, expected: "[::1]:3000"},
	}

	for _, tc := range testCases {
		wc := &WebConfig{ListenHost: tc.host, ListenPort: tc.port}
		require.Equal(t, tc.expected, wc.ListenAddr())
	}
}
