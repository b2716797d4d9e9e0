package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("SERVER_ADDRESS", "shop.local:9000")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "45")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, filepath.Join(dir, "session.json"), cfg.SessionPath)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "http://shop.local:9000", cfg.BaseURL())
}

func TestConfig_BaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "plain", cfg: Config{ServerAddress: "localhost:8080"}, want: "http://localhost:8080"},
		{name: "tls", cfg: Config{ServerAddress: "shop.example:443", EnableTLS: true}, want: "https://shop.example:443"},
		{name: "explicit scheme", cfg: Config{ServerAddress: "http://127.0.0.1:8080", EnableTLS: true}, want: "http://127.0.0.1:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.BaseURL())
		})
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	viper.Reset()
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")

	_, err := Load()
	assert.Error(t, err)
}
