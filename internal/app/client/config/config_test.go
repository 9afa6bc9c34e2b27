package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLs(t *testing.T) {
	cfg := &Config{
		ServerAddress: "example.com:8080",
		PushPath:      "/ws",
		EnableTLS:     true,
	}

	assert.Equal(t, "https://example.com:8080", cfg.BaseURL())
	assert.Equal(t, "wss://example.com:8080/ws", cfg.PushURL())

	cfg.EnableTLS = false
	assert.Equal(t, "http://example.com:8080", cfg.BaseURL())
	assert.Equal(t, "ws://example.com:8080/ws", cfg.PushURL())
}

func TestValidate(t *testing.T) {
	cfg := &Config{ServerAddress: "localhost:8080", PushPath: "/ws"}
	assert.NoError(t, cfg.validate())

	cfg.ServerAddress = ""
	assert.Error(t, cfg.validate())

	cfg.ServerAddress = "localhost:8080"
	cfg.PushPath = ""
	assert.Error(t, cfg.validate())
}

func TestEnvHelpers(t *testing.T) {
	assert.True(t, (&Config{Env: EnvProd}).IsProd())
	assert.True(t, (&Config{Env: EnvDev}).IsDev())
	assert.True(t, (&Config{Env: EnvLocal}).IsLocal())
	assert.True(t, (&Config{}).IsLocal())
}
