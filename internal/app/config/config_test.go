package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/caarlos0/env/v6"
	"github.com/issafronov/linkgen/internal/app/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("NUM_LINKS", "7")
	t.Setenv("PATH_PATTERN", "/item{}")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("TLDS", "dev,app")

	// очистим аргументы флагов, чтобы не мешали тесту
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"linkgen", "https://example.com"}

	cfg := config.LoadConfig()

	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.Equal(t, 7, cfg.NumLinks)
	assert.Equal(t, "/item{}", cfg.PathPattern)
	assert.Equal(t, "warn", cfg.LoggerLevel)
	assert.Equal(t, []string{"dev", "app"}, cfg.TLDs)
}

func TestLoadConfig_Defaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"linkgen"}

	cfg := config.LoadConfig()

	assert.Equal(t, "", cfg.BaseURL)
	assert.Equal(t, 10, cfg.NumLinks)
	assert.Equal(t, "/page{}", cfg.PathPattern)
	assert.Equal(t, "info", cfg.LoggerLevel)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.JSONOutput)
	assert.Empty(t, cfg.TLDs)
}

func TestLoadConfig_Flags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{
		"linkgen",
		"--num-links", "3",
		"--path-pattern", "/p{}",
		"-seed", "42",
		"-tlds", "io,dev",
		"-json",
		"https://flags.example.com",
	}

	cfg := config.LoadConfig()

	assert.Equal(t, "https://flags.example.com", cfg.BaseURL)
	assert.Equal(t, 3, cfg.NumLinks)
	assert.Equal(t, "/p{}", cfg.PathPattern)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, []string{"io", "dev"}, cfg.TLDs)
	assert.True(t, cfg.JSONOutput)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("BASE_URL", "http://example.com")
	t.Setenv("NUM_LINKS", "5")
	t.Setenv("SEED", "17")
	t.Setenv("JSON_OUTPUT", "true")

	cfg := &config.Config{}
	err := env.Parse(cfg)
	assert.NoError(t, err)

	// Флаги игнорируются в этом тесте — только env
	assert.Equal(t, "http://example.com", cfg.BaseURL)
	assert.Equal(t, 5, cfg.NumLinks)
	assert.Equal(t, int64(17), cfg.Seed)
	assert.True(t, cfg.JSONOutput)
}

func TestLoadConfig_FromFile(t *testing.T) {
	fileCfg := config.Config{
		NumLinks:    25,
		PathPattern: "/article{}",
		LoggerLevel: "debug",
	}
	data, err := json.Marshal(fileCfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"linkgen", "-c", path, "https://example.com"}

	cfg := config.LoadConfig()

	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.Equal(t, 25, cfg.NumLinks)
	assert.Equal(t, "/article{}", cfg.PathPattern)
	assert.Equal(t, "debug", cfg.LoggerLevel)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	fileCfg := config.Config{NumLinks: 25}
	data, err := json.Marshal(fileCfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"linkgen", "-c", path, "--num-links", "2", "https://example.com"}

	cfg := config.LoadConfig()

	assert.Equal(t, 2, cfg.NumLinks, "explicit flag wins over config file")
}
