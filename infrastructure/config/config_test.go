package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VERIFY_DRIVER", "VERIFY_ENGINE", "VERIFY_HEADLESS", "VERIFY_OUTPUT_DIR",
		"VERIFY_REPORT", "LOG_LEVEL", "BROWSER_DRIVER_PATH", "CHROME_BINARY_PATH", "SELENIUM_PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPlaywright, cfg.Driver)
	assert.Equal(t, "chromium", cfg.Engine)
	assert.True(t, cfg.Headless)
	assert.Equal(t, "verification", cfg.OutputDir)
	assert.Empty(t, cfg.ReportPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 9515, cfg.SeleniumPort)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	clearEnv(t)
	t.Setenv("VERIFY_DRIVER", "selenium")
	t.Setenv("VERIFY_HEADLESS", "false")
	t.Setenv("SELENIUM_PORT", "4444")
	t.Setenv("BROWSER_DRIVER_PATH", "/usr/local/bin/chromedriver")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSelenium, cfg.Driver)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 4444, cfg.SeleniumPort)
	assert.Equal(t, "/usr/local/bin/chromedriver", cfg.ChromeDriverPath)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	clearEnv(t)
	os.Unsetenv("VERIFY_OUTPUT_DIR")
	os.Unsetenv("LOG_LEVEL")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("VERIFY_OUTPUT_DIR=shots\nLOG_LEVEL=debug\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("VERIFY_OUTPUT_DIR")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shots", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadInvalidHeadless(t *testing.T) {
	chdir(t, t.TempDir())
	clearEnv(t)
	t.Setenv("VERIFY_HEADLESS", "sometimes")

	_, err := Load()
	assert.ErrorContains(t, err, "VERIFY_HEADLESS")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Driver: DriverPlaywright, Engine: "chromium", OutputDir: "verification", LogLevel: "info", SeleniumPort: 9515}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"firefox on playwright", func(c *Config) { c.Engine = "firefox" }, ""},
		{"unknown driver", func(c *Config) { c.Driver = "puppeteer" }, "unknown driver"},
		{"firefox on chromedp", func(c *Config) { c.Driver = DriverChromedp; c.Engine = "firefox" }, "only supported"},
		{"empty output", func(c *Config) { c.OutputDir = " " }, "output directory"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "not a valid logrus Level"},
		{"bad port", func(c *Config) { c.SeleniumPort = 0 }, "selenium port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}
	assert.Equal(t, logrus.WarnLevel, cfg.NewLogger().GetLevel())

	cfg.LogLevel = "bogus"
	assert.Equal(t, logrus.InfoLevel, cfg.NewLogger().GetLevel())
}
