package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverPlaywright = "playwright"
	DriverChromedp   = "chromedp"
	DriverSelenium   = "selenium"

	defaultOutputDir    = "verification"
	defaultSeleniumPort = 9515
)

// Config holds the ambient settings of a run. Targets and credentials are not
// part of it.
type Config struct {
	Driver           string
	Engine           string
	Headless         bool
	OutputDir        string
	ReportPath       string
	LogLevel         string
	ChromeDriverPath string
	ChromeBinaryPath string
	SeleniumPort     int
}

// Load - reads .env (optional) and environment variables
func Load() (*Config, error) {
	// .env file is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Driver:           getEnv("VERIFY_DRIVER", DriverPlaywright),
		Engine:           getEnv("VERIFY_ENGINE", "chromium"),
		OutputDir:        getEnv("VERIFY_OUTPUT_DIR", defaultOutputDir),
		ReportPath:       os.Getenv("VERIFY_REPORT"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ChromeDriverPath: os.Getenv("BROWSER_DRIVER_PATH"),
		ChromeBinaryPath: os.Getenv("CHROME_BINARY_PATH"),
	}

	headless, err := strconv.ParseBool(getEnv("VERIFY_HEADLESS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid VERIFY_HEADLESS: %w", err)
	}
	cfg.Headless = headless

	port, err := strconv.Atoi(getEnv("SELENIUM_PORT", strconv.Itoa(defaultSeleniumPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid SELENIUM_PORT: %w", err)
	}
	cfg.SeleniumPort = port

	return cfg, nil
}

// Validate - checks values that flags may have overridden
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPlaywright, DriverChromedp, DriverSelenium:
	default:
		return fmt.Errorf("unknown driver %q (want %s, %s or %s)", c.Driver, DriverPlaywright, DriverChromedp, DriverSelenium)
	}

	switch c.Engine {
	case "chromium", "firefox", "webkit":
	default:
		return fmt.Errorf("unknown engine %q", c.Engine)
	}
	if c.Engine != "chromium" && c.Driver != DriverPlaywright {
		return fmt.Errorf("engine %s is only supported by the %s driver", c.Engine, DriverPlaywright)
	}

	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.SeleniumPort <= 0 || c.SeleniumPort > 65535 {
		return fmt.Errorf("invalid selenium port %d", c.SeleniumPort)
	}

	return nil
}

// NewLogger - builds the logger used across the run
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
