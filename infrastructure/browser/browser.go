// Package browser implements the browser drivers a run can use.
package browser

import (
	"fmt"

	"uiverify/domain/errs"
	"uiverify/domain/interfaces"
	"uiverify/infrastructure/config"

	"github.com/sirupsen/logrus"
)

// New - returns the driver selected by cfg.Driver
func New(cfg *config.Config, logger *logrus.Logger) (interfaces.Browser, error) {
	switch cfg.Driver {
	case config.DriverPlaywright:
		return NewPlaywrightBrowser(cfg.Engine, cfg.Headless, logger), nil
	case config.DriverChromedp:
		return NewChromedpBrowser(cfg.Headless, cfg.ChromeBinaryPath, logger), nil
	case config.DriverSelenium:
		return NewSeleniumBrowser(cfg.Headless, cfg.ChromeDriverPath, cfg.ChromeBinaryPath, cfg.SeleniumPort, logger), nil
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Driver, errs.ErrUnknownDriver)
	}
}
