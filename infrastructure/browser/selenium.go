package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"uiverify/domain/errs"
	"uiverify/domain/interfaces"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"go.uber.org/multierr"
)

type seleniumBrowser struct {
	headless   bool
	driverPath string
	binaryPath string
	port       int
	logger     *logrus.Logger
}

type seleniumSession struct {
	wd      selenium.WebDriver
	service *selenium.Service
	logger  *logrus.Logger
}

// NewSeleniumBrowser - creates browser driven through chromedriver
func NewSeleniumBrowser(headless bool, driverPath, binaryPath string, port int, logger *logrus.Logger) interfaces.Browser {
	return &seleniumBrowser{
		headless:   headless,
		driverPath: driverPath,
		binaryPath: binaryPath,
		port:       port,
		logger:     logger,
	}
}

func (b *seleniumBrowser) Name() string {
	return "selenium"
}

// findChromeDriver - finds ChromeDriver executable path
func findChromeDriver(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured, nil
		}
		return "", fmt.Errorf("chromedriver not found at %s", configured)
	}

	commonPaths := []string{
		"/usr/local/bin/chromedriver",
		"/usr/bin/chromedriver",
		"/opt/homebrew/bin/chromedriver",
		filepath.Join(os.Getenv("HOME"), "bin", "chromedriver"),
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("chromedriver not found. Please install it or set BROWSER_DRIVER_PATH environment variable")
}

// findChromeBinary - finds Chrome/Chromium browser executable path
func findChromeBinary(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	chromePaths := []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
	}

	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	return ""
}

// Launch - starts chromedriver and a Chrome session with a temporary profile
func (b *seleniumBrowser) Launch(ctx context.Context) (interfaces.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	driverPath, err := findChromeDriver(b.driverPath)
	if err != nil {
		return nil, fmt.Errorf("failed to find chromedriver: %w: %w", errs.ErrBrowserLaunch, err)
	}
	b.logger.Infof("Using ChromeDriver at: %s", driverPath)

	service, err := selenium.NewChromeDriverService(driverPath, b.port)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver: %w: %w", errs.ErrBrowserLaunch, err)
	}

	args := []string{
		"--disable-dev-shm-usage",
		"--no-sandbox",
		"--window-size=1280,720",
	}
	if b.headless {
		args = append(args, "--headless=new")
	}
	chromeCaps := chrome.Capabilities{Args: args}
	if binary := findChromeBinary(b.binaryPath); binary != "" {
		b.logger.Infof("Using Chrome binary at: %s", binary)
		chromeCaps.Path = binary
	}

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chromeCaps)

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", b.port))
	if err != nil {
		stopErr := service.Stop()
		if strings.Contains(err.Error(), "cannot find Chrome binary") {
			err = fmt.Errorf("chrome browser not found, install Google Chrome or set CHROME_BINARY_PATH: %w", err)
		}
		return nil, multierr.Append(fmt.Errorf("failed to create webdriver: %w: %w", errs.ErrBrowserLaunch, err), stopErr)
	}

	return &seleniumSession{
		wd:      wd,
		service: service,
		logger:  b.logger,
	}, nil
}

// Goto - navigates browser to specified URL
func (s *seleniumSession) Goto(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.wd.Get(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w: %w", url, errs.ErrNavigation, err)
	}
	return nil
}

// FillByPlaceholder - clears the input and types value into it
func (s *seleniumSession) FillByPlaceholder(ctx context.Context, placeholder string, value string) error {
	element, err := s.waitForElement(ctx, selenium.ByCSSSelector, placeholderSelector(placeholder))
	if err != nil {
		return fmt.Errorf("input with placeholder %q: %w", placeholder, err)
	}

	if err := element.Clear(); err != nil {
		s.logger.Warnf("Failed to clear element: %v", err)
	}
	if err := element.SendKeys(value); err != nil {
		return fmt.Errorf("failed to type into %q: %w", placeholder, err)
	}
	return nil
}

// ClickByRole - clicks the first displayed element matching role and name
func (s *seleniumSession) ClickByRole(ctx context.Context, role string, name string) error {
	element, err := s.waitForElement(ctx, selenium.ByXPATH, roleXPath(role, name))
	if err != nil {
		return fmt.Errorf("%s %q: %w", role, name, err)
	}
	return element.Click()
}

// ExpectURL - waits until the current URL equals want
func (s *seleniumSession) ExpectURL(ctx context.Context, want string) error {
	var current string
	err := s.wd.WaitWithTimeoutAndInterval(func(wd selenium.WebDriver) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		url, err := wd.CurrentURL()
		if err != nil {
			return false, nil
		}
		current = url
		return current == want, nil
	}, defaultExpectTimeout, pollInterval)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("page url is %s, want %s: %w", current, want, errs.ErrAssertion)
	}
	return nil
}

// GetCurrentURL - returns current page URL
func (s *seleniumSession) GetCurrentURL(ctx context.Context) (string, error) {
	return s.wd.CurrentURL()
}

// Screenshot - captures the viewport; WebDriver has no full-page capture
func (s *seleniumSession) Screenshot(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.wd.Screenshot()
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w: %w", errs.ErrScreenshot, err)
	}
	return data, nil
}

// Close - closes browser and stops ChromeDriver service
func (s *seleniumSession) Close() error {
	var closeErr error
	if s.wd != nil {
		if err := s.wd.Quit(); err != nil {
			closeErr = multierr.Append(closeErr, fmt.Errorf("failed to quit webdriver: %w", err))
		}
		s.wd = nil
	}
	if s.service != nil {
		if err := s.service.Stop(); err != nil {
			closeErr = multierr.Append(closeErr, fmt.Errorf("failed to stop chromedriver: %w", err))
		}
		s.service = nil
	}
	return closeErr
}

// waitForElement - polls until a displayed element matches
func (s *seleniumSession) waitForElement(ctx context.Context, by, value string) (selenium.WebElement, error) {
	var found selenium.WebElement
	err := s.wd.WaitWithTimeoutAndInterval(func(wd selenium.WebDriver) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		elements, err := wd.FindElements(by, value)
		if err != nil {
			return false, nil
		}
		for _, el := range elements {
			if visible, err := el.IsDisplayed(); err == nil && visible {
				found = el
				return true, nil
			}
		}
		return false, nil
	}, defaultActionTimeout, pollInterval)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("not found after %s: %w", defaultActionTimeout, errs.ErrElementNotFound)
	}
	return found, nil
}
