package browser

import (
	"context"
	"errors"
	"fmt"

	"uiverify/domain/errs"
	"uiverify/domain/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type playwrightBrowser struct {
	engine   string
	headless bool
	logger   *logrus.Logger
}

type playwrightSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	expect  playwright.PlaywrightAssertions
}

// NewPlaywrightBrowser - creates browser backed by playwright-go
func NewPlaywrightBrowser(engine string, headless bool, logger *logrus.Logger) interfaces.Browser {
	return &playwrightBrowser{
		engine:   engine,
		headless: headless,
		logger:   logger,
	}
}

// InstallPlaywright - downloads the playwright driver and the given engines
func InstallPlaywright(engines ...string) error {
	if err := playwright.Install(&playwright.RunOptions{Browsers: engines}); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}
	return nil
}

func (b *playwrightBrowser) Name() string {
	return "playwright/" + b.engine
}

// Launch - starts playwright, the browser, a fresh context and a page
func (b *playwrightBrowser) Launch(ctx context.Context) (interfaces.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright (try `uiverify install`): %w: %w", errs.ErrBrowserLaunch, err)
	}

	var browserType playwright.BrowserType
	switch b.engine {
	case "firefox":
		browserType = pw.Firefox
	case "webkit":
		browserType = pw.WebKit
	default:
		browserType = pw.Chromium
	}

	b.logger.Debugf("Launching %s (headless=%t)", b.engine, b.headless)
	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(b.headless),
	})
	if err != nil {
		return nil, multierr.Append(
			fmt.Errorf("failed to launch %s: %w: %w", b.engine, errs.ErrBrowserLaunch, err),
			pw.Stop(),
		)
	}

	session := &playwrightSession{
		pw:      pw,
		browser: browser,
		expect:  playwright.NewPlaywrightAssertions(),
	}

	session.context, err = browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
	})
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to create context: %w: %w", errs.ErrBrowserLaunch, err), session.Close())
	}

	session.page, err = session.context.NewPage()
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to create page: %w: %w", errs.ErrBrowserLaunch, err), session.Close())
	}

	return session, nil
}

// Goto - navigates to the URL with default load semantics
func (s *playwrightSession) Goto(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.page.Goto(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w: %w", url, errs.ErrNavigation, err)
	}
	return nil
}

// FillByPlaceholder - fills the input located by its placeholder text
func (s *playwrightSession) FillByPlaceholder(ctx context.Context, placeholder string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.page.GetByPlaceholder(placeholder).Fill(value); err != nil {
		return locatorError(fmt.Sprintf("input with placeholder %q", placeholder), err)
	}
	return nil
}

// ClickByRole - clicks the element located by role and accessible name
func (s *playwrightSession) ClickByRole(ctx context.Context, role string, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	locator := s.page.GetByRole(playwright.AriaRole(role), playwright.PageGetByRoleOptions{
		Name: name,
	})
	if err := locator.Click(); err != nil {
		return locatorError(fmt.Sprintf("%s %q", role, name), err)
	}
	return nil
}

// ExpectURL - waits for the page URL to equal want
func (s *playwrightSession) ExpectURL(ctx context.Context, want string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.expect.Page(s.page).ToHaveURL(want); err != nil {
		return fmt.Errorf("page url is %s, want %s: %w: %w", s.page.URL(), want, errs.ErrAssertion, err)
	}
	return nil
}

// GetCurrentURL - returns the current page URL
func (s *playwrightSession) GetCurrentURL(ctx context.Context) (string, error) {
	return s.page.URL(), nil
}

// Screenshot - captures the full page as PNG
func (s *playwrightSession) Screenshot(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
		Type:     playwright.ScreenshotTypePng,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w: %w", errs.ErrScreenshot, err)
	}
	return data, nil
}

// Close - closes context, browser and the playwright driver
func (s *playwrightSession) Close() error {
	var closeErr error

	if s.context != nil {
		if err := s.context.Close(); err != nil && !isClosedError(err) {
			closeErr = multierr.Append(closeErr, fmt.Errorf("failed to close context: %w", err))
		}
		s.context = nil
	}

	if s.browser != nil {
		if err := s.browser.Close(); err != nil && !isClosedError(err) {
			closeErr = multierr.Append(closeErr, fmt.Errorf("failed to close browser: %w", err))
		}
		s.browser = nil
	}

	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			closeErr = multierr.Append(closeErr, fmt.Errorf("failed to stop playwright: %w", err))
		}
		s.pw = nil
	}

	return closeErr
}

// locatorError - maps playwright timeouts to ErrElementNotFound
func locatorError(what string, err error) error {
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%s not found: %w: %w", what, errs.ErrElementNotFound, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func isClosedError(err error) bool {
	return errors.Is(err, playwright.ErrTargetClosed)
}
