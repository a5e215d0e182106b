package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"uiverify/domain/errs"
	"uiverify/domain/interfaces"

	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type chromedpBrowser struct {
	headless   bool
	binaryPath string
	logger     *logrus.Logger
}

type chromedpSession struct {
	ctx         context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// NewChromedpBrowser - creates browser driven over the DevTools protocol
func NewChromedpBrowser(headless bool, binaryPath string, logger *logrus.Logger) interfaces.Browser {
	return &chromedpBrowser{
		headless:   headless,
		binaryPath: binaryPath,
		logger:     logger,
	}
}

func (b *chromedpBrowser) Name() string {
	return "chromedp"
}

// Launch - starts Chrome with a throwaway profile and opens one tab
func (b *chromedpBrowser) Launch(ctx context.Context) (interfaces.Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", b.headless),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1280, 720),
	)
	if b.binaryPath != "" {
		b.logger.Infof("Using Chrome binary at: %s", b.binaryPath)
		opts = append(opts, chromedp.ExecPath(b.binaryPath))
	}

	// The session outlives ctx; per-call contexts are derived in run.
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(b.logger.Debugf))

	session := &chromedpSession{
		ctx:         tabCtx,
		cancelTab:   cancelTab,
		cancelAlloc: cancelAlloc,
	}

	// The first Run allocates the browser and ties it to the context it is
	// given, so it must be the tab context itself.
	stop := context.AfterFunc(ctx, cancelTab)
	err := chromedp.Run(tabCtx)
	stop()
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to start chrome: %w: %w", errs.ErrBrowserLaunch, err), session.Close())
	}

	return session, nil
}

// run - executes actions bounded by timeout and by the caller's ctx
func (s *chromedpSession) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(runCtx, actions...)
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Goto - navigates and waits for the load event
func (s *chromedpSession) Goto(ctx context.Context, url string) error {
	if err := s.run(ctx, defaultActionTimeout, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w: %w", url, errs.ErrNavigation, err)
	}
	return nil
}

// FillByPlaceholder - replaces the value of the input by typing into it
func (s *chromedpSession) FillByPlaceholder(ctx context.Context, placeholder string, value string) error {
	sel := placeholderSelector(placeholder)

	err := s.run(ctx, defaultActionTimeout,
		chromedp.WaitVisible(sel, chromedp.ByQuery),
		chromedp.SetValue(sel, "", chromedp.ByQuery),
		chromedp.SendKeys(sel, value, chromedp.ByQuery),
	)
	if err != nil {
		return deadlineError(fmt.Sprintf("input with placeholder %q", placeholder), err)
	}
	return nil
}

// ClickByRole - clicks the first visible element matching role and name
func (s *chromedpSession) ClickByRole(ctx context.Context, role string, name string) error {
	if err := s.run(ctx, defaultActionTimeout, chromedp.Click(roleXPath(role, name), chromedp.BySearch)); err != nil {
		return deadlineError(fmt.Sprintf("%s %q", role, name), err)
	}
	return nil
}

// ExpectURL - polls the location until it equals want
func (s *chromedpSession) ExpectURL(ctx context.Context, want string) error {
	deadline := time.Now().Add(defaultExpectTimeout)

	var current string
	for {
		url, err := s.GetCurrentURL(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
		} else {
			current = url
			if current == want {
				return nil
			}
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("page url is %s, want %s: %w", current, want, errs.ErrAssertion)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// GetCurrentURL - returns the location of the tab
func (s *chromedpSession) GetCurrentURL(ctx context.Context) (string, error) {
	var url string
	if err := s.run(ctx, defaultExpectTimeout, chromedp.Location(&url)); err != nil {
		return "", err
	}
	return url, nil
}

// Screenshot - captures the full page; quality 100 yields PNG
func (s *chromedpSession) Screenshot(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := s.run(ctx, defaultActionTimeout, chromedp.FullScreenshot(&buf, 100)); err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w: %w", errs.ErrScreenshot, err)
	}
	return buf, nil
}

// Close - closes the tab and the browser process
func (s *chromedpSession) Close() error {
	var closeErr error
	if s.ctx != nil {
		if err := chromedp.Cancel(s.ctx); err != nil && !errors.Is(err, context.Canceled) {
			closeErr = fmt.Errorf("failed to close chrome: %w", err)
		}
		s.ctx = nil
	}
	if s.cancelTab != nil {
		s.cancelTab()
	}
	if s.cancelAlloc != nil {
		s.cancelAlloc()
	}
	return closeErr
}

// deadlineError - maps an expired wait to ErrElementNotFound
func deadlineError(what string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s not found: %w: %w", what, errs.ErrElementNotFound, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}
