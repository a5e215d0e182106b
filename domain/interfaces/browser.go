package interfaces

import "context"

// Browser launches isolated browser sessions
type Browser interface {
	// Name returns the driver name used in logs and reports
	Name() string

	// Launch starts the browser process, an isolated context and one page.
	// The returned session owns all of them and must be closed.
	Launch(ctx context.Context) (Session, error)
}

// Session defines the page-level operations of a single run
type Session interface {
	// Goto navigates the page to a URL and waits for the load event
	Goto(ctx context.Context, url string) error

	// FillByPlaceholder sets the value of the input with the given placeholder
	FillByPlaceholder(ctx context.Context, placeholder string, value string) error

	// ClickByRole activates the element with the given accessible role and name
	ClickByRole(ctx context.Context, role string, name string) error

	// ExpectURL waits until the page URL equals want
	ExpectURL(ctx context.Context, want string) error

	// GetCurrentURL returns the current page URL
	GetCurrentURL(ctx context.Context) (string, error)

	// Screenshot captures the page as PNG
	Screenshot(ctx context.Context) ([]byte, error)

	// Close releases the page, the context and the browser process
	Close() error
}
