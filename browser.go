package xpatlat

import (
	"context"
	"time"
)

// Browser opens authenticated browsing sessions.
type Browser interface {
	// Open launches a rendering engine and an isolated browsing context,
	// then injects cookies into it before any page is loaded.
	// Returns ELAUNCH if the engine or context cannot be created.
	Open(ctx context.Context, cookies []*Cookie) (Session, error)
}

// Session is a browsing context holding injected credentials.
// A Session is owned by a single run and is not safe for concurrent use.
type Session interface {
	// Navigate loads the URL and returns the rendered page.
	// Returns ENAVIGATION if the page cannot be loaded.
	Navigate(ctx context.Context, url string) (Page, error)

	// Close releases the context and the engine process.
	// Close is safe to call multiple times.
	Close() error
}

// Page is a rendered document.
type Page interface {
	// Scroll moves the viewport dy pixels towards the end of the document.
	Scroll(ctx context.Context, dy float64) error

	// Candidates returns the nodes matching selector in document order.
	Candidates(ctx context.Context, selector string) ([]Node, error)

	// HTML returns the serialized document as currently rendered.
	HTML(ctx context.Context) (string, error)
}

// Node is an element of a rendered Page.
type Node interface {
	// Text returns the rendered text of the node.
	Text(ctx context.Context) (string, error)
}

// LoginCapturer captures cookies from an interactive login.
type LoginCapturer interface {
	// Capture opens loginURL in a visible browser, waits for window to give
	// the user time to log in, then returns the context's cookies. It does
	// not check whether the login actually succeeded.
	Capture(ctx context.Context, loginURL string, window time.Duration) ([]*Cookie, error)
}
