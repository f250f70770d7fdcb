package mock

import (
	"context"
	"time"

	"github.com/fwojciec/xpatlat"
)

// Compile-time interface verification.
var (
	_ xpatlat.Browser       = (*Browser)(nil)
	_ xpatlat.Session       = (*Session)(nil)
	_ xpatlat.Page          = (*Page)(nil)
	_ xpatlat.Node          = (*Node)(nil)
	_ xpatlat.LoginCapturer = (*LoginCapturer)(nil)
)

// Browser is a mock implementation of xpatlat.Browser.
type Browser struct {
	OpenFn func(ctx context.Context, cookies []*xpatlat.Cookie) (xpatlat.Session, error)
}

func (b *Browser) Open(ctx context.Context, cookies []*xpatlat.Cookie) (xpatlat.Session, error) {
	return b.OpenFn(ctx, cookies)
}

// Session is a mock implementation of xpatlat.Session.
type Session struct {
	NavigateFn func(ctx context.Context, url string) (xpatlat.Page, error)
	CloseFn    func() error
}

func (s *Session) Navigate(ctx context.Context, url string) (xpatlat.Page, error) {
	return s.NavigateFn(ctx, url)
}

func (s *Session) Close() error {
	return s.CloseFn()
}

// Page is a mock implementation of xpatlat.Page.
type Page struct {
	ScrollFn     func(ctx context.Context, dy float64) error
	CandidatesFn func(ctx context.Context, selector string) ([]xpatlat.Node, error)
	HTMLFn       func(ctx context.Context) (string, error)
}

func (p *Page) Scroll(ctx context.Context, dy float64) error {
	return p.ScrollFn(ctx, dy)
}

func (p *Page) Candidates(ctx context.Context, selector string) ([]xpatlat.Node, error) {
	return p.CandidatesFn(ctx, selector)
}

func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.HTMLFn(ctx)
}

// Node is a mock implementation of xpatlat.Node.
type Node struct {
	TextFn func(ctx context.Context) (string, error)
}

func (n *Node) Text(ctx context.Context) (string, error) {
	return n.TextFn(ctx)
}

// LoginCapturer is a mock implementation of xpatlat.LoginCapturer.
type LoginCapturer struct {
	CaptureFn func(ctx context.Context, loginURL string, window time.Duration) ([]*xpatlat.Cookie, error)
}

func (c *LoginCapturer) Capture(ctx context.Context, loginURL string, window time.Duration) ([]*xpatlat.Cookie, error) {
	return c.CaptureFn(ctx, loginURL, window)
}
