package rod

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/xpatlat"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Compile-time interface verification.
var (
	_ xpatlat.Session = (*Session)(nil)
	_ xpatlat.Page    = (*Page)(nil)
	_ xpatlat.Node    = (*Node)(nil)
)

// closeTimeout bounds the polite browser shutdown before the process is killed.
const closeTimeout = 5 * time.Second

// Session owns a Chrome process and one incognito context inside it.
type Session struct {
	launcher   *launcher.Launcher
	browser    *rod.Browser
	context    *rod.Browser
	navTimeout time.Duration

	mu     sync.Mutex
	closed atomic.Bool
}

// Navigate opens a new page in the session's context and loads url.
// It fails with ENAVIGATION on network errors, on a non-2xx status of the
// main document after redirects, or when the load does not finish within the
// navigation timeout.
func (s *Session) Navigate(ctx context.Context, url string) (xpatlat.Page, error) {
	if s.closed.Load() {
		return nil, xpatlat.Errorf(xpatlat.EINVALID, "session is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.context.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, xpatlat.Errorf(xpatlat.ENAVIGATION, "opening page: %w", err)
	}

	timeout := s.navTimeout
	if timeout <= 0 {
		timeout = DefaultNavigationTimeout
	}
	navCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	p := page.Context(navCtx)

	if err := (proto.NetworkEnable{}).Call(p); err != nil {
		return nil, xpatlat.Errorf(xpatlat.ENAVIGATION, "enabling network events: %w", err)
	}

	// Redirect hops do not emit a response event, so status is the final
	// document's status.
	var status int
	wait := p.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument || e.FrameID != page.FrameID {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := p.Navigate(url); err != nil {
		return nil, xpatlat.Errorf(xpatlat.ENAVIGATION, "navigating to %s: %w", url, err)
	}
	wait()
	if err := navCtx.Err(); err != nil {
		return nil, xpatlat.Errorf(xpatlat.ENAVIGATION, "navigating to %s: %w", url, err)
	}
	if status < 200 || status >= 300 {
		return nil, xpatlat.Errorf(xpatlat.ENAVIGATION, "navigating to %s: HTTP %d", url, status)
	}

	if err := p.WaitLoad(); err != nil {
		return nil, xpatlat.Errorf(xpatlat.ENAVIGATION, "waiting for %s to load: %w", url, err)
	}

	return &Page{page: page}, nil
}

// Close shuts down the browser and kills the launcher process.
// Close is safe to call multiple times.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	if s.browser != nil {
		// The browser may be bound to an already canceled run context.
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		err = s.browser.Context(ctx).Close()
		cancel()
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher.Cleanup()
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (s *Session) LauncherPID() int {
	if s.launcher == nil {
		return 0
	}
	return s.launcher.PID()
}

// Page is a page loaded by a Session.
type Page struct {
	page *rod.Page
}

// Scroll turns the mouse wheel by dy pixels, which is what infinite-scroll
// listeners react to. The event is dispatched directly since rod's Mouse
// keeps the page it was created with and ignores ctx.
func (p *Page) Scroll(ctx context.Context, dy float64) error {
	return proto.InputDispatchMouseEvent{
		Type:   proto.InputDispatchMouseEventTypeMouseWheel,
		DeltaY: dy,
	}.Call(p.page.Context(ctx))
}

// Candidates returns the elements matching selector without waiting for
// them to appear.
func (p *Page) Candidates(ctx context.Context, selector string) ([]xpatlat.Node, error) {
	els, err := p.page.Context(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}

	nodes := make([]xpatlat.Node, len(els))
	for i, el := range els {
		nodes[i] = &Node{el: el}
	}
	return nodes, nil
}

// HTML returns the rendered document.
func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.page.Context(ctx).HTML()
}

// Node is an element on a Page.
type Node struct {
	el *rod.Element
}

// Text returns the element's rendered text (innerText).
func (n *Node) Text(ctx context.Context) (string, error) {
	return n.el.Context(ctx).Text()
}
