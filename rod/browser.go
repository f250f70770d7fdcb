package rod

import (
	"context"
	"time"

	"github.com/fwojciec/xpatlat"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultNavigationTimeout bounds a single Navigate call.
const DefaultNavigationTimeout = 30 * time.Second

// Compile-time interface verification.
var (
	_ xpatlat.Browser       = (*Browser)(nil)
	_ xpatlat.LoginCapturer = (*Browser)(nil)
)

// Browser opens Chrome sessions through the DevTools protocol.
// Every Open launches a separate Chrome process owned by the returned Session.
type Browser struct {
	headless   bool
	bin        string
	navTimeout time.Duration
}

// Option configures a Browser.
type Option func(*Browser)

// WithHeadless sets whether Chrome runs without a window. Defaults to true.
func WithHeadless(headless bool) Option {
	return func(b *Browser) {
		b.headless = headless
	}
}

// WithBin sets the Chrome binary. By default rod looks the browser up and
// downloads one if none is installed.
func WithBin(path string) Option {
	return func(b *Browser) {
		b.bin = path
	}
}

// WithNavigationTimeout sets the timeout for a single navigation.
// Defaults to DefaultNavigationTimeout (30s) if not specified.
func WithNavigationTimeout(d time.Duration) Option {
	return func(b *Browser) {
		b.navTimeout = d
	}
}

// NewBrowser creates a new Browser. No process is started until Open.
func NewBrowser(opts ...Option) *Browser {
	b := &Browser{
		headless:   true,
		navTimeout: DefaultNavigationTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open launches Chrome, creates an incognito context and injects cookies
// into it. Nothing has been navigated when Open returns.
func (b *Browser) Open(ctx context.Context, cookies []*xpatlat.Cookie) (xpatlat.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lnchr, browser, err := b.launch(ctx)
	if err != nil {
		return nil, err
	}
	s := &Session{
		launcher:   lnchr,
		browser:    browser,
		navTimeout: b.navTimeout,
	}

	incognito, err := browser.Incognito()
	if err != nil {
		_ = s.Close()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, xpatlat.Errorf(xpatlat.ELAUNCH, "creating browser context: %w", err)
	}
	s.context = incognito

	if len(cookies) > 0 {
		if err := incognito.SetCookies(cookieParams(cookies)); err != nil {
			_ = s.Close()
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, xpatlat.Errorf(xpatlat.ELAUNCH, "injecting cookies: %w", err)
		}
	}

	return s, nil
}

// Capture opens loginURL in a fresh browser, waits for window and returns
// whatever cookies the browser holds at that point.
func (b *Browser) Capture(ctx context.Context, loginURL string, window time.Duration) ([]*xpatlat.Cookie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lnchr, browser, err := b.launch(ctx)
	if err != nil {
		return nil, err
	}
	s := &Session{launcher: lnchr, browser: browser}
	defer s.Close()

	if _, err := browser.Page(proto.TargetCreateTarget{URL: loginURL}); err != nil {
		return nil, xpatlat.Errorf(xpatlat.ENAVIGATION, "opening %s: %w", loginURL, err)
	}

	timer := time.NewTimer(window)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	cookies, err := browser.GetCookies()
	if err != nil {
		return nil, xpatlat.Errorf(xpatlat.EINTERNAL, "reading cookies: %w", err)
	}
	return fromNetworkCookies(cookies), nil
}

// launch starts Chrome with flags that keep timers and rendering running
// while the page sits in the background during settle waits. ctx bounds the
// binary download, the process start and the DevTools connection, and the
// returned browser is bound to it.
func (b *Browser) launch(ctx context.Context) (*launcher.Launcher, *rod.Browser, error) {
	lnchr := launcher.New().
		Context(ctx).
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(b.headless)
	if b.bin != "" {
		lnchr = lnchr.Bin(b.bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		return nil, nil, xpatlat.Errorf(xpatlat.ELAUNCH, "launching browser: %w", err)
	}

	browser := rod.New().Context(ctx).ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		return nil, nil, xpatlat.Errorf(xpatlat.ELAUNCH, "connecting to browser: %w", err)
	}

	return lnchr, browser, nil
}

// cookieParams converts stored cookies to DevTools cookie parameters.
// Session cookies are sent without an expiry.
func cookieParams(cookies []*xpatlat.Cookie) []*proto.NetworkCookieParam {
	params := make([]*proto.NetworkCookieParam, 0, len(cookies))
	for _, c := range cookies {
		p := &proto.NetworkCookieParam{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Secure:   c.Secure,
			HTTPOnly: c.HTTPOnly,
			SameSite: proto.NetworkCookieSameSite(c.SameSite),
		}
		if !c.Session() {
			p.Expires = proto.TimeSinceEpoch(c.Expires)
		}
		params = append(params, p)
	}
	return params
}

// fromNetworkCookies converts browser cookies to stored cookies.
// Session cookies are written with expires -1.
func fromNetworkCookies(cookies []*proto.NetworkCookie) []*xpatlat.Cookie {
	out := make([]*xpatlat.Cookie, 0, len(cookies))
	for _, c := range cookies {
		expires := float64(c.Expires)
		if c.Session {
			expires = -1
		}
		out = append(out, &xpatlat.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  expires,
			HTTPOnly: c.HTTPOnly,
			Secure:   c.Secure,
			SameSite: string(c.SameSite),
		})
	}
	return out
}
