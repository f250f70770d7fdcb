// Package slog provides logging decorators for the xpatlat interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/xpatlat"
)

// Compile-time interface verification.
var (
	_ xpatlat.Browser       = (*LoggingBrowser)(nil)
	_ xpatlat.Session       = (*LoggingSession)(nil)
	_ xpatlat.LoginCapturer = (*LoggingCapturer)(nil)
)

// LoggingBrowser wraps a Browser with logging. Sessions it opens are
// wrapped in a LoggingSession.
type LoggingBrowser struct {
	next   xpatlat.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next xpatlat.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Open logs the launch and delegates to the wrapped browser.
func (b *LoggingBrowser) Open(ctx context.Context, cookies []*xpatlat.Cookie) (session xpatlat.Session, err error) {
	defer func(begin time.Time) {
		b.logger.Info("browser open",
			"cookies", len(cookies),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	session, err = b.next.Open(ctx, cookies)
	if err != nil {
		return nil, err
	}
	return &LoggingSession{next: session, logger: b.logger}, nil
}

// LoggingSession wraps a Session with logging.
type LoggingSession struct {
	next   xpatlat.Session
	logger *slog.Logger
}

// NewLoggingSession creates a new LoggingSession.
func NewLoggingSession(next xpatlat.Session, logger *slog.Logger) *LoggingSession {
	return &LoggingSession{next: next, logger: logger}
}

// Navigate logs the URL being loaded and delegates to the wrapped session.
func (s *LoggingSession) Navigate(ctx context.Context, url string) (page xpatlat.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url)
}

// Close logs the release and delegates to the wrapped session.
func (s *LoggingSession) Close() (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("browser close",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Close()
}

// LoggingCapturer wraps a LoginCapturer with logging.
type LoggingCapturer struct {
	next   xpatlat.LoginCapturer
	logger *slog.Logger
}

// NewLoggingCapturer creates a new LoggingCapturer.
func NewLoggingCapturer(next xpatlat.LoginCapturer, logger *slog.Logger) *LoggingCapturer {
	return &LoggingCapturer{next: next, logger: logger}
}

// Capture logs the login window and delegates to the wrapped capturer.
func (c *LoggingCapturer) Capture(ctx context.Context, loginURL string, window time.Duration) (cookies []*xpatlat.Cookie, err error) {
	c.logger.Info("waiting for login", "url", loginURL, "window", window)
	defer func(begin time.Time) {
		c.logger.Info("login capture",
			"cookies", len(cookies),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Capture(ctx, loginURL, window)
}
