package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/xpatlat"
)

// Ensure LoggingCredentialStore implements xpatlat.CredentialStore.
var _ xpatlat.CredentialStore = (*LoggingCredentialStore)(nil)

// LoggingCredentialStore wraps a CredentialStore with logging.
// Cookie values are never logged.
type LoggingCredentialStore struct {
	next   xpatlat.CredentialStore
	logger *slog.Logger
}

// NewLoggingCredentialStore creates a new LoggingCredentialStore.
func NewLoggingCredentialStore(next xpatlat.CredentialStore, logger *slog.Logger) *LoggingCredentialStore {
	return &LoggingCredentialStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the number of cookies.
func (s *LoggingCredentialStore) Load(ctx context.Context) (cookies []*xpatlat.Cookie, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load cookies",
			"count", len(cookies),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped store and logs the number of cookies.
func (s *LoggingCredentialStore) Save(ctx context.Context, cookies []*xpatlat.Cookie) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save cookies",
			"count", len(cookies),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, cookies)
}
