// Package scrape runs a single authenticated search extraction: load the
// captured cookies, open the search in a browser, scroll for more results
// and collect a bounded list of post texts.
package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/xpatlat"
)

// Run is one extraction run. Configure the fields, then call Execute once.
type Run struct {
	Credentials xpatlat.CredentialStore
	Browser     xpatlat.Browser
	Reporter    xpatlat.Reporter

	// URL is the fully formed search URL. It is navigated to unchanged.
	URL string

	// Selector identifies candidate nodes. Defaults to xpatlat.DefaultSelector.
	Selector string

	// Limit is the maximum number of items collected.
	Limit int

	Plan  xpatlat.PaginationPlan
	Sleep SleepFunc

	// Dump, if set, receives the rendered HTML right before extraction.
	// Dump errors are logged and do not fail the run.
	Dump func(html string) error

	// OnState, if set, is called on every state transition.
	OnState func(state xpatlat.RunState)

	// OnSkip, if set, is called for each candidate that failed to read.
	OnSkip SkipFunc

	Logger *slog.Logger

	state xpatlat.RunState
}

// State returns the current state of the run.
func (r *Run) State() xpatlat.RunState {
	if r.state == "" {
		return xpatlat.StateIdle
	}
	return r.state
}

// Execute performs the run and returns the collected items.
//
// Credentials are loaded before the browser is opened, so a missing or
// malformed cookie file fails with ECREDENTIAL without launching anything.
// Once opened, the browser session is closed on every return path, including
// cancellation of ctx.
func (r *Run) Execute(ctx context.Context) (items []string, err error) {
	logger := r.logger()
	begin := time.Now()
	defer func() {
		if err != nil {
			failedAt := r.State()
			r.transition(xpatlat.StateFailed)
			logger.Error("run failed", "state", failedAt, "duration", time.Since(begin), "err", err)
		}
	}()

	if err := r.validate(); err != nil {
		return nil, err
	}

	cookies, err := r.Credentials.Load(ctx)
	if err != nil {
		if xpatlat.ErrorCode(err) != xpatlat.ECREDENTIAL {
			err = xpatlat.Errorf(xpatlat.ECREDENTIAL, "loading cookies: %w", err)
		}
		return nil, err
	}
	r.transition(xpatlat.StateCredentialsLoaded)
	logger.Debug("cookies loaded", "count", len(cookies))

	session, err := r.Browser.Open(ctx, cookies)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			logger.Warn("closing browser session", "err", cerr)
		}
	}()
	r.transition(xpatlat.StateContextOpened)

	page, err := session.Navigate(ctx, r.URL)
	if err != nil {
		return nil, err
	}
	r.transition(xpatlat.StateNavigated)

	r.transition(xpatlat.StatePaginating)
	paginator := &Paginator{Plan: r.Plan, Sleep: r.Sleep, Logger: logger}
	if err := paginator.Paginate(ctx, page); err != nil {
		return nil, err
	}

	if r.Dump != nil {
		r.dump(ctx, page)
	}

	r.transition(xpatlat.StateExtracting)
	extractor := &Extractor{
		Selector: r.Selector,
		Limit:    r.Limit,
		OnSkip:   r.OnSkip,
		Logger:   logger,
	}
	items, err = extractor.Extract(ctx, page)
	if err != nil {
		return nil, err
	}

	if r.Reporter != nil {
		r.Reporter.Report(items)
	}
	r.transition(xpatlat.StateReported)

	r.transition(xpatlat.StateDone)
	logger.Info("run complete", "items", len(items), "duration", time.Since(begin))
	return items, nil
}

func (r *Run) validate() error {
	if r.Credentials == nil {
		return xpatlat.Errorf(xpatlat.EINVALID, "credential store required")
	}
	if r.Browser == nil {
		return xpatlat.Errorf(xpatlat.EINVALID, "browser required")
	}
	if r.URL == "" {
		return xpatlat.Errorf(xpatlat.EINVALID, "search URL required")
	}
	if r.Limit < 0 {
		return xpatlat.Errorf(xpatlat.EINVALID, "limit must not be negative")
	}
	return r.Plan.Validate()
}

func (r *Run) dump(ctx context.Context, page xpatlat.Page) {
	html, err := page.HTML(ctx)
	if err == nil {
		err = r.Dump(html)
	}
	if err != nil {
		r.logger().Warn("dumping rendered page", "err", err)
	}
}

func (r *Run) transition(state xpatlat.RunState) {
	r.state = state
	r.logger().Debug("state", "state", state)
	if r.OnState != nil {
		r.OnState(state)
	}
}

func (r *Run) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}
