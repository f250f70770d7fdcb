package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/xpatlat"
	"github.com/fwojciec/xpatlat/fs"
	"github.com/fwojciec/xpatlat/scrape"
)

// Validate checks flag values before any work is done.
func (c *SearchCmd) Validate() error {
	if c.Limit < 1 {
		return xpatlat.Errorf(xpatlat.EINVALID, "limit must be at least 1")
	}
	if err := c.plan().Validate(); err != nil {
		return err
	}
	_, err := c.query()
	return err
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	ctx := deps.Ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	query, err := c.query()
	if err != nil {
		reportError(deps, err, c.Timeout)
		return err
	}

	run := &scrape.Run{
		Credentials: deps.Credentials,
		Browser:     deps.Browser,
		Reporter:    xpatlat.NewTextReporter(deps.Stdout),
		URL:         xpatlat.SearchURL(c.BaseURL, query),
		Selector:    c.Selector,
		Limit:       c.Limit,
		Plan:        c.plan(),
		Logger:      deps.Logger,
	}
	if c.Dump != "" {
		w := fs.NewPageWriter(c.Dump)
		run.Dump = func(html string) error {
			return w.WritePage(run.URL, html)
		}
	}

	if _, err := run.Execute(ctx); err != nil {
		reportError(deps, err, c.Timeout)
		return err
	}
	return nil
}

// query returns the encoded search: the positional query with the filter
// flags appended, or DefaultQuery when both are empty.
func (c *SearchCmd) query() (string, error) {
	var filters xpatlat.SearchFilters
	if c.Template != "" {
		t, err := xpatlat.SearchTemplate(c.Template)
		if err != nil {
			return "", err
		}
		filters = t
	}
	filters = filters.Merge(xpatlat.SearchFilters{
		Text:            c.Text,
		From:            c.From,
		To:              c.To,
		Since:           c.Since,
		Until:           c.Until,
		MinFaves:        c.MinFaves,
		MinRetweets:     c.MinRetweets,
		Lang:            c.Lang,
		Media:           c.Media,
		Images:          c.Images,
		Videos:          c.Videos,
		Links:           c.Links,
		Question:        c.Question,
		Replies:         c.Replies,
		ExcludeRetweets: c.ExcludeRetweets,
		Hashtags:        c.Hashtag,
		Exclude:         c.Exclude,
		Sort:            c.Sort,
	})
	if err := filters.Validate(); err != nil {
		return "", err
	}

	if q := filters.Apply(c.Query); q != "" {
		return q, nil
	}
	return xpatlat.DefaultQuery, nil
}

func (c *SearchCmd) plan() xpatlat.PaginationPlan {
	return xpatlat.PaginationPlan{
		InitialSettle: c.InitialSettle,
		Rounds:        c.Rounds,
		Settle:        c.Settle,
		ScrollOffset:  c.ScrollOffset,
	}
}

// reportError prints a short explanation of a fatal error, with a hint
// where the fix is known.
func reportError(deps *Dependencies, err error, timeout time.Duration) {
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(deps.Stderr, "error: interrupted")
		return
	case errors.Is(err, context.DeadlineExceeded) && xpatlat.ErrorCode(err) == xpatlat.EINTERNAL:
		fmt.Fprintf(deps.Stderr, "error: run did not finish within %s\n", timeout)
		return
	}

	fmt.Fprintf(deps.Stderr, "error: %s\n", xpatlat.ErrorMessage(err))
	switch xpatlat.ErrorCode(err) {
	case xpatlat.ECREDENTIAL:
		fmt.Fprintln(deps.Stderr, "Hint: Run 'xpatlat login' to capture a session first")
	case xpatlat.ELAUNCH:
		fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
	}
}
