package scrape

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fwojciec/xpatlat"
)

// SkipFunc is called for each candidate whose text could not be read.
// index is the candidate's position in document order; err has code EEXTRACT.
type SkipFunc func(index int, err error)

// Extractor collects the text of candidate nodes from a page.
type Extractor struct {
	// Selector identifies candidate nodes. Defaults to xpatlat.DefaultSelector.
	Selector string

	// Limit is the maximum number of items collected.
	Limit int

	OnSkip SkipFunc
	Logger *slog.Logger
}

// Extract reads candidates in document order until Limit items were
// collected or candidates run out. A candidate that fails to read is skipped
// and never counts towards Limit. Candidates after the Limit-th success are
// not read.
func (e *Extractor) Extract(ctx context.Context, page xpatlat.Page) ([]string, error) {
	if e.Limit <= 0 {
		return []string{}, nil
	}

	selector := e.Selector
	if selector == "" {
		selector = xpatlat.DefaultSelector
	}
	logger := e.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	nodes, err := page.Candidates(ctx, selector)
	if err != nil {
		var appErr *xpatlat.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, xpatlat.Errorf(xpatlat.EINTERNAL, "querying candidates %q: %w", selector, err)
	}
	logger.Debug("candidates", "selector", selector, "count", len(nodes))

	items := make([]string, 0, min(e.Limit, len(nodes)))
	for i, node := range nodes {
		if len(items) >= e.Limit {
			break
		}

		text, err := node.Text(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			skipErr := xpatlat.Errorf(xpatlat.EEXTRACT, "candidate %d: %w", i, err)
			logger.Warn("skipping candidate", "index", i, "err", err)
			if e.OnSkip != nil {
				e.OnSkip(i, skipErr)
			}
			continue
		}

		items = append(items, text)
	}

	return items, nil
}
