package scrape

import (
	"context"
	"log/slog"

	"github.com/fwojciec/xpatlat"
)

// Paginator loads more results by scrolling a page on a fixed schedule.
// It never checks whether a scroll actually revealed new content.
type Paginator struct {
	Plan   xpatlat.PaginationPlan
	Sleep  SleepFunc
	Logger *slog.Logger
}

// Paginate waits the initial settle delay, then performs Plan.Rounds
// scroll-and-wait cycles. Scroll failures are logged and ignored; only
// context cancellation is returned.
func (p *Paginator) Paginate(ctx context.Context, page xpatlat.Page) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = Sleep
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := sleep(ctx, p.Plan.InitialSettle); err != nil {
		return err
	}

	for round := 1; round <= p.Plan.Rounds; round++ {
		if err := page.Scroll(ctx, p.Plan.ScrollOffset); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			logger.Debug("scroll failed", "round", round, "err", err)
		}
		if err := sleep(ctx, p.Plan.Settle); err != nil {
			return err
		}
		logger.Debug("pagination round", "round", round, "of", p.Plan.Rounds)
	}

	return nil
}
