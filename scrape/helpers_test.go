package scrape_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fwojciec/xpatlat"
	"github.com/fwojciec/xpatlat/mock"
)

// recorder records page interactions and waits in call order.
type recorder struct {
	mu     sync.Mutex
	events []string
	sleeps []time.Duration
}

func (r *recorder) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sleeps = append(r.sleeps, d)
	r.events = append(r.events, "sleep "+d.String())
	return nil
}

// readTracker builds nodes that record which candidates were read.
type readTracker struct {
	mu   sync.Mutex
	read []int
}

func (rt *readTracker) nodes(texts ...string) []xpatlat.Node {
	nodes := make([]xpatlat.Node, len(texts))
	for i, text := range texts {
		nodes[i] = &mock.Node{
			TextFn: func(context.Context) (string, error) {
				rt.mu.Lock()
				rt.read = append(rt.read, i)
				rt.mu.Unlock()
				if text == "" {
					return "", errors.New("node detached")
				}
				return text, nil
			},
		}
	}
	return nodes
}

func pageWith(nodes []xpatlat.Node) *mock.Page {
	return &mock.Page{
		ScrollFn: func(context.Context, float64) error { return nil },
		CandidatesFn: func(context.Context, string) ([]xpatlat.Node, error) {
			return nodes, nil
		},
		HTMLFn: func(context.Context) (string, error) { return "<html></html>", nil },
	}
}
