package mock

import (
	"context"

	"github.com/fwojciec/xpatlat"
)

// TextNodes returns nodes whose Text returns the given strings in order.
func TextNodes(texts ...string) []xpatlat.Node {
	nodes := make([]xpatlat.Node, len(texts))
	for i, text := range texts {
		nodes[i] = &Node{
			TextFn: func(context.Context) (string, error) { return text, nil },
		}
	}
	return nodes
}
