package xpatlat

import (
	"fmt"
	"io"
	"strings"
)

// Reporter presents the items collected by a run.
type Reporter interface {
	Report(items []string)
}

// FormatItems formats items for terminal output: a count line followed by
// each item with a 1-based index. Items are separated by blank lines.
func FormatItems(items []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d items:\n", len(items))
	for i, item := range items {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, item)
	}
	return b.String()
}

// Ensure TextReporter implements Reporter at compile time.
var _ Reporter = (*TextReporter)(nil)

// TextReporter writes FormatItems output to W.
type TextReporter struct {
	W io.Writer
}

// NewTextReporter returns a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{W: w}
}

// Report writes the items. Write errors are ignored.
func (r *TextReporter) Report(items []string) {
	_, _ = io.WriteString(r.W, FormatItems(items))
}
