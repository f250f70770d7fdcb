package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FormatPage prefixes rendered HTML with a comment recording where and when
// it was captured. The comment is ignored by HTML parsers, so the result can
// be fed back to the extract command unchanged.
func FormatPage(sourceURL string, captured time.Time, html string) string {
	var b strings.Builder
	b.WriteString("<!--\n")
	b.WriteString("source: ")
	b.WriteString(strings.ReplaceAll(sourceURL, "--", "%2D%2D"))
	b.WriteString("\ncaptured: ")
	b.WriteString(captured.UTC().Format(time.RFC3339))
	b.WriteString("\n-->\n")
	b.WriteString(html)
	return b.String()
}

// PageWriter saves rendered pages for offline extraction.
type PageWriter struct {
	path string

	// Now returns the capture time. Defaults to time.Now.
	Now func() time.Time
}

// NewPageWriter creates a PageWriter that writes to path.
func NewPageWriter(path string) *PageWriter {
	return &PageWriter{path: path, Now: time.Now}
}

// WritePage writes html captured from sourceURL, replacing any previous dump.
func (w *PageWriter) WritePage(sourceURL, html string) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	return os.WriteFile(w.path, []byte(FormatPage(sourceURL, now(), html)), 0644)
}
