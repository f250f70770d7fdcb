package main

import (
	"os"

	"github.com/fwojciec/xpatlat"
	"github.com/fwojciec/xpatlat/goquery"
	"github.com/fwojciec/xpatlat/scrape"
)

// Validate checks flag values before any work is done.
func (c *ExtractCmd) Validate() error {
	if c.Limit < 1 {
		return xpatlat.Errorf(xpatlat.EINVALID, "limit must be at least 1")
	}
	return nil
}

// Run executes the extract command against a saved page.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	page, err := goquery.NewPage(f)
	if err != nil {
		reportError(deps, err, 0)
		return err
	}

	extractor := &scrape.Extractor{
		Selector: c.Selector,
		Limit:    c.Limit,
		Logger:   deps.Logger,
	}
	items, err := extractor.Extract(deps.Ctx, page)
	if err != nil {
		reportError(deps, err, 0)
		return err
	}

	xpatlat.NewTextReporter(deps.Stdout).Report(items)
	return nil
}
