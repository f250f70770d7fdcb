package mock

import "github.com/fwojciec/xpatlat"

var _ xpatlat.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of xpatlat.Reporter.
type Reporter struct {
	ReportFn func(items []string)
}

func (r *Reporter) Report(items []string) {
	r.ReportFn(items)
}
