package xpatlat

import "time"

// DefaultSearchURL is the base URL a search query is appended to.
const DefaultSearchURL = "https://x.com/search?q="

// DefaultLoginURL is the page opened for interactive login.
const DefaultLoginURL = "https://twitter.com/login"

// DefaultSelector matches language-tagged text inside article containers,
// which marks post bodies rather than UI chrome.
const DefaultSelector = "article div[lang]"

// DefaultQuery is the search run when none is given.
const DefaultQuery = "%22jon jones%22%20filter%3Aimages%20min_faves%3A400%20lang%3Atr&src=typed_query4"

// DefaultLimit is the default number of items collected per run.
const DefaultLimit = 10

// SearchURL appends an already URL-encoded query to base.
// The query is not encoded again.
func SearchURL(base, query string) string {
	if base == "" {
		base = DefaultSearchURL
	}
	return base + query
}

// PaginationPlan controls the scroll-and-wait rounds performed before
// extraction. The plan is fixed up front and never adapts to what loaded.
type PaginationPlan struct {
	// InitialSettle is waited once after navigation, before any scroll.
	InitialSettle time.Duration

	// Rounds is the number of scroll-and-wait cycles.
	Rounds int

	// Settle is waited after every scroll.
	Settle time.Duration

	// ScrollOffset is the distance in pixels of each scroll.
	ScrollOffset float64
}

// DefaultPaginationPlan returns the plan used when none is configured:
// 5s initial settle, then 5 rounds of a 3000px scroll followed by 3s.
func DefaultPaginationPlan() PaginationPlan {
	return PaginationPlan{
		InitialSettle: 5 * time.Second,
		Rounds:        5,
		Settle:        3 * time.Second,
		ScrollOffset:  3000,
	}
}

// Validate returns an error if the plan contains invalid fields.
func (p PaginationPlan) Validate() error {
	if p.Rounds < 0 {
		return Errorf(EINVALID, "pagination rounds must not be negative")
	}
	if p.InitialSettle < 0 || p.Settle < 0 {
		return Errorf(EINVALID, "pagination delays must not be negative")
	}
	return nil
}

// Duration returns the total time the plan spends waiting.
func (p PaginationPlan) Duration() time.Duration {
	return p.InitialSettle + time.Duration(p.Rounds)*p.Settle
}
