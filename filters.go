package xpatlat

import (
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Result tabs selectable with SearchFilters.Sort.
const (
	SortTop    = "top"
	SortLatest = "live"
	SortPeople = "user"
	SortPhotos = "image"
	SortVideos = "video"
)

// Filter bounds.
const (
	MaxFilterTextLength = 500
	MaxFilterCount      = 1_000_000
)

// FilterDateLayout is the layout of SearchFilters.Since and Until.
const FilterDateLayout = "2006-01-02"

// FilterLanguages are the accepted values of SearchFilters.Lang.
var FilterLanguages = []string{
	"ar", "bg", "ca", "cs", "da", "de", "el", "en", "es", "et", "fa", "fi",
	"fr", "he", "hi", "hr", "hu", "id", "it", "ja", "ko", "lt", "lv", "ms",
	"nl", "no", "pl", "pt", "ro", "ru", "sk", "sl", "sr", "sv", "th", "tr",
	"uk", "ur", "vi", "zh-cn", "zh-tw",
}

var usernameRE = regexp.MustCompile(`^[A-Za-z0-9_]{1,15}$`)

// SearchFilters describes a search as individual operators instead of a
// hand-encoded query string.
type SearchFilters struct {
	// Text is free text, searched as typed.
	Text string

	// From and To restrict the author and the addressee. A leading @ is
	// dropped.
	From string
	To   string

	// Since and Until bound the post date, inclusive, as YYYY-MM-DD.
	Since string
	Until string

	MinFaves    int
	MinRetweets int
	Lang        string

	Media           bool
	Images          bool
	Videos          bool
	Links           bool
	Question        bool
	Replies         bool
	ExcludeRetweets bool

	// Hashtags are required tags, with or without the leading #.
	Hashtags []string

	// Exclude lists words that must not appear.
	Exclude []string

	// Sort selects the result tab. Empty keeps the site default.
	Sort string
}

// IsZero reports whether f selects nothing.
func (f SearchFilters) IsZero() bool {
	return len(f.terms()) == 0 && f.Sort == ""
}

// Validate returns EINVALID listing every problem found in f.
func (f SearchFilters) Validate() error {
	var problems []string

	if len([]rune(f.Text)) > MaxFilterTextLength {
		problems = append(problems, "text longer than "+strconv.Itoa(MaxFilterTextLength)+" characters")
	}
	if strings.Count(f.Text, `"`)%2 != 0 {
		problems = append(problems, "text has unbalanced quotes")
	}

	for _, u := range []struct{ field, name string }{{"from", f.From}, {"to", f.To}} {
		if name := username(u.name); name != "" && !usernameRE.MatchString(name) {
			problems = append(problems, u.field+" must be 1-15 letters, digits or underscores")
		}
	}

	since, sinceOK := parseFilterDate("since", f.Since, &problems)
	until, untilOK := parseFilterDate("until", f.Until, &problems)
	if sinceOK && untilOK && since.After(until) {
		problems = append(problems, "since must not be after until")
	}

	for _, c := range []struct {
		field string
		n     int
	}{{"min faves", f.MinFaves}, {"min retweets", f.MinRetweets}} {
		if c.n < 0 {
			problems = append(problems, c.field+" must not be negative")
		} else if c.n > MaxFilterCount {
			problems = append(problems, c.field+" must be at most "+strconv.Itoa(MaxFilterCount))
		}
	}

	if f.Lang != "" && !slices.Contains(FilterLanguages, strings.ToLower(f.Lang)) {
		problems = append(problems, "unknown language "+strconv.Quote(f.Lang))
	}

	switch f.Sort {
	case "", SortTop, SortLatest, SortPeople, SortPhotos, SortVideos:
	default:
		problems = append(problems, "unknown sort "+strconv.Quote(f.Sort))
	}

	if len(problems) > 0 {
		return Errorf(EINVALID, "invalid search filters: %s", strings.Join(problems, "; "))
	}
	return nil
}

func parseFilterDate(field, value string, problems *[]string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(FilterDateLayout, value)
	if err != nil {
		*problems = append(*problems, field+" must be a YYYY-MM-DD date")
		return time.Time{}, false
	}
	return t, true
}

// Query returns the URL-encoded query for f, ready for SearchURL.
func (f SearchFilters) Query() string {
	return f.Apply("")
}

// Apply appends the operators of f to query, which is already URL-encoded
// and is not encoded again. The sort tab is added only to a non-empty query.
func (f SearchFilters) Apply(query string) string {
	q := query
	if terms := f.terms(); len(terms) > 0 {
		if q != "" {
			q += "%20"
		}
		q += encodeComponent(strings.Join(terms, " "))
	}
	if q != "" && f.Sort != "" {
		q += "&f=" + f.Sort
	}
	return q
}

// Merge returns f with the set fields of over applied on top. Flags are
// combined, lists are appended.
func (f SearchFilters) Merge(over SearchFilters) SearchFilters {
	out := f
	for _, s := range []struct {
		dst *string
		src string
	}{
		{&out.Text, over.Text},
		{&out.From, over.From},
		{&out.To, over.To},
		{&out.Since, over.Since},
		{&out.Until, over.Until},
		{&out.Lang, over.Lang},
		{&out.Sort, over.Sort},
	} {
		if s.src != "" {
			*s.dst = s.src
		}
	}
	if over.MinFaves != 0 {
		out.MinFaves = over.MinFaves
	}
	if over.MinRetweets != 0 {
		out.MinRetweets = over.MinRetweets
	}
	out.Media = f.Media || over.Media
	out.Images = f.Images || over.Images
	out.Videos = f.Videos || over.Videos
	out.Links = f.Links || over.Links
	out.Question = f.Question || over.Question
	out.Replies = f.Replies || over.Replies
	out.ExcludeRetweets = f.ExcludeRetweets || over.ExcludeRetweets
	out.Hashtags = append(slices.Clone(f.Hashtags), over.Hashtags...)
	out.Exclude = append(slices.Clone(f.Exclude), over.Exclude...)
	return out
}

// terms returns the unencoded search operators in a fixed order.
func (f SearchFilters) terms() []string {
	var terms []string
	add := func(cond bool, term string) {
		if cond {
			terms = append(terms, term)
		}
	}

	text := strings.TrimSpace(f.Text)
	add(text != "", text)
	add(username(f.From) != "", "from:"+username(f.From))
	add(username(f.To) != "", "to:"+username(f.To))
	add(f.Since != "", "since:"+f.Since)
	add(f.Until != "", "until:"+f.Until)
	add(f.MinFaves > 0, "min_faves:"+strconv.Itoa(f.MinFaves))
	add(f.MinRetweets > 0, "min_retweets:"+strconv.Itoa(f.MinRetweets))
	add(f.Lang != "", "lang:"+strings.ToLower(f.Lang))
	add(f.Media, "filter:media")
	add(f.Images, "filter:images")
	add(f.Videos, "filter:videos")
	add(f.Links, "filter:links")
	add(f.Question, "?")
	add(f.Replies, "filter:replies")
	add(f.ExcludeRetweets, "-filter:retweets")
	for _, tag := range f.Hashtags {
		tag = strings.TrimLeft(strings.TrimSpace(tag), "#")
		add(tag != "", "#"+tag)
	}
	for _, word := range f.Exclude {
		word = strings.TrimSpace(word)
		add(word != "", "-"+word)
	}
	return terms
}

func username(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "@")
}

// encodeComponent percent-encodes s for use inside a query value, with
// spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
