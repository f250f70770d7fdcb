package xpatlat_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/xpatlat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFilters_Query(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters xpatlat.SearchFilters
		want    string
	}{
		{name: "empty", filters: xpatlat.SearchFilters{}, want: ""},
		{name: "text only", filters: xpatlat.SearchFilters{Text: "javascript"}, want: "javascript"},
		{name: "encodes spaces and hash", filters: xpatlat.SearchFilters{Text: "hello world #coding"}, want: "hello%20world%20%23coding"},
		{name: "trims text", filters: xpatlat.SearchFilters{Text: "   test   "}, want: "test"},
		{name: "keeps inner spaces", filters: xpatlat.SearchFilters{Text: "hello    world"}, want: "hello%20%20%20%20world"},
		{name: "encodes operators in text", filters: xpatlat.SearchFilters{Text: "C# & Java || Python / Ruby"}, want: "C%23%20%26%20Java%20%7C%7C%20Python%20%2F%20Ruby"},
		{name: "from", filters: xpatlat.SearchFilters{From: "elonmusk"}, want: "from%3Aelonmusk"},
		{name: "from drops at sign", filters: xpatlat.SearchFilters{From: "@username"}, want: "from%3Ausername"},
		{name: "to", filters: xpatlat.SearchFilters{To: "nasa"}, want: "to%3Anasa"},
		{name: "text and users", filters: xpatlat.SearchFilters{Text: "space", From: "SpaceX", To: "nasa"}, want: "space%20from%3ASpaceX%20to%3Anasa"},
		{name: "since", filters: xpatlat.SearchFilters{Since: "2024-01-01"}, want: "since%3A2024-01-01"},
		{name: "until", filters: xpatlat.SearchFilters{Until: "2024-12-31"}, want: "until%3A2024-12-31"},
		{name: "date range", filters: xpatlat.SearchFilters{Since: "2024-01-01", Until: "2024-12-31"}, want: "since%3A2024-01-01%20until%3A2024-12-31"},
		{name: "min faves", filters: xpatlat.SearchFilters{MinFaves: 100}, want: "min_faves%3A100"},
		{name: "min retweets", filters: xpatlat.SearchFilters{MinRetweets: 50}, want: "min_retweets%3A50"},
		{name: "zero counts are omitted", filters: xpatlat.SearchFilters{MinFaves: 0, MinRetweets: 0}, want: ""},
		{name: "lang", filters: xpatlat.SearchFilters{Lang: "en"}, want: "lang%3Aen"},
		{name: "lang is lowercased", filters: xpatlat.SearchFilters{Lang: "TR"}, want: "lang%3Atr"},
		{name: "media", filters: xpatlat.SearchFilters{Media: true}, want: "filter%3Amedia"},
		{name: "images", filters: xpatlat.SearchFilters{Images: true}, want: "filter%3Aimages"},
		{name: "videos", filters: xpatlat.SearchFilters{Videos: true}, want: "filter%3Avideos"},
		{name: "question and replies", filters: xpatlat.SearchFilters{Text: "help", Question: true, Replies: true}, want: "help%20%3F%20filter%3Areplies"},
		{name: "exclude retweets", filters: xpatlat.SearchFilters{ExcludeRetweets: true}, want: "-filter%3Aretweets"},
		{name: "hashtags with and without prefix", filters: xpatlat.SearchFilters{Hashtags: []string{"#bitcoin", "ethereum", "##crypto"}}, want: "%23bitcoin%20%23ethereum%20%23crypto"},
		{name: "exclude words", filters: xpatlat.SearchFilters{Text: "crypto news", Exclude: []string{"scam", "fake"}}, want: "crypto%20news%20-scam%20-fake"},
		{name: "empty list entries are skipped", filters: xpatlat.SearchFilters{Hashtags: []string{"#", " "}, Exclude: []string{""}}, want: ""},
		{name: "sort on a query", filters: xpatlat.SearchFilters{Text: "go", Sort: xpatlat.SortLatest}, want: "go&f=live"},
		{name: "sort alone adds nothing", filters: xpatlat.SearchFilters{Sort: xpatlat.SortLatest}, want: ""},
		{
			name: "sample search",
			filters: xpatlat.SearchFilters{
				Text:     `"jon jones"`,
				Images:   true,
				MinFaves: 400,
				Lang:     "tr",
			},
			want: "%22jon%20jones%22%20min_faves%3A400%20lang%3Atr%20filter%3Aimages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.filters.Query())
		})
	}
}

func TestSearchFilters_Query_AllOperators(t *testing.T) {
	t.Parallel()

	f := xpatlat.SearchFilters{
		Text:     "AI technology",
		From:     "OpenAI",
		Since:    "2024-01-01",
		Until:    "2024-12-31",
		MinFaves: 100,
		Lang:     "en",
		Media:    true,
	}

	got := xpatlat.SearchURL(xpatlat.DefaultSearchURL, f.Query())

	assert.Equal(t, "https://x.com/search?q=AI%20technology%20from%3AOpenAI%20since%3A2024-01-01%20until%3A2024-12-31%20min_faves%3A100%20lang%3Aen%20filter%3Amedia", got)
}

func TestSearchFilters_Apply(t *testing.T) {
	t.Parallel()

	t.Run("appends to an encoded query", func(t *testing.T) {
		t.Parallel()

		f := xpatlat.SearchFilters{From: "nasa", Sort: xpatlat.SortLatest}

		assert.Equal(t, "%22mars%22%20from%3Anasa&f=live", f.Apply("%22mars%22"))
	})

	t.Run("no operators keeps the query", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "golang", xpatlat.SearchFilters{}.Apply("golang"))
	})
}

func TestSearchFilters_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, xpatlat.SearchFilters{}.IsZero())
	assert.True(t, xpatlat.SearchFilters{Text: "  ", Hashtags: []string{"#"}}.IsZero())
	assert.False(t, xpatlat.SearchFilters{Images: true}.IsZero())
	assert.False(t, xpatlat.SearchFilters{Sort: xpatlat.SortTop}.IsZero())
}

func TestSearchFilters_Validate(t *testing.T) {
	t.Parallel()

	valid := []struct {
		name    string
		filters xpatlat.SearchFilters
	}{
		{name: "empty", filters: xpatlat.SearchFilters{}},
		{name: "text", filters: xpatlat.SearchFilters{Text: "javascript react"}},
		{name: "balanced quotes", filters: xpatlat.SearchFilters{Text: `"balanced quotes"`}},
		{name: "text at the length limit", filters: xpatlat.SearchFilters{Text: strings.Repeat("ğ", xpatlat.MaxFilterTextLength)}},
		{name: "zero counts", filters: xpatlat.SearchFilters{MinFaves: 0, MinRetweets: 0}},
		{name: "counts at the limit", filters: xpatlat.SearchFilters{MinFaves: xpatlat.MaxFilterCount, MinRetweets: xpatlat.MaxFilterCount}},
		{name: "same day range", filters: xpatlat.SearchFilters{Since: "2024-01-01", Until: "2024-01-01"}},
		{name: "usernames", filters: xpatlat.SearchFilters{From: "@amazon_help", To: "nasa"}},
		{name: "language any case", filters: xpatlat.SearchFilters{Lang: "ZH-TW"}},
		{name: "sort", filters: xpatlat.SearchFilters{Sort: xpatlat.SortVideos}},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NoError(t, tt.filters.Validate())
		})
	}

	invalid := []struct {
		name    string
		filters xpatlat.SearchFilters
		problem string
	}{
		{name: "text too long", filters: xpatlat.SearchFilters{Text: strings.Repeat("a", xpatlat.MaxFilterTextLength+1)}, problem: "500 characters"},
		{name: "unbalanced quotes", filters: xpatlat.SearchFilters{Text: `"unbalanced quote`}, problem: "unbalanced quotes"},
		{name: "negative faves", filters: xpatlat.SearchFilters{MinFaves: -10}, problem: "min faves must not be negative"},
		{name: "negative retweets", filters: xpatlat.SearchFilters{MinRetweets: -1}, problem: "min retweets must not be negative"},
		{name: "faves too high", filters: xpatlat.SearchFilters{MinFaves: xpatlat.MaxFilterCount + 1}, problem: "at most"},
		{name: "since not a date", filters: xpatlat.SearchFilters{Since: "01/01/2024"}, problem: "since must be a YYYY-MM-DD date"},
		{name: "until impossible date", filters: xpatlat.SearchFilters{Until: "2024-02-30"}, problem: "until must be a YYYY-MM-DD date"},
		{name: "reversed range", filters: xpatlat.SearchFilters{Since: "2024-12-31", Until: "2024-01-01"}, problem: "since must not be after until"},
		{name: "username too long", filters: xpatlat.SearchFilters{From: "a_very_long_username"}, problem: "from must be"},
		{name: "username with symbols", filters: xpatlat.SearchFilters{To: "user@domain.com"}, problem: "to must be"},
		{name: "unknown language", filters: xpatlat.SearchFilters{Lang: "klingon"}, problem: "unknown language"},
		{name: "unknown sort", filters: xpatlat.SearchFilters{Sort: "newest"}, problem: "unknown sort"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.filters.Validate()

			require.Error(t, err)
			assert.Equal(t, xpatlat.EINVALID, xpatlat.ErrorCode(err))
			assert.Contains(t, xpatlat.ErrorMessage(err), tt.problem)
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		t.Parallel()

		err := xpatlat.SearchFilters{MinFaves: -1, Since: "yesterday", Lang: "xx"}.Validate()

		require.Error(t, err)
		msg := xpatlat.ErrorMessage(err)
		assert.Contains(t, msg, "min faves")
		assert.Contains(t, msg, "since")
		assert.Contains(t, msg, "language")
	})
}

func TestSearchFilters_Merge(t *testing.T) {
	t.Parallel()

	base := xpatlat.SearchFilters{MinFaves: 1000, Lang: "tr", ExcludeRetweets: true, Hashtags: []string{"go"}}
	over := xpatlat.SearchFilters{Lang: "en", Images: true, Hashtags: []string{"rust"}}

	got := base.Merge(over)

	assert.Equal(t, xpatlat.SearchFilters{
		MinFaves:        1000,
		Lang:            "en",
		Images:          true,
		ExcludeRetweets: true,
		Hashtags:        []string{"go", "rust"},
	}, got)
	assert.Equal(t, []string{"go"}, base.Hashtags)
}

func TestSearchTemplate(t *testing.T) {
	t.Parallel()

	t.Run("known template", func(t *testing.T) {
		t.Parallel()

		f, err := xpatlat.SearchTemplate("viral-content")

		require.NoError(t, err)
		assert.Equal(t, "min_faves%3A1000%20min_retweets%3A500%20lang%3Atr", f.Query())
	})

	t.Run("every template is valid", func(t *testing.T) {
		t.Parallel()

		for _, name := range xpatlat.SearchTemplateNames() {
			f, err := xpatlat.SearchTemplate(name)
			require.NoError(t, err)
			assert.NoError(t, f.Validate(), name)
			assert.False(t, f.IsZero(), name)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		_, err := xpatlat.SearchTemplate("nope")

		require.Error(t, err)
		assert.Equal(t, xpatlat.ENOTFOUND, xpatlat.ErrorCode(err))
		assert.Contains(t, xpatlat.ErrorMessage(err), "viral-content")
	})

	t.Run("names are sorted", func(t *testing.T) {
		t.Parallel()

		names := xpatlat.SearchTemplateNames()

		assert.IsNonDecreasing(t, names)
		assert.Contains(t, names, "with-images")
	})
}
