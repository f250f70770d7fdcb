package xpatlat

import (
	"maps"
	"slices"
	"strings"
)

// searchTemplates are named filter presets for common searches.
var searchTemplates = map[string]SearchFilters{
	"viral-content": {
		MinFaves:    1000,
		MinRetweets: 500,
		Lang:        "tr",
	},
	"questions": {
		Question:        true,
		Lang:            "tr",
		ExcludeRetweets: true,
	},
	"media-content": {
		Media:    true,
		MinFaves: 100,
	},
	"user-engagement": {
		ExcludeRetweets: true,
	},
	"tech-news": {
		Text:            "teknoloji OR yapay zeka OR AI OR blockchain",
		Links:           true,
		ExcludeRetweets: true,
		Lang:            "tr",
	},
	"breaking-news": {
		Text:            `"son dakika" OR "breaking" OR "acil"`,
		ExcludeRetweets: true,
	},
	"with-images": {
		Images:          true,
		ExcludeRetweets: true,
	},
	"with-videos": {
		Videos:          true,
		ExcludeRetweets: true,
	},
	"from-verified": {
		Text:            "filter:verified",
		ExcludeRetweets: true,
	},
}

// SearchTemplateNames returns the preset names in sorted order.
func SearchTemplateNames() []string {
	return slices.Sorted(maps.Keys(searchTemplates))
}

// SearchTemplate returns the named preset. Returns ENOTFOUND for unknown names.
func SearchTemplate(name string) (SearchFilters, error) {
	f, ok := searchTemplates[name]
	if !ok {
		return SearchFilters{}, Errorf(ENOTFOUND, "unknown template %q (available: %s)", name, strings.Join(SearchTemplateNames(), ", "))
	}
	f.Hashtags = slices.Clone(f.Hashtags)
	f.Exclude = slices.Clone(f.Exclude)
	return f, nil
}
