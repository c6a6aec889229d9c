// Package filter decides which board posts are worth notifying about.
package filter

import (
	"strings"
	"time"

	"github.com/cloudflare/ahocorasick"
)

const dateLayout = "2006-01-02"

// IsToday reports whether a post's date text names the current calendar date.
// Board dates are loose text, so this is a substring check against the
// YYYY-MM-DD form of now rather than a parsed-date comparison.
func IsToday(dateStr string, now time.Time) bool {
	return strings.Contains(dateStr, now.Format(dateLayout))
}

// Keywords matches post titles against an ordered keyword list.
type Keywords struct {
	list    []string
	matcher *ahocorasick.Matcher
}

// NewKeywords builds a matcher over the given keywords. Matching is
// case-insensitive; the reported keyword keeps its configured casing.
func NewKeywords(list []string) *Keywords {
	lowered := make([]string, len(list))
	for i, keyword := range list {
		lowered[i] = strings.ToLower(keyword)
	}
	return &Keywords{
		list:    append([]string(nil), list...),
		matcher: ahocorasick.NewStringMatcher(lowered),
	}
}

// Match returns the first configured keyword contained in title. When several
// keywords hit, the one earliest in the configured list wins.
func (k *Keywords) Match(title string) (string, bool) {
	hits := k.matcher.Match([]byte(strings.ToLower(title)))
	if len(hits) == 0 {
		return "", false
	}
	first := hits[0]
	for _, hit := range hits[1:] {
		if hit < first {
			first = hit
		}
	}
	return k.list[first], true
}
