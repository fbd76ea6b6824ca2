// Package validate holds the input predicates shared by the API and the registry.
package validate

import (
	"net/url"
	"strings"
	"time"
)

// dateLayouts are tried in order by ParseOptionalDate
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// IsValidHTTPURL reports whether s is an absolute http or https URL
func IsValidHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// ParseOptionalDate parses an optional timestamp. An empty input yields
// (nil, true); an unparseable one yields (nil, false).
func ParseOptionalDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, true
		}
	}
	return nil, false
}
