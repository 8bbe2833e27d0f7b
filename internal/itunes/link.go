package itunes

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultEndpoint is the public iTunes Search API endpoint.
	DefaultEndpoint = "https://itunes.apple.com/search"
	// DefaultLimit is the number of results requested per search.
	DefaultLimit = 200
)

// BuildLink returns the search URI for term, media and limit.
//
// The query always carries term, media and limit in that order, each value
// form-encoded on its own. The result depends only on its arguments, so the
// same call reproduces the link of an earlier request.
func BuildLink(endpoint, term string, media Media, limit int) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	var b strings.Builder
	b.WriteString(endpoint)
	b.WriteString("?term=")
	b.WriteString(url.QueryEscape(term))
	b.WriteString("&media=")
	b.WriteString(url.QueryEscape(string(media)))
	b.WriteString("&limit=")
	b.WriteString(url.QueryEscape(strconv.Itoa(limit)))
	return b.String()
}
