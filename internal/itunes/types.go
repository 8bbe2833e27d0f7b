package itunes

import (
	"path"
	"regexp"
	"strings"
)

// sizedArtwork matches the "<w>x<h>bb" file stems iTunes serves artwork under.
var sizedArtwork = regexp.MustCompile(`^\d+x\d+bb$`)

// Response mirrors the payload returned by the search endpoint.
type Response struct {
	ResultCount int      `json:"resultCount"`
	Results     []Result `json:"results"`
}

// Result describes one catalog entry. Only ArtworkURL100 matters to the
// gallery; the rest is carried for labels and logs.
type Result struct {
	WrapperType    string `json:"wrapperType"`
	Kind           string `json:"kind"`
	ArtistName     string `json:"artistName"`
	CollectionName string `json:"collectionName"`
	TrackName      string `json:"trackName"`
	ArtworkURL60   string `json:"artworkUrl60"`
	ArtworkURL100  string `json:"artworkUrl100"`
}

// Artwork returns the artwork reference used for deduplication.
func (r Result) Artwork() string {
	return strings.TrimSpace(r.ArtworkURL100)
}

// ArtworkLabel returns a short human label for an artwork reference: the
// last meaningful path segment without its extension.
func ArtworkLabel(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	trimmed := strings.TrimRight(ref, "/")
	base := path.Base(trimmed)
	stem := strings.TrimSuffix(base, path.Ext(base))
	// The parent segment names the image when the file is a sized rendition.
	if sizedArtwork.MatchString(stem) {
		if parent := path.Base(path.Dir(trimmed)); parent != "." && parent != "/" {
			return strings.TrimSuffix(parent, path.Ext(parent))
		}
	}
	return stem
}
