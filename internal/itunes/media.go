package itunes

import (
	"fmt"
	"strings"
)

// Media is the media-type selector sent as the `media` query parameter.
type Media string

const (
	MediaMovie      Media = "movie"
	MediaPodcast    Media = "podcast"
	MediaMusic      Media = "music"
	MediaMusicVideo Media = "musicVideo"
	MediaAudiobook  Media = "audiobook"
	MediaShortFilm  Media = "shortfilm"
	MediaTVShow     Media = "tvShow"
	MediaSoftware   Media = "software"
	MediaEbook      Media = "ebook"
	MediaAll        Media = "all"
)

// DefaultMedia is the selection used when nothing else is configured.
const DefaultMedia = MediaMusic

// mediaOrder is the selector order shown to the user.
var mediaOrder = []Media{
	MediaMovie,
	MediaPodcast,
	MediaMusic,
	MediaMusicVideo,
	MediaAudiobook,
	MediaShortFilm,
	MediaTVShow,
	MediaSoftware,
	MediaEbook,
	MediaAll,
}

// MediaTypes returns every selectable media type in display order.
func MediaTypes() []Media {
	out := make([]Media, len(mediaOrder))
	copy(out, mediaOrder)
	return out
}

// ParseMedia matches value case-insensitively against the known media types.
func ParseMedia(value string) (Media, error) {
	trimmed := strings.TrimSpace(value)
	for _, m := range mediaOrder {
		if strings.EqualFold(string(m), trimmed) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown media type %q", value)
}

// Valid reports whether m is one of the known media types.
func (m Media) Valid() bool {
	return m.index() >= 0
}

// Next returns the following media type, wrapping around.
func (m Media) Next() Media {
	i := m.index()
	if i < 0 {
		return DefaultMedia
	}
	return mediaOrder[(i+1)%len(mediaOrder)]
}

// Prev returns the preceding media type, wrapping around.
func (m Media) Prev() Media {
	i := m.index()
	if i < 0 {
		return DefaultMedia
	}
	return mediaOrder[(i-1+len(mediaOrder))%len(mediaOrder)]
}

func (m Media) String() string {
	return string(m)
}

func (m Media) index() int {
	for i, candidate := range mediaOrder {
		if candidate == m {
			return i
		}
	}
	return -1
}
