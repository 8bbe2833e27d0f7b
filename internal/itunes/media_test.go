package itunes

import "testing"

func TestParseMedia(t *testing.T) {
	tests := []struct {
		in      string
		want    Media
		wantErr bool
	}{
		{"music", MediaMusic, false},
		{"  MUSICVIDEO ", MediaMusicVideo, false},
		{"shortfilm", MediaShortFilm, false},
		{"ShortFilm", MediaShortFilm, false},
		{"tvshow", MediaTVShow, false},
		{"vinyl", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMedia(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseMedia(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseMedia(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMedia_NextPrevCycle(t *testing.T) {
	types := MediaTypes()
	if len(types) != 10 {
		t.Fatalf("MediaTypes() returned %d entries, want 10", len(types))
	}
	if types[2] != DefaultMedia {
		t.Fatalf("DefaultMedia position = %q, want music at index 2", types[2])
	}

	m := MediaMovie
	for range types {
		m = m.Next()
	}
	if m != MediaMovie {
		t.Fatalf("Next() did not wrap: got %q", m)
	}
	if got := MediaMovie.Prev(); got != MediaAll {
		t.Fatalf("MediaMovie.Prev() = %q, want all", got)
	}
	if got := Media("bogus").Next(); got != DefaultMedia {
		t.Fatalf("unknown Next() = %q, want %q", got, DefaultMedia)
	}
	if Media("bogus").Valid() {
		t.Fatalf("bogus media reported valid")
	}
}

func TestArtworkLabel(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"https://is1-ssl.mzstatic.com/image/thumb/Music/v4/ab/cd/ef/abcdef.jpg/100x100bb.jpg", "abcdef"},
		{"https://example.com/art/cover.png?x=1", "cover"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ArtworkLabel(tt.ref); got != tt.want {
			t.Fatalf("ArtworkLabel(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}
