package playlist_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"purifier/internal/playlist"
)

func TestDecodePreservesOrderAndOptionalISRC(t *testing.T) {
	input := `{"tracks": [
		{"name": "Song A", "artist": "Bob", "album_name": "X", "isrc": "US123"},
		{"name": "Song B", "artist": "Bob", "album_name": ""},
		{"name": "Song C", "artist": "Eve", "album_name": "Y", "isrc": null}
	]}`

	tracks, err := playlist.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(tracks) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(tracks))
	}
	for i, track := range tracks {
		if track.Index != i {
			t.Fatalf("track %d has index %d", i, track.Index)
		}
	}
	if tracks[0].ISRC != "US123" || !tracks[0].HasISRC() {
		t.Fatalf("unexpected isrc on first track: %+v", tracks[0])
	}
	if tracks[1].HasISRC() || tracks[2].HasISRC() {
		t.Fatalf("expected absent isrc for tracks 1 and 2: %+v", tracks[1:])
	}
	if tracks[1].AlbumName != "" {
		t.Fatalf("expected empty album name, got %q", tracks[1].AlbumName)
	}
}

func TestDecodeEmptyTracks(t *testing.T) {
	tracks, err := playlist.Decode(strings.NewReader(`{"tracks": []}`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(tracks) != 0 {
		t.Fatalf("expected no tracks, got %d", len(tracks))
	}
}

func TestDecodeMalformedRecords(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIndex int
		wantField string
	}{
		{"missing name", `{"tracks": [{"artist": "A", "album_name": "B"}]}`, 0, "name"},
		{"numeric artist", `{"tracks": [{"name": "x", "artist": "A", "album_name": "B"}, {"name": "y", "artist": 5, "album_name": "B"}]}`, 1, "artist"},
		{"null album", `{"tracks": [{"name": "x", "artist": "A", "album_name": null}]}`, 0, "album_name"},
		{"numeric isrc", `{"tracks": [{"name": "x", "artist": "A", "album_name": "B", "isrc": 12}]}`, 0, "isrc"},
		{"not an object", `{"tracks": ["nope"]}`, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := playlist.Decode(strings.NewReader(tt.input))
			if !errors.Is(err, playlist.ErrMalformedRecord) {
				t.Fatalf("expected ErrMalformedRecord, got %v", err)
			}
			var recErr *playlist.RecordError
			if !errors.As(err, &recErr) {
				t.Fatalf("expected RecordError, got %T", err)
			}
			if recErr.Index != tt.wantIndex || recErr.Field != tt.wantField {
				t.Fatalf("got index=%d field=%q, want index=%d field=%q", recErr.Index, recErr.Field, tt.wantIndex, tt.wantField)
			}
		})
	}
}

func TestDecodeMalformedPlaylist(t *testing.T) {
	for _, input := range []string{`{}`, `{"tracks": 3}`, `not json`} {
		if _, err := playlist.Decode(strings.NewReader(input)); !errors.Is(err, playlist.ErrMalformedPlaylist) {
			t.Fatalf("Decode(%q): expected ErrMalformedPlaylist, got %v", input, err)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.json")
	content := `{"tracks": [{"name": "Hello World", "artist": "Jane Doe", "album_name": "LP"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write playlist: %v", err)
	}

	tracks, err := playlist.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(tracks) != 1 || tracks[0].Name != "Hello World" {
		t.Fatalf("unexpected tracks: %+v", tracks)
	}

	if _, err := playlist.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
