package playlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrMalformedRecord marks a track entry that is missing a required field
	// or carries a field of the wrong type.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrMalformedPlaylist marks a document without a usable tracks array.
	ErrMalformedPlaylist = errors.New("malformed playlist")
)

// RecordError identifies the offending entry of a playlist export.
type RecordError struct {
	Index  int
	Field  string
	Reason string
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: track %d: %s", ErrMalformedRecord, e.Index, e.Reason)
	}
	return fmt.Sprintf("%s: track %d: field %q %s", ErrMalformedRecord, e.Index, e.Field, e.Reason)
}

func (e *RecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

type document struct {
	Tracks *[]json.RawMessage `json:"tracks"`
}

var requiredFields = []string{"name", "artist", "album_name"}

// Load reads a playlist export from disk.
func Load(path string) ([]Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open playlist: %w", err)
	}
	defer file.Close()

	tracks, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("load playlist %s: %w", path, err)
	}
	return tracks, nil
}

// Decode parses a playlist export. Track order is preserved and each track's
// Index is its position in the tracks array.
func Decode(r io.Reader) ([]Track, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPlaylist, err)
	}
	if doc.Tracks == nil {
		return nil, fmt.Errorf("%w: missing \"tracks\" array", ErrMalformedPlaylist)
	}

	raw := *doc.Tracks
	tracks := make([]Track, 0, len(raw))
	for i, entry := range raw {
		track, err := decodeTrack(i, entry)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

func decodeTrack(index int, raw json.RawMessage) (Track, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Track{}, &RecordError{Index: index, Reason: "is not an object"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Track{}, &RecordError{Index: index, Reason: err.Error()}
	}

	values := make(map[string]string, len(requiredFields))
	for _, key := range requiredFields {
		value, ok := fields[key]
		if !ok {
			return Track{}, &RecordError{Index: index, Field: key, Reason: "is missing"}
		}
		text, isNull, err := decodeString(value)
		if err != nil || isNull {
			return Track{}, &RecordError{Index: index, Field: key, Reason: "must be a string"}
		}
		values[key] = text
	}

	track := Track{
		Index:     index,
		Name:      values["name"],
		Artist:    values["artist"],
		AlbumName: values["album_name"],
	}
	if value, ok := fields["isrc"]; ok {
		text, _, err := decodeString(value)
		if err != nil {
			return Track{}, &RecordError{Index: index, Field: "isrc", Reason: "must be a string or null"}
		}
		track.ISRC = text
	}
	return track, nil
}

func decodeString(raw json.RawMessage) (string, bool, error) {
	if strings.TrimSpace(string(raw)) == "null" {
		return "", true, nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", false, err
	}
	return text, false, nil
}
