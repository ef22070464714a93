package playlist

import "fmt"

// Track is one playlist entry. Tracks are never mutated once loaded.
type Track struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	AlbumName string `json:"album_name"`
	// ISRC is empty when the export carried no recording code.
	ISRC string `json:"isrc,omitempty"`
}

// HasISRC reports whether the track carries a recording code.
func (t Track) HasISRC() bool {
	return t.ISRC != ""
}

func (t Track) String() string {
	return fmt.Sprintf("#%d %q by %q (%q)", t.Index, t.Name, t.Artist, t.AlbumName)
}
