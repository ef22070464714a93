// Package playlist defines the track record compared by the duplicate
// detector and loads playlist exports into it.
//
// Exports are JSON documents with a top-level "tracks" array whose objects
// carry name, artist, album_name, and an optional isrc. Records that are
// missing a required field or carry a field of the wrong type are rejected
// with ErrMalformedRecord so callers can point the user at the offending
// entry instead of producing a partial report.
package playlist
