// Package textutil provides the text processing used to compare playlist
// metadata.
//
// The primary use cases are:
//   - Reducing a title, artist, or album to a sorted-token key
//   - Scoring two keys with an insert/delete edit ratio in [0,100]
//   - Detecting degenerate titles made of ASCII punctuation
//
// Keys are built by dropping Latin-1 supplement code points, replacing every
// rune that is not a letter, number, or underscore with a space, lower-casing,
// and sorting the whitespace-separated tokens. Scoring two keys is therefore
// insensitive to word order, case, and punctuation.
package textutil
