// Package grapheme segments strings into extended grapheme clusters (UAX #29).
//
// The automata engines treat each grapheme cluster of an input string as one
// alphabet token, so that a user-perceived character like "👍🏼" or "é" is a
// single symbol rather than a run of code points.
package grapheme

import "github.com/rivo/uniseg"

// Split returns the extended grapheme clusters of s, in order.
// An empty string yields a nil slice.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	state := -1
	var c string
	for len(s) > 0 {
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, c)
	}
	return clusters
}
