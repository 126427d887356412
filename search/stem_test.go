package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStem(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"run", "run"},
		{"runs", "run"},
		{"running", "run"},
		{"smile", "smil"},
		{"smiling", "smil"},
		{"love", "lov"},
		{"loved", "lov"},
		{"loving", "lov"},
		{"party", "parti"},
		{"parties", "parti"},
		{"cry", "cri"},
		{"crying", "cri"},
		{"cool", "cool"},
		{"coolest", "cool"},
		{"dogs", "dog"},
		{"glass", "glass"},
		{"kiss", "kiss"},
		{"kisses", "kiss"},
		{"stopped", "stop"},
		{"roll", "roll"},
		{"rolling", "roll"},
		{"buzz", "buzz"},
		{"buzzing", "buzz"},
		{"heart", "heart"},
		{"gas", "gas"},
		{"movie", "movi"},
		{"movies", "movi"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Stem(tc.word), "stem of %q", tc.word)
	}
}

// Words and their inflections must stem to the same root, or the
// stemmed fallback cannot line them up.
func TestStem_SharedRoots(t *testing.T) {
	pairs := [][2]string{
		{"running", "run"},
		{"smiling", "smile"},
		{"dancing", "dance"},
		{"parties", "party"},
		{"families", "family"},
		{"crying", "cry"},
		{"kisses", "kiss"},
		{"loved", "love"},
	}
	for _, p := range pairs {
		assert.Equal(t, Stem(p[0]), Stem(p[1]), "%q and %q should share a stem", p[0], p[1])
	}
}
