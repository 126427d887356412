package search

import "strings"

// Stem reduces a normalized token to a root form so that query and
// keyword vocabulary line up ("running" and "run", "smiling" and
// "smile"). It is a short suffix pass with doubled-consonant and
// trailing-e repair, not a full stemmer; both sides of a comparison
// must be stemmed with it.
func Stem(word string) string {
	base := word
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		base = word[:len(word)-3] + "i"
	case strings.HasSuffix(word, "ying") && len(word) > 4:
		base = word[:len(word)-4] + "y"
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		base = undouble(word[:len(word)-3])
	case strings.HasSuffix(word, "ed") && len(word) > 4:
		base = undouble(word[:len(word)-2])
	case strings.HasSuffix(word, "est") && len(word) > 5:
		base = undouble(word[:len(word)-3])
	case strings.HasSuffix(word, "ss"):
		// keep
	case strings.HasSuffix(word, "s") && len(word) > 3:
		base = word[:len(word)-1]
	}

	if n := len(base); n > 3 && base[n-1] == 'e' {
		base = base[:n-1]
	}
	if n := len(base); n > 2 && base[n-1] == 'y' {
		base = base[:n-1] + "i"
	}
	return base
}

// undouble collapses a doubled final consonant left behind by suffix
// stripping ("runn" to "run").
func undouble(stem string) string {
	n := len(stem)
	if n < 3 || stem[n-1] != stem[n-2] {
		return stem
	}
	switch stem[n-1] {
	case 'a', 'e', 'i', 'o', 'u', 'l', 's', 'z':
		return stem
	}
	return stem[:n-1]
}
