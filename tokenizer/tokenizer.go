// Package tokenizer normalizes and splits free text into index tokens.
//
// The same Tokenizer must be used on both sides of an index: over entry
// names and keywords at build time, and over query strings at search
// time. Tokenization is pure and deterministic; it never fails, and
// malformed or empty input simply yields no tokens.
package tokenizer

import (
	"iter"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/poiesic/emojit/core"
)

// delimiters are the splitting characters recognized in addition to
// Unicode whitespace. Emoji symbols themselves are never tokenized;
// they are matched verbatim through a separate fast path.
const delimiters = "-_/,:"

// Tokenizer splits text on whitespace and a fixed punctuation set and
// normalizes each piece with full Unicode case folding. It carries the
// two Config fields that change token output; a Tokenizer is safe for
// concurrent use.
type Tokenizer struct {
	includeNumeric bool
	foldDiacritics bool
}

// New creates a Tokenizer for the given config.
func New(cfg core.Config) *Tokenizer {
	return &Tokenizer{
		includeNumeric: cfg.IncludeNumericTokens,
		foldDiacritics: cfg.FoldDiacritics,
	}
}

// Tokenize returns the token sequence of text as a lazy, restartable
// iterator: every range over the result re-scans text from the start.
//
// Rules, in order: split on Unicode whitespace and the fixed delimiter
// set; case-fold each piece; optionally strip combining marks; drop
// pieces that normalize to nothing; drop pure-numeric pieces when the
// config says so.
func (t *Tokenizer) Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		// The mark remover keeps internal buffers, so each iteration
		// builds its own and reuses it across tokens.
		var remover transform.Transformer
		if t.foldDiacritics {
			remover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		}

		start := -1
		for i, r := range text {
			if !isDelimiter(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !t.emit(yield, text[start:i], remover) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			t.emit(yield, text[start:], remover)
		}
	}
}

// Tokens collects the token sequence of text into a slice.
func (t *Tokenizer) Tokens(text string) []string {
	var out []string
	for tok := range t.Tokenize(text) {
		out = append(out, tok)
	}
	return out
}

func (t *Tokenizer) emit(yield func(string) bool, raw string, remover transform.Transformer) bool {
	tok := t.normalize(raw, remover)
	if tok == "" {
		return true
	}
	if !t.includeNumeric && numeric(tok) {
		return true
	}
	return yield(tok)
}

func (t *Tokenizer) normalize(raw string, remover transform.Transformer) string {
	tok := cases.Fold().String(raw)
	if remover != nil {
		folded, _, err := transform.String(remover, tok)
		if err == nil {
			tok = folded
		}
	}
	return tok
}

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(delimiters, r)
}

// numeric reports whether tok consists entirely of decimal digits.
func numeric(tok string) bool {
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
