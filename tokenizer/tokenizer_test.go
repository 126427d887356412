package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/emojit/core"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tok := New(core.DefaultConfig())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "whitespace split",
			text: "red heart",
			want: []string{"red", "heart"},
		},
		{
			name: "punctuation delimiters",
			text: "thumbs-up face_with/tears,of:joy",
			want: []string{"thumbs", "up", "face", "with", "tears", "of", "joy"},
		},
		{
			name: "case folding",
			text: "Red HEART Heart",
			want: []string{"red", "heart", "heart"},
		},
		{
			name: "full case folding",
			text: "Straße",
			want: []string{"strasse"},
		},
		{
			name: "unicode whitespace",
			text: "red heart\tlove",
			want: []string{"red", "heart", "love"},
		},
		{
			name: "runs of delimiters collapse",
			text: "  red -- , heart  ",
			want: []string{"red", "heart"},
		},
		{
			name: "numeric tokens kept by default",
			text: "top 100 emoji",
			want: []string{"top", "100", "emoji"},
		},
		{
			name: "mixed alphanumeric is not numeric",
			text: "mp3 player",
			want: []string{"mp3", "player"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "delimiters only",
			text: " -_/,: ",
			want: nil,
		},
		{
			name: "diacritics preserved by default",
			text: "café",
			want: []string{"café"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Tokens(tt.text))
		})
	}
}

func TestTokenizer_NumericFiltering(t *testing.T) {
	tok := New(core.NewConfig(core.WithNumericTokens(false)))

	assert.Equal(t, []string{"top", "emoji"}, tok.Tokens("top 100 emoji"))
	assert.Equal(t, []string{"mp3"}, tok.Tokens("mp3 42"))
	assert.Nil(t, tok.Tokens("1 2 3"))
}

func TestTokenizer_DiacriticFolding(t *testing.T) {
	tok := New(core.NewConfig(core.WithDiacriticFolding(true)))

	assert.Equal(t, []string{"cafe"}, tok.Tokens("café"))
	assert.Equal(t, []string{"naive", "uber"}, tok.Tokens("naïve über"))
	// a lone combining mark normalizes to nothing
	assert.Nil(t, tok.Tokens("́"))
}

func TestTokenizer_Restartable(t *testing.T) {
	tok := New(core.DefaultConfig())
	seq := tok.Tokenize("red heart love")

	var first, second []string
	for s := range seq {
		first = append(first, s)
	}
	for s := range seq {
		second = append(second, s)
	}

	require.Equal(t, []string{"red", "heart", "love"}, first)
	assert.Equal(t, first, second)
}

func TestTokenizer_LazyStop(t *testing.T) {
	tok := New(core.DefaultConfig())

	var got []string
	for s := range tok.Tokenize("one two three") {
		got = append(got, s)
		break
	}

	assert.Equal(t, []string{"one"}, got)
}

func TestTokenizer_DeterministicAcrossInstances(t *testing.T) {
	cfg := core.DefaultConfig()
	a := New(cfg)
	b := New(cfg)

	text := "Face With Tears-of/Joy 100"
	assert.Equal(t, a.Tokens(text), b.Tokens(text))
}
