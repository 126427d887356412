package core

import (
	"testing"
)

func TestFingerprintCatalog(t *testing.T) {
	entries := []EmojiEntry{
		{Id: 1, Symbol: "❤️", Name: "red heart", Keywords: []string{"love", "heart"}},
		{Id: 2, Symbol: "💔", Name: "broken heart", Keywords: []string{"heartbreak", "sad"}},
	}

	fp1 := FingerprintCatalog(entries)
	fp2 := FingerprintCatalog(entries)

	if fp1 != fp2 {
		t.Errorf("FingerprintCatalog() produced different fingerprints for same catalog: %d vs %d", fp1, fp2)
	}
}

func TestFingerprintCatalog_Different(t *testing.T) {
	base := []EmojiEntry{
		{Id: 1, Symbol: "❤️", Name: "red heart", Keywords: []string{"love", "heart"}},
	}

	tests := []struct {
		name    string
		changed []EmojiEntry
	}{
		{
			name:    "different id",
			changed: []EmojiEntry{{Id: 2, Symbol: "❤️", Name: "red heart", Keywords: []string{"love", "heart"}}},
		},
		{
			name:    "different keyword order",
			changed: []EmojiEntry{{Id: 1, Symbol: "❤️", Name: "red heart", Keywords: []string{"heart", "love"}}},
		},
		{
			name:    "extra keyword",
			changed: []EmojiEntry{{Id: 1, Symbol: "❤️", Name: "red heart", Keywords: []string{"love", "heart", "romance"}}},
		},
		{
			name: "keyword moved between fields",
			// "red" appended to name vs. prepended to keywords must not collide
			changed: []EmojiEntry{{Id: 1, Symbol: "❤️", Name: "red heart red", Keywords: []string{"love", "heart"}}},
		},
	}

	want := FingerprintCatalog(base)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FingerprintCatalog(tt.changed); got == want {
				t.Errorf("FingerprintCatalog() produced same fingerprint for different catalogs")
			}
		})
	}
}

func TestFingerprintCatalog_Empty(t *testing.T) {
	fp1 := FingerprintCatalog(nil)
	fp2 := FingerprintCatalog([]EmojiEntry{})

	if fp1 != fp2 {
		t.Errorf("FingerprintCatalog() nil vs empty slice: %d vs %d", fp1, fp2)
	}
}
