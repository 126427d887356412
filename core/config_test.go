package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.IncludeNumericTokens)
	assert.False(t, cfg.FoldDiacritics)
	assert.Equal(t, 3.0, cfg.NameWeight)
	assert.Equal(t, 2.0, cfg.KeywordWeight)
	assert.Equal(t, 0.25, cfg.PositionDecay)
	assert.Equal(t, 1.5, cfg.FullMatchBonus)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("with numeric tokens disabled", func(t *testing.T) {
		cfg := NewConfig(WithNumericTokens(false))

		assert.False(t, cfg.IncludeNumericTokens)
		assert.Equal(t, 3.0, cfg.NameWeight)
	})

	t.Run("with diacritic folding", func(t *testing.T) {
		cfg := NewConfig(WithDiacriticFolding(true))

		assert.True(t, cfg.FoldDiacritics)
	})

	t.Run("with custom weights", func(t *testing.T) {
		cfg := NewConfig(
			WithNameWeight(4.0),
			WithKeywordWeight(1.5),
			WithPositionDecay(0.5),
			WithFullMatchBonus(2.0),
		)

		assert.Equal(t, 4.0, cfg.NameWeight)
		assert.Equal(t, 1.5, cfg.KeywordWeight)
		assert.Equal(t, 0.5, cfg.PositionDecay)
		assert.Equal(t, 2.0, cfg.FullMatchBonus)
	})

	t.Run("configs compare with equality", func(t *testing.T) {
		a := NewConfig(WithNameWeight(4.0))
		b := NewConfig(WithNameWeight(4.0))
		c := NewConfig()

		assert.True(t, a == b)
		assert.False(t, a == c)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default is valid", DefaultConfig(), false},
		{"zero decay is valid", NewConfig(WithPositionDecay(0)), false},
		{"zero name weight", NewConfig(WithNameWeight(0)), true},
		{"negative keyword weight", NewConfig(WithKeywordWeight(-1)), true},
		{"negative decay", NewConfig(WithPositionDecay(-0.1)), true},
		{"bonus below one", NewConfig(WithFullMatchBonus(0.5)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
