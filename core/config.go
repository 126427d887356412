// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// Config holds the tokenization and ranking parameters of an index.
// An index records the Config it was built with, and queries must run
// with that same Config; the zero value is not usable, start from
// DefaultConfig or NewConfig.
//
// Config is a comparable value type: two Configs match exactly when
// they are equal with ==.
type Config struct {
	// IncludeNumericTokens keeps tokens made up entirely of digits.
	// When false, "100" in "100 points" is dropped from the index.
	// Default: true
	IncludeNumericTokens bool

	// FoldDiacritics strips combining marks during normalization, so
	// "café" and "cafe" produce the same token.
	// Default: false
	FoldDiacritics bool

	// NameWeight is the field weight of tokens from an entry's
	// canonical name.
	// Default: 3.0
	NameWeight float64

	// KeywordWeight is the base field weight of tokens from keywords.
	// A keyword at position p contributes
	// KeywordWeight / (1 + p*PositionDecay), so earlier keywords,
	// which the dataset curates as more relevant, weigh more.
	// Default: 2.0
	KeywordWeight float64

	// PositionDecay controls how fast keyword weight falls off with
	// keyword position. Zero disables the decay.
	// Default: 0.25
	PositionDecay float64

	// FullMatchBonus multiplies an entry's score when every query
	// token matched that entry.
	// Default: 1.5
	FullMatchBonus float64
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithNumericTokens sets whether pure-numeric tokens are indexed.
func WithNumericTokens(include bool) ConfigOption {
	return func(c *Config) {
		c.IncludeNumericTokens = include
	}
}

// WithDiacriticFolding sets whether combining marks are stripped.
func WithDiacriticFolding(fold bool) ConfigOption {
	return func(c *Config) {
		c.FoldDiacritics = fold
	}
}

// WithNameWeight sets the canonical-name field weight.
func WithNameWeight(w float64) ConfigOption {
	return func(c *Config) {
		c.NameWeight = w
	}
}

// WithKeywordWeight sets the base keyword field weight.
func WithKeywordWeight(w float64) ConfigOption {
	return func(c *Config) {
		c.KeywordWeight = w
	}
}

// WithPositionDecay sets the keyword position decay factor.
func WithPositionDecay(d float64) ConfigOption {
	return func(c *Config) {
		c.PositionDecay = d
	}
}

// WithFullMatchBonus sets the full query coverage multiplier.
func WithFullMatchBonus(b float64) ConfigOption {
	return func(c *Config) {
		c.FullMatchBonus = b
	}
}

// DefaultConfig returns the Config used when callers do not override
// anything. The defaults favor name matches over keyword matches and
// early keywords over late ones.
func DefaultConfig() Config {
	return Config{
		IncludeNumericTokens: true,
		FoldDiacritics:       false,
		NameWeight:           3.0,
		KeywordWeight:        2.0,
		PositionDecay:        0.25,
		FullMatchBonus:       1.5,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
//
// Example:
//
//	cfg := core.NewConfig(
//	    core.WithNumericTokens(false),
//	    core.WithNameWeight(4.0),
//	)
func NewConfig(opts ...ConfigOption) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Validate checks that the configuration is usable for building and
// querying an index.
func (c Config) Validate() error {
	if c.NameWeight <= 0 {
		return fmt.Errorf("%w: NameWeight must be positive", ErrInvalidConfig)
	}
	if c.KeywordWeight <= 0 {
		return fmt.Errorf("%w: KeywordWeight must be positive", ErrInvalidConfig)
	}
	if c.PositionDecay < 0 {
		return fmt.Errorf("%w: PositionDecay cannot be negative", ErrInvalidConfig)
	}
	if c.FullMatchBonus < 1 {
		return fmt.Errorf("%w: FullMatchBonus must be at least 1", ErrInvalidConfig)
	}
	return nil
}
