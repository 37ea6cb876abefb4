package sift

import "go.uber.org/zap"

// FieldWeights are the per-field score multipliers.
type FieldWeights struct {
	Title       float64
	Description float64
	Content     float64
	Tags        float64
	Category    float64
}

// Option configures engine construction.
type Option func(*engineConfig)

type engineConfig struct {
	logger         *zap.Logger
	items          []Item
	weights        *FieldWeights
	fuzzyThreshold float64
	dictionary     []string
	completions    []string
	popular        []string
	correctionMin  float64
	correctionMax  float64
}

// WithLogger sets the engine logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithItems seeds the index at construction. Items failing validation make
// New return an error.
func WithItems(items []Item) Option {
	return func(c *engineConfig) {
		c.items = append(c.items, items...)
	}
}

// WithFieldWeights overrides the default per-field score multipliers
// (title 3, description 2, content 1, tags 2.5, category 1.5).
// Non-positive fields keep their defaults.
func WithFieldWeights(w FieldWeights) Option {
	return func(c *engineConfig) {
		c.weights = &w
	}
}

// WithFuzzyThreshold overrides the minimum edit similarity (default 0.7)
// for a fuzzy hit to contribute to scoring.
func WithFuzzyThreshold(t float64) Option {
	return func(c *engineConfig) {
		c.fuzzyThreshold = t
	}
}

// WithDictionary sets the known-good domain terms used for typo
// corrections. Without one, no corrections are generated.
func WithDictionary(terms []string) Option {
	return func(c *engineConfig) {
		c.dictionary = terms
	}
}

// WithCompletions sets the known-good phrases offered as completions.
func WithCompletions(phrases []string) Option {
	return func(c *engineConfig) {
		c.completions = phrases
	}
}

// WithPopularQueries sets the fallback suggestions proposed when a search
// matches nothing.
func WithPopularQueries(queries []string) Option {
	return func(c *engineConfig) {
		c.popular = queries
	}
}

// WithCorrectionBand overrides the similarity band (default [0.6, 0.95))
// inside which a dictionary term is proposed as a typo correction.
func WithCorrectionBand(minSim, maxSim float64) Option {
	return func(c *engineConfig) {
		c.correctionMin = minSim
		c.correctionMax = maxSim
	}
}
