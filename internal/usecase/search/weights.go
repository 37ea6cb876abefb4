package search

// Weights are the per-field score multipliers. Fixed struct fields instead
// of an open map so a missing field is a compile error, not a silent zero.
type Weights struct {
	Title       float64
	Description float64
	Content     float64
	Tags        float64
	Category    float64
}

// DefaultWeights returns the tuned field weights (title heaviest).
func DefaultWeights() Weights {
	return Weights{
		Title:       3,
		Description: 2,
		Content:     1,
		Tags:        2.5,
		Category:    1.5,
	}
}

// Scoring bonus constants. Hand-tuned values inherited from production
// behavior; overridable thresholds live in Params, the fixed bonuses here.
const (
	exactPhraseBonus = 10
	exactWordBonus   = 5
	partialBonus     = 3
	fuzzyBonusScale  = 3
	prefixMultiplier = 1.3

	titlePhraseMultiplier   = 1.5
	contentPhraseMultiplier = 1.2

	// minPhraseLen is the shortest full query eligible for the exact
	// phrase bonus; minDocPhraseLen gates the whole-document multipliers.
	minPhraseLen    = 3
	minDocPhraseLen = 4

	// minFuzzyWordLen is the shortest string considered for edit-distance
	// comparison; shorter words produce too many false positives.
	minFuzzyWordLen = 3
	minTermLen      = 2
)

// Params are the tunable scoring thresholds. The defaults are hand-tuned,
// not derived; treat them as adjustable, not as invariants.
type Params struct {
	// FuzzyThreshold is the minimum normalized edit similarity for a
	// fuzzy hit to contribute to a field score.
	FuzzyThreshold float64
}

// DefaultParams returns the tuned scoring thresholds.
func DefaultParams() Params {
	return Params{FuzzyThreshold: 0.7}
}
