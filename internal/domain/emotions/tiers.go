// Package emotions holds the label vocabularies and intensity rules shared by
// every classifier backend. The tables are fixed business rules carried over
// from the trained models; do not re-derive them.
package emotions

// Tier is a named granularity of emotion vocabulary. Not the same thing as a
// subscription plan, although the plan determines the tier.
type Tier string

const (
	TierBasic Tier = "basic"
	TierPlus  Tier = "plus"
	TierPro   Tier = "pro"
)

// TierFor picks the vocabulary tier from the request's feature flags.
func TierFor(classifyExt, intensity bool) Tier {
	switch {
	case intensity:
		return TierPro
	case classifyExt:
		return TierPlus
	default:
		return TierBasic
	}
}

// BasicLabels is the 7-label coarse vocabulary.
var BasicLabels = []string{"happy", "sad", "mad", "scared", "surprised", "disgusted", "neutral"}

// PlusLabels is the extended 23-label vocabulary.
var PlusLabels = []string{
	"excitement", "confusion", "surprise", "neutral", "optimism", "pride",
	"curiosity", "fear", "amusement", "joy", "desire", "annoyance",
	"nervousness", "gratitude", "approval", "realization", "disappointment",
	"caring", "sadness", "admiration", "disapproval", "anger", "remorse",
}

// ProLabels is the full 27-label vocabulary: Plus plus relief, love, disgust
// and embarrassment.
var ProLabels = append(append([]string{}, PlusLabels...),
	"relief", "love", "disgust", "embarrassment",
)

var tierLabels = map[Tier][]string{
	TierBasic: BasicLabels,
	TierPlus:  PlusLabels,
	TierPro:   ProLabels,
}

// Labels returns the vocabulary for a tier. Unknown tiers get the basic set.
func Labels(t Tier) []string {
	if l, ok := tierLabels[t]; ok {
		return l
	}
	return BasicLabels
}

// Allowed reports whether label is a member of the tier's vocabulary.
func Allowed(t Tier, label string) bool {
	for _, l := range Labels(t) {
		if l == label {
			return true
		}
	}
	return false
}

// Sentinel is written for a segment whose classification degraded beyond
// recovery.
const Sentinel = "nan"
