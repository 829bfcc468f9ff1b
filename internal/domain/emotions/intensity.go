package emotions

// intensityWords maps the ordinal intensity vocabulary the chat backend
// replies with onto scores in [0,1]. Words outside the table score 0.0.
var intensityWords = map[string]float64{
	"neutral":  0.0,
	"mild":     0.25,
	"moderate": 0.5,
	"strong":   0.75,
	"intense":  1.0,
}

// IntensityScore converts an ordinal intensity word to its score.
func IntensityScore(word string) float64 {
	return intensityWords[word]
}

// IntensityWords lists the ordinal vocabulary in ascending order, for prompts.
var IntensityWords = []string{"neutral", "mild", "moderate", "strong", "intense"}

// IntensityLabel buckets a score back into an ordinal word.
func IntensityLabel(score float64) string {
	switch {
	case score < 0.15:
		return "neutral"
	case score < 0.4:
		return "mild"
	case score < 0.7:
		return "moderate"
	case score < 0.9:
		return "strong"
	default:
		return "intense"
	}
}
