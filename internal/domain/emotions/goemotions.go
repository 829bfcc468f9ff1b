package emotions

// ClassIndex maps the 28-class output of the encoder classifier onto label
// strings. The ordering follows the model's training labels.
var ClassIndex = map[int]string{
	0:  "admiration",
	1:  "amusement",
	2:  "anger",
	3:  "annoyance",
	4:  "approval",
	5:  "caring",
	6:  "confusion",
	7:  "curiosity",
	8:  "desire",
	9:  "disappointment",
	10: "disapproval",
	11: "disgust",
	12: "embarrassment",
	13: "excitement",
	14: "fear",
	15: "gratitude",
	16: "grief",
	17: "joy",
	18: "love",
	19: "nervousness",
	20: "optimism",
	21: "pride",
	22: "realization",
	23: "relief",
	24: "remorse",
	25: "sadness",
	26: "surprise",
	27: "neutral",
}

// basicCollapse buckets each 28-class label into one of the 7 basic labels.
var basicCollapse = map[string]string{
	"admiration":     "happy",
	"amusement":      "happy",
	"anger":          "mad",
	"annoyance":      "mad",
	"approval":       "happy",
	"caring":         "happy",
	"confusion":      "neutral",
	"curiosity":      "neutral",
	"desire":         "happy",
	"disappointment": "sad",
	"disapproval":    "mad",
	"disgust":        "disgust",
	"embarrassment":  "sad",
	"excitement":     "happy",
	"fear":           "scared",
	"gratitude":      "happy",
	"grief":          "sad",
	"joy":            "happy",
	"love":           "happy",
	"nervousness":    "scared",
	"optimism":       "happy",
	"pride":          "happy",
	"realization":    "surprised",
	"relief":         "happy",
	"remorse":        "sad",
	"sadness":        "sad",
	"surprise":       "surprised",
	"neutral":        "neutral",
}

// CollapseBasic maps an extended label down to the 7-label set. Labels the
// table does not know become neutral.
func CollapseBasic(label string) string {
	if b, ok := basicCollapse[label]; ok {
		return b
	}
	return "neutral"
}
