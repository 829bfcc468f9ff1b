package llamachat

import (
	"fmt"
	"strings"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/emotions"
)

type fewShot struct {
	Sentence string
	Emotion  string
}

var basicFewShots = []fewShot{
	{"This is wonderful news!", "happy"},
	{"I feel so down today.", "sad"},
	{"That driver just cut me off!", "mad"},
	{"I heard a strange noise downstairs.", "scared"},
	{"Wow, I didn't see that coming at all!", "surprised"},
	{"Ugh, this spoiled milk smells awful!", "disgusted"},
	{"It's just an ordinary Tuesday.", "neutral"},
}

var plusFewShots = []fewShot{
	{"I can't wait for the party tonight!", "excitement"},
	{"I'm completely lost, what are we doing?", "confusion"},
	{"I didn't expect that at all!", "surprise"},
	{"It's just another day, nothing special.", "neutral"},
	{"I'm sure things will work out for the best.", "optimism"},
	{"I'm so proud of completing that marathon.", "pride"},
	{"I wonder what's inside that old box.", "curiosity"},
	{"The thought of speaking in public fills me with dread.", "fear"},
	{"That comedian's routine was hilarious!", "amusement"},
	{"This beautiful sunset fills me with pure happiness.", "joy"},
	{"I really want that new video game.", "desire"},
	{"The constant dripping tap is so irritating.", "annoyance"},
	{"I have a big presentation tomorrow and I'm a wreck.", "nervousness"},
	{"Thank you so much for your incredible help.", "gratitude"},
	{"Yes, that's exactly the right approach!", "approval"},
	{"Ah, now I understand how this works!", "realization"},
	{"I was hoping to get the job, so this is a letdown.", "disappointment"},
	{"Don't worry, I'm here for you.", "caring"},
	{"Hearing about the accident made me feel quite low.", "sadness"},
	{"I truly look up to her dedication and skill.", "admiration"},
	{"I don't think that's the correct way to handle this.", "disapproval"},
	{"How dare they accuse me of that?!", "anger"},
	{"I deeply regret my harsh words from yesterday.", "remorse"},
}

var proFewShots = append(append([]fewShot{}, plusFewShots...),
	fewShot{"Phew, the presentation is over and it went well!", "relief"},
	fewShot{"I cherish every moment we spend together.", "love"},
	fewShot{"The sight of that rotting food was vile.", "disgust"},
	fewShot{"I can't believe I spilled coffee all over my boss.", "embarrassment"},
)

var tierFewShots = map[emotions.Tier][]fewShot{
	emotions.TierBasic: basicFewShots,
	emotions.TierPlus:  plusFewShots,
	emotions.TierPro:   proFewShots,
}

const systemPrompt = "You are an expert emotion classifier."

// buildPrompt produces the first-pass classification prompt. The reply format
// is parsed by extractEmotion / extractIntensity; keep them in sync.
func buildPrompt(sentence string, tier emotions.Tier, wantIntensity bool) string {
	labelsLine := strings.Join(emotions.Labels(tier), ", ")

	intensityClause := ""
	intensityFmt := ""
	if wantIntensity {
		intensityClause = "\n4. Also provide an intensity label from: " +
			strings.Join(emotions.IntensityWords, ", ") + "."
		intensityFmt = "\nIntensity: <intensity label>"
	}

	var shots []string
	for _, fs := range tierFewShots[tier] {
		shots = append(shots, fs.Sentence+"    "+fs.Emotion)
	}
	fewShots := strings.Join(shots, "\n")
	if fewShots == "" {
		fewShots = "(No specific examples for this tier.)"
	}

	return strings.TrimSpace(fmt.Sprintf(`
You are an expert emotion classifier. Read the sentence carefully and analyse its emotional content.
1. Explain your reasoning step by step.
2. Then, provide the final emotion classification from these options only:
   %s.%s
3. Do NOT use any emotion (or intensity) outside this list.

Few-shot examples (for the %s plan):
%s

Now classify the emotion in the following sentence:
Sentence: %s

Respond in this format:
Reasoning: <your reasoning>
Answer: <final emotion in lowercase>%s`,
		labelsLine, intensityClause, tier, fewShots, sentence, intensityFmt))
}

// buildReviewPrompt produces the second-pass prompt that re-evaluates a prior
// prediction against a ground-truth label.
func buildReviewPrompt(sentence, predicted, actual string, tier emotions.Tier, wantIntensity bool) string {
	labelsLine := strings.Join(emotions.Labels(tier), ", ")

	intensityLn := ""
	intensityFmt := ""
	if wantIntensity {
		intensityLn = "Valid intensity labels: " + strings.Join(emotions.IntensityWords, ", ") + "."
		intensityFmt = "\nIntensity: <intensity label>"
	}

	return strings.TrimSpace(fmt.Sprintf(`
You are an expert emotion classifier. Re-evaluate the following information.

Sentence: %q
Predicted Emotion: %s
Actual Emotion (CSV): %s

Valid emotions:
%s
%s

Reflect on your initial prediction and the actual emotion.
Adjust your answer if needed, adhering strictly to the valid emotions.

Respond in this format:
Reasoning: <your reasoning>
Answer: <final emotion in lowercase>%s`,
		sentence, predicted, actual, labelsLine, intensityLn, intensityFmt))
}
