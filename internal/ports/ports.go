package ports

import (
	"context"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/emotions"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/types"
)

// MediaTool prepares a media source for transcription.
type MediaTool interface {
	// Fetch resolves a remote media reference to a local file in dir.
	Fetch(ctx context.Context, url, dir string) (string, error)
	// Trim cuts [start, end) seconds out of src into a new file in dir.
	// end <= 0 means until the end of the source.
	Trim(ctx context.Context, src string, start, end float64, dir string) (string, error)
}

// Transcriber turns a local media file into a language plus timestamped
// segments. modelSize selects the transcription model tier.
type Transcriber interface {
	Transcribe(ctx context.Context, path, modelSize string) (types.Transcript, error)
}

// LanguageDetector guesses the ISO 639-1 language code of a text. Must never
// fail: implementations fall back to "en".
type LanguageDetector interface {
	Detect(text string) string
}

// Translator translates text from srcLang into English. Already-English or
// unsupported languages pass through unchanged. On failure implementations
// return the input text together with the error.
type Translator interface {
	Translate(ctx context.Context, text, srcLang string) (string, error)
}

// Classifier is one remote emotion-classification backend.
type Classifier interface {
	Classify(ctx context.Context, text string, tier emotions.Tier, wantIntensity bool) (types.Classification, error)
}

// Reviewer re-evaluates a prior prediction against a ground-truth label.
type Reviewer interface {
	Review(ctx context.Context, text, predicted, actual string, tier emotions.Tier, wantIntensity bool) (types.Classification, error)
}
