// Package usecase drives one classification request end to end:
// Normalizing -> Classifying -> Persisting -> Done. Normalization failures
// abort the request; per-segment classification failures degrade to sentinel
// values so a batch always yields partial results.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/emotions"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/plan"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/segments"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/history"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/ports"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/types"
)

// ErrInputNotFound marks a local source reference that does not resolve.
var ErrInputNotFound = errors.New("input not found")

type Deps struct {
	Media      ports.MediaTool
	ASR        ports.Transcriber
	Detector   ports.LanguageDetector
	Translator ports.Translator
	Primary    ports.Classifier // chat-LLM backend
	Fallback   ports.Classifier // encoder backend, never aborts
	History    *history.Log
	Log        *logrus.Logger
	Now        func() time.Time
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase {
	if d.Log == nil {
		d.Log = logrus.StandardLogger()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return Usecase{d: d}
}

type Input struct {
	Request  types.Request
	Features plan.Features
	OutDir   string // artifact directory
	WorkDir  string // scratch space for fetched/trimmed media
}

// classifierState is the per-request fallback memory: once the primary
// backend fails, every remaining segment in the request goes to the fallback.
// Lives only for the duration of one Run call, never shared across requests.
type classifierState struct {
	preferFallback bool // caller asked for the encoder backend outright
	stickyFallback bool
}

// Run executes the full request and returns its summary record.
func (u Usecase) Run(ctx context.Context, in Input) (types.Summary, error) {
	src := in.Request.Source

	srcLang, segs, err := u.normalize(ctx, in)
	if err != nil {
		return types.Summary{}, err
	}

	tier := emotions.TierFor(in.Features.ClassifyExt, in.Features.Intensity)
	state := classifierState{preferFallback: in.Request.Classifier == "bert"}

	rows := make([]types.ResultRow, 0, len(segs))
	for i, seg := range segs {
		translation := seg.Text
		if in.Features.Translate && srcLang != "en" {
			t, err := u.d.Translator.Translate(ctx, seg.Text, srcLang)
			if err != nil {
				u.d.Log.WithError(err).Warnf("translation failed for segment %d; keeping original", i+1)
			}
			translation = t
		}

		cls := types.Classification{Emotion: emotions.Sentinel}
		if in.Features.Classify {
			cls = u.classify(ctx, &state, translation, tier, in.Features)
		}

		row := types.ResultRow{
			Start:       segments.FormatTimestamp(seg.Start),
			End:         segments.FormatTimestamp(seg.End),
			Sentence:    seg.Text,
			Translation: translation,
			Emotion:     cls.Emotion,
		}
		if in.Features.Intensity && cls.Intensity != nil {
			row.IntensityScore = strconv.FormatFloat(*cls.Intensity, 'f', 2, 64)
			row.IntensityLabel = emotions.IntensityLabel(*cls.Intensity)
		}
		rows = append(rows, row)
	}

	stem := segments.SafeStem(src)
	csvPath := filepath.Join(in.OutDir, stem+"_emotion.csv")
	if err := history.WriteRows(csvPath, rows, in.Features.Intensity); err != nil {
		return types.Summary{}, fmt.Errorf("persist rows: %w", err)
	}

	summary := types.Summary{
		Timestamp: history.Timestamp(u.d.Now()),
		Input:     src,
		Language:  srcLang,
		CSV:       csvPath,
	}
	if in.Request.Persist && u.d.History != nil {
		if err := u.d.History.Append(summary); err != nil {
			return types.Summary{}, fmt.Errorf("append history: %w", err)
		}
	}
	u.d.Log.WithFields(logrus.Fields{"segments": len(segs), "csv": csvPath}).Info("request finished")
	return summary, nil
}

// classify picks a backend for one segment. When neither extended labels nor
// intensity are in play the encoder backend is always the cheaper, adequate
// choice. Otherwise the chat backend is preferred until its first failure in
// this request, after which the fallback is sticky.
func (u Usecase) classify(ctx context.Context, state *classifierState, text string, tier emotions.Tier, f plan.Features) types.Classification {
	cheap := !f.ClassifyExt && !f.Intensity
	if cheap || state.preferFallback || state.stickyFallback {
		return u.fallbackClassify(ctx, text, tier, f.Intensity)
	}

	cls, err := u.d.Primary.Classify(ctx, text, tier, f.Intensity)
	if err != nil {
		u.d.Log.WithError(err).Warn("primary classifier failed; switching to fallback for remaining segments")
		state.stickyFallback = true
		return u.fallbackClassify(ctx, text, tier, f.Intensity)
	}
	return cls
}

func (u Usecase) fallbackClassify(ctx context.Context, text string, tier emotions.Tier, wantIntensity bool) types.Classification {
	cls, err := u.d.Fallback.Classify(ctx, text, tier, wantIntensity)
	if err != nil {
		// Degraded, not fatal: the adapter already substituted the sentinel.
		u.d.Log.WithError(err).Error("fallback classifier degraded")
	}
	return cls
}

// normalize reduces the request source to a language and ordered segments.
func (u Usecase) normalize(ctx context.Context, in Input) (string, []types.Segment, error) {
	src := in.Request.Source

	switch {
	case segments.IsTextFile(src):
		raw, err := os.ReadFile(src)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %s", ErrInputNotFound, src)
		}
		segs, err := segments.FromTextContent(string(raw), filepath.Ext(src))
		if err != nil {
			return "", nil, fmt.Errorf("parse %s: %w", src, err)
		}
		return u.d.Detector.Detect(string(raw)), segs, nil

	case segments.IsMedia(src):
		return u.normalizeMedia(ctx, in)

	default:
		// Plain text. Translate once up front so the artifact carries the
		// English text in both columns, like the per-segment path does.
		lang := u.d.Detector.Detect(src)
		text := src
		if in.Features.Translate && lang != "en" {
			t, err := u.d.Translator.Translate(ctx, src, lang)
			if err != nil {
				u.d.Log.WithError(err).Warn("translation failed for text input; keeping original")
			}
			text = t
			lang = "en"
		}
		return lang, segments.FromText(text), nil
	}
}

func (u Usecase) normalizeMedia(ctx context.Context, in Input) (string, []types.Segment, error) {
	src := in.Request.Source
	local := src

	if isURL(src) {
		fetched, err := u.d.Media.Fetch(ctx, src, in.WorkDir)
		if err != nil {
			return "", nil, fmt.Errorf("fetch media: %w", err)
		}
		local = fetched
	} else if _, err := os.Stat(local); err != nil {
		return "", nil, fmt.Errorf("%w: %s", ErrInputNotFound, src)
	}

	var offset float64
	if in.Request.StartTime != "" || in.Request.EndTime != "" {
		start, end := 0.0, 0.0
		var err error
		if in.Request.StartTime != "" {
			if start, err = segments.ParseClock(in.Request.StartTime); err != nil {
				return "", nil, err
			}
		}
		if in.Request.EndTime != "" {
			if end, err = segments.ParseClock(in.Request.EndTime); err != nil {
				return "", nil, err
			}
		}
		trimmed, err := u.d.Media.Trim(ctx, local, start, end, in.WorkDir)
		if err != nil {
			return "", nil, fmt.Errorf("trim media: %w", err)
		}
		local = trimmed
		offset = start
	}

	tr, err := u.d.ASR.Transcribe(ctx, local, in.Features.ModelSize)
	if err != nil {
		return "", nil, fmt.Errorf("transcribe: %w", err)
	}

	segs := make([]types.Segment, 0, len(tr.Segments))
	for _, s := range tr.Segments {
		segs = append(segs, types.Segment{Start: s.Start + offset, End: s.End + offset, Text: s.Text})
	}
	lang := tr.Language
	if lang == "" {
		lang = "en"
	}
	return lang, segs, nil
}

func isURL(s string) bool {
	return len(s) > 7 && (s[:7] == "http://" || (len(s) > 8 && s[:8] == "https://"))
}
