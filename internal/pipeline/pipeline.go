// Package pipeline wires the adapters into the usecase. One Pipeline serves
// many requests; the translation-model cache and HTTP clients are shared
// across them, the fallback state is not.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/config"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/plan"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/history"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/ports"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/ports/adapters/bertscore"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/ports/adapters/linguadetect"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/ports/adapters/llamachat"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/ports/adapters/marianhttp"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/ports/adapters/media"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/ports/adapters/whisperhttp"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/types"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/usecase"
)

type Pipeline struct {
	uc      usecase.Usecase
	outDir  string
	workDir string
}

// New builds the production pipeline from configuration.
func New(cfg config.Config, log *logrus.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := os.MkdirAll(cfg.TranscriptDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		return nil, err
	}

	backends := []llamachat.Backend{{BaseURL: cfg.LlamaBaseURL, Model: cfg.LlamaModel}}
	for _, m := range cfg.LlamaFallbackModels {
		backends = append(backends, llamachat.Backend{BaseURL: cfg.LlamaBaseURL, Model: m})
	}

	deps := usecase.Deps{
		Media:      media.New(cfg.YtdlpPath, cfg.FFmpegPath),
		ASR:        whisperhttp.New(cfg.ASRBaseURL),
		Detector:   linguadetect.New(),
		Translator: marianhttp.New(cfg.TranslateBaseURL, marianhttp.NewModelCache()),
		Primary:    llamachat.New(cfg.LlamaToken, backends, log),
		Fallback:   bertscore.New(cfg.BertURL, cfg.BertAPIKey, log),
		History:    history.NewLog(cfg.HistoryCSV),
		Log:        log,
	}

	return &Pipeline{
		uc:      usecase.New(deps),
		outDir:  cfg.TranscriptDir,
		workDir: cfg.WorkDir,
	}, nil
}

// Run processes one request under an already-enforced feature configuration.
func (p *Pipeline) Run(ctx context.Context, req types.Request, feat plan.Features) (types.Summary, error) {
	return p.uc.Run(ctx, usecase.Input{
		Request:  req,
		Features: feat,
		OutDir:   p.outDir,
		WorkDir:  p.workDir,
	})
}

// interface guards
var _ ports.MediaTool = (*media.Adapter)(nil)
var _ ports.Transcriber = (*whisperhttp.Adapter)(nil)
var _ ports.LanguageDetector = (*linguadetect.Detector)(nil)
var _ ports.Translator = (*marianhttp.Adapter)(nil)
var _ ports.Classifier = (*llamachat.Adapter)(nil)
var _ ports.Reviewer = (*llamachat.Adapter)(nil)
var _ ports.Classifier = (*bertscore.Adapter)(nil)
