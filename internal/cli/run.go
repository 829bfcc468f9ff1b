package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/config"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/emotions"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/plan"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/segments"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/pipeline"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/ports/adapters/llamachat"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/types"
)

func runPredict(cmd *cobra.Command, source string) error {
	planFlag, _ := cmd.Flags().GetString("plan")
	classifier, _ := cmd.Flags().GetString("classifier")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	save, _ := cmd.Flags().GetBool("save")

	p, err := plan.Parse(planFlag)
	if err != nil {
		return err
	}
	feat, err := plan.Enforce(p, windowSeconds(from, to))
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)

	pl, err := pipeline.New(config.FromEnv(), log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	summary, err := pl.Run(ctx, types.Request{
		Source:     source,
		Classifier: classifier,
		StartTime:  from,
		EndTime:    to,
		Persist:    save,
	}, feat)
	if err != nil {
		return err
	}
	return printJSON(cmd, summary)
}

func runReview(cmd *cobra.Command, sentence, predicted, actual string) error {
	planFlag, _ := cmd.Flags().GetString("plan")

	p, err := plan.Parse(planFlag)
	if err != nil {
		return err
	}
	feat, err := plan.Resolve(p)
	if err != nil {
		return err
	}

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)

	backends := []llamachat.Backend{{BaseURL: cfg.LlamaBaseURL, Model: cfg.LlamaModel}}
	for _, m := range cfg.LlamaFallbackModels {
		backends = append(backends, llamachat.Backend{BaseURL: cfg.LlamaBaseURL, Model: m})
	}
	adapter := llamachat.New(cfg.LlamaToken, backends, log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	tier := emotions.TierFor(feat.ClassifyExt, feat.Intensity)
	cls, err := adapter.Review(ctx, sentence, predicted, actual, tier, feat.Intensity)
	if err != nil {
		return err
	}
	out := map[string]any{"emotion": cls.Emotion}
	if cls.Intensity != nil {
		out["intensity"] = *cls.Intensity
	}
	return printJSON(cmd, out)
}

// windowSeconds derives the declared request duration from an explicit time
// window. Zero means unknown; the plan cap is then checked after
// normalization, when the real media duration is known.
func windowSeconds(from, to string) int {
	if from == "" || to == "" {
		return 0
	}
	start, err := segments.ParseClock(from)
	if err != nil {
		return 0
	}
	end, err := segments.ParseClock(to)
	if err != nil || end <= start {
		return 0
	}
	return int(end - start)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
