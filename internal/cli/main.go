package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "emotion",
		Short:        "Classify emotions in text, audio and video",
		SilenceUsage: true,
	}

	predict := &cobra.Command{
		Use:   "predict <source>",
		Short: "Run the full pipeline over a file, URL or raw text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(cmd, args[0])
		},
	}
	predict.Flags().String("plan", "basic", "Subscription plan (basic, plus, pro)")
	predict.Flags().String("classifier", "llama", "Classifier backend (llama, bert)")
	predict.Flags().String("from", "", "Window start (HH:MM:SS, MM:SS or seconds)")
	predict.Flags().String("to", "", "Window end")
	predict.Flags().Bool("save", true, "Append the run to the history log")

	review := &cobra.Command{
		Use:   "review <sentence> <predicted> <actual>",
		Short: "Re-evaluate a prior prediction against a known label",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(cmd, args[0], args[1], args[2])
		},
	}
	review.Flags().String("plan", "pro", "Subscription plan selecting the label vocabulary")

	root.AddCommand(predict, review)
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
