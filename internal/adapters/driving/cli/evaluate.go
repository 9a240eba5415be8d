package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

var (
	evaluateReference string
	evaluateJSON      bool

	rateCorrectness  int
	rateFluency      int
	rateVoiceClarity int
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [query-id]",
	Short: "Score an answered query against a reference answer",
	Long: `Computes unigram, bigram and longest-common-subsequence overlap of a
stored answer against a reference answer you provide.`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

var rateCmd = &cobra.Command{
	Use:   "rate [query-id]",
	Short: "Record a manual 1-5 rating for an answered query",
	Args:  cobra.ExactArgs(1),
	RunE:  runRate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateReference, "reference", "r", "", "reference answer to score against (required)")
	evaluateCmd.Flags().BoolVar(&evaluateJSON, "json", false, "output the report as JSON")
	_ = evaluateCmd.MarkFlagRequired("reference")

	rateCmd.Flags().IntVar(&rateCorrectness, "correctness", 0, "factual correctness, 1-5 (required)")
	rateCmd.Flags().IntVar(&rateFluency, "fluency", 0, "fluency, 1-5 (required)")
	rateCmd.Flags().IntVar(&rateVoiceClarity, "voice", 0, "voice clarity, 1-5 (required)")
	_ = rateCmd.MarkFlagRequired("correctness")
	_ = rateCmd.MarkFlagRequired("fluency")
	_ = rateCmd.MarkFlagRequired("voice")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(rateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	if evaluationService == nil || historyService == nil {
		return errors.New("evaluation service not configured")
	}

	rec, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("query %q: %w", args[0], err)
	}

	report, err := evaluationService.Score(evaluateReference, rec.Result.Answer)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if evaluateJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Answer: %s\n", rec.Result.Answer)
	cmd.Printf("Reference: %s\n", evaluateReference)
	cmd.Println()
	printOverlap(cmd, "Unigram", report.Unigram)
	printOverlap(cmd, "Bigram", report.Bigram)
	printOverlap(cmd, "LCS", report.LCS)
	return nil
}

func printOverlap(cmd *cobra.Command, name string, s domain.OverlapScore) {
	cmd.Printf("  %-8s P=%.3f R=%.3f F=%.3f\n", name, s.Precision, s.Recall, s.FMeasure)
}

func runRate(cmd *cobra.Command, args []string) error {
	if evaluationService == nil {
		return errors.New("evaluation service not configured")
	}

	rating := domain.HumanRating{
		QueryID:      args[0],
		Correctness:  rateCorrectness,
		Fluency:      rateFluency,
		VoiceClarity: rateVoiceClarity,
	}

	if err := evaluationService.Rate(cmd.Context(), rating); err != nil {
		return fmt.Errorf("rating failed: %w", err)
	}

	cmd.Printf("Rated query %s: correctness=%d fluency=%d voice=%d\n",
		args[0], rateCorrectness, rateFluency, rateVoiceClarity)
	return nil
}
