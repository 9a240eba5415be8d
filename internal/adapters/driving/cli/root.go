// Package cli implements the command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
	"github.com/voqa-labs/voqa-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute.
var (
	answerProvider    driving.AnswerProvider
	documentService   driving.DocumentService
	voiceService      driving.VoiceService
	evaluationService driving.EvaluationService
	historyService    driving.HistoryService
	settingsService   driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "voqa",
	Short: "Voice question answering over documents",
	Long: `Voqa answers questions about PDF and text documents in multiple
languages. Questions can be typed or transcribed from audio, and answers
can be spoken back as synthesized speech.

Extractive languages score overlapping windows of the document with a
question-answering model and return the best-supported span; generative
languages produce a free-form answer conditioned on the whole document.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context. Long
// running commands (serve, mcp, watch, tui) stop when it is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	version = v
}

// SetAnswerProvider injects the per-language answer provider.
func SetAnswerProvider(p driving.AnswerProvider) {
	answerProvider = p
}

// SetDocumentService injects the document service.
func SetDocumentService(svc driving.DocumentService) {
	documentService = svc
}

// SetVoiceService injects the voice service.
func SetVoiceService(svc driving.VoiceService) {
	voiceService = svc
}

// SetEvaluationService injects the evaluation service.
func SetEvaluationService(svc driving.EvaluationService) {
	evaluationService = svc
}

// SetHistoryService injects the history service.
func SetHistoryService(svc driving.HistoryService) {
	historyService = svc
}

// SetSettingsService injects the settings service.
func SetSettingsService(svc driving.SettingsService) {
	settingsService = svc
}
