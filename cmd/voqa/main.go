// Command voqa is the voice question-answering CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/voqa-labs/voqa-cli/internal/adapters/driven/ai"
	"github.com/voqa-labs/voqa-cli/internal/adapters/driven/config/file"
	"github.com/voqa-labs/voqa-cli/internal/adapters/driven/speech/gtts"
	"github.com/voqa-labs/voqa-cli/internal/adapters/driven/speech/whisperapi"
	"github.com/voqa-labs/voqa-cli/internal/adapters/driven/storage/sqlite"
	"github.com/voqa-labs/voqa-cli/internal/adapters/driving/cli"
	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
	"github.com/voqa-labs/voqa-cli/internal/core/services"
	"github.com/voqa-labs/voqa-cli/internal/extractors"
	"github.com/voqa-labs/voqa-cli/internal/extractors/pdf"
	"github.com/voqa-labs/voqa-cli/internal/extractors/plaintext"
	"github.com/voqa-labs/voqa-cli/internal/windower"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Configuration and settings. Empty dirs select ~/.voqa defaults.
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	// Storage.
	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close() //nolint:errcheck // best-effort close on exit

	// Document extraction.
	registry := extractors.NewRegistry(pdf.New(), plaintext.New())
	documentService := services.NewDocumentService(registry, store.DocumentStore())

	// Answering.
	factory := ai.NewFactory(*settings)
	provider := services.NewAnswerProvider(factory, windower.New(), store.QueryStore())

	// Speech. The transcriber needs a configured endpoint or key; the
	// synthesizer falls back to the public endpoint.
	var transcriber driven.Transcriber
	if settings.Speech.STTEndpoint != "" || settings.Speech.STTAPIKey != "" {
		transcriber = whisperapi.NewTranscriber(whisperapi.Config{
			BaseURL: settings.Speech.STTEndpoint,
			APIKey:  settings.Speech.STTAPIKey,
		})
	}
	synthesizer := gtts.NewSynthesizer(gtts.Config{
		BaseURL:   settings.Speech.TTSEndpoint,
		OutputDir: settings.Speech.AudioDir,
	})
	voiceService := services.NewVoiceService(domain.DefaultLanguages(), transcriber, synthesizer)
	provider.SetVoiceService(voiceService)

	// Evaluation and history.
	evaluationService := services.NewEvaluationService(store.QueryStore())
	historyService := services.NewHistoryService(store.QueryStore())

	cli.SetVersion(version)
	cli.SetAnswerProvider(provider)
	cli.SetDocumentService(documentService)
	cli.SetVoiceService(voiceService)
	cli.SetEvaluationService(evaluationService)
	cli.SetHistoryService(historyService)
	cli.SetSettingsService(settingsService)

	return cli.ExecuteContext(ctx)
}
