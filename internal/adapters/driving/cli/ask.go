package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

var (
	askDocument string
	askLanguage string
	askAudio    string
	askSpeak    bool
	askNoRecord bool
	askJSON     bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about a document",
	Long: `Answers a question against a loaded document.

The question is typed as an argument, or transcribed from an audio file
with --audio. The document is either a stored document ID or a file path;
when omitted, the selected language's bundled sample document is used.

Examples:
  voqa ask "How far away is the moon?" --document notes.pdf
  voqa ask --audio question.wav --language Japanese --speak`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askDocument, "document", "d", "", "document ID or file path")
	askCmd.Flags().StringVarP(&askLanguage, "language", "l", "English", "language to answer in")
	askCmd.Flags().StringVar(&askAudio, "audio", "", "transcribe the question from this audio file")
	askCmd.Flags().BoolVar(&askSpeak, "speak", false, "synthesize the answer as audio")
	askCmd.Flags().BoolVar(&askNoRecord, "no-record", false, "do not save the query to history")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if answerProvider == nil {
		return errors.New("answer provider not configured")
	}

	lang, err := resolveLanguage(askLanguage)
	if err != nil {
		return err
	}

	answers, err := answerProvider.For(lang)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	question, spoken := "", false
	switch {
	case askAudio != "":
		if voiceService == nil {
			return errors.New("voice service not configured")
		}
		question, err = voiceService.Transcribe(ctx, askAudio, lang.Name)
		if err != nil {
			return fmt.Errorf("could not understand the recording: %w", err)
		}
		spoken = true
		cmd.Printf("Heard: %s\n", question)
	case len(args) == 1:
		question = args[0]
	default:
		return errors.New("provide a question or --audio")
	}

	doc, err := resolveDocument(cmd, lang)
	if err != nil {
		return err
	}

	record := !askNoRecord
	rec, err := answers.Ask(ctx, question, doc, driving.AskOptions{
		Language: lang.Name,
		Spoken:   spoken,
		Speak:    askSpeak,
		Record:   &record,
	})
	if err != nil {
		return fmt.Errorf("answering failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Answer: %s\n", rec.Result.Answer)
	if !rec.Result.Generated && !rec.Result.IsSentinel() {
		cmd.Printf("Confidence: %.3f\n", rec.Result.Score)
	}
	if rec.AudioPath != "" {
		cmd.Printf("Audio: %s\n", rec.AudioPath)
	}
	if record {
		cmd.Printf("Query ID: %s\n", rec.ID)
	}
	return nil
}

// resolveDocument turns the --document flag into a stored document.
// A value naming an existing file is loaded; anything else is treated as
// a stored document ID. No value selects the language's sample document.
func resolveDocument(cmd *cobra.Command, lang domain.LanguageConfig) (*domain.Document, error) {
	if documentService == nil {
		return nil, errors.New("document service not configured")
	}

	ctx := cmd.Context()

	target := askDocument
	if target == "" {
		if lang.DefaultPDF == "" {
			return nil, errors.New("no document given and no sample document for this language")
		}
		target = lang.DefaultPDF
	}

	if _, err := os.Stat(target); err == nil {
		return documentService.Load(ctx, target, lang.Name)
	}

	doc, err := documentService.Get(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", target, err)
	}
	return doc, nil
}

// resolveLanguage matches a display name case-insensitively against the
// built-in language table.
func resolveLanguage(name string) (domain.LanguageConfig, error) {
	table := domain.DefaultLanguages()
	for _, lc := range table {
		if strings.EqualFold(lc.Name, name) {
			return lc, nil
		}
	}

	names := make([]string, 0, len(table))
	for _, lc := range table {
		names = append(names, lc.Name)
	}
	return domain.LanguageConfig{}, fmt.Errorf("%w: %q (available: %s)",
		domain.ErrUnknownLanguage, name, strings.Join(names, ", "))
}
