package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage backend settings",
	Long: `View and configure the inference and speech backends.

Use subcommands to configure specific settings or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all backends step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Scorer]")
	cmd.Printf("  Endpoint: %s\n", orNotSet(settings.Scorer.Endpoint))
	if settings.Scorer.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Scorer.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	if settings.Scorer.RequestsPerSecond > 0 {
		cmd.Printf("  Rate: %.1f requests/s\n", settings.Scorer.RequestsPerSecond)
	}
	cmd.Printf("  Status: %s\n", configuredStatus(settings.Scorer.IsConfigured()))
	cmd.Println()

	cmd.Println("[Generator]")
	if settings.Generator.Provider != "" {
		cmd.Printf("  Provider: %s\n", settings.Generator.Provider)
	} else {
		cmd.Printf("  Provider: (not set)\n")
	}
	cmd.Printf("  Endpoint: %s\n", orNotSet(settings.Generator.Endpoint))
	if settings.Generator.Provider.RequiresAPIKey() {
		if settings.Generator.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Generator.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	cmd.Printf("  Status: %s\n", configuredStatus(settings.Generator.IsConfigured()))
	cmd.Println()

	cmd.Println("[Speech]")
	cmd.Printf("  Transcription endpoint: %s\n", orNotSet(settings.Speech.STTEndpoint))
	cmd.Printf("  Synthesis endpoint: %s\n", orDefault(settings.Speech.TTSEndpoint))
	cmd.Printf("  Audio directory: %s\n", orDefault(settings.Speech.AudioDir))

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Voqa Settings Wizard")
	cmd.Println("====================")
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Step 1: Extractive Scorer")
	cmd.Println("-------------------------")
	cmd.Println("Sanskrit and Japanese answers are extracted with a HuggingFace-compatible")
	cmd.Println("inference API.")
	cmd.Printf("Inference endpoint [%s]: ", orDefault(settings.Scorer.Endpoint))
	if input := readLine(reader); input != "" {
		settings.Scorer.Endpoint = input
	}
	cmd.Print("API key (empty to keep current): ")
	if key := readPassword(); key != "" {
		settings.Scorer.APIKey = key
	}
	cmd.Println()

	cmd.Println("Step 2: Generative Answerer")
	cmd.Println("---------------------------")
	providers := []domain.InferenceProvider{domain.ProviderHuggingFace, domain.ProviderOllama}
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p)
	}
	cmd.Print("\nEnter choice [1]: ")
	idx := parseChoice(readLine(reader), len(providers), 1)
	settings.Generator.Provider = providers[idx-1]

	cmd.Printf("Inference endpoint [%s]: ", orDefault(settings.Generator.Endpoint))
	if input := readLine(reader); input != "" {
		settings.Generator.Endpoint = input
	}
	if settings.Generator.Provider.RequiresAPIKey() {
		cmd.Print("API key (empty to keep current): ")
		if key := readPassword(); key != "" {
			settings.Generator.APIKey = key
		}
		cmd.Println()
	}

	cmd.Println("Step 3: Speech")
	cmd.Println("--------------")
	cmd.Printf("Transcription endpoint [%s]: ", orDefault(settings.Speech.STTEndpoint))
	if input := readLine(reader); input != "" {
		settings.Speech.STTEndpoint = input
	}
	cmd.Printf("Audio output directory [%s]: ", orDefault(settings.Speech.AudioDir))
	if input := readLine(reader); input != "" {
		settings.Speech.AudioDir = input
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println()
	cmd.Println("Settings saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}

func configuredStatus(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}
