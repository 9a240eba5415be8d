package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	transcribeLanguage string
	speakLanguage      string
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [audio-file]",
	Short: "Transcribe an audio recording to text",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranscribe,
}

var speakCmd = &cobra.Command{
	Use:   "speak [text]",
	Short: "Synthesize text to spoken audio",
	Long: `Synthesizes the given text as speech and prints the path of the
MP3 file written.`,
	Args: cobra.ExactArgs(1),
	RunE: runSpeak,
}

func init() {
	transcribeCmd.Flags().StringVarP(&transcribeLanguage, "language", "l", "English", "language spoken in the recording")
	speakCmd.Flags().StringVarP(&speakLanguage, "language", "l", "English", "language to speak in")
	rootCmd.AddCommand(transcribeCmd)
	rootCmd.AddCommand(speakCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	if voiceService == nil {
		return errors.New("voice service not configured")
	}

	lang, err := resolveLanguage(transcribeLanguage)
	if err != nil {
		return err
	}

	text, err := voiceService.Transcribe(cmd.Context(), args[0], lang.Name)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	cmd.Println(text)
	return nil
}

func runSpeak(cmd *cobra.Command, args []string) error {
	if voiceService == nil {
		return errors.New("voice service not configured")
	}

	lang, err := resolveLanguage(speakLanguage)
	if err != nil {
		return err
	}

	path, err := voiceService.Speak(cmd.Context(), args[0], lang.Name)
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	cmd.Printf("Audio written to %s\n", path)
	return nil
}
