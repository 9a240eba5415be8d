package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voqa-labs/voqa-cli/internal/ingest"
)

var (
	watchLanguage   string
	watchExtensions []string
	watchScan       bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory...]",
	Short: "Watch directories and load dropped documents automatically",
	Long: `Watches the given directories recursively and loads any document
dropped into them. Runs until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchLanguage, "language", "l", "English", "language to store documents under")
	watchCmd.Flags().StringSliceVar(&watchExtensions, "ext", []string{"pdf", "txt", "md"}, "file extensions to ingest")
	watchCmd.Flags().BoolVar(&watchScan, "scan", false, "also load files already present")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	lang, err := resolveLanguage(watchLanguage)
	if err != nil {
		return err
	}

	watcher, err := ingest.NewWatcher(ingest.Config{
		Roots:       args,
		Extensions:  watchExtensions,
		Language:    lang.Name,
		InitialScan: watchScan,
	}, documentService)
	if err != nil {
		return err
	}

	cmd.Printf("Watching %d directories for dropped documents. Ctrl-C to stop.\n", len(args))
	if err := watcher.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watcher stopped: %w", err)
	}
	return nil
}
