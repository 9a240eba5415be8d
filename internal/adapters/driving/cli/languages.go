package cli

import (
	"github.com/spf13/cobra"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, lc := range domain.DefaultLanguages() {
			cmd.Printf("  %-10s %s\n", lc.Name, lc.Mode.Description())
			cmd.Printf("             model: %s\n", lc.Model)
			cmd.Printf("             speech: %s / %s\n", lc.STTLocale, lc.Code)
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
