package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voqa-labs/voqa-cli/internal/adapters/driving/api"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts an HTTP server exposing question answering, evaluation and
history over JSON endpoints.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	server := api.NewServer(api.Ports{
		Answers:    answerProvider,
		Documents:  documentService,
		Evaluation: evaluationService,
		History:    historyService,
	})

	addr := fmt.Sprintf(":%d", servePort)
	cmd.Printf("API server listening on http://localhost%s\n", addr)
	return server.Run(cmd.Context(), addr)
}
