package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loadLanguage  string
	documentsJSON bool
)

var loadCmd = &cobra.Command{
	Use:   "load [path]",
	Short: "Extract and store a document",
	Long: `Extracts text from a PDF or plain-text file and stores the result.

Re-loading a path replaces the stored text but keeps the document ID, so
earlier query history stays linked.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

var extractCmd = &cobra.Command{
	Use:   "extract [path]",
	Short: "Extract text from a file without storing it",
	Long: `Runs text extraction on a PDF or plain-text file and prints the
result to stdout. Nothing is stored; use 'voqa load' to keep the document.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage stored documents",
	RunE:  runDocumentsList,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents",
	RunE:  runDocumentsList,
}

var documentsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a stored document's text",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsShow,
}

func init() {
	loadCmd.Flags().StringVarP(&loadLanguage, "language", "l", "English", "language to store the document under")
	documentsCmd.PersistentFlags().BoolVar(&documentsJSON, "json", false, "output as JSON")
	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsShowCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	lang, err := resolveLanguage(loadLanguage)
	if err != nil {
		return err
	}

	doc, err := documentService.Load(cmd.Context(), args[0], lang.Name)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	if doc.IsEmpty() {
		cmd.Printf("Loaded %s, but no text could be extracted.\n", doc.Title)
		cmd.Println("Questions against this document will report it as empty.")
	} else {
		cmd.Printf("Loaded %s (%d pages, %d characters)\n", doc.Title, doc.Pages, len(doc.Text))
	}
	cmd.Printf("Document ID: %s\n", doc.ID)
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Extract(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	if doc.IsEmpty() {
		cmd.Printf("No text could be extracted from %s.\n", doc.Title)
		return nil
	}
	cmd.Println(doc.Text)
	return nil
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing documents failed: %w", err)
	}

	if documentsJSON {
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal documents: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(docs) == 0 {
		cmd.Println("No documents loaded yet. Use 'voqa load <path>' to add one.")
		return nil
	}

	for i := range docs {
		d := &docs[i]
		cmd.Printf("  %s  %s [%s] (%d chars)\n", d.ID, d.Title, d.Language, len(d.Text))
	}
	return nil
}

func runDocumentsShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("document %q: %w", args[0], err)
	}

	if documentsJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Title: %s\n", doc.Title)
	cmd.Printf("URI: %s\n", doc.URI)
	cmd.Printf("Language: %s\n", doc.Language)
	if doc.Pages > 0 {
		cmd.Printf("Pages: %d\n", doc.Pages)
	}
	cmd.Println()
	cmd.Println(doc.Text)
	return nil
}
