// Package main provides the issuekit CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "issuekit",
	Short: "Split journal-issue exports into per-article archives",
	Long: `issuekit converts a journal issue, given as a metadata XML export and
the issue's PDF, into one directory per article ready for digital
library ingestion.

Each article directory holds meta.xml with the article's metadata,
references.xml with its bibliography when one is present, and
source.pdf with the article's pages cut from the issue PDF.

Two metadata dialects are supported:
  - crossref: a CrossRef deposit batch
  - bulletin: the bulletin journal schema, with DOI metadata lookup`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
