package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dml-cz/issuekit/internal/crossref"
	"github.com/dml-cz/issuekit/internal/issue"
)

var (
	crossrefOpts      convertOptions
	crossrefFirstPage int
)

func init() {
	f := crossrefCmd.Flags()
	f.StringVar(&crossrefOpts.inputXML, "input-xml", "", "Issue metadata XML (CrossRef deposit batch)")
	f.StringVar(&crossrefOpts.inputPDF, "input-pdf", "", "Issue PDF")
	f.StringVar(&crossrefOpts.outDir, "output-dir", ".", "Directory receiving per-article subdirectories")
	f.IntVar(&crossrefOpts.pageOffset, "page-offset", 0, "Physical pages preceding the first numbered page")
	f.IntVar(&crossrefFirstPage, "first-page-number", 1, "Logical page number printed on the first numbered page")
	f.BoolVar(&crossrefOpts.dryRun, "dry-run", false, "List the articles without writing anything")
	f.BoolVar(&crossrefOpts.checkDOI, "check-doi", false, "Warn when a written slice does not contain the article's DOI")
	crossrefCmd.MarkFlagRequired("input-xml")
	rootCmd.AddCommand(crossrefCmd)
}

var crossrefCmd = &cobra.Command{
	Use:   "crossref",
	Short: "Convert a CrossRef deposit and its issue PDF",
	Long: `Convert a CrossRef deposit batch and the matching issue PDF into one
directory per article.

Examples:
  issuekit crossref --input-xml issue.xml --input-pdf issue.pdf --output-dir out
  issuekit crossref --input-xml issue.xml --dry-run
  issuekit crossref --input-xml issue.xml --input-pdf issue.pdf --page-offset 2 --check-doi`,
	RunE: runCrossref,
}

func runCrossref(cmd *cobra.Command, args []string) error {
	if err := crossrefOpts.validate(); err != nil {
		return err
	}

	articles, err := crossref.NewLoader().LoadFile(crossrefOpts.inputXML)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitDataError)
	}

	iss, err := issue.New(articles, crossrefOpts.pageOffset, crossrefFirstPage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitDataError)
	}

	return runConvert(cmd.Context(), iss, crossrefOpts)
}
