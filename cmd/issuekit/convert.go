package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dml-cz/issuekit/internal/issue"
	"github.com/dml-cz/issuekit/internal/pdfslice"
)

// convertOptions collects the flags shared by the conversion commands.
type convertOptions struct {
	inputXML   string
	inputPDF   string
	outDir     string
	pageOffset int
	dryRun     bool
	checkDOI   bool
}

func (o *convertOptions) validate() error {
	if !o.dryRun && o.inputPDF == "" {
		return errors.New("--input-pdf is required unless --dry-run is given")
	}
	return nil
}

// runConvert drives the shared half of the pipeline: it opens the issue
// PDF, writes one directory per article and prints the article listing.
// With --dry-run only the listing is printed.
func runConvert(ctx context.Context, iss *issue.Issue, opts convertOptions) error {
	if opts.dryRun {
		fmt.Print(iss.Listing())
		return nil
	}

	source, err := pdfslice.Open(ctx, opts.inputPDF)
	if err != nil {
		return err
	}

	asm := &issue.Assembler{
		Issue:  iss,
		PDF:    issue.NewPDFSlicer(source),
		OutDir: opts.outDir,
	}
	if opts.checkDOI {
		asm.VerifyDOI = pdfslice.SliceContainsDOI
	}
	if err := asm.Run(ctx); err != nil {
		return err
	}

	fmt.Print(iss.Listing())
	return nil
}
