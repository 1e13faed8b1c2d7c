// Package pdfslice cuts per-article page ranges out of a journal-issue PDF.
package pdfslice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/wudi/pdfkit/builder"
	"github.com/wudi/pdfkit/ir"
	"github.com/wudi/pdfkit/ir/semantic"
	"github.com/wudi/pdfkit/writer"

	"github.com/dml-cz/issuekit/internal/dmlcz"
)

// ErrPageOutOfRange reports a physical page index outside the source PDF.
var ErrPageOutOfRange = errors.New("page index out of range")

// PhysicalIndex maps a logical (printed) page number to the 0-based index
// of that page inside the issue PDF.
func PhysicalIndex(logical, pageOffset, firstLogicalPage int) int {
	return logical + pageOffset - firstLogicalPage
}

// Source is the issue PDF, parsed once and read by page index per article.
type Source struct {
	doc *semantic.Document
}

// Open reads and parses the issue PDF.
func Open(ctx context.Context, path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source PDF: %w", err)
	}
	doc, err := ir.NewDefault().Parse(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing source PDF: %w", err)
	}
	return &Source{doc: doc}, nil
}

// PageCount returns the number of physical pages in the source.
func (s *Source) PageCount() int {
	return len(s.doc.Pages)
}

// Slice is one article's page subset, assembled in memory.
type Slice struct {
	doc *semantic.Document
}

// PageCount returns the number of pages in the slice.
func (s *Slice) PageCount() int {
	return len(s.doc.Pages)
}

// Slice assembles a new document holding the article's pages in ascending
// logical order. It fails before building anything when any page of the
// range maps outside the source document.
func (s *Source) Slice(pages dmlcz.PageRange, pageOffset, firstLogicalPage int) (*Slice, error) {
	b := builder.NewBuilder()
	for logical := pages.First; logical <= pages.Last; logical++ {
		index := PhysicalIndex(logical, pageOffset, firstLogicalPage)
		if index < 0 || index >= len(s.doc.Pages) {
			return nil, fmt.Errorf("logical page %d maps to physical index %d outside source (%d pages): %w",
				logical, index, len(s.doc.Pages), ErrPageOutOfRange)
		}
		b.AddPage(s.doc.Pages[index])
	}
	doc, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("assembling sliced document: %w", err)
	}
	return &Slice{doc: doc}, nil
}

// WriteFile writes the slice as a standalone PDF at path.
func (s *Slice) WriteFile(ctx context.Context, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer out.Close()

	cfg := writer.Config{Version: writer.PDF17, Compression: 9}
	if err := writer.NewWriter().Write(ctx, s.doc, out, cfg); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
