package issue

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dml-cz/issuekit/internal/dmlcz"
	"github.com/dml-cz/issuekit/internal/pdfslice"
)

// Slice is one article's sliced PDF, assembled in memory and ready to
// be written.
type Slice interface {
	WriteFile(ctx context.Context, path string) error
}

// Slicer produces per-article slices from the issue PDF.
type Slicer interface {
	Slice(pages dmlcz.PageRange, pageOffset, firstLogicalPage int) (Slice, error)
}

// NewPDFSlicer adapts an opened source PDF to the Slicer interface.
func NewPDFSlicer(source *pdfslice.Source) Slicer {
	return pdfSlicer{source: source}
}

type pdfSlicer struct {
	source *pdfslice.Source
}

func (p pdfSlicer) Slice(pages dmlcz.PageRange, pageOffset, firstLogicalPage int) (Slice, error) {
	slice, err := p.source.Slice(pages, pageOffset, firstLogicalPage)
	if err != nil {
		return nil, err
	}
	return slice, nil
}

// Assembler writes one output directory per article, in input order.
type Assembler struct {
	Issue  *Issue
	PDF    Slicer
	OutDir string

	// VerifyDOI, when set, scans a written slice for the article's DOI
	// and reports a warning when it is absent.
	VerifyDOI func(path, doi string) (bool, error)

	// Stderr receives warnings; defaults to os.Stderr.
	Stderr io.Writer
}

// Run processes every article. Each article's slice is assembled in
// memory before anything is written for it, so a failing article leaves
// no partial directory behind and earlier articles' output intact.
func (a *Assembler) Run(ctx context.Context) error {
	if err := os.MkdirAll(a.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for i, article := range a.Issue.Articles {
		label := Label(i)
		if err := a.writeArticle(ctx, article, filepath.Join(a.OutDir, label)); err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
	}
	return nil
}

func (a *Assembler) writeArticle(ctx context.Context, article *dmlcz.Article, dir string) error {
	slice, err := a.PDF.Slice(article.Pages, a.Issue.PageOffset, a.Issue.FirstPage)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating article directory: %w", err)
	}

	if err := article.MetaDocument().WriteToFile(filepath.Join(dir, dmlcz.MetaFile)); err != nil {
		return fmt.Errorf("writing %s: %w", dmlcz.MetaFile, err)
	}

	if len(article.References) > 0 {
		if err := article.ReferencesDocument().WriteToFile(filepath.Join(dir, dmlcz.ReferencesFile)); err != nil {
			return fmt.Errorf("writing %s: %w", dmlcz.ReferencesFile, err)
		}
	}

	pdfPath := filepath.Join(dir, dmlcz.PDFFile)
	if err := slice.WriteFile(ctx, pdfPath); err != nil {
		return err
	}

	a.verify(pdfPath, article)
	return nil
}

// verify cross-checks that the article's DOI appears in its slice. A
// miss suggests the page math cut the wrong pages, but text extraction
// is best-effort, so the result is a warning, never an error.
func (a *Assembler) verify(pdfPath string, article *dmlcz.Article) {
	if a.VerifyDOI == nil || article.DOI == "" {
		return
	}
	stderr := a.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	found, err := a.VerifyDOI(pdfPath, article.DOI)
	if err != nil {
		fmt.Fprintf(stderr, "warning: checking DOI in %s: %v\n", pdfPath, err)
		return
	}
	if !found {
		fmt.Fprintf(stderr, "warning: DOI %s not found in %s\n", article.DOI, pdfPath)
	}
}
