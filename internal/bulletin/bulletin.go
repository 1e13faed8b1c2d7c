// Package bulletin loads journal issues from the bulletin XML schema.
// This is the richer dialect: documents may pull chapters in through
// include elements, titles and citations carry macro markup, articles
// are restricted to the Czech/Slovak/English journal pair, and each
// DOI-bearing citation is resolved through a metadata lookup service.
package bulletin

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/dml-cz/issuekit/internal/dmlcz"
	"github.com/dml-cz/issuekit/internal/doiorg"
	"github.com/dml-cz/issuekit/internal/lang"
	"github.com/dml-cz/issuekit/internal/markup"
)

// maxIncludeDepth bounds include-resolution recursion.
const maxIncludeDepth = 10

// Macros maps the bulletin's logo elements to their literal text, plus
// the line-break marker.
var Macros = markup.Table{
	"TeX":      "TeX",
	"LaTeX":    "LaTeX",
	"pdfTeX":   "pdfTeX",
	"XeTeX":    "XeTeX",
	"XeLaTeX":  "XeLaTeX",
	"LuaTeX":   "LuaTeX",
	"LuaLaTeX": "LuaLaTeX",
	"ConTeXt":  "ConTeXt",
	"METAFONT": "METAFONT",
	"METAPOST": "METAPOST",
	"CSTUG":    "CSTUG",
	"csplain":  "csplain",
	"br":       " ",
}

// MetadataResolver looks up citation-style metadata for a DOI. A nil
// metadata result means the lookup did not succeed; the citation is then
// emitted with placeholders instead of failing the run.
type MetadataResolver interface {
	Resolve(ctx context.Context, doi string) (doiorg.Metadata, error)
}

// Loader extracts articles from a bulletin document.
type Loader struct {
	Languages *lang.Resolver
	Metadata  MetadataResolver // nil behaves as if every lookup failed
	Macros    markup.Table
}

// NewLoader returns a loader restricted to the journal's closed language
// set, using the given lookup service for DOI-bearing citations.
func NewLoader(metadata MetadataResolver) *Loader {
	return &Loader{
		Languages: lang.NewResolver(lang.DefaultTable(), lang.Czech, lang.Slovak, lang.English),
		Metadata:  metadata,
		Macros:    Macros,
	}
}

// LoadFile parses the file at path, resolving include elements relative
// to it, and extracts its articles.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]*dmlcz.Article, error) {
	doc, err := readWithIncludes(path)
	if err != nil {
		return nil, err
	}
	return l.Parse(ctx, doc)
}

// Parse extracts all articles from a bulletin document, in document order.
func (l *Loader) Parse(ctx context.Context, doc *etree.Document) ([]*dmlcz.Article, error) {
	root := doc.Root()
	if root == nil || root.Tag != "bulletin" {
		tag := ""
		if root != nil {
			tag = root.Tag
		}
		return nil, fmt.Errorf("unexpected root element %q, want bulletin", tag)
	}

	doiBase := root.SelectAttrValue("doi_base", "")

	elements := root.FindElements(".//article")
	if len(elements) == 0 {
		return nil, fmt.Errorf("bulletin contains no articles")
	}

	articles := make([]*dmlcz.Article, 0, len(elements))
	for i, el := range elements {
		article, err := l.extractArticle(ctx, el, doiBase)
		if err != nil {
			return nil, fmt.Errorf("article %d: %w", i+1, err)
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// readWithIncludes parses the document at path and splices in every
// include element's target, resolved relative to the including file.
func readWithIncludes(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%s has no root element", path)
	}
	if err := resolveIncludes(root, filepath.Dir(path), maxIncludeDepth); err != nil {
		return nil, err
	}
	return doc, nil
}

func resolveIncludes(el *etree.Element, dir string, depth int) error {
	for _, include := range el.FindElements(".//include") {
		if depth == 0 {
			return fmt.Errorf("include depth exceeds %d", maxIncludeDepth)
		}

		href := include.SelectAttrValue("href", "")
		if href == "" {
			return fmt.Errorf("include element without href")
		}
		target := filepath.Join(dir, href)

		sub := etree.NewDocument()
		if err := sub.ReadFromFile(target); err != nil {
			return fmt.Errorf("reading include %s: %w", target, err)
		}
		subRoot := sub.Root()
		if subRoot == nil {
			return fmt.Errorf("include %s has no root element", target)
		}
		if err := resolveIncludes(subRoot, filepath.Dir(target), depth-1); err != nil {
			return err
		}

		parent := include.Parent()
		parent.InsertChildAt(include.Index(), subRoot)
		parent.RemoveChild(include)
	}
	return nil
}
