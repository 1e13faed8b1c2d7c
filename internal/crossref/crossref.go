// Package crossref loads journal issues from CrossRef deposit XML. This
// is the no-lookup dialect: DOI-bearing citations keep empty metadata
// and state the DOI in their suffix.
package crossref

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/dml-cz/issuekit/internal/dmlcz"
	"github.com/dml-cz/issuekit/internal/extract"
	"github.com/dml-cz/issuekit/internal/lang"
	"github.com/dml-cz/issuekit/internal/markup"
)

// Namespace is the CrossRef deposit schema this loader accepts.
const Namespace = "http://www.crossref.org/schema/4.3.0"

// Loader extracts articles from a CrossRef doi_batch document.
type Loader struct {
	Languages *lang.Resolver
}

// NewLoader returns a loader with the default language table. CrossRef
// deposits carry arbitrary languages, so no closed set applies.
func NewLoader() *Loader {
	return &Loader{Languages: lang.NewResolver(lang.DefaultTable())}
}

// LoadFile parses the file at path and extracts its articles.
func (l *Loader) LoadFile(path string) ([]*dmlcz.Article, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return l.Parse(doc)
}

// Parse extracts all journal articles from a doi_batch document, in
// document order.
func (l *Loader) Parse(doc *etree.Document) ([]*dmlcz.Article, error) {
	root := doc.Root()
	if root == nil || root.Tag != "doi_batch" {
		return nil, fmt.Errorf("unexpected root element %q, want doi_batch", rootTag(root))
	}
	if uri := root.NamespaceURI(); uri != "" && uri != Namespace {
		return nil, fmt.Errorf("unexpected document namespace %q", uri)
	}

	journal := root.FindElement("./body/journal")
	if journal == nil {
		return nil, fmt.Errorf("doi_batch has no body/journal element")
	}

	elements := journal.SelectElements("journal_article")
	if len(elements) == 0 {
		return nil, fmt.Errorf("journal contains no articles")
	}

	articles := make([]*dmlcz.Article, 0, len(elements))
	for i, el := range elements {
		article, err := l.extractArticle(el)
		if err != nil {
			return nil, fmt.Errorf("article %d: %w", i+1, err)
		}
		articles = append(articles, article)
	}
	return articles, nil
}

func (l *Loader) extractArticle(el *etree.Element) (*dmlcz.Article, error) {
	language, err := l.Languages.Canonicalize(el.SelectAttrValue("language", ""))
	if err != nil {
		return nil, err
	}

	article := &dmlcz.Article{
		Language: language,
		Category: dmlcz.Category,
	}

	if article.Titles, err = l.extractTitles(el, language); err != nil {
		return nil, err
	}
	if article.Authors, err = extractAuthors(el); err != nil {
		return nil, err
	}
	if article.Pages, err = extract.Pages(el); err != nil {
		return nil, err
	}
	if doi := el.FindElement("doi_data/doi"); doi != nil {
		article.DOI = markup.Text(doi)
	}
	if article.References, err = extractReferences(el); err != nil {
		return nil, err
	}
	return article, nil
}

// extractTitles collects the primary title (with any subtitle joined by
// ": ") and the original-language title, deduplicating the result.
func (l *Loader) extractTitles(el *etree.Element, language string) ([]dmlcz.Title, error) {
	var titles []dmlcz.Title

	if primary := el.FindElement("titles/title"); primary != nil {
		text := markup.Text(primary)
		if subtitle := el.FindElement("titles/subtitle"); subtitle != nil {
			text += ": " + markup.Text(subtitle)
		}
		titleLanguage, err := l.titleLanguage(primary, language)
		if err != nil {
			return nil, err
		}
		titles = append(titles, dmlcz.Title{Language: titleLanguage, Text: text})
	}

	if original := el.FindElement("titles/original_language_title"); original != nil {
		titleLanguage, err := l.titleLanguage(original, language)
		if err != nil {
			return nil, err
		}
		titles = append(titles, dmlcz.Title{Language: titleLanguage, Text: markup.Text(original)})
	}

	if len(titles) == 0 {
		return nil, fmt.Errorf("article has no title")
	}
	return dmlcz.NormalizeTitles(titles), nil
}

// titleLanguage resolves a title's own language attribute, defaulting to
// the article language.
func (l *Loader) titleLanguage(title *etree.Element, articleLanguage string) (string, error) {
	code := title.SelectAttrValue("language", "")
	if code == "" {
		return articleLanguage, nil
	}
	return l.Languages.Canonicalize(code)
}

// extractAuthors applies the strict dialect rule: every contributor needs
// both a surname and a given name.
func extractAuthors(el *etree.Element) ([]dmlcz.Author, error) {
	names, err := extract.PersonNames(el.SelectElement("contributors"), true)
	if err != nil {
		return nil, err
	}
	authors := make([]dmlcz.Author, len(names))
	for i, name := range names {
		authors[i] = dmlcz.Author{Order: i + 1, LastName: name.Last, FirstName: name.First}
	}
	return authors, nil
}

// extractReferences classifies citations as DOI-bearing or structured.
// Without a lookup service the DOI branch leaves title and authors empty
// and states the DOI in the suffix.
func extractReferences(el *etree.Element) ([]dmlcz.Reference, error) {
	list := el.SelectElement("citation_list")
	if list == nil {
		return nil, nil
	}

	var references []dmlcz.Reference
	for i, citation := range list.SelectElements("citation") {
		id := i + 1
		ref := dmlcz.Reference{ID: id, Prefix: dmlcz.RefPrefix(id)}

		switch {
		case citation.SelectElement("doi") != nil:
			ref.Kind = dmlcz.KindDOI
			ref.Suffix = fmt.Sprintf(". DOI: %s", markup.Text(citation.SelectElement("doi")))

		case citation.SelectElement("article_title") != nil:
			ref.Kind = dmlcz.KindStructured
			ref.Title = markup.Text(citation.SelectElement("article_title"))
			authors, err := extract.CitationAuthors(citation, nil)
			if err != nil {
				return nil, fmt.Errorf("reference %d: %w", id, err)
			}
			ref.Authors = authors
			ref.Fields = extract.Fields(citation, extract.CitationFields, nil)

		default:
			return nil, &dmlcz.MalformedReferenceError{Index: id}
		}

		references = append(references, ref)
	}
	return references, nil
}

func rootTag(root *etree.Element) string {
	if root == nil {
		return ""
	}
	return root.Tag
}
