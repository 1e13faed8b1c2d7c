package bulletin

import (
	"context"
	"fmt"

	"github.com/beevik/etree"

	"github.com/dml-cz/issuekit/internal/dmlcz"
	"github.com/dml-cz/issuekit/internal/doiorg"
	"github.com/dml-cz/issuekit/internal/extract"
	"github.com/dml-cz/issuekit/internal/markup"
)

// extractReferences classifies citations with first-match priority:
// DOI-bearing, structured title, unstructured free text. Anything else
// is a fatal malformed reference.
func (l *Loader) extractReferences(ctx context.Context, article *etree.Element) ([]dmlcz.Reference, error) {
	list := article.SelectElement("references")
	if list == nil {
		return nil, nil
	}

	var references []dmlcz.Reference
	for i, citation := range list.SelectElements("reference") {
		id := i + 1
		ref := dmlcz.Reference{ID: id, Prefix: dmlcz.RefPrefix(id)}

		switch {
		case citation.SelectElement("doi") != nil:
			ref.Kind = dmlcz.KindDOI
			if err := l.resolveDOI(ctx, markup.Text(citation.SelectElement("doi")), &ref); err != nil {
				return nil, fmt.Errorf("reference %d: %w", id, err)
			}

		case citation.SelectElement("article_title") != nil:
			ref.Kind = dmlcz.KindStructured
			ref.Title = markup.Normalize(citation.SelectElement("article_title"), l.Macros)
			authors, err := extract.CitationAuthors(citation, l.Macros)
			if err != nil {
				return nil, fmt.Errorf("reference %d: %w", id, err)
			}
			ref.Authors = authors
			ref.Fields = extract.Fields(citation, extract.CitationFields, l.Macros)

		case citation.SelectElement("unstructured_citation") != nil:
			ref.Kind = dmlcz.KindUnstructured
			ref.Title = dmlcz.PlaceholderText
			ref.Suffix = markup.Normalize(citation.SelectElement("unstructured_citation"), l.Macros)

		default:
			return nil, &dmlcz.MalformedReferenceError{Index: id}
		}

		references = append(references, ref)
	}
	return references, nil
}

// resolveDOI issues one synchronous lookup for the citation's DOI and
// fills the reference from whatever metadata came back. An unsuccessful
// lookup degrades to placeholders; it never fails the citation.
func (l *Loader) resolveDOI(ctx context.Context, doi string, ref *dmlcz.Reference) error {
	var meta doiorg.Metadata
	if l.Metadata != nil {
		var err error
		meta, err = l.Metadata.Resolve(ctx, doi)
		if err != nil {
			return err
		}
	}

	if meta == nil {
		ref.Title = dmlcz.PlaceholderText
		ref.Suffix = dmlcz.PlaceholderText
		return nil
	}

	if title, ok := meta.Title(); ok && title != "" {
		ref.Title = title
	} else {
		ref.Title = dmlcz.PlaceholderText
	}
	if given, family, ok := meta.FirstAuthor(); ok {
		ref.Authors = []dmlcz.RefAuthor{{FirstName: given, LastName: family}}
	}
	ref.Fields = meta.Fields()
	ref.Suffix = fmt.Sprintf(". DOI: %s", doi)
	return nil
}
