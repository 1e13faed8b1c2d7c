package bulletin

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/dml-cz/issuekit/internal/dmlcz"
	"github.com/dml-cz/issuekit/internal/extract"
	"github.com/dml-cz/issuekit/internal/lang"
	"github.com/dml-cz/issuekit/internal/markup"
)

func (l *Loader) extractArticle(ctx context.Context, el *etree.Element, doiBase string) (*dmlcz.Article, error) {
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
	if article.DOI, err = composeDOI(el, doiBase); err != nil {
		return nil, err
	}
	if err = l.extractAbstracts(el, article); err != nil {
		return nil, err
	}
	if article.References, err = l.extractReferences(ctx, el); err != nil {
		return nil, err
	}
	return article, nil
}

// extractTitles collects the article's own-language title (subtitle
// joined with ": ") and the translated title in the inverse language.
func (l *Loader) extractTitles(el *etree.Element, language string) ([]dmlcz.Title, error) {
	title := el.SelectElement("title")
	if title == nil {
		return nil, fmt.Errorf("article has no title")
	}

	text := markup.Normalize(title, l.Macros)
	if subtitle := el.SelectElement("subtitle"); subtitle != nil {
		text += ": " + markup.Normalize(subtitle, l.Macros)
	}
	titles := []dmlcz.Title{{Language: language, Text: text}}

	if translation := el.SelectElement("title_translation"); translation != nil {
		inverse, err := lang.Invert(language)
		if err != nil {
			return nil, fmt.Errorf("title translation: %w", err)
		}
		titles = append(titles, dmlcz.Title{
			Language: inverse,
			Text:     markup.Normalize(translation, l.Macros),
		})
	}
	return dmlcz.NormalizeTitles(titles), nil
}

// extractAuthors applies the lenient dialect rule: a surname is enough,
// the given name may be absent.
func extractAuthors(el *etree.Element) ([]dmlcz.Author, error) {
	names, err := extract.PersonNames(el.SelectElement("contributors"), false)
	if err != nil {
		return nil, err
	}
	authors := make([]dmlcz.Author, len(names))
	for i, name := range names {
		authors[i] = dmlcz.Author{Order: i + 1, LastName: name.Last, FirstName: name.First}
	}
	return authors, nil
}

// composeDOI qualifies the article's local DOI suffix with the issue-wide
// base from the bulletin root.
func composeDOI(el *etree.Element, doiBase string) (string, error) {
	doi := el.SelectElement("doi")
	if doi == nil {
		return "", nil
	}
	local := markup.Text(doi)
	if local == "" {
		return "", nil
	}
	if doiBase == "" {
		return "", fmt.Errorf("article carries a local DOI %q but the bulletin has no doi_base", local)
	}
	return doiBase + "/" + local, nil
}

// extractAbstracts reads keywords and summaries from the article's
// abstract sections: the first section is in the article's own language,
// a second one in the inverse language.
func (l *Loader) extractAbstracts(el *etree.Element, article *dmlcz.Article) error {
	abstracts := el.SelectElements("abstract")
	if len(abstracts) == 0 {
		return nil
	}
	if len(abstracts) > 2 {
		return fmt.Errorf("article has %d abstracts, at most 2 are supported", len(abstracts))
	}

	var summaries []dmlcz.Summary
	for i, abstract := range abstracts {
		language := article.Language
		if i > 0 {
			inverse, err := lang.Invert(article.Language)
			if err != nil {
				return fmt.Errorf("abstract %d: %w", i+1, err)
			}
			language = inverse
		}

		if keywords := abstract.SelectElement("keywords"); keywords != nil {
			for _, word := range strings.Split(markup.Normalize(keywords, l.Macros), ",") {
				word = strings.TrimSpace(word)
				if word == "" {
					continue
				}
				article.Keywords = append(article.Keywords, dmlcz.Keyword{Language: language, Text: word})
			}
		}

		var paragraphs []string
		for _, para := range abstract.SelectElements("para") {
			if text := markup.Normalize(para, l.Macros); text != "" {
				paragraphs = append(paragraphs, text)
			}
		}
		if len(paragraphs) > 0 {
			summaries = append(summaries, dmlcz.Summary{
				Language: language,
				Text:     strings.Join(paragraphs, "\n\n"),
			})
		}
	}

	if len(summaries) > 0 {
		article.Summaries = dmlcz.NormalizeSummaries(summaries)
		article.SummaryLanguage = article.Language
	}
	return nil
}
