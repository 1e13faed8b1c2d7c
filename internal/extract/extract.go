// Package extract holds the field-extraction helpers shared by the two
// input dialects: contributor name pairs, page ranges, and the fixed
// optional-field vocabulary of structured citations.
package extract

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/dml-cz/issuekit/internal/dmlcz"
	"github.com/dml-cz/issuekit/internal/markup"
)

// Name is one extracted contributor name pair.
type Name struct {
	First string
	Last  string
}

// CitationFields is the fixed optional-field vocabulary read from
// structured citations.
var CitationFields = []string{
	"ISBN", "ISSN", "URL", "booktitle", "edition",
	"number", "series", "volume", "year",
}

// PersonNames returns contributor names in document order: all
// sequence="first" entries before all sequence="additional" ones,
// restricted to the author role. Every name needs a surname; the given
// name is required only when requireGiven is set.
func PersonNames(contributors *etree.Element, requireGiven bool) ([]Name, error) {
	if contributors == nil {
		return nil, nil
	}

	var ordered []*etree.Element
	for _, sequence := range []string{"first", "additional"} {
		for _, person := range contributors.SelectElements("person_name") {
			if person.SelectAttrValue("sequence", "first") != sequence {
				continue
			}
			if person.SelectAttrValue("contributor_role", "author") != "author" {
				continue
			}
			ordered = append(ordered, person)
		}
	}

	names := make([]Name, 0, len(ordered))
	for i, person := range ordered {
		name := Name{Last: childText(person, "surname")}
		if name.Last == "" {
			return nil, fmt.Errorf("author %d: missing surname", i+1)
		}
		name.First = childText(person, "given_name")
		if requireGiven && name.First == "" {
			return nil, fmt.Errorf("author %d (%s): missing given name", i+1, name.Last)
		}
		names = append(names, name)
	}
	return names, nil
}

// Pages reads the integer first_page/last_page pair under <pages>.
func Pages(article *etree.Element) (dmlcz.PageRange, error) {
	pages := article.SelectElement("pages")
	if pages == nil {
		return dmlcz.PageRange{}, fmt.Errorf("missing pages element")
	}
	first, err := childInt(pages, "first_page")
	if err != nil {
		return dmlcz.PageRange{}, err
	}
	last, err := childInt(pages, "last_page")
	if err != nil {
		return dmlcz.PageRange{}, err
	}
	return dmlcz.NewPageRange(first, last)
}

// Fields reads the optional-field vocabulary from direct children of el,
// normalizing each value through the substitution table.
func Fields(el *etree.Element, vocab []string, subs markup.Table) map[string]string {
	var fields map[string]string
	for _, name := range vocab {
		child := el.SelectElement(name)
		if child == nil {
			continue
		}
		value := markup.Normalize(child, subs)
		if value == "" {
			continue
		}
		if fields == nil {
			fields = make(map[string]string)
		}
		fields[name] = value
	}
	return fields
}

// CitationAuthors extracts the cited authors: contributor name pairs when
// the citation carries them, otherwise plain <author> name elements.
func CitationAuthors(citation *etree.Element, subs markup.Table) ([]dmlcz.RefAuthor, error) {
	names, err := PersonNames(citation.SelectElement("contributors"), false)
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		authors := make([]dmlcz.RefAuthor, len(names))
		for i, name := range names {
			authors[i] = dmlcz.RefAuthor{FirstName: name.First, LastName: name.Last}
		}
		return authors, nil
	}

	var authors []dmlcz.RefAuthor
	for _, el := range citation.SelectElements("author") {
		if name := markup.Normalize(el, subs); name != "" {
			authors = append(authors, dmlcz.RefAuthor{LastName: name})
		}
	}
	return authors, nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return markup.Text(child)
}

func childInt(el *etree.Element, tag string) (int, error) {
	child := el.SelectElement(tag)
	if child == nil {
		return 0, fmt.Errorf("missing %s element", tag)
	}
	text := markup.Text(child)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", tag, text, err)
	}
	return n, nil
}
