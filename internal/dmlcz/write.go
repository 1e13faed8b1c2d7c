package dmlcz

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/beevik/etree"
)

// MetaDocument builds the meta.xml document for the article. Element
// order is fixed: titles, authors, language, keywords, summaries,
// summary language, DOI, category, page range.
func (a *Article) MetaDocument() *etree.Document {
	doc := newDocument()
	article := doc.CreateElement("article")

	for _, title := range a.Titles {
		el := article.CreateElement("title")
		el.CreateAttr("lang", title.Language)
		el.SetText(title.Text)
	}

	for _, author := range a.Authors {
		el := article.CreateElement("author")
		el.CreateAttr("order", strconv.Itoa(author.Order))
		el.SetText(fmt.Sprintf("%s, %s", author.LastName, author.FirstName))
	}

	article.CreateElement("language").SetText(a.Language)

	for _, keyword := range a.Keywords {
		el := article.CreateElement("keyword")
		el.CreateAttr("lang", keyword.Language)
		el.SetText(keyword.Text)
	}

	for _, summary := range a.Summaries {
		el := article.CreateElement("summary")
		el.CreateAttr("lang", summary.Language)
		el.SetText(summary.Text)
	}

	if a.SummaryLanguage != "" {
		article.CreateElement("lang_summary").SetText(a.SummaryLanguage)
	}

	if a.DOI != "" {
		article.CreateElement("doi").SetText(a.DOI)
	}

	article.CreateElement("category").SetText(a.Category)
	article.CreateElement("range_pages").SetText(a.Pages.String())

	doc.Indent(2)
	return doc
}

// ReferencesDocument builds the references.xml document. The caller is
// expected to skip it entirely when the article has no references.
func (a *Article) ReferencesDocument() *etree.Document {
	doc := newDocument()
	references := doc.CreateElement("references")

	for _, ref := range a.References {
		el := references.CreateElement("reference")
		el.CreateAttr("id", strconv.Itoa(ref.ID))
		el.CreateElement("prefix").SetText(ref.Prefix)
		el.CreateElement("title").SetText(ref.Title)

		authors := el.CreateElement("authors")
		for _, author := range ref.Authors {
			authors.CreateElement("author").SetText(author.String())
		}

		names := make([]string, 0, len(ref.Fields))
		for name := range ref.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			el.CreateElement(name).SetText(ref.Fields[name])
		}

		el.CreateElement("suffix").SetText(ref.Suffix)
	}

	doc.Indent(2)
	return doc
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}
