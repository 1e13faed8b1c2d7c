// Package dmlcz defines the canonical per-article archive shape shared by
// both input dialects, and serializes it into the output XML documents.
package dmlcz

import (
	"errors"
	"fmt"
	"sort"
)

// Output file names inside an article directory.
const (
	MetaFile       = "meta.xml"
	ReferencesFile = "references.xml"
	PDFFile        = "source.pdf"
)

// Category is the fixed article category; it is not derived from content.
const Category = "informatics"

// ErrInvalidPageRange reports a page range whose first page exceeds its last.
var ErrInvalidPageRange = errors.New("invalid page range")

// Article is the normalized form of one journal article. It is built once
// from a source element and immutable thereafter.
type Article struct {
	Language        string
	Titles          []Title // deduplicated, sorted by (language, text)
	Authors         []Author
	Pages           PageRange
	DOI             string // optional
	Category        string
	References      []Reference
	Keywords        []Keyword
	Summaries       []Summary // deduplicated, sorted by (language, text)
	SummaryLanguage string    // language of the main summary, optional
}

// Title is one (language, text) entry of the title set.
type Title struct {
	Language string
	Text     string
}

// Author is one ordered article contributor.
type Author struct {
	Order     int // 1-based, document order
	LastName  string
	FirstName string
}

// Keyword is one (language, text) keyword in document order.
type Keyword struct {
	Language string
	Text     string
}

// Summary is one (language, text) entry of the summary set.
type Summary struct {
	Language string
	Text     string
}

// PageRange is an article's logical page range, inclusive on both ends.
type PageRange struct {
	First int
	Last  int
}

// NewPageRange validates that first does not exceed last.
func NewPageRange(first, last int) (PageRange, error) {
	if first > last {
		return PageRange{}, fmt.Errorf("first page (%d) greater than last page (%d): %w",
			first, last, ErrInvalidPageRange)
	}
	return PageRange{First: first, Last: last}, nil
}

// Count returns the number of pages in the range.
func (p PageRange) Count() int {
	return p.Last - p.First + 1
}

// String formats the range as printed in meta.xml.
func (p PageRange) String() string {
	return fmt.Sprintf("%d-%d", p.First, p.Last)
}

// NormalizeTitles sorts titles by (language, text) and drops duplicates,
// so a title repeated verbatim in the source collapses to one entry.
func NormalizeTitles(titles []Title) []Title {
	sort.Slice(titles, func(i, j int) bool {
		if titles[i].Language != titles[j].Language {
			return titles[i].Language < titles[j].Language
		}
		return titles[i].Text < titles[j].Text
	})
	out := titles[:0]
	for i, t := range titles {
		if i > 0 && t == titles[i-1] {
			continue
		}
		out = append(out, t)
	}
	return out
}

// NormalizeSummaries sorts summaries by (language, text) and drops duplicates.
func NormalizeSummaries(summaries []Summary) []Summary {
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Language != summaries[j].Language {
			return summaries[i].Language < summaries[j].Language
		}
		return summaries[i].Text < summaries[j].Text
	})
	out := summaries[:0]
	for i, s := range summaries {
		if i > 0 && s == summaries[i-1] {
			continue
		}
		out = append(out, s)
	}
	return out
}
