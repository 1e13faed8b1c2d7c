// Package issue assembles the per-article output tree for one journal
// issue: numbered directories, metadata documents, and PDF slices.
package issue

import (
	"fmt"
	"strings"

	"github.com/dml-cz/issuekit/internal/dmlcz"
)

// Issue binds the extracted articles to the page math of their source PDF.
type Issue struct {
	PageOffset int
	FirstPage  int
	Articles   []*dmlcz.Article
}

// New validates that the issue holds at least one article.
func New(articles []*dmlcz.Article, pageOffset, firstPage int) (*Issue, error) {
	if len(articles) == 0 {
		return nil, fmt.Errorf("issue contains no articles")
	}
	return &Issue{
		PageOffset: pageOffset,
		FirstPage:  firstPage,
		Articles:   articles,
	}, nil
}

// Label returns the directory label for a 0-based article position.
func Label(position int) string {
	return fmt.Sprintf("#%d", position+1)
}

// Listing formats the per-article summary printed after a run, one line
// per article in document order.
func (iss *Issue) Listing() string {
	var b strings.Builder
	for i, article := range iss.Articles {
		fmt.Fprintf(&b, "%s/ %s\n", Label(i), describe(article))
	}
	return b.String()
}

func describe(article *dmlcz.Article) string {
	var parts []string
	if len(article.Authors) > 0 {
		author := article.Authors[0].LastName
		if len(article.Authors) > 1 {
			author += " et al."
		}
		parts = append(parts, author)
	}
	if len(article.Titles) > 0 {
		parts = append(parts, article.Titles[0].Text)
	}
	parts = append(parts, article.Pages.String())
	return strings.Join(parts, ". ")
}
