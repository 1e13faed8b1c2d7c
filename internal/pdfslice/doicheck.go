package pdfslice

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// doiPattern matches DOIs: 10.XXXX/... with a 4-9 digit registrant code.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// maxCheckPages bounds the text scan; an article's DOI sits on its first page.
const maxCheckPages = 3

// SliceContainsDOI reports whether the given DOI appears in the text of a
// written PDF slice. It is a quality check on assembler output: a false
// result suggests the page math cut the wrong pages.
func SliceContainsDOI(path, doi string) (bool, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	want := normalizeDOI(doi)

	pages := r.NumPage()
	if pages > maxCheckPages {
		pages = maxCheckPages
	}
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		for _, found := range doiPattern.FindAllString(text, -1) {
			if normalizeDOI(found) == want {
				return true, nil
			}
		}
	}
	return false, nil
}

// normalizeDOI strips resolver URL prefixes and lowercases for comparison.
func normalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimSuffix(doi, ".")
	return strings.ToLower(doi)
}
