package dmlcz

import "fmt"

// ReferenceKind classifies how a citation was recognized; the meaning of
// the remaining Reference fields follows from it.
type ReferenceKind int

const (
	// KindDOI marks a DOI-bearing citation, with metadata resolved over
	// the network or left empty in the no-lookup dialect.
	KindDOI ReferenceKind = iota

	// KindStructured marks a citation with an embedded article title and
	// structured child elements.
	KindStructured

	// KindUnstructured marks a single free-text citation blob.
	KindUnstructured
)

// PlaceholderText stands in for a title or suffix the run could not
// resolve, flagging the entry for operator review.
const PlaceholderText = "To be completed."

// Reference is one normalized citation. It carries either a title or a
// suffix that stands alone as the full citation, never neither.
type Reference struct {
	ID      int // 1-based, matching citation order
	Prefix  string
	Kind    ReferenceKind
	Title   string
	Authors []RefAuthor
	Fields  map[string]string // optional fields, fixed vocabulary
	Suffix  string
}

// RefAuthor is one cited author; the first name may be absent.
type RefAuthor struct {
	FirstName string
	LastName  string
}

// String formats the author as "Last, First", or just the surname when
// no first name is known.
func (a RefAuthor) String() string {
	if a.FirstName == "" {
		return a.LastName
	}
	return fmt.Sprintf("%s, %s", a.LastName, a.FirstName)
}

// RefPrefix formats the bracketed prefix for a 1-based citation id.
func RefPrefix(id int) string {
	return fmt.Sprintf("[%d]", id)
}

// MalformedReferenceError reports a citation that supplies none of the
// recognized structures, named by its 1-based index.
type MalformedReferenceError struct {
	Index int
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("reference %d contains neither DOI, article title, nor unstructured citation", e.Index)
}
