// Package markup flattens XML subtrees into plain text, substituting
// known macro elements with their literal equivalents along the way.
package markup

import (
	"strings"

	"github.com/beevik/etree"
)

// Table maps local element names to replacement text. An element whose
// tag appears in the table is replaced wholesale; its children are not
// visited.
type Table map[string]string

// Normalize flattens the contents of el into a single line of text.
// Elements named in subs are replaced with their literal text, text
// around them (including tails) is preserved, and every other element
// is traversed for its text content only. Runs of whitespace collapse
// to one space and the result is trimmed. The tree is not modified.
func Normalize(el *etree.Element, subs Table) string {
	var b strings.Builder
	flatten(el, subs, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Text flattens el without any substitutions.
func Text(el *etree.Element) string {
	return Normalize(el, nil)
}

func flatten(el *etree.Element, subs Table, b *strings.Builder) {
	for _, token := range el.Child {
		switch t := token.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			if repl, ok := subs[t.Tag]; ok {
				b.WriteString(repl)
				continue
			}
			flatten(t, subs, b)
		}
	}
}
