// Package lang resolves two-letter language codes from journal exports
// into the three-letter bibliographic codes used for cataloguing.
package lang

import (
	"errors"
	"fmt"
)

// Canonical bibliographic codes for the bilingual journal pair.
const (
	Czech   = "cze"
	Slovak  = "slo"
	English = "eng"
)

var (
	// ErrUnknownLanguage reports a two-letter code absent from the lookup table.
	ErrUnknownLanguage = errors.New("unknown language code")

	// ErrLanguageNotAllowed reports a resolved code outside a resolver's closed set.
	ErrLanguageNotAllowed = errors.New("language not allowed")

	// ErrNoInverseLanguage reports an inversion outside the Czech/Slovak pair.
	ErrNoInverseLanguage = errors.New("language has no defined inverse")
)

// Resolver canonicalizes language codes against a code table, optionally
// restricting results to a closed set of bibliographic codes.
type Resolver struct {
	lookup  Lookup
	allowed map[string]bool // nil means unrestricted
}

// NewResolver returns a resolver backed by the given table. When allowed
// codes are listed, any canonicalization outside that set fails.
func NewResolver(lookup Lookup, allowed ...string) *Resolver {
	r := &Resolver{lookup: lookup}
	if len(allowed) > 0 {
		r.allowed = make(map[string]bool, len(allowed))
		for _, code := range allowed {
			r.allowed[code] = true
		}
	}
	return r
}

// Canonicalize maps a two-letter code to its bibliographic code, falling
// back to the terminological code when no separate bibliographic form exists.
func (r *Resolver) Canonicalize(code string) (string, error) {
	entry, ok := r.lookup.ByAlpha2(code)
	if !ok {
		return "", fmt.Errorf("language %q: %w", code, ErrUnknownLanguage)
	}
	canonical := entry.Bibliographic
	if canonical == "" {
		canonical = entry.Alpha3
	}
	if r.allowed != nil && !r.allowed[canonical] {
		return "", fmt.Errorf("language %q resolves to %q: %w", code, canonical, ErrLanguageNotAllowed)
	}
	return canonical, nil
}

// Invert returns the other language of the bilingual pair. It is defined
// only for Czech and Slovak, both of which pair with English. Every other
// code, English included, has no inverse and fails explicitly.
func Invert(code string) (string, error) {
	switch code {
	case Czech, Slovak:
		return English, nil
	default:
		return "", fmt.Errorf("language %q: %w", code, ErrNoInverseLanguage)
	}
}
