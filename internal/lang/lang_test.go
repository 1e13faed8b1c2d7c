package lang

import (
	"errors"
	"testing"
)

func TestCanonicalize(t *testing.T) {
	r := NewResolver(DefaultTable())

	tests := []struct {
		code string
		want string
	}{
		{"cs", "cze"}, // bibliographic form preferred over ces
		{"sk", "slo"},
		{"en", "eng"}, // no separate bibliographic form
		{"de", "ger"},
		{"pl", "pol"},
	}
	for _, tt := range tests {
		got, err := r.Canonicalize(tt.code)
		if err != nil {
			t.Errorf("Canonicalize(%q): %v", tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCanonicalizeUnknown(t *testing.T) {
	r := NewResolver(DefaultTable())

	_, err := r.Canonicalize("xx")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("Canonicalize(\"xx\") error = %v, want ErrUnknownLanguage", err)
	}
}

func TestCanonicalizeClosedSet(t *testing.T) {
	r := NewResolver(DefaultTable(), Czech, Slovak, English)

	for _, code := range []string{"cs", "sk", "en"} {
		if _, err := r.Canonicalize(code); err != nil {
			t.Errorf("Canonicalize(%q): %v", code, err)
		}
	}

	_, err := r.Canonicalize("de")
	if !errors.Is(err, ErrLanguageNotAllowed) {
		t.Errorf("Canonicalize(\"de\") error = %v, want ErrLanguageNotAllowed", err)
	}
}

func TestInvert(t *testing.T) {
	for _, code := range []string{Czech, Slovak} {
		got, err := Invert(code)
		if err != nil {
			t.Fatalf("Invert(%q): %v", code, err)
		}
		if got != English {
			t.Errorf("Invert(%q) = %q, want %q", code, got, English)
		}
	}
}

func TestInvertUndefined(t *testing.T) {
	for _, code := range []string{English, "ger", ""} {
		_, err := Invert(code)
		if !errors.Is(err, ErrNoInverseLanguage) {
			t.Errorf("Invert(%q) error = %v, want ErrNoInverseLanguage", code, err)
		}
	}
}
