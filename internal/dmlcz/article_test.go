package dmlcz

import (
	"errors"
	"testing"
)

func TestNewPageRange(t *testing.T) {
	r, err := NewPageRange(5, 9)
	if err != nil {
		t.Fatalf("NewPageRange(5, 9): %v", err)
	}
	if r.Count() != 5 {
		t.Errorf("Count() = %d, want 5", r.Count())
	}
	if r.String() != "5-9" {
		t.Errorf("String() = %q, want %q", r.String(), "5-9")
	}
}

func TestNewPageRangeSinglePage(t *testing.T) {
	r, err := NewPageRange(5, 5)
	if err != nil {
		t.Fatalf("NewPageRange(5, 5): %v", err)
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestNewPageRangeInvalid(t *testing.T) {
	_, err := NewPageRange(9, 5)
	if !errors.Is(err, ErrInvalidPageRange) {
		t.Errorf("NewPageRange(9, 5) error = %v, want ErrInvalidPageRange", err)
	}
}

func TestNormalizeTitles(t *testing.T) {
	titles := []Title{
		{Language: "eng", Text: "Title B"},
		{Language: "cze", Text: "Titul"},
		{Language: "eng", Text: "Title B"}, // verbatim duplicate
		{Language: "eng", Text: "Title A"},
	}

	got := NormalizeTitles(titles)

	want := []Title{
		{Language: "cze", Text: "Titul"},
		{Language: "eng", Text: "Title A"},
		{Language: "eng", Text: "Title B"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d titles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("titles[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNormalizeSummaries(t *testing.T) {
	summaries := []Summary{
		{Language: "eng", Text: "An abstract."},
		{Language: "cze", Text: "Abstrakt."},
		{Language: "eng", Text: "An abstract."},
	}

	got := NormalizeSummaries(summaries)

	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2", len(got))
	}
	if got[0].Language != "cze" || got[1].Language != "eng" {
		t.Errorf("summaries not sorted by language: %v", got)
	}
}

func TestRefAuthorString(t *testing.T) {
	tests := []struct {
		author RefAuthor
		want   string
	}{
		{RefAuthor{FirstName: "Donald", LastName: "Knuth"}, "Knuth, Donald"},
		{RefAuthor{LastName: "Knuth"}, "Knuth"},
	}
	for _, tt := range tests {
		if got := tt.author.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRefPrefix(t *testing.T) {
	if got := RefPrefix(7); got != "[7]" {
		t.Errorf("RefPrefix(7) = %q, want %q", got, "[7]")
	}
}

func TestMalformedReferenceError(t *testing.T) {
	err := &MalformedReferenceError{Index: 3}
	want := "reference 3 contains neither DOI, article title, nor unstructured citation"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
