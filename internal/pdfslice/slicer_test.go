package pdfslice

import (
	"errors"
	"testing"

	"github.com/wudi/pdfkit/ir/semantic"

	"github.com/dml-cz/issuekit/internal/dmlcz"
)

// testSource builds a source with n synthetic pages.
func testSource(n int) *Source {
	pages := make([]*semantic.Page, n)
	for i := range pages {
		pages[i] = &semantic.Page{Index: i}
	}
	return &Source{doc: &semantic.Document{Pages: pages}}
}

func TestPhysicalIndex(t *testing.T) {
	tests := []struct {
		name                   string
		logical, offset, first int
		want                   int
	}{
		{"issue starting at page 1", 5, 0, 1, 4},
		{"first page of the issue", 1, 0, 1, 0},
		{"unnumbered front matter", 5, 2, 1, 6},
		{"continuing volume pagination", 51, 0, 49, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhysicalIndex(tt.logical, tt.offset, tt.first); got != tt.want {
				t.Errorf("PhysicalIndex(%d, %d, %d) = %d, want %d",
					tt.logical, tt.offset, tt.first, got, tt.want)
			}
		})
	}
}

func TestSlicePageCount(t *testing.T) {
	source := testSource(10)

	slice, err := source.Slice(dmlcz.PageRange{First: 3, Last: 7}, 0, 1)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if slice.PageCount() != 5 {
		t.Errorf("got %d pages, want 5", slice.PageCount())
	}
}

func TestSliceSinglePage(t *testing.T) {
	source := testSource(10)

	// Pages (5,5) with offset 0 and first logical page 1 yield exactly
	// physical index 4.
	slice, err := source.Slice(dmlcz.PageRange{First: 5, Last: 5}, 0, 1)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if slice.PageCount() != 1 {
		t.Fatalf("got %d pages, want 1", slice.PageCount())
	}
	if slice.doc.Pages[0] != source.doc.Pages[4] {
		t.Error("sliced page is not physical page 4 of the source")
	}
}

func TestSliceAscendingOrder(t *testing.T) {
	source := testSource(8)

	slice, err := source.Slice(dmlcz.PageRange{First: 2, Last: 4}, 0, 1)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	for i, want := range []int{1, 2, 3} {
		if slice.doc.Pages[i] != source.doc.Pages[want] {
			t.Errorf("output page %d is not source page %d", i, want)
		}
	}
}

func TestSliceOutOfRange(t *testing.T) {
	source := testSource(4)

	tests := []struct {
		name  string
		pages dmlcz.PageRange
		first int
	}{
		{"past the end", dmlcz.PageRange{First: 4, Last: 6}, 1},
		{"before the start", dmlcz.PageRange{First: 1, Last: 2}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := source.Slice(tt.pages, 0, tt.first)
			if !errors.Is(err, ErrPageOutOfRange) {
				t.Errorf("Slice error = %v, want ErrPageOutOfRange", err)
			}
		})
	}
}

func TestNormalizeDOI(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"10.1145/361604.361612", "10.1145/361604.361612"},
		{"https://doi.org/10.1145/ABC", "10.1145/abc"},
		{"10.5300/2024-1/5.", "10.5300/2024-1/5"},
	}
	for _, tt := range tests {
		if got := normalizeDOI(tt.in); got != tt.want {
			t.Errorf("normalizeDOI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
