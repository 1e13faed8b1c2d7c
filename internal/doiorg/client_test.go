package doiorg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const citeprocBody = `{
	"title": "Computer Programming as an Art",
	"author": [
		{"given": "Donald E.", "family": "Knuth"},
		{"given": "Other", "family": "Author"}
	],
	"publisher": "Association for Computing Machinery",
	"issued": {"date-parts": [[1974, 12]]},
	"volume": "17",
	"issue": "12",
	"page": "667-673",
	"ISSN": ["0001-0782", "1557-7317"]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()),
		WithRateLimit(1000),
	)
}

func TestResolve(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != citeprocType {
			t.Errorf("Accept = %q, want %q", got, citeprocType)
		}
		w.Write([]byte(citeprocBody))
	})

	meta, err := client.Resolve(context.Background(), "10.1145/361604.361612")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if meta == nil {
		t.Fatal("Resolve returned nil metadata")
	}

	title, ok := meta.Title()
	if !ok || title != "Computer Programming as an Art" {
		t.Errorf("Title() = %q, %v", title, ok)
	}

	given, family, ok := meta.FirstAuthor()
	if !ok {
		t.Fatal("FirstAuthor() not found")
	}
	if given != "Donald E." || family != "Knuth" {
		t.Errorf("FirstAuthor() = %q, %q", given, family)
	}

	fields := meta.Fields()
	want := map[string]string{
		"publisher": "Association for Computing Machinery",
		"year":      "1974",
		"number":    "12",
		"volume":    "17",
		"pages":     "667-673",
		"ISSN":      "0001-0782",
	}
	for name, wantValue := range want {
		if fields[name] != wantValue {
			t.Errorf("Fields()[%q] = %q, want %q", name, fields[name], wantValue)
		}
	}
}

func TestResolveNonSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	meta, err := client.Resolve(context.Background(), "10.1000/missing")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if meta != nil {
		t.Errorf("Resolve = %v, want nil metadata on non-success", meta)
	}
}

func TestResolveUndecodableBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>surprise</html>"))
	})

	meta, err := client.Resolve(context.Background(), "10.1000/html")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if meta != nil {
		t.Errorf("Resolve = %v, want nil metadata on undecodable body", meta)
	}
}

func TestResolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(WithRateLimit(1000))
	if _, err := client.Resolve(ctx, "10.1000/any"); err == nil {
		t.Error("Resolve with cancelled context returned nil error")
	}
}
