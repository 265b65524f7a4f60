package doiorg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c := NewClient()
	c.baseURL = baseURL
	return c
}

func TestFetchBibTeX(t *testing.T) {
	const body = "\n@misc{zenodo.1234, title = {Widget}, year = 2024}\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); !strings.Contains(got, "application/x-bibtex") {
			t.Errorf("expected BibTeX Accept header, got %q", got)
		}
		if r.URL.Path != "/10.5281/zenodo.1234" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	got, err := c.FetchBibTeX(context.Background(), "10.5281/zenodo.1234")
	if err != nil {
		t.Fatalf("FetchBibTeX failed: %v", err)
	}
	if got != strings.TrimSpace(body) {
		t.Errorf("body not trimmed: %q", got)
	}
}

func TestFetchBibTeXFollowsRedirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/10.1000/xyz":
			http.Redirect(w, r, "/registrar/record", http.StatusFound)
		case "/registrar/record":
			w.Write([]byte("@article{xyz, title = {Work}}"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	got, err := c.FetchBibTeX(context.Background(), "10.1000/xyz")
	if err != nil {
		t.Fatalf("FetchBibTeX failed: %v", err)
	}
	if got != "@article{xyz, title = {Work}}" {
		t.Errorf("unexpected body: %q", got)
	}
}

func TestFetchBibTeXUnregisteredDOI(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	c := testClient(t, server.URL)
	if _, err := c.FetchBibTeX(context.Background(), "10.9999/nope"); err == nil {
		t.Fatal("expected error for unregistered DOI")
	}
}
