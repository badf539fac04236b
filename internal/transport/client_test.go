package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flixkit-labs/flixkit/internal/manifest"
)

const testManifest = `{
	"id": "org.example.streams",
	"version": "1.4.0",
	"name": "Example Streams",
	"types": ["movie"],
	"resources": ["stream"],
	"idPrefixes": ["tt"]
}`

func newAddonServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/manifest.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testManifest))
	})
	mux.HandleFunc("/stream/movie/tt0234.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"streams":[{"url":"https://cdn.example/tt0234.mp4"}]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchManifest(t *testing.T) {
	server := newAddonServer(t)

	c := New(WithHTTPClient(server.Client()))
	m, err := c.FetchManifest(server.URL + "/manifest.json")
	if err != nil {
		t.Fatalf("FetchManifest error: %v", err)
	}
	if m.ID != "org.example.streams" {
		t.Errorf("ID = %q, want org.example.streams", m.ID)
	}
	if m.Version.String() != "1.4.0" {
		t.Errorf("Version = %s, want 1.4.0", m.Version.String())
	}
}

func TestFetchManifest_InvalidManifest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"org.example.broken","name":"no version","resources":[]}`))
	}))
	defer server.Close()

	c := New(WithHTTPClient(server.Client()))
	if _, err := c.FetchManifest(server.URL + "/manifest.json"); err == nil {
		t.Fatal("expected error for undecodable manifest, got nil")
	}
}

func TestFetchManifest_HTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	c := New(WithHTTPClient(server.Client()))
	if _, err := c.FetchManifest(server.URL + "/manifest.json"); err == nil {
		t.Fatal("expected error for HTTP 404, got nil")
	}
}

func TestGet_ResourcePath(t *testing.T) {
	server := newAddonServer(t)

	c := New(WithHTTPClient(server.Client()))
	body, err := c.Get(server.URL+"/manifest.json", manifest.NewResourceRef("stream", "movie", "tt0234"))
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(body) == 0 {
		t.Fatal("empty response body")
	}
}

func TestGet_RejectsNonManifestURL(t *testing.T) {
	c := New()
	_, err := c.Get("https://addon.example/otherfile.json", manifest.NewResourceRef("stream", "movie", "tt0234"))
	if err == nil {
		t.Fatal("expected error for transport URL without manifest suffix, got nil")
	}
}
