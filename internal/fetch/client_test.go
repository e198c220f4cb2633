package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"poolmirror/internal/domain"
)

const poolPage = `<!DOCTYPE html>
<html>
<head><title>Team trip 2025</title></head>
<body>
<div id="app"></div>
<script type="application/json" id="store">{"campaign":{"p1":{"pledge":10}}}</script>
<script src="/bundle.js"></script>
</body>
</html>`

func TestStoreJSONExtractsEmbeddedDocument(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(poolPage))
	}))
	defer srv.Close()

	client, err := NewClient(Options{BaseURL: srv.URL + "/pools/c/"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	raw, err := client.StoreJSON(context.Background(), "p1")
	if err != nil {
		t.Fatalf("StoreJSON returned error: %v", err)
	}
	if gotPath != "/pools/c/p1" {
		t.Fatalf("unexpected request path %q", gotPath)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("extracted payload is not valid JSON: %v", err)
	}
	if _, ok := doc["campaign"]; !ok {
		t.Fatalf("extracted payload missing campaign: %s", raw)
	}
}

func TestStoreJSONMissingScriptTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>not the pool page</p></body></html>`))
	}))
	defer srv.Close()

	client, err := NewClient(Options{BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, err := client.StoreJSON(context.Background(), "p1"); !errors.Is(err, domain.ErrStoreMissing) {
		t.Fatalf("expected ErrStoreMissing, got %v", err)
	}
}

func TestStoreJSONNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client, err := NewClient(Options{BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = client.StoreJSON(context.Background(), "gone")
	if err == nil || !strings.Contains(err.Error(), "status 404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	client, err := NewClient(Options{})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if !strings.HasPrefix(client.baseURL, "https://www.paypal.com/pools/c/") {
		t.Fatalf("unexpected default base url %q", client.baseURL)
	}
}
