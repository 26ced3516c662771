package statsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mlb-stats-service/internal/metrics"
)

func TestFetchDocumentSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("expected Accept header, got %q", r.Header.Get("Accept"))
		}
		w.Write([]byte(`{"dates":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{Recorder: metrics.NewRecorder()})
	payload, err := client.FetchDocument(context.Background(), srv.URL+"/api/v1/schedule")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if string(payload) != `{"dates":[]}` {
		t.Fatalf("unexpected payload %s", payload)
	}
}

func TestFetchDocumentNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{})
	_, err := client.FetchDocument(context.Background(), srv.URL)
	if !IsUnavailable(err) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
}

func TestFetchDocumentInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewClient(Config{})
	_, err := client.FetchDocument(context.Background(), srv.URL)
	if !IsUnavailable(err) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
}

func TestFetchDocumentEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(Config{})
	_, err := client.FetchDocument(context.Background(), srv.URL)
	if !IsUnavailable(err) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
}

func TestFetchDocumentTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	client := NewClient(Config{})
	_, err := client.FetchDocument(context.Background(), srv.URL)
	if !IsUnavailable(err) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
}

func TestFetchDocumentRecordsMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	rec := metrics.NewRecorder()
	client := NewClient(Config{Recorder: rec})
	if _, err := client.FetchDocument(context.Background(), srv.URL+"/api/v1/standings"); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if snap := rec.Upstream("standings"); snap.Calls != 1 || snap.Errors != 0 {
		t.Fatalf("unexpected upstream snapshot: %+v", snap)
	}
}
