package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient() *Client {
	return New(5 * time.Second)
}

func TestFetchPDFSuccess(t *testing.T) {
	want := []byte("%PDF-1.4 minimal body")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(want)
	}))
	defer srv.Close()

	got, err := newTestClient().FetchPDF(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchPDF() error: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("FetchPDF() = %q, want %q", got, want)
	}
}

func TestFetchPDFNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := newTestClient().FetchPDF(context.Background(), srv.URL)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FetchPDF() error = %v, want ErrNotFound", err)
	}
}

func TestFetchPDFServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient().FetchPDF(context.Background(), srv.URL)
	if !errors.Is(err, ErrBadStatus) {
		t.Errorf("FetchPDF() error = %v, want ErrBadStatus", err)
	}
}

func TestFetchPDFNotAPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not a pdf</html>"))
	}))
	defer srv.Close()

	_, err := newTestClient().FetchPDF(context.Background(), srv.URL)
	if !errors.Is(err, ErrNotPDF) {
		t.Errorf("FetchPDF() error = %v, want ErrNotPDF", err)
	}
}

func TestFetchPDFTransportError(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient().FetchPDF(context.Background(), url)
	if !errors.Is(err, ErrTransport) {
		t.Errorf("FetchPDF() error = %v, want ErrTransport", err)
	}
}
