package netx

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDownload(t *testing.T) {
	t.Run("success 200 OK", func(t *testing.T) {
		var gotMethod, gotQuery string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte("date,amount\n2024-01-01,47.50\n"))
		}))
		defer ts.Close()

		var buf bytes.Buffer
		n, err := Download(context.Background(), ts.URL+"/reports/2024/u/x.csv?X-Amz-Signature=abc", &buf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodGet {
			t.Fatalf("method = %q, want GET", gotMethod)
		}
		if gotQuery != "X-Amz-Signature=abc" {
			t.Fatalf("query = %q", gotQuery)
		}
		if n != int64(buf.Len()) || !strings.HasPrefix(buf.String(), "date,amount") {
			t.Fatalf("unexpected body %q (n=%d)", buf.String(), n)
		}
	})

	t.Run("non-200 returns error with body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("<Error>SignatureDoesNotMatch</Error>"))
		}))
		defer ts.Close()

		var buf bytes.Buffer
		_, err := Download(context.Background(), ts.URL, &buf)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "SignatureDoesNotMatch") {
			t.Fatalf("error %q should mention status and body", err)
		}
		if buf.Len() != 0 {
			t.Fatal("nothing should be written on failure")
		}
	})

	t.Run("bad url", func(t *testing.T) {
		if _, err := Download(context.Background(), "://bad", &bytes.Buffer{}); err == nil {
			t.Fatal("expected error for malformed url")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer ts.Close()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := Download(ctx, ts.URL, &bytes.Buffer{}); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}
