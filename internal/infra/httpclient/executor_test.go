package httpclient

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/pokedex/internal/domain"
)

func TestExecutorTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	exec := NewExecutor(WithTimeout(20 * time.Millisecond))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := exec.Do(context.Background(), req)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if resp.Duration <= 0 {
		t.Fatalf("expected duration to be set")
	}
	if kind := Classify(err); kind != domain.FetchErrorTimeout {
		t.Fatalf("expected timeout classification, got %s", kind)
	}
}

func TestExecutorTruncatesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(strings.Repeat("a", 2048)))
	}))
	defer server.Close()

	exec := NewExecutor(WithMaxBodyBytes(1024))
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

	resp, err := exec.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Truncated || len(resp.BodyBytes) != 1024 {
		t.Fatalf("expected truncated 1024 bytes, got truncated=%v len=%d", resp.Truncated, len(resp.BodyBytes))
	}
	if resp.Status != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Status)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want domain.FetchErrorKind
	}{
		{nil, ""},
		{context.Canceled, domain.FetchErrorCanceled},
		{context.DeadlineExceeded, domain.FetchErrorTimeout},
		{&net.DNSError{Err: "no such host", Name: "x"}, domain.FetchErrorDNS},
		{&net.OpError{Op: "dial", Err: errors.New("refused")}, domain.FetchErrorConn},
		{errors.New("boom"), domain.FetchErrorUnknown},
	}
	for _, c := range cases {
		if got := Classify(c.err); got != c.want {
			t.Errorf("Classify(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}
