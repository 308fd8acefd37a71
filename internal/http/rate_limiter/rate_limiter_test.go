package rate_limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func doRequest(h http.Handler, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code
}

func TestMiddleware_BurstThenReject(t *testing.T) {
	CleanupAllVisitors()
	t.Cleanup(CleanupAllVisitors)

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// The full burst passes for a fresh visitor.
	for i := 0; i < 10; i++ {
		if code := doRequest(h, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
	if code := doRequest(h, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the burst is spent, got %d", code)
	}

	// A different visitor has its own budget.
	if code := doRequest(h, "10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("expected 200 for a fresh visitor, got %d", code)
	}
}

func TestCleanupAllVisitors_ResetsBudget(t *testing.T) {
	CleanupAllVisitors()
	t.Cleanup(CleanupAllVisitors)

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 10; i++ {
		doRequest(h, "10.0.0.1:1234")
	}
	if code := doRequest(h, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the burst is spent, got %d", code)
	}

	// Dropping the visitor map hands the caller a fresh budget. Shared
	// fixtures (the handler test suite's single httptest RemoteAddr) rely
	// on this between tests.
	CleanupAllVisitors()
	if code := doRequest(h, "10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("expected 200 after reset, got %d", code)
	}
}
