package pkgrouter

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeCID(t *testing.T) {
	if got := normalizeCID("  abc  "); got != "abc" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := normalizeCID("a\nb"); got != "" {
		t.Fatalf("expected empty for embedded newline, got %q", got)
	}
	if got := normalizeCID("caf\u00e9"); got != "" {
		t.Fatalf("expected empty for non-ascii value, got %q", got)
	}
	if got := normalizeCID("a b"); got != "" {
		t.Fatalf("expected empty for inner space, got %q", got)
	}
	if got := normalizeCID(strings.Repeat("a", maxCIDLen)); len(got) != maxCIDLen {
		t.Fatalf("expected value of max length kept, got %d bytes", len(got))
	}
	if got := normalizeCID(strings.Repeat("a", maxCIDLen+1)); got != "" {
		t.Fatalf("expected empty for over-long value, got %d bytes", len(got))
	}
}

func TestChainOrder(t *testing.T) {
	order := make([]string, 0, 3)

	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("mw1"), mw("mw2"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "http://example.com", nil))

	if !reflect.DeepEqual(order, []string{"mw1", "mw2", "handler"}) {
		t.Fatalf("unexpected order: %#v", order)
	}
}

func TestResponseMeter(t *testing.T) {
	meter := &responseMeter{ResponseWriter: httptest.NewRecorder()}
	if got := meter.statusCode(); got != http.StatusOK {
		t.Fatalf("expected implicit 200 before any write, got %d", got)
	}

	if _, err := meter.Write([]byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}
	meter.WriteHeader(http.StatusTeapot)

	if meter.statusCode() != http.StatusOK || meter.written != 5 {
		t.Fatalf("unexpected meter state: status=%d bytes=%d", meter.statusCode(), meter.written)
	}

	meter = &responseMeter{ResponseWriter: httptest.NewRecorder()}
	meter.WriteHeader(http.StatusNotFound)
	if got := meter.statusCode(); got != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", got)
	}
}
