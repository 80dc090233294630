package pkgrouter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/pricelist/internal/pkg/pkglog"
)

type staticGenerator struct {
	value string
	calls int
}

func (g *staticGenerator) Generate() string {
	g.calls++
	return g.value
}

func TestMiddlewareCorrelationID(t *testing.T) {
	tests := []struct {
		name      string
		headers   map[string]string
		wantCID   string
		wantCalls int
	}{
		{
			name:    "correlation header",
			headers: map[string]string{HeaderCorrelationID: "header-cid", HeaderRequestID: "proxy-id"},
			wantCID: "header-cid",
		},
		{
			name:    "request id fallback",
			headers: map[string]string{HeaderRequestID: "proxy-id"},
			wantCID: "proxy-id",
		},
		{
			name:      "invalid header is replaced",
			headers:   map[string]string{HeaderCorrelationID: "bad value"},
			wantCID:   "generated",
			wantCalls: 1,
		},
		{
			name:      "generated when missing",
			wantCID:   "generated",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &staticGenerator{value: "generated"}

			var gotCID string
			h := middlewareCorrelationID(gen)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCID, _ = pkglog.CorrelationID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if gotCID != tt.wantCID {
				t.Fatalf("context cid = %q, want %q", gotCID, tt.wantCID)
			}
			if got := rec.Header().Get(HeaderCorrelationID); got != tt.wantCID {
				t.Fatalf("response cid = %q, want %q", got, tt.wantCID)
			}
			if gen.calls != tt.wantCalls {
				t.Fatalf("generator calls = %d, want %d", gen.calls, tt.wantCalls)
			}
		})
	}
}

func TestMiddlewareCorrelationIDWithoutGenerator(t *testing.T) {
	var found bool
	h := middlewareCorrelationID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = pkglog.CorrelationID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://example.com", nil))

	if found {
		t.Fatal("expected no correlation id without a generator")
	}
	if got := rec.Header().Get(HeaderCorrelationID); got != "" {
		t.Fatalf("expected no response header, got %q", got)
	}
}
