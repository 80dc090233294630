package pkgrouter

import (
	"log/slog"
	"net/http"
	"time"
)

// responseMeter records what a handler wrote, for the access log.
type responseMeter struct {
	http.ResponseWriter
	status  int
	written int
}

func (m *responseMeter) WriteHeader(code int) {
	if m.status == 0 {
		m.status = code
	}
	m.ResponseWriter.WriteHeader(code)
}

func (m *responseMeter) Write(p []byte) (int, error) {
	if m.status == 0 {
		m.status = http.StatusOK
	}
	n, err := m.ResponseWriter.Write(p)
	m.written += n
	return n, err
}

func (m *responseMeter) Unwrap() http.ResponseWriter {
	return m.ResponseWriter
}

func (m *responseMeter) statusCode() int {
	if m.status == 0 {
		return http.StatusOK
	}
	return m.status
}

// middlewareLogging writes one access log line per request. Bodies are left
// out since export responses hold the whole price table.
func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		meter := &responseMeter{ResponseWriter: w}

		next.ServeHTTP(meter, r)

		level := slog.LevelInfo
		if meter.statusCode() >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		slog.Log(r.Context(), level, "http request",
			slog.Group("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
			),
			slog.Group("response",
				slog.Int("status", meter.statusCode()),
				slog.Int("bytes", meter.written),
				slog.Int64("latency_ms", time.Since(start).Milliseconds()),
			),
		)
	})
}
