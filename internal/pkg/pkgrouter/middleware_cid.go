package pkgrouter

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/pricelist/internal/pkg/pkglog"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkguid"
)

const (
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is read when a proxy sets it instead of HeaderCorrelationID.
	HeaderRequestID = "X-Request-ID"

	maxCIDLen = 128
)

// normalizeCID trims v and returns "" unless it is short printable ASCII, so
// client values can go into headers and log lines as they are.
func normalizeCID(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > maxCIDLen {
		return ""
	}
	for i := 0; i < len(v); i++ {
		if v[i] < 0x21 || v[i] > 0x7e {
			return ""
		}
	}
	return v
}

func middlewareCorrelationID(ids pkguid.StringID) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := normalizeCID(r.Header.Get(HeaderCorrelationID))
			if cid == "" {
				cid = normalizeCID(r.Header.Get(HeaderRequestID))
			}
			if cid == "" && ids != nil {
				cid = ids.Generate()
			}
			if cid == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(HeaderCorrelationID, cid)
			next.ServeHTTP(w, r.WithContext(pkglog.WithCorrelationID(r.Context(), cid)))
		})
	}
}
