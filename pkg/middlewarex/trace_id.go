package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"quotehub/pkg/contextx"
)

const maxTraceIDLen = 64

// TraceID propagates the caller's X-Trace-Id or mints a new one. Oversized or
// non-printable ids are replaced so they never reach the logs.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(contextx.HeaderTraceID)

		if !validTraceID(traceID) {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(contextx.HeaderTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validTraceID(s string) bool {
	if s == "" || len(s) > maxTraceIDLen {
		return false
	}

	for _, c := range s {
		if c < '!' || c > '~' {
			return false
		}
	}

	return true
}
