package middleware

import (
	"log"
	"net/http"

	"deltaboard/core"
)

// RequestIDHeader is the response header carrying the request correlation ID
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with a ULID so log lines can be
// correlated with a caller-visible response header
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = core.NewID("req")
		}

		w.Header().Set(RequestIDHeader, requestID)
		log.Printf("🌐 %s %s [%s]", r.Method, r.URL.Path, requestID)

		next.ServeHTTP(w, r)
	})
}
