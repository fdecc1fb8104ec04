package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/ahpgap/workforce-planner/pkg/requestid"
)

// RequestID takes the id from the X-Request-Id header, falls back to the id
// chi's RequestID middleware generated, and otherwise creates one. The id is
// stored with requestid.ToContext and echoed on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestid.Header)
		if requestID == "" {
			requestID = middleware.GetReqID(r.Context())
		}
		if requestID == "" {
			requestID = requestid.Generate()
		}

		w.Header().Set(requestid.Header, requestID)
		next.ServeHTTP(w, r.WithContext(requestid.ToContext(r.Context(), requestID)))
	})
}
