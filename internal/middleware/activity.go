package middleware

import (
	"context"
	"net/http"
	"time"

	"jewelry-inventory-api/internal/model"
)

// ActivityRecorder receives one report per request.
type ActivityRecorder interface {
	Record(ctx context.Context, report model.ActivityReport)
}

// NewActivity returns a pre-handler that reports every request before it
// is routed. The recorder cannot alter or fail the request.
func NewActivity(recorder ActivityRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if recorder != nil {
				recorder.Record(r.Context(), model.ActivityReport{
					Timestamp:  time.Now().UTC(),
					RequestID:  GetRequestID(r.Context()),
					Method:     r.Method,
					Path:       r.URL.Path,
					Query:      r.URL.Query(),
					RemoteAddr: r.RemoteAddr,
				})
			}

			next.ServeHTTP(w, r)
		})
	}
}
