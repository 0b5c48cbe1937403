package middleware

import (
	"net/http"
	"runtime/debug"

	"jewelry-inventory-api/pkg/apierror"
	"jewelry-inventory-api/pkg/response"

	"go.uber.org/zap"
)

// NewRecovery returns a middleware that turns panics into a 500 response.
func NewRecovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						zap.Any("panic", err),
						zap.String("path", r.URL.Path),
						zap.String("request_id", GetRequestID(r.Context())),
						zap.ByteString("stack", debug.Stack()),
					)

					response.Error(w, apierror.InternalError("internal server error", ""))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
