package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	Header                  = "X-Request-Id"
)

// Generate creates a new unique request ID
func Generate() string {
	return uuid.New().String()
}

// ToContext adds a request ID to the context
func ToContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// FromContext extracts the request ID from the context.
// Returns empty string if request ID is not found.
func FromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// FromRequest extracts the request ID from the HTTP request context.
func FromRequest(r *http.Request) string {
	return FromContext(r.Context())
}

// Middleware takes the request ID from the X-Request-Id header or generates
// one, stores it in the request context and echoes it in the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = Generate()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(ToContext(r.Context(), requestID)))
	})
}
