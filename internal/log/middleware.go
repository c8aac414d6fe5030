package log

import (
	"fmt"
	"net/http"
	"time"

	"Espuma/internal/requestid"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Logger returns a middleware that logs one line per completed HTTP request.
func Logger(l *zap.Logger, name string) func(next http.Handler) http.Handler {
	if l == nil {
		panic("log.Logger received a nil *zap.Logger")
	}

	logger := l.Named(name)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			t1 := time.Now()

			defer func() {
				status := ww.Status()
				fields := []zap.Field{
					zap.String("request_id", requestid.FromRequest(r)),
					zap.String("http_method", r.Method),
					zap.String("http_path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.Int("http_status_code", status),
					zap.Int("response_bytes", ww.BytesWritten()),
					zap.Duration("latency", time.Since(t1)),
					zap.String("user_agent", r.UserAgent()),
				}

				msg := fmt.Sprintf("HTTP request completed: %s", r.URL.Path)
				switch {
				case status >= 500:
					logger.Error(msg, fields...)
				case status >= 400:
					logger.Warn(msg, fields...)
				case isQuiet(r):
					logger.Debug(msg, fields...)
				default:
					logger.Info(msg, fields...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func isQuiet(r *http.Request) bool {
	return r.Method == http.MethodGet && (r.URL.Path == "/health" || r.URL.Path == "/metrics")
}
