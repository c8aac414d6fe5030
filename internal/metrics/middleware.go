package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	RequestsCollectorName = "http_requests_total"
	LatencyCollectorName  = "http_request_duration_milliseconds"
)

var bucketsConfig = []float64{5, 25, 100, 500, 1000}

// Middleware records request counts and latency partitioned by status code,
// method and route template.
type Middleware struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMiddleware returns a new prometheus middleware for the provided service name.
func NewMiddleware(name string) *Middleware {
	var m Middleware
	m.requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        RequestsCollectorName,
			Help:        "Number of HTTP requests partitioned by status code, method and HTTP path.",
			ConstLabels: prometheus.Labels{"service": name},
		}, []string{"code", "method", "path"})

	m.latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Name:        LatencyCollectorName,
		Help:        "Time spent on the request partitioned by status code, method and HTTP path.",
		ConstLabels: prometheus.Labels{"service": name},
		Buckets:     bucketsConfig,
	}, []string{"code", "method", "path"})

	return &m
}

// Handler is a mux middleware. Requests that matched no route are not recorded.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := mux.CurrentRoute(r)
		if route == nil {
			return
		}
		path, err := route.GetPathTemplate()
		if err != nil {
			return
		}
		code := strconv.Itoa(ww.Status())
		m.requests.WithLabelValues(code, r.Method, path).Inc()
		m.latency.WithLabelValues(code, r.Method, path).Observe(float64(time.Since(start).Milliseconds()))
	})
}

// Collectors returns the collectors for a custom registry.
func (m *Middleware) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.requests, m.latency}
}

// MustRegister registers the collectors with reg.
func (m *Middleware) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.Collectors()...)
}
