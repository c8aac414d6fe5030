package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Espuma/internal/auth"
	"Espuma/internal/calc/batch"
	"Espuma/internal/calc/foam"
	"Espuma/internal/calc/importer"
	"Espuma/internal/calc/report"
	"Espuma/internal/calc/share"
	"Espuma/internal/config"
	"Espuma/internal/formulation"
	"Espuma/internal/log"
	"Espuma/internal/metrics"
	"Espuma/internal/requestid"
	"Espuma/internal/view"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const serviceName = "espuma"

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg *config.Config, reg *formulation.Registry, promReg prometheus.Registerer) {
	mux.Use(requestid.Middleware)
	mux.Use(log.Logger(zap.L(), serviceName))

	m := metrics.NewMiddleware(serviceName)
	m.MustRegister(promReg)
	mux.Use(m.Handler)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")
	mux.Handle("/metrics", promhttp.Handler()).Methods("GET")

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.Limits.RatePerSecond), cfg.Limits.Burst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	foamH := &foam.Handler{Registry: reg}
	batchH := &batch.Handler{Registry: reg, MaxItems: cfg.Limits.MaxBatchItems}
	importH := &importer.Handler{Registry: reg, MaxUploadSize: cfg.MaxUploadBytes(), MaxItems: cfg.Limits.MaxBatchItems}
	reportH := &report.Handler{Registry: reg}

	api.HandleFunc("/formulations", foamH.List).Methods("GET")
	api.HandleFunc("/formulations/{id}", foamH.Get).Methods("GET")
	api.HandleFunc("/formulations/{id}/calc", foamH.Calc).Methods("POST")
	api.HandleFunc("/batch", batchH.Calc).Methods("POST")
	api.HandleFunc("/import", importH.Import).Methods("POST")
	api.HandleFunc("/report", reportH.Generate).Methods("POST")

	if cfg.Share.Key != "" {
		shareH := &share.Handler{Registry: reg, Sharer: auth.NewSharer([]byte(cfg.Share.Key)), BaseURL: cfg.Service.BaseUrl}
		api.HandleFunc("/share", shareH.Create).Methods("POST")
		api.HandleFunc("/share/{token}", shareH.Open).Methods("GET")
	} else {
		zap.S().Named("server").Warn("ESPUMA_SHARE_KEY is not set, share links are disabled")
	}

	viewH := &view.Handler{Registry: reg}
	mux.HandleFunc("/", viewH.Form).Methods("GET")
	mux.HandleFunc("/calcular", viewH.Submit).Methods("POST")
	mux.HandleFunc("/reset", viewH.Reset).Methods("GET")
}

func main() {
	cfg, err := config.New()
	if err != nil {
		log.InitLog("info").Sugar().Fatalw("reading configuration", "error", err)
	}

	logger := log.InitLog(cfg.Service.LogLevel)
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mux := mux.NewRouter()
	HandleList(mux, cfg, formulation.Default(), prometheus.DefaultRegisterer)
	handler := CORS(mux)

	server := &http.Server{
		Addr:              cfg.Service.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	zap.S().Named("server").Infow("starting server", "address", cfg.Service.Address, "tls", cfg.TLS())

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.Service.TLSCert, cfg.Service.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Named("server").Errorw("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	zap.S().Named("server").Info("shutdown signal received, closing active connections")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.S().Named("server").Errorw("stopping server", "error", err)
	}
	wg.Wait()
	zap.S().Named("server").Info("server stopped")
}
