package app

import (
	"context"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// runPprof serves the pprof debug endpoints on their own listener. It is a
// non-critical subsystem: any failure is logged and the rest of the service
// keeps running. It returns when ctx is cancelled or the listener fails.
func runPprof(ctx context.Context, lg *zap.Logger, addr string) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		Addr:              addr,
		Handler:           mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	lg.Info("Profiling server listening", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Warn("Profiling server failed, continuing without it", zap.Error(err))
	}
}
