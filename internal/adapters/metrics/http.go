package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/zerr"
)

const shutdownTimeout = 5 * time.Second

// Handler returns an http.Handler that serves the recorder's metrics.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Serve exposes /metrics on addr until ctx is done.
func (p *PrometheusRecorder) Serve(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMetricsServeFailed, err.Error()), "addr", addr)
	}
	return p.serve(ctx, ln)
}

func (p *PrometheusRecorder) serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", p.Handler())

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return zerr.With(zerr.Wrap(domain.ErrMetricsServeFailed, err.Error()), "addr", ln.Addr().String())
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMetricsServeFailed, err.Error()), "addr", ln.Addr().String())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return zerr.With(zerr.Wrap(domain.ErrMetricsServeFailed, err.Error()), "addr", ln.Addr().String())
	}
	return nil
}
