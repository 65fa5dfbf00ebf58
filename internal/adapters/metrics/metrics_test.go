package metrics_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylo/internal/adapters/metrics"
	"go.trai.ch/stylo/internal/core/domain"
)

func findFamily(t *testing.T, rec *metrics.PrometheusRecorder, name string) *dto.MetricFamily {
	t.Helper()
	mfs, err := rec.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric family %q not found", name)
	return nil
}

func TestPrometheusRecorder(t *testing.T) {
	rec := metrics.NewPrometheusRecorder(nil)

	rec.ObserveCompile("/src", 150*time.Millisecond, true)
	rec.ObserveCompile("/src", 20*time.Millisecond, false)
	rec.ObserveCompile("/src", 30*time.Millisecond, true)
	rec.ObserveInvalidation("/src", 2)
	rec.ObserveInvalidation("/src", 0)
	rec.SetTrackedFiles(7)

	results := findFamily(t, rec, "stylo_compile_results_total")
	counts := map[string]float64{}
	for _, m := range results.GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetName() == "result" {
				counts[l.GetValue()] = m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, map[string]float64{"success": 2, "failed": 1}, counts)

	hist := findFamily(t, rec, "stylo_compile_duration_seconds")
	assert.Equal(t, uint64(3), hist.GetMetric()[0].GetHistogram().GetSampleCount())

	assert.InDelta(t, 2, findFamily(t, rec, "stylo_invalidations_total").GetMetric()[0].GetCounter().GetValue(), 0)
	assert.InDelta(t, 2, findFamily(t, rec, "stylo_recompiles_total").GetMetric()[0].GetCounter().GetValue(), 0)
	assert.InDelta(t, 7, findFamily(t, rec, "stylo_graph_tracked_files").GetMetric()[0].GetGauge().GetValue(), 0)
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	rec := metrics.NewPrometheusRecorder(nil)
	rec.SetTrackedFiles(3)

	srv := httptest.NewServer(rec.Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "stylo_graph_tracked_files 3")
}

func TestPrometheusRecorder_Serve(t *testing.T) {
	rec := metrics.NewPrometheusRecorder(nil)

	// Reserve a free port, then release it for the server.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- rec.Serve(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return strings.Contains(string(body), "stylo_graph_tracked_files")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestPrometheusRecorder_Serve_ListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	err = metrics.NewPrometheusRecorder(nil).Serve(t.Context(), ln.Addr().String())
	require.ErrorIs(t, err, domain.ErrMetricsServeFailed)
}
