// Package metrics records compile and watch activity with Prometheus.
package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/stylo/internal/core/ports"
)

const namespace = "stylo"

var (
	_ ports.Metrics       = (*PrometheusRecorder)(nil)
	_ ports.MetricsServer = (*PrometheusRecorder)(nil)
)

// PrometheusRecorder implements ports.Metrics using a private Prometheus registry.
type PrometheusRecorder struct {
	reg             *prom.Registry
	compileDuration *prom.HistogramVec
	compileResults  *prom.CounterVec
	invalidations   *prom.CounterVec
	recompiles      *prom.CounterVec
	trackedFiles    prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil registry gets a fresh one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		compileDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "compile_duration_seconds",
			Help:      "Duration of individual unit compiles",
			Buckets:   prom.DefBuckets,
		}, []string{"root"}),
		compileResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "compile_results_total",
			Help:      "Unit compiles by outcome",
		}, []string{"root", "result"}),
		invalidations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "invalidations_total",
			Help:      "Change batches handled in watch mode",
		}, []string{"root"}),
		recompiles: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "recompiles_total",
			Help:      "Entry units recompiled because an included file changed",
		}, []string{"root"}),
		trackedFiles: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_tracked_files",
			Help:      "Number of included files tracked by the dependency graph",
		}),
	}
	reg.MustRegister(pr.compileDuration, pr.compileResults, pr.invalidations, pr.recompiles, pr.trackedFiles)
	return pr
}

// Registry returns the registry the metrics are registered with.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

// ObserveCompile records the duration and outcome of one unit compile.
func (p *PrometheusRecorder) ObserveCompile(root string, d time.Duration, ok bool) {
	result := "failed"
	if ok {
		result = "success"
	}
	p.compileDuration.WithLabelValues(root).Observe(d.Seconds())
	p.compileResults.WithLabelValues(root, result).Inc()
}

// ObserveInvalidation records a handled change batch.
func (p *PrometheusRecorder) ObserveInvalidation(root string, recompiles int) {
	p.invalidations.WithLabelValues(root).Inc()
	p.recompiles.WithLabelValues(root).Add(float64(recompiles))
}

// SetTrackedFiles sets the graph size gauge.
func (p *PrometheusRecorder) SetTrackedFiles(n int) {
	p.trackedFiles.Set(float64(n))
}
