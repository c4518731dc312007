package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "doccatalog"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registrations     *prom.CounterVec
	conflicts         *prom.CounterVec
	resolutions       *prom.CounterVec
	stageDuration     *prom.HistogramVec
	componentVersions prom.Gauge
}

// NewPrometheusRecorder constructs the collectors and registers them on reg (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registrations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Content records added to the catalog by family",
		}, []string{"family"}),
		conflicts: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "registration_conflicts_total",
			Help:      "Rejected registrations by conflict kind",
		}, []string{"kind"}),
		resolutions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Resource address resolutions by outcome",
		}, []string{"outcome"}),
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of catalog build stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		componentVersions: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "component_versions",
			Help:      "Component versions registered in the last build",
		}),
	}
	reg.MustRegister(pr.registrations, pr.conflicts, pr.resolutions, pr.stageDuration, pr.componentVersions)
	return pr
}

func (p *PrometheusRecorder) IncRegistration(family string) {
	if p == nil || p.registrations == nil {
		return
	}
	p.registrations.WithLabelValues(family).Inc()
}

func (p *PrometheusRecorder) IncConflict(kind ConflictKind) {
	if p == nil || p.conflicts == nil {
		return
	}
	p.conflicts.WithLabelValues(string(kind)).Inc()
}

func (p *PrometheusRecorder) IncResolution(outcome ResolutionOutcome) {
	if p == nil || p.resolutions == nil {
		return
	}
	p.resolutions.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetComponentVersions(n int) {
	if p == nil || p.componentVersions == nil {
		return
	}
	p.componentVersions.Set(float64(n))
}

// WriteTextfile writes every metric gathered from reg in the text exposition format to path.
func WriteTextfile(path string, reg *prom.Registry) error {
	return prom.WriteToTextfile(path, reg)
}
