package observability

import (
	"github.com/aretw0/bemjson/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bemjson"

// Handler outcomes recorded in the "result" label.
const (
	ResultApplied = "applied"
	ResultSkipped = "skipped"
	ResultStopped = "stopped"
)

// Metrics holds the build collectors.
type Metrics struct {
	nodes    *prometheus.CounterVec
	handlers *prometheus.CounterVec
	removed  *prometheus.CounterVec
	builds   prometheus.Counter
	duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		nodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nodes_total",
				Help:      "Block and element nodes visited, by governing block.",
			},
			[]string{"block"},
		),
		handlers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "handlers_total",
				Help:      "Handler invocations by declaration and result.",
			},
			[]string{"decl", "result"},
		),
		removed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nodes_removed_total",
				Help:      "Nodes removed by handlers, by governing block.",
			},
			[]string{"block"},
		),
		builds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Completed tree builds.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of tree builds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Collectors()...)
	}
	return m
}

// Collectors returns every collector owned by m.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.nodes, m.handlers, m.removed, m.builds, m.duration}
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(e *domain.NodeEvent) {
			m.nodes.WithLabelValues(e.Block).Inc()
		},
		OnHandler: func(e *domain.HandlerEvent) {
			result := ResultApplied
			switch {
			case e.Skipped:
				result = ResultSkipped
			case e.Stopped:
				result = ResultStopped
			}
			m.handlers.WithLabelValues(e.Descriptor, result).Inc()
		},
		OnRemove: func(e *domain.NodeEvent) {
			m.removed.WithLabelValues(e.Block).Inc()
		},
		OnBuild: func(e *domain.BuildEvent) {
			m.builds.Inc()
			m.duration.Observe(e.Duration.Seconds())
		},
	}
}
