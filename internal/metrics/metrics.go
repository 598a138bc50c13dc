// Package metrics exposes Prometheus collectors for the preview server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vangoframework/uikit/app/components/ui"
)

// noneLabel stands in for absent or unrecognized variants and sizes so label
// cardinality stays bounded by the enum sets.
const noneLabel = "none"

// Metrics owns a private registry and the collectors registered on it.
type Metrics struct {
	registry    *prometheus.Registry
	resolutions *prometheus.CounterVec
}

// New creates a registry with Go runtime collectors and the button counter.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uikit",
			Name:      "button_class_resolutions_total",
			Help:      "Button class strings resolved, by variant and size.",
		}, []string{"variant", "size"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.resolutions,
	)
	return m
}

// ObserveButton counts one ButtonVariants resolution.
func (m *Metrics) ObserveButton(v ui.ButtonVariant, s ui.ButtonSize) {
	m.resolutions.WithLabelValues(VariantLabel(v), SizeLabel(s)).Inc()
}

// Resolutions returns the counter for one label pair.
func (m *Metrics) Resolutions(variant, size string) prometheus.Counter {
	return m.resolutions.WithLabelValues(variant, size)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func VariantLabel(v ui.ButtonVariant) string {
	if !v.Valid() {
		return noneLabel
	}
	return string(v)
}

func SizeLabel(s ui.ButtonSize) string {
	if !s.Valid() {
		return noneLabel
	}
	return string(s)
}
