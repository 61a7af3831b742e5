// Package metrics exposes Prometheus counters for the calibration API.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spreadcal/pkg/calibration"
)

type Metrics struct {
	reg          *prometheus.Registry
	resolutions  *prometheus.CounterVec
	calculations *prometheus.CounterVec
	reloads      *prometheus.CounterVec
	devices      prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spreadcal",
			Name:      "resolutions_total",
			Help:      "Dial setting resolutions by confidence.",
		}, []string{"confidence"}),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spreadcal",
			Name:      "calculations_total",
			Help:      "Application calculations by kind and outcome.",
		}, []string{"kind", "outcome"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spreadcal",
			Name:      "chart_reloads_total",
			Help:      "Calibration chart reloads by outcome.",
		}, []string{"outcome"}),
		devices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "spreadcal",
			Name:      "devices",
			Help:      "Spreaders in the current calibration snapshot.",
		}),
	}
	m.reg.MustRegister(
		m.resolutions, m.calculations, m.reloads, m.devices,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

func (m *Metrics) Resolution(c calibration.Confidence) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(string(c)).Inc()
}

// Calculation records one calculator call; kind is "product" or "manual",
// outcome is "ok", "no_device" or "invalid".
func (m *Metrics) Calculation(kind, outcome string) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) Reload(ok bool, devices int) {
	if m == nil {
		return
	}
	if !ok {
		m.reloads.WithLabelValues("error").Inc()
		return
	}
	m.reloads.WithLabelValues("ok").Inc()
	m.devices.Set(float64(devices))
}
