package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine labels.
const (
	EngineDashboard = "dashboard"
	EngineQuote     = "quote"
	EngineScenario  = "scenario"
)

// Metrics holds the collectors of one registry.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	errors       *prometheus.CounterVec
	breakEven    prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adlots",
			Name:      "calculations_total",
			Help:      "Engine calculations served.",
		}, []string{"engine"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adlots",
			Name:      "calculation_errors_total",
			Help:      "Engine calculations rejected or failed.",
		}, []string{"engine"}),
		breakEven: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "adlots",
			Name:      "break_even_pct",
			Help:      "Break-even percentage of the last dashboard built.",
		}),
	}
	m.registry.MustRegister(
		m.calculations,
		m.errors,
		m.breakEven,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe records the outcome of one engine call.
func (m *Metrics) Observe(engine string, err error) {
	if err != nil {
		m.errors.WithLabelValues(engine).Inc()
		return
	}
	m.calculations.WithLabelValues(engine).Inc()
}

func (m *Metrics) SetBreakEven(pct float64) {
	m.breakEven.Set(pct)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
