package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prom records observations in Prometheus collectors.
type Prom struct {
	gatherer  prometheus.Gatherer
	states    *prometheus.CounterVec
	terminals *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	answer    *prometheus.GaugeVec
}

// NewProm registers the collectors on a fresh registry.
func NewProm() (*Prom, error) {
	reg := prometheus.NewRegistry()
	return NewPromWithRegistry(reg, reg)
}

// NewPromWithRegistry registers the collectors on reg; g is used by
// WriteTextfile. Collectors already registered on reg are reused.
func NewPromWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) (*Prom, error) {
	p := &Prom{gatherer: g}

	states := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "volcanium_search_states_total",
		Help: "Search states popped from the pending stack",
	}, []string{"mode"})
	terminals := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "volcanium_search_outcomes_total",
		Help: "Terminal outcomes yielded by the search",
	}, []string{"mode"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "volcanium_search_duration_seconds",
		Help:    "Wall time of one search run",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
	}, []string{"mode"})
	answer := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "volcanium_answer_pressure",
		Help: "Most recent answer per mode",
	}, []string{"mode"})

	var err error
	if p.states, err = register(reg, states); err != nil {
		return nil, err
	}
	if p.terminals, err = register(reg, terminals); err != nil {
		return nil, err
	}
	if p.duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if p.answer, err = register(reg, answer); err != nil {
		return nil, err
	}

	return p, nil
}

// register adds c to reg, returning the existing collector when one with the
// same descriptor is already present.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, fmt.Errorf("metrics: register: %w", err)
	}

	return c, nil
}

// ObserveSearch implements Recorder.
func (p *Prom) ObserveSearch(mode string, states, terminals int, elapsed time.Duration) {
	p.states.WithLabelValues(mode).Add(float64(states))
	p.terminals.WithLabelValues(mode).Add(float64(terminals))
	p.duration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// ObserveAnswer implements Recorder.
func (p *Prom) ObserveAnswer(mode string, pressure uint64) {
	p.answer.WithLabelValues(mode).Set(float64(pressure))
}

// WriteTextfile writes every gathered metric to path in the text exposition
// format read by node_exporter's textfile collector.
func (p *Prom) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.gatherer); err != nil {
		return fmt.Errorf("metrics: textfile %s: %w", path, err)
	}

	return nil
}
