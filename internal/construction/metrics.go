package construction

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the construction Prometheus collectors. A nil *Metrics records nothing.
type Metrics struct {
	attempts   *prometheus.CounterVec
	placements *prometheus.CounterVec
	retries    prometheus.Histogram
	ghosts     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg when it is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "construction",
			Name:      "placement_attempts_total",
			Help:      "Placement commands issued by the retry loop.",
		}, []string{"mode", "result"}),
		placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "construction",
			Name:      "placements_total",
			Help:      "Finished placements by outcome.",
		}, []string{"mode", "outcome"}),
		retries: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "construction",
			Name:      "placement_retries",
			Help:      "Extra attempts needed per finished placement.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		}),
		ghosts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "construction",
			Name:      "ghost_placements_total",
			Help:      "Ghost placement commands by result.",
		}, []string{"mode", "result"}),
	}

	if reg != nil {
		reg.MustRegister(m.attempts, m.placements, m.retries, m.ghosts)
	}

	return m
}

func (m *Metrics) attempt(mode string, err error) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(mode, resultLabel(err)).Inc()
}

func (m *Metrics) finished(mode string, placed bool, attempts int) {
	if m == nil {
		return
	}

	outcome := "failed"
	if placed {
		outcome = "placed"
	}
	m.placements.WithLabelValues(mode, outcome).Inc()
	m.retries.Observe(float64(max(attempts-1, 0)))
}

func (m *Metrics) ghost(mode string, err error) {
	if m == nil {
		return
	}
	m.ghosts.WithLabelValues(mode, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}

	return Classify(err).String()
}

func modeLabel(road bool) string {
	if road {
		return "road"
	}

	return "rail"
}
