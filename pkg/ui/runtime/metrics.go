package runtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/odvcencio/marquee/pkg/ui/terminal"
)

// Dispatch outcomes recorded by the loop.
const (
	outcomeMenubar  = "menubar"
	outcomeConsumed = "consumed"
	outcomeIgnored  = "ignored"
)

// Metrics holds the loop's Prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	ticks           prometheus.Counter
	clears          prometheus.Counter
	events          *prometheus.CounterVec
	dispatch        *prometheus.CounterVec
	globalCallbacks prometheus.Counter
	asyncCallbacks  prometheus.Counter
	queueDepth      prometheus.Gauge
}

// NewMetrics registers the loop collectors on reg. A nil registerer
// disables metrics and returns nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	f := promauto.With(reg)
	return &Metrics{
		ticks: f.NewCounter(prometheus.CounterOpts{
			Namespace: "marquee",
			Name:      "loop_ticks_total",
			Help:      "Event loop iterations.",
		}),
		clears: f.NewCounter(prometheus.CounterOpts{
			Namespace: "marquee",
			Name:      "loop_clears_total",
			Help:      "Full screen clears before a draw.",
		}),
		events: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marquee",
			Name:      "events_total",
			Help:      "Events returned by the backend, by kind.",
		}, []string{"kind"}),
		dispatch: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marquee",
			Name:      "dispatch_total",
			Help:      "Event dispatch outcomes.",
		}, []string{"outcome"}),
		globalCallbacks: f.NewCounter(prometheus.CounterOpts{
			Namespace: "marquee",
			Name:      "global_callbacks_total",
			Help:      "Global hotkey callbacks run.",
		}),
		asyncCallbacks: f.NewCounter(prometheus.CounterOpts{
			Namespace: "marquee",
			Name:      "async_callbacks_total",
			Help:      "Callbacks drained from the async sink.",
		}),
		queueDepth: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "marquee",
			Name:      "async_queue_depth",
			Help:      "Callbacks waiting in the async sink.",
		}),
	}
}

func (m *Metrics) tick() {
	if m != nil {
		m.ticks.Inc()
	}
}

func (m *Metrics) clear() {
	if m != nil {
		m.clears.Inc()
	}
}

func (m *Metrics) event(ev terminal.Event) {
	if m != nil {
		m.events.WithLabelValues(terminal.Kind(ev)).Inc()
	}
}

func (m *Metrics) outcome(o string) {
	if m != nil {
		m.dispatch.WithLabelValues(o).Inc()
	}
}

func (m *Metrics) globals(n int) {
	if m != nil && n > 0 {
		m.globalCallbacks.Add(float64(n))
	}
}

func (m *Metrics) async(n int) {
	if m != nil && n > 0 {
		m.asyncCallbacks.Add(float64(n))
	}
}

func (m *Metrics) depth(n int) {
	if m != nil {
		m.queueDepth.Set(float64(n))
	}
}
