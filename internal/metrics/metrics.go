// Package metrics exposes Prometheus instruments for the display server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters and gauges updated by the web shell
type Metrics struct {
	// Operator actions by name and outcome (ok, rejected, invalid)
	actions *prometheus.CounterVec
	// Alerts raised by kind
	alerts *prometheus.CounterVec
	// Audible cues raised by reason
	cues *prometheus.CounterVec
	// Ticks that changed a countdown
	ticks prometheus.Counter
	// Messages dropped because a display did not keep up
	dropped prometheus.Counter

	rooms    prometheus.Gauge
	displays *prometheus.GaugeVec
}

// New registers every instrument on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{}

	m.actions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mun_actions_total",
			Help: "operator actions by name and outcome",
		},
		[]string{"action", "outcome"},
	)
	m.alerts = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mun_alerts_total",
			Help: "alerts raised by kind",
		},
		[]string{"kind"},
	)
	m.cues = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mun_cues_total",
			Help: "audible cues raised by reason",
		},
		[]string{"reason"},
	)
	m.ticks = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "mun_timer_ticks_total",
			Help: "ticks that advanced a running countdown",
		},
	)
	m.dropped = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "mun_display_messages_dropped_total",
			Help: "messages not delivered to a slow display",
		},
	)
	m.rooms = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "mun_rooms",
			Help: "open committee rooms",
		},
	)
	m.displays = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mun_displays",
			Help: "connected displays by transport",
		},
		[]string{"transport"},
	)
	return m
}

// Nop returns metrics registered on a throwaway registry
func Nop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) Action(name, outcome string) {
	m.actions.WithLabelValues(name, outcome).Inc()
}

func (m *Metrics) Alert(kind string) {
	m.alerts.WithLabelValues(kind).Inc()
}

func (m *Metrics) Cue(reason string) {
	m.cues.WithLabelValues(reason).Inc()
}

func (m *Metrics) Tick() { m.ticks.Inc() }

func (m *Metrics) Dropped(n int) {
	if n > 0 {
		m.dropped.Add(float64(n))
	}
}

func (m *Metrics) RoomOpened() { m.rooms.Inc() }

// DisplayConnected adjusts the display gauge for transport by delta
func (m *Metrics) DisplayConnected(transport string, delta int) {
	m.displays.WithLabelValues(transport).Add(float64(delta))
}
