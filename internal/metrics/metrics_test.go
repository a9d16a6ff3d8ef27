package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Action("next-speaker", "ok")
	m.Action("next-speaker", "ok")
	m.Action("pass-motion", "rejected")
	m.Alert("crisis")
	m.Cue("crisis")
	m.Tick()
	m.Dropped(0)
	m.Dropped(2)
	m.RoomOpened()
	m.DisplayConnected("sse", 1)
	m.DisplayConnected("sse", 1)
	m.DisplayConnected("sse", -1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.actions.WithLabelValues("next-speaker", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("pass-motion", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.alerts.WithLabelValues("crisis")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ticks))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dropped))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rooms))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.displays.WithLabelValues("sse")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNopRegistersIndependently(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Tick()
		Nop().Tick()
	})
}
