package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProm_Observe(t *testing.T) {
	p, err := NewProm()
	require.NoError(t, err)

	p.ObserveSearch("solo", 120, 40, 3*time.Millisecond)
	p.ObserveSearch("solo", 10, 5, time.Millisecond)
	p.ObserveAnswer("solo", 1651)

	assert.Equal(t, 130.0, testutil.ToFloat64(p.states.WithLabelValues("solo")))
	assert.Equal(t, 45.0, testutil.ToFloat64(p.terminals.WithLabelValues("solo")))
	assert.Equal(t, 1651.0, testutil.ToFloat64(p.answer.WithLabelValues("solo")))
	assert.Equal(t, 1, testutil.CollectAndCount(p.duration))
}

func TestProm_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewPromWithRegistry(reg, reg)
	require.NoError(t, err)
	b, err := NewPromWithRegistry(reg, reg)
	require.NoError(t, err)

	a.ObserveAnswer("pair", 7)
	assert.Equal(t, 7.0, testutil.ToFloat64(b.answer.WithLabelValues("pair")))
}

func TestProm_WriteTextfile(t *testing.T) {
	p, err := NewProm()
	require.NoError(t, err)
	p.ObserveAnswer("pair", 1707)

	path := filepath.Join(t.TempDir(), "volcanium.prom")
	require.NoError(t, p.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `volcanium_answer_pressure{mode="pair"} 1707`))

	assert.Error(t, p.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	r.ObserveSearch("solo", 1, 1, time.Second)
	r.ObserveAnswer("solo", 1)
}
