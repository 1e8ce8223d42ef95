package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacesearch/gridspace"
	"github.com/katalvlaran/spacesearch/metrics"
	"github.com/katalvlaran/spacesearch/search"
	"github.com/katalvlaran/spacesearch/unguided"
)

func TestHook_CountsDriverEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	pl := gridspace.NewPlane(gridspace.Point{X: 2, Y: 2}, gridspace.Conn4)
	m := unguided.NewHashableRoute[gridspace.Point](pl, gridspace.Point{})
	s, err := m.Searcher(search.WithHook(c.Hook("bfs")))
	require.NoError(t, err)

	path, ok := s.Next()
	require.True(t, ok)
	c.ObservePath("bfs", len(path))

	samples, err := metrics.Snapshot(reg)
	require.NoError(t, err)
	got := map[string]float64{}
	for _, smp := range samples {
		got[smp.Name+"{"+smp.Labels+"}"] = smp.Value
	}

	st := s.Stats()
	assert.Equal(t, float64(st.Popped), got[`spacesearch_events_total{event="pop",strategy="bfs"}`])
	assert.Equal(t, float64(st.Expanded), got[`spacesearch_events_total{event="expand",strategy="bfs"}`])
	assert.Equal(t, float64(st.Admitted), got[`spacesearch_events_total{event="admit",strategy="bfs"}`])
	assert.Equal(t, float64(st.Rejected), got[`spacesearch_events_total{event="reject",strategy="bfs"}`])
	assert.Equal(t, 1.0, got[`spacesearch_events_total{event="solve",strategy="bfs"}`])
	assert.Zero(t, got[`spacesearch_events_total{event="exhaust",strategy="bfs"}`])
	assert.Equal(t, 1.0, got[`spacesearch_path_length_count{strategy="bfs"}`])
	assert.Equal(t, 5.0, got[`spacesearch_path_length_sum{strategy="bfs"}`])
}

func TestHook_SeparatesStrategies(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	a, b := c.Hook("astar"), c.Hook("dfs")
	a(search.EventPop)
	a(search.EventPop)
	b(search.EventPop)
	b(search.Event(42))

	// six pre-created events per strategy plus the unknown one
	assert.Equal(t, 13, testutil.CollectAndCount(reg, "spacesearch_events_total"))

	samples, err := metrics.Snapshot(reg)
	require.NoError(t, err)
	want := metrics.Sample{Name: "spacesearch_events_total", Labels: `event="pop",strategy="astar"`, Value: 2}
	assert.Contains(t, samples, want)
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	_, err = metrics.NewCollector(reg)
	assert.Error(t, err)
}

func TestSetCost(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	c.SetCost("astar", 12)
	samples, err := metrics.Snapshot(reg)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, `spacesearch_last_cost{strategy="astar"} 12`, samples[0].String())
}

func TestSample_String(t *testing.T) {
	assert.Equal(t, "up 1", metrics.Sample{Name: "up", Value: 1}.String())
}
