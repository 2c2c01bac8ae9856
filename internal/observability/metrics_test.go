package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/teams", "GET", 200, 2*time.Millisecond)
	m.RecordRequest("/teams", "GET", 200, 4*time.Millisecond)
	m.RecordError("/teams/:team_id", "GET", "NOT_FOUND")

	snap := m.Snapshot()
	require.Equal(t, int64(2), snap.Requests["/teams|GET|200"])
	require.InDelta(t, 3.0, snap.AvgDurationMillis["/teams|GET|200"], 0.001)
	require.Equal(t, int64(1), snap.Errors["/teams/:team_id|GET|NOT_FOUND"])
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	require.Empty(t, m.Snapshot().Requests)
}
