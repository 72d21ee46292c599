package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }
func str(v string) *string { return &v }

func TestRecordEvictsOldestFirst(t *testing.T) {
	s := NewStore(3)
	for i := int64(1); i <= 5; i++ {
		s.RecordAt(float64(i), "svc1", true, i64(i), nil)
	}

	samples := s.Samples("svc1")
	require.Len(t, samples, 3)
	assert.Equal(t, 3.0, samples[0].Timestamp)
	assert.Equal(t, 5.0, samples[2].Timestamp)
	assert.Equal(t, int64(5), *samples[2].LatencyMS)
}

func TestUptimePct(t *testing.T) {
	t.Run("no samples", func(t *testing.T) {
		s := NewStore(60)
		assert.Equal(t, 0.0, s.UptimePct("missing"))
	})

	t.Run("full window up", func(t *testing.T) {
		s := NewStore(60)
		for i := 0; i < 60; i++ {
			s.Record("svc1", true, i64(4), nil)
		}
		assert.Equal(t, 100.0, s.UptimePct("svc1"))
	})

	t.Run("rounded to one decimal", func(t *testing.T) {
		s := NewStore(60)
		s.Record("svc1", true, i64(1), nil)
		s.Record("svc1", false, nil, str("boom"))
		s.Record("svc1", false, nil, str("boom"))
		assert.Equal(t, 33.3, s.UptimePct("svc1"))
	})

	t.Run("evicted samples no longer count", func(t *testing.T) {
		s := NewStore(2)
		s.Record("svc1", false, nil, str("down"))
		s.Record("svc1", true, i64(1), nil)
		s.Record("svc1", true, i64(1), nil)
		assert.Equal(t, 100.0, s.UptimePct("svc1"))
	})
}

// The last error is a latch: recovery does not clear it.
func TestLastErrorSurvivesRecovery(t *testing.T) {
	s := NewStore(60)
	s.Record("svc1", false, nil, str("connection refused"))
	s.Record("svc1", true, i64(2), nil)
	s.Record("svc1", true, i64(2), str(""))

	assert.Equal(t, "connection refused", s.LastError("svc1"))
	assert.Equal(t, "", s.LastError("svc2"))
}

func TestEmptyNameRecordedAsUnknown(t *testing.T) {
	s := NewStore(60)
	s.Record("", true, i64(1), nil)
	assert.Equal(t, []string{UnknownName}, s.Names())
}

func TestRecordUsesClock(t *testing.T) {
	fixed := time.Unix(1700000000, 500000000)
	s := NewStore(60, WithClock(func() time.Time { return fixed }))
	s.Record("svc1", true, i64(1), nil)

	latest, ok := s.Latest("svc1")
	require.True(t, ok)
	assert.InDelta(t, 1700000000.5, latest.Timestamp, 1e-6)
	assert.True(t, latest.IsUp())
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore(60)
	s.Record("b", false, nil, str("x"))
	s.Record("a", true, i64(3), nil)

	snap := s.Snapshot()
	*snap["a"][0].LatencyMS = 999
	snap["b"][0].Up = 1

	latest, _ := s.Latest("a")
	assert.Equal(t, int64(3), *latest.LatencyMS)
	assert.Equal(t, 0.0, s.UptimePct("b"))
	assert.Equal(t, []string{"a", "b"}, s.Names())
}

func TestWindowFloor(t *testing.T) {
	assert.Equal(t, 1, NewStore(0).Window())
}
