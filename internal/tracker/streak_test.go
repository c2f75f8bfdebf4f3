package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohta-m/forge/internal/model"
)

func seedStats(t *testing.T, tr *Tracker) model.Stats {
	t.Helper()
	stats := model.Stats{
		CurrentStreak:     2,
		LongestStreak:     5,
		TotalCompleted:    10,
		LastCompletedDate: "2024-01-10",
		TagCounts:         model.DefaultStats().TagCounts,
	}
	require.NoError(t, tr.store.SetStats(stats))
	return stats
}

func TestRecordCompletionConsecutiveDay(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(11, 19))
	seedStats(t, tr)

	require.True(t, tr.RecordCompletion())

	stats := tr.Stats()
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 5, stats.LongestStreak)
	assert.Equal(t, 11, stats.TotalCompleted)
	assert.Equal(t, "2024-01-11", stats.LastCompletedDate)
}

func TestRecordCompletionAfterGap(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(15, 19))
	seedStats(t, tr)

	require.True(t, tr.RecordCompletion())

	stats := tr.Stats()
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 5, stats.LongestStreak)
	assert.Equal(t, 11, stats.TotalCompleted)
	assert.Equal(t, "2024-01-15", stats.LastCompletedDate)
}

func TestRecordCompletionFirstEver(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(11, 19))

	require.True(t, tr.RecordCompletion())

	stats := tr.Stats()
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.LongestStreak)
	assert.Equal(t, 1, stats.TotalCompleted)
}

func TestRecordCompletionSameDayIsNoOp(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(11, 19))

	require.True(t, tr.RecordCompletion())
	require.True(t, tr.RecordCompletion())

	stats := tr.Stats()
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.TotalCompleted)
}

func TestRecordCompletionExtendsLongest(t *testing.T) {
	tr, _, now := newTestTracker(t, jan(11, 19))

	require.NoError(t, tr.store.SetStats(model.Stats{
		CurrentStreak:     5,
		LongestStreak:     5,
		TotalCompleted:    5,
		LastCompletedDate: "2024-01-10",
		TagCounts:         model.DefaultStats().TagCounts,
	}))

	require.True(t, tr.RecordCompletion())
	assert.Equal(t, 6, tr.Stats().LongestStreak)

	*now = jan(12, 19)
	require.True(t, tr.RecordCompletion())
	assert.Equal(t, 7, tr.Stats().LongestStreak)
}

func TestRevertCompletion(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(11, 19))
	seedStats(t, tr)

	require.True(t, tr.RecordCompletion())
	require.True(t, tr.RevertCompletion())

	// Lossy by design: the streak that was running before today is gone.
	stats := tr.Stats()
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 5, stats.LongestStreak, "longest streak untouched")
	assert.Equal(t, 10, stats.TotalCompleted)
	assert.Empty(t, stats.LastCompletedDate)
}

func TestRevertCompletionRequiresTodaysCompletion(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(11, 19))

	assert.False(t, tr.RevertCompletion(), "nothing ever completed")

	seedStats(t, tr) // last completion was 2024-01-10, not today
	assert.False(t, tr.RevertCompletion())
	assert.Equal(t, 2, tr.Stats().CurrentStreak)
}

func TestRevertCompletionClampsAtZero(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(11, 19))

	require.NoError(t, tr.store.SetStats(model.Stats{
		CurrentStreak:     0,
		LongestStreak:     3,
		TotalCompleted:    0,
		LastCompletedDate: "2024-01-11",
		TagCounts:         model.DefaultStats().TagCounts,
	}))

	require.True(t, tr.RevertCompletion())
	stats := tr.Stats()
	assert.Zero(t, stats.CurrentStreak)
	assert.Zero(t, stats.TotalCompleted)
}

func TestCompletionRate(t *testing.T) {
	tr, s, _ := newTestTracker(t, jan(11, 19))

	assert.Zero(t, tr.CompletionRate(), "no history yet")

	require.NoError(t, s.AddDailyRecord(model.DailyRecord{Date: "2024-01-08", Completed: true}))
	require.NoError(t, s.AddDailyRecord(model.DailyRecord{Date: "2024-01-09", Completed: false}))
	require.NoError(t, s.AddDailyRecord(model.DailyRecord{Date: "2024-01-10", Completed: true}))

	assert.Equal(t, 66, tr.CompletionRate())
}
