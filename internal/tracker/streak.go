package tracker

import (
	"github.com/sohta-m/forge/internal/dateutil"
	"github.com/sohta-m/forge/internal/logging"
	"github.com/sohta-m/forge/internal/model"
)

// Stats returns the current streak counters.
func (t *Tracker) Stats() model.Stats {
	stats, err := t.store.Stats()
	if err != nil {
		logging.Error("streak", "load stats: %v", err)
	}
	return stats
}

// RecordCompletion updates the streak counters for a completion happening
// today. Completing twice on the same day changes nothing.
func (t *Tracker) RecordCompletion() bool {
	stats, err := t.store.Stats()
	if err != nil {
		logging.Error("streak", "load stats: %v", err)
		return false
	}

	today := dateutil.LocalDate(t.now())
	switch dateutil.CalculateStreakAction(stats.LastCompletedDate, today) {
	case dateutil.StreakContinue:
		return true
	case dateutil.StreakIncrement:
		stats.CurrentStreak++
		stats.LongestStreak = max(stats.LongestStreak, stats.CurrentStreak)
	case dateutil.StreakReset:
		stats.CurrentStreak = 1
		stats.LongestStreak = max(stats.LongestStreak, 1)
	}
	stats.TotalCompleted++
	stats.LastCompletedDate = today

	if err := t.store.SetStats(stats); err != nil {
		logging.Error("streak", "save stats: %v", err)
		return false
	}
	return true
}

// RevertCompletion undoes today's completion. It only applies when the last
// completion was today, and it is lossy: the streak decrements and the
// last-completed date clears, so a streak that was already running before
// today cannot be restored exactly. LongestStreak is left alone.
func (t *Tracker) RevertCompletion() bool {
	stats, err := t.store.Stats()
	if err != nil {
		logging.Error("streak", "load stats: %v", err)
		return false
	}

	today := dateutil.LocalDate(t.now())
	if stats.LastCompletedDate == "" || !dateutil.IsSameDay(stats.LastCompletedDate, today) {
		return false
	}

	stats.CurrentStreak = max(0, stats.CurrentStreak-1)
	stats.TotalCompleted = max(0, stats.TotalCompleted-1)
	stats.LastCompletedDate = ""

	if err := t.store.SetStats(stats); err != nil {
		logging.Error("streak", "save stats: %v", err)
		return false
	}
	return true
}

// CompletionRate returns the percentage of archived days whose goal was
// completed, or 0 before any day has rolled over.
func (t *Tracker) CompletionRate() int {
	records, err := t.store.DailyRecords()
	if err != nil {
		logging.Error("streak", "load daily records: %v", err)
		return 0
	}
	if len(records) == 0 {
		return 0
	}
	completed := 0
	for _, r := range records {
		if r.Completed {
			completed++
		}
	}
	return completed * 100 / len(records)
}
