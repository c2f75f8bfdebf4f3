package tracker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sohta-m/forge/internal/dateutil"
	"github.com/sohta-m/forge/internal/logging"
	"github.com/sohta-m/forge/internal/model"
)

// CurrentGoal returns today's goal, or nil if none is set. A persisted goal
// from a previous day is treated as absent; it stays in the store until
// CheckRollover archives it.
func (t *Tracker) CurrentGoal() *model.Goal {
	goal, err := t.store.CurrentGoal()
	if err != nil {
		logging.Error("goal", "load current goal: %v", err)
		return nil
	}
	if goal == nil || !dateutil.IsToday(goal.Date, t.now()) {
		return nil
	}
	return goal
}

// SetGoal creates today's goal. It fails if the trimmed text is empty or too
// long, or if a goal for today already exists. Unknown tags fall back to
// general.
func (t *Tracker) SetGoal(text string, tag model.GoalTag) bool {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > model.MaxGoalTextLen {
		return false
	}
	if t.CurrentGoal() != nil {
		return false
	}
	if !tag.Valid() {
		tag = model.TagGeneral
	}

	now := t.now()
	goal := model.Goal{
		ID:        uuid.NewString(),
		Text:      text,
		Date:      dateutil.LocalDate(now),
		Status:    model.StatusInProgress,
		Tag:       tag,
		Details:   []model.GoalDetail{},
		CreatedAt: now,
	}
	if err := t.store.SetCurrentGoal(goal); err != nil {
		logging.Error("goal", "set goal: %v", err)
		return false
	}
	return true
}

// UpdateTag changes the current goal's tag. Only allowed while the goal is
// in progress and belongs to today.
func (t *Tracker) UpdateTag(tag model.GoalTag) bool {
	goal := t.CurrentGoal()
	if goal == nil || goal.IsCompleted() || !tag.Valid() {
		return false
	}
	goal.Tag = tag
	if err := t.store.SetCurrentGoal(*goal); err != nil {
		logging.Error("goal", "update tag: %v", err)
		return false
	}
	return true
}

// AddDetail appends a note to the current goal. Details are append-only and
// frozen once the goal is completed.
func (t *Tracker) AddDetail(text string) bool {
	goal := t.CurrentGoal()
	if goal == nil || goal.IsCompleted() {
		return false
	}
	text = strings.TrimSpace(text)
	if text == "" || len(text) > model.MaxDetailTextLen {
		return false
	}
	goal.Details = append(goal.Details, model.GoalDetail{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: t.now(),
	})
	if err := t.store.SetCurrentGoal(*goal); err != nil {
		logging.Error("goal", "add detail: %v", err)
		return false
	}
	return true
}

// MarkComplete completes the current goal. The caller is expected to follow
// up with RecordCompletion.
func (t *Tracker) MarkComplete() bool {
	goal := t.CurrentGoal()
	if goal == nil || goal.IsCompleted() {
		return false
	}
	completedAt := t.now()
	goal.Status = model.StatusCompleted
	goal.CompletedAt = &completedAt
	if err := t.store.SetCurrentGoal(*goal); err != nil {
		logging.Error("goal", "mark complete: %v", err)
		return false
	}
	return true
}

// MarkNotComplete reverts a completed goal to in progress. The caller is
// expected to follow up with RevertCompletion.
func (t *Tracker) MarkNotComplete() bool {
	goal := t.CurrentGoal()
	if goal == nil || !goal.IsCompleted() {
		return false
	}
	goal.Status = model.StatusInProgress
	goal.CompletedAt = nil
	if err := t.store.SetCurrentGoal(*goal); err != nil {
		logging.Error("goal", "mark not complete: %v", err)
		return false
	}
	return true
}

// CheckRollover archives yesterday's goal when a day boundary has passed
// since the app was last opened: the goal becomes a DailyRecord keyed by its
// own date, its tag counter increments, and the current goal clears. The
// last-opened date then advances to today, which makes a second call on the
// same day a no-op. Returns whether a rollover occurred.
func (t *Tracker) CheckRollover() bool {
	appState, err := t.store.AppState()
	if err != nil {
		logging.Error("goal", "load app state: %v", err)
		return false
	}

	now := t.now()
	if !dateutil.HasRolledOver(appState.LastOpenedDate, now) {
		return false
	}

	goal, err := t.store.CurrentGoal()
	if err != nil {
		logging.Error("goal", "load current goal: %v", err)
		return false
	}

	if goal != nil && !dateutil.IsToday(goal.Date, now) {
		t.archive(*goal)
	}

	appState.LastOpenedDate = dateutil.LocalDate(now)
	if err := t.store.SetAppState(appState); err != nil {
		logging.Error("goal", "update last opened date: %v", err)
	}
	return true
}

// archive writes the rolled-over goal into the daily history and bumps its
// tag counter. The writes are independent; a crash between them can leave
// partial state, which the next rollover tolerates.
func (t *Tracker) archive(goal model.Goal) {
	record := model.DailyRecord{
		Date:      goal.Date,
		Goal:      &goal,
		Completed: goal.IsCompleted(),
	}
	if err := t.store.AddDailyRecord(record); err != nil {
		logging.Error("goal", "archive daily record: %v", err)
		return
	}

	stats, err := t.store.Stats()
	if err != nil {
		logging.Error("goal", "load stats: %v", err)
		return
	}
	tag := goal.Tag
	if !tag.Valid() {
		tag = model.TagGeneral
	}
	stats.TagCounts[tag]++
	if err := t.store.SetStats(stats); err != nil {
		logging.Error("goal", "update tag counts: %v", err)
	}

	if err := t.store.ClearCurrentGoal(); err != nil {
		logging.Error("goal", "clear current goal: %v", err)
	}
	logging.Info("goal", "rolled over %s (completed=%t)", goal.Date, record.Completed)
}
