package tracker

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohta-m/forge/internal/model"
	"github.com/sohta-m/forge/internal/store"
)

// newTestTracker returns a tracker over a throwaway store with a controllable
// clock. Mutate *now to move time.
func newTestTracker(t *testing.T, start time.Time) (*Tracker, *store.RecordStore, *time.Time) {
	t.Helper()
	s, err := store.NewRecordStore(filepath.Join(t.TempDir(), "forge.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	now := start
	tr := NewWithClock(s, func() time.Time { return now })
	return tr, s, &now
}

func jan(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.Local)
}

func TestSetGoal(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(10, 9))

	require.True(t, tr.SetGoal("  Finish the draft  ", model.TagWorkSchool))

	goal := tr.CurrentGoal()
	require.NotNil(t, goal)
	assert.Equal(t, "Finish the draft", goal.Text)
	assert.Equal(t, "2024-01-10", goal.Date)
	assert.Equal(t, model.StatusInProgress, goal.Status)
	assert.Equal(t, model.TagWorkSchool, goal.Tag)
	assert.Empty(t, goal.Details)
	assert.NotEmpty(t, goal.ID)
	assert.Nil(t, goal.CompletedAt)
}

func TestSetGoalValidation(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(10, 9))

	assert.False(t, tr.SetGoal("", model.TagGeneral))
	assert.False(t, tr.SetGoal("   ", model.TagGeneral))
	assert.False(t, tr.SetGoal(strings.Repeat("x", model.MaxGoalTextLen+1), model.TagGeneral))
	assert.Nil(t, tr.CurrentGoal())
}

func TestSetGoalRejectsSecondGoal(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(10, 9))

	require.True(t, tr.SetGoal("First", model.TagGeneral))
	assert.False(t, tr.SetGoal("Second", model.TagGeneral))
	assert.Equal(t, "First", tr.CurrentGoal().Text)
}

func TestSetGoalUnknownTagFallsBackToGeneral(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(10, 9))

	require.True(t, tr.SetGoal("Goal", model.GoalTag("sports")))
	assert.Equal(t, model.TagGeneral, tr.CurrentGoal().Tag)
}

func TestUpdateTag(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(10, 9))

	assert.False(t, tr.UpdateTag(model.TagPersonalHealth), "no goal yet")

	require.True(t, tr.SetGoal("Run 5k", model.TagGeneral))
	require.True(t, tr.UpdateTag(model.TagPersonalHealth))
	assert.Equal(t, model.TagPersonalHealth, tr.CurrentGoal().Tag)

	assert.False(t, tr.UpdateTag(model.GoalTag("sports")), "unknown tag")

	require.True(t, tr.MarkComplete())
	assert.False(t, tr.UpdateTag(model.TagGeneral), "tag frozen once completed")
}

func TestAddDetail(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(10, 9))

	assert.False(t, tr.AddDetail("note"), "no goal yet")

	require.True(t, tr.SetGoal("Run 5k", model.TagGeneral))
	assert.False(t, tr.AddDetail("   "))
	assert.False(t, tr.AddDetail(strings.Repeat("x", model.MaxDetailTextLen+1)))

	require.True(t, tr.AddDetail("first note"))
	require.True(t, tr.AddDetail("  second note  "))

	goal := tr.CurrentGoal()
	require.Len(t, goal.Details, 2)
	assert.Equal(t, "first note", goal.Details[0].Text)
	assert.Equal(t, "second note", goal.Details[1].Text)
	assert.NotEqual(t, goal.Details[0].ID, goal.Details[1].ID)

	require.True(t, tr.MarkComplete())
	assert.False(t, tr.AddDetail("too late"), "details frozen once completed")
	assert.Len(t, tr.CurrentGoal().Details, 2)
}

func TestMarkCompleteAndRevert(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(10, 9))

	assert.False(t, tr.MarkComplete(), "no goal yet")

	require.True(t, tr.SetGoal("Run 5k", model.TagGeneral))
	assert.False(t, tr.MarkNotComplete(), "not completed yet")

	require.True(t, tr.MarkComplete())
	goal := tr.CurrentGoal()
	assert.Equal(t, model.StatusCompleted, goal.Status)
	require.NotNil(t, goal.CompletedAt)

	assert.False(t, tr.MarkComplete(), "already completed")

	require.True(t, tr.MarkNotComplete())
	goal = tr.CurrentGoal()
	assert.Equal(t, model.StatusInProgress, goal.Status)
	assert.Nil(t, goal.CompletedAt)
}

func TestCurrentGoalTreatsStaleAsAbsent(t *testing.T) {
	tr, s, now := newTestTracker(t, jan(10, 9))

	require.True(t, tr.SetGoal("Yesterday's goal", model.TagGeneral))

	*now = jan(11, 9)
	assert.Nil(t, tr.CurrentGoal())

	// The stale goal is still persisted; only CheckRollover clears it.
	persisted, err := s.CurrentGoal()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "2024-01-10", persisted.Date)
}

func TestCheckRollover(t *testing.T) {
	tr, s, now := newTestTracker(t, jan(10, 9))

	require.NoError(t, s.SetAppState(model.AppState{
		IsOnboardingComplete: true,
		LastOpenedDate:       "2024-01-10",
		NotificationsEnabled: true,
	}))
	require.True(t, tr.SetGoal("Ship the feature", model.TagWorkSchool))

	*now = jan(11, 8)
	assert.True(t, tr.CheckRollover())

	records, err := s.DailyRecords()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-01-10", records[0].Date)
	assert.False(t, records[0].Completed)
	require.NotNil(t, records[0].Goal)
	assert.Equal(t, "Ship the feature", records[0].Goal.Text)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TagCounts[model.TagWorkSchool])

	goal, err := s.CurrentGoal()
	require.NoError(t, err)
	assert.Nil(t, goal, "current goal cleared")

	appState, err := s.AppState()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-11", appState.LastOpenedDate)

	// Second call the same day is a no-op.
	assert.False(t, tr.CheckRollover())
	records, err = s.DailyRecords()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCheckRolloverFirstLaunch(t *testing.T) {
	tr, _, _ := newTestTracker(t, jan(10, 9))

	// No lastOpenedDate persisted yet: first ever launch, no rollover.
	assert.False(t, tr.CheckRollover())
}

func TestCheckRolloverWithoutGoal(t *testing.T) {
	tr, s, now := newTestTracker(t, jan(10, 9))

	require.NoError(t, s.SetAppState(model.AppState{LastOpenedDate: "2024-01-10", NotificationsEnabled: true}))

	*now = jan(12, 9)
	assert.True(t, tr.CheckRollover(), "rollover still advances the marker")

	records, err := s.DailyRecords()
	require.NoError(t, err)
	assert.Empty(t, records)

	appState, err := s.AppState()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-12", appState.LastOpenedDate)
}

func TestCheckRolloverUntaggedGoalCountsAsGeneral(t *testing.T) {
	tr, s, now := newTestTracker(t, jan(10, 9))

	require.NoError(t, s.SetAppState(model.AppState{LastOpenedDate: "2024-01-10", NotificationsEnabled: true}))
	// Persisted by a build that predates tags.
	require.NoError(t, s.Set(model.KeyCurrentGoal, map[string]any{
		"id":        "legacy",
		"text":      "Old build goal",
		"date":      "2024-01-10",
		"status":    "completed",
		"details":   []any{},
		"createdAt": "2024-01-10T08:00:00Z",
	}))

	*now = jan(11, 9)
	require.True(t, tr.CheckRollover())

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TagCounts[model.TagGeneral])

	records, err := s.DailyRecords()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Completed)
}
