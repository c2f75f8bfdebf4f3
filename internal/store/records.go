package store

import (
	"fmt"

	"github.com/sohta-m/forge/internal/model"
)

// UserProfile returns the stored profile, or nil if onboarding never ran.
func (s *RecordStore) UserProfile() (*model.UserProfile, error) {
	var p model.UserProfile
	ok, err := s.Get(model.KeyUserProfile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// SetUserProfile stores the profile.
func (s *RecordStore) SetUserProfile(p model.UserProfile) error {
	return s.Set(model.KeyUserProfile, p)
}

// CurrentGoal returns the persisted current goal, or nil if none is set.
// Goals persisted before tags existed are backfilled with the general tag.
func (s *RecordStore) CurrentGoal() (*model.Goal, error) {
	var g model.Goal
	ok, err := s.Get(model.KeyCurrentGoal, &g)
	if err != nil || !ok {
		return nil, err
	}
	if !g.Tag.Valid() {
		g.Tag = model.TagGeneral
	}
	return &g, nil
}

// SetCurrentGoal stores g as the current goal.
func (s *RecordStore) SetCurrentGoal(g model.Goal) error {
	return s.Set(model.KeyCurrentGoal, g)
}

// ClearCurrentGoal removes the current goal record.
func (s *RecordStore) ClearCurrentGoal() error {
	return s.Remove(model.KeyCurrentGoal)
}

// Stats returns the stored stats, or defaults if none exist yet.
// Stats persisted before tag counting existed get zeroed tag counters.
func (s *RecordStore) Stats() (model.Stats, error) {
	var st model.Stats
	ok, err := s.Get(model.KeyStats, &st)
	if err != nil {
		return model.DefaultStats(), err
	}
	if !ok {
		return model.DefaultStats(), nil
	}
	if st.TagCounts == nil {
		st.TagCounts = model.DefaultStats().TagCounts
	}
	return st, nil
}

// SetStats stores the stats record.
func (s *RecordStore) SetStats(st model.Stats) error {
	return s.Set(model.KeyStats, st)
}

// AppState returns the stored app state, or first-launch defaults.
func (s *RecordStore) AppState() (model.AppState, error) {
	var a model.AppState
	ok, err := s.Get(model.KeyAppState, &a)
	if err != nil || !ok {
		return model.DefaultAppState(), err
	}
	return a, nil
}

// SetAppState stores the app state record.
func (s *RecordStore) SetAppState(a model.AppState) error {
	return s.Set(model.KeyAppState, a)
}

// DailyRecords returns the archival history, oldest first.
func (s *RecordStore) DailyRecords() ([]model.DailyRecord, error) {
	var records []model.DailyRecord
	if _, err := s.Get(model.KeyDailyRecords, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AddDailyRecord appends r to the history. An existing record for the same
// date is replaced so each day archives at most once.
func (s *RecordStore) AddDailyRecord(r model.DailyRecord) error {
	records, err := s.DailyRecords()
	if err != nil {
		return fmt.Errorf("load daily records: %w", err)
	}
	filtered := records[:0]
	for _, existing := range records {
		if existing.Date != r.Date {
			filtered = append(filtered, existing)
		}
	}
	filtered = append(filtered, r)
	return s.Set(model.KeyDailyRecords, filtered)
}

// ResetAll removes every record. Development and settings-reset only.
func (s *RecordStore) ResetAll() error {
	return s.MultiRemove(model.AllKeys...)
}
