package tracker

import (
	"github.com/sohta-m/forge/internal/dateutil"
	"github.com/sohta-m/forge/internal/logging"
	"github.com/sohta-m/forge/internal/model"
)

// AppState returns the onboarding/rollover/preferences record.
func (t *Tracker) AppState() model.AppState {
	appState, err := t.store.AppState()
	if err != nil {
		logging.Error("appstate", "load app state: %v", err)
	}
	return appState
}

// CompleteOnboarding stores the user's name and marks onboarding done,
// stamping today as the last opened date so the first real launch does not
// register as a rollover.
func (t *Tracker) CompleteOnboarding(name string) bool {
	if !t.UpdateName(name) {
		return false
	}
	appState, err := t.store.AppState()
	if err != nil {
		logging.Error("appstate", "load app state: %v", err)
		return false
	}
	appState.IsOnboardingComplete = true
	appState.LastOpenedDate = dateutil.LocalDate(t.now())
	if err := t.store.SetAppState(appState); err != nil {
		logging.Error("appstate", "save app state: %v", err)
		return false
	}
	return true
}

// SetNotificationsEnabled flips the notification preference.
func (t *Tracker) SetNotificationsEnabled(enabled bool) bool {
	appState, err := t.store.AppState()
	if err != nil {
		logging.Error("appstate", "load app state: %v", err)
		return false
	}
	appState.NotificationsEnabled = enabled
	if err := t.store.SetAppState(appState); err != nil {
		logging.Error("appstate", "save app state: %v", err)
		return false
	}
	return true
}

// ResetAll wipes every stored record, returning the app to first launch.
func (t *Tracker) ResetAll() bool {
	if err := t.store.ResetAll(); err != nil {
		logging.Error("appstate", "reset all: %v", err)
		return false
	}
	logging.Info("appstate", "all data cleared")
	return true
}

// DailyRecords returns the archived history, newest first.
func (t *Tracker) DailyRecords() []model.DailyRecord {
	records, err := t.store.DailyRecords()
	if err != nil {
		logging.Error("appstate", "load daily records: %v", err)
		return nil
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records
}
