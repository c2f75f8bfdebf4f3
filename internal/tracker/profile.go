package tracker

import (
	"strings"

	"github.com/sohta-m/forge/internal/logging"
	"github.com/sohta-m/forge/internal/model"
)

// Profile returns the user profile, or nil before onboarding.
func (t *Tracker) Profile() *model.UserProfile {
	profile, err := t.store.UserProfile()
	if err != nil {
		logging.Error("profile", "load profile: %v", err)
		return nil
	}
	return profile
}

// UpdateName sets the user's display name, keeping the original creation
// time if a profile already exists.
func (t *Tracker) UpdateName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > model.MaxNameLen {
		return false
	}

	createdAt := t.now()
	if existing := t.Profile(); existing != nil {
		createdAt = existing.CreatedAt
	}

	if err := t.store.SetUserProfile(model.UserProfile{Name: name, CreatedAt: createdAt}); err != nil {
		logging.Error("profile", "save profile: %v", err)
		return false
	}
	return true
}
