package model

import "time"

// GoalStatus is the lifecycle state of a Goal.
type GoalStatus string

const (
	StatusInProgress GoalStatus = "in_progress"
	StatusCompleted  GoalStatus = "completed"
)

// GoalTag categorizes a goal for aggregate counting.
type GoalTag string

const (
	TagGeneral        GoalTag = "general"
	TagPersonalHealth GoalTag = "personal_health"
	TagWorkSchool     GoalTag = "work_school"
)

// Tags lists all valid tags in display order.
var Tags = []GoalTag{TagGeneral, TagPersonalHealth, TagWorkSchool}

// Valid reports whether t is one of the known tags.
func (t GoalTag) Valid() bool {
	switch t {
	case TagGeneral, TagPersonalHealth, TagWorkSchool:
		return true
	}
	return false
}

// Text length limits enforced at the operation boundary.
const (
	MaxGoalTextLen   = 200
	MaxDetailTextLen = 500
	MaxNameLen       = 30
)

// GoalDetail is a single append-only note on a goal.
type GoalDetail struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Goal is the single active goal for a calendar day.
// Date is a YYYY-MM-DD string in the local timezone.
type Goal struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Date        string       `json:"date"`
	Status      GoalStatus   `json:"status"`
	Tag         GoalTag      `json:"tag,omitempty"`
	Details     []GoalDetail `json:"details"`
	CreatedAt   time.Time    `json:"createdAt"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
}

// IsCompleted reports whether the goal has been marked complete.
func (g Goal) IsCompleted() bool {
	return g.Status == StatusCompleted
}

// Stats holds streak and completion counters.
// LastCompletedDate is a YYYY-MM-DD string, empty if nothing was ever completed.
type Stats struct {
	CurrentStreak     int             `json:"currentStreak"`
	LongestStreak     int             `json:"longestStreak"`
	TotalCompleted    int             `json:"totalCompleted"`
	LastCompletedDate string          `json:"lastCompletedDate,omitempty"`
	TagCounts         map[GoalTag]int `json:"tagCounts"`
}

// DefaultStats returns zeroed stats with all tag counters present.
func DefaultStats() Stats {
	return Stats{
		TagCounts: map[GoalTag]int{
			TagGeneral:        0,
			TagPersonalHealth: 0,
			TagWorkSchool:     0,
		},
	}
}

// AppState holds onboarding status and the rollover marker.
type AppState struct {
	IsOnboardingComplete bool   `json:"isOnboardingComplete"`
	LastOpenedDate       string `json:"lastOpenedDate,omitempty"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

// DefaultAppState returns the first-launch state. Notifications default to on.
func DefaultAppState() AppState {
	return AppState{NotificationsEnabled: true}
}

// DailyRecord is the immutable archival snapshot of one rolled-over day.
type DailyRecord struct {
	Date      string `json:"date"`
	Goal      *Goal  `json:"goal"`
	Completed bool   `json:"completed"`
}

// UserProfile holds the user's display name.
type UserProfile struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Logical record keys used by the persistent store.
const (
	KeyUserProfile  = "user_profile"
	KeyCurrentGoal  = "current_goal"
	KeyStats        = "stats"
	KeyAppState     = "app_state"
	KeyDailyRecords = "daily_records"
)

// AllKeys lists every record key, used for full resets.
var AllKeys = []string{KeyUserProfile, KeyCurrentGoal, KeyStats, KeyAppState, KeyDailyRecords}
