// Package notify decides the content of the three daily notifications from
// goal and streak state. Delivery, permissions and OS scheduling are the
// platform shell's problem, not this package's.
package notify

import (
	"fmt"

	"github.com/sohta-m/forge/internal/content"
)

// Daily notification times.
const (
	MorningHour     = 10
	MorningMinute   = 30
	AfternoonHour   = 14
	AfternoonMinute = 30
	EveningHour     = 20
	EveningMinute   = 30
)

// Evening streak milestones that get templated copy instead of a random
// congratulation. A 3 day streak is special-cased separately.
var streakMilestones = map[int]bool{
	7: true, 14: true, 21: true, 35: true, 60: true, 90: true,
	120: true, 180: true, 240: true, 300: true, 365: true,
}

// Notification is one scheduled message.
type Notification struct {
	Title  string
	Body   string
	Hour   int
	Minute int
}

// DayState is the tuple the planner reads to decide content.
type DayState struct {
	HasGoalSet           bool
	IsCompleted          bool
	CurrentStreak        int
	DayOfYear            int
	NotificationsEnabled bool
}

// Planner builds notification content from a content library.
type Planner struct {
	lib *content.Library
}

// NewPlanner creates a Planner over lib.
func NewPlanner(lib *content.Library) *Planner {
	return &Planner{lib: lib}
}

// Plan returns the notifications for the day, or nothing when the user has
// them disabled.
func (p *Planner) Plan(state DayState) []Notification {
	if !state.NotificationsEnabled {
		return nil
	}
	var plan []Notification
	if morning := p.Morning(state.DayOfYear, state.HasGoalSet); morning != nil {
		plan = append(plan, *morning)
	}
	plan = append(plan, p.Afternoon(), p.Evening(state.HasGoalSet, state.IsCompleted, state.CurrentStreak))
	return plan
}

// Morning returns the 10:30 reminder: the MOTD plus a prompt to set a goal.
// Once a goal is set there is nothing to remind, so it returns nil.
func (p *Planner) Morning(dayOfYear int, hasGoalSet bool) *Notification {
	if hasGoalSet {
		return nil
	}
	return &Notification{
		Title:  p.lib.MOTDForDayOfYear(dayOfYear),
		Body:   "What's your one goal for today?",
		Hour:   MorningHour,
		Minute: MorningMinute,
	}
}

// Afternoon returns the 14:30 reinforcement: a random affirmation.
func (p *Planner) Afternoon() Notification {
	return Notification{
		Title:  "Keep going",
		Body:   p.lib.RandomMiddayAffirmation(),
		Hour:   AfternoonHour,
		Minute: AfternoonMinute,
	}
}

// Evening returns the 20:30 contextual message. An incomplete day nudges
// harder once a week-long streak is on the line; a completed day celebrates
// milestones with templated copy and everything else with a random
// congratulation.
func (p *Planner) Evening(hasGoalSet, isCompleted bool, currentStreak int) Notification {
	n := Notification{Hour: EveningHour, Minute: EveningMinute}

	if !isCompleted {
		switch {
		case hasGoalSet && currentStreak >= 7:
			n.Title = "Protect your streak"
			n.Body = fmt.Sprintf("Your %d day streak is on the line. Finish your goal before midnight.", currentStreak)
		case hasGoalSet:
			n.Title = "Still time today"
			n.Body = "Don't forget to complete your goal before midnight."
		case currentStreak >= 7:
			n.Title = "Day almost over"
			n.Body = fmt.Sprintf("Set a quick goal to keep your %d day streak alive.", currentStreak)
		default:
			n.Title = "Day almost over"
			n.Body = "There's still time to set and complete a quick goal."
		}
		return n
	}

	switch {
	case currentStreak == 3:
		n.Title = "3 day streak!"
		n.Body = "Three days in a row. You're building a real habit."
	case streakMilestones[currentStreak]:
		n.Title = fmt.Sprintf("%d day streak!", currentStreak)
		n.Body = fmt.Sprintf("You've hit a %d day milestone. Great work today.", currentStreak)
	default:
		n.Title = "Goal complete"
		n.Body = p.lib.RandomEveningCongratulation()
	}
	return n
}
