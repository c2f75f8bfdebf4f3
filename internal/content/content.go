// Package content selects the app's motivational copy: a deterministic
// message of the day keyed by day of year, and random midday/evening picks.
package content

import (
	"math/rand"
	"time"
)

// Default message-of-the-day list. Selection cycles by day of year.
var defaultMOTD = []string{
	"One clear goal is enough for today.",
	"Focus beats busy. Pick the one thing.",
	"Progress starts with choosing.",
	"Small effort. Real momentum.",
	"Today only asks for one win.",
	"Clarity creates action.",
	"Decide once. Then follow through.",
	"One goal. One direction.",
	"You don't need more time—just focus.",
	"Make today count in a simple way.",
	"Finish one thing well.",
	"A single step forward still moves you ahead.",
	"Focus is a decision, not a feeling.",
	"What matters today is manageable.",
	"Choose the goal that makes the rest quieter.",
	"Completion beats perfection.",
	"Start small. End strong.",
	"One goal done is a good day.",
	"Momentum comes from finishing.",
	"Keep it simple. Do the work.",
}

// Default midday affirmations. Selection is random, unlike the MOTD.
var defaultMiddayAffirmations = []string{
	"You're doing better than you think.",
	"What you've done today already counts.",
	"You can reset and keep going.",
	"One focused step is enough right now.",
	"You don't need to rush to make progress.",
	"You're still in control of today.",
	"Small effort is still forward motion.",
	"You can finish the day strong.",
	"Your focus matters more than perfection.",
	"You're closer than you were this morning.",
}

// Default evening congratulations, used when a completed day is not a
// streak milestone.
var defaultEveningCongratulations = []string{
	"Great work completing your goal today!",
	"You showed up and followed through — well done.",
	"Today counts because you did the work.",
	"Nice job finishing what you started.",
	"You made progress today — be proud of that.",
	"Another day, another win. Well done.",
	"You kept your focus and it paid off.",
	"You earned this sense of accomplishment.",
	"Strong finish — today's goal is complete.",
	"You did what you said you would. Great job.",
}

// Library holds the active content lists and the random source used for
// non-deterministic picks.
type Library struct {
	motd            []string
	affirmations    []string
	congratulations []string
	rng             *rand.Rand
}

// NewLibrary creates a Library with the default lists. Pass a nil rng to
// use a time-seeded source; tests inject a fixed seed.
func NewLibrary(rng *rand.Rand) *Library {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Library{
		motd:            defaultMOTD,
		affirmations:    defaultMiddayAffirmations,
		congratulations: defaultEveningCongratulations,
		rng:             rng,
	}
}

// MOTDForDayOfYear returns the message of the day for day n, cycling
// through the list with period len(list).
func (l *Library) MOTDForDayOfYear(n int) string {
	if n < 0 {
		n = 0
	}
	return l.motd[n%len(l.motd)]
}

// RandomMiddayAffirmation returns a uniformly random affirmation.
func (l *Library) RandomMiddayAffirmation() string {
	return l.affirmations[l.rng.Intn(len(l.affirmations))]
}

// RandomEveningCongratulation returns a uniformly random congratulation.
func (l *Library) RandomEveningCongratulation() string {
	return l.congratulations[l.rng.Intn(len(l.congratulations))]
}

// MOTDCount returns the length of the active MOTD list.
func (l *Library) MOTDCount() int {
	return len(l.motd)
}
