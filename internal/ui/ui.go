package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sohta-m/forge/internal/content"
	"github.com/sohta-m/forge/internal/dateutil"
	"github.com/sohta-m/forge/internal/model"
	"github.com/sohta-m/forge/internal/notify"
	"github.com/sohta-m/forge/internal/tracker"
)

type appState int

const (
	stateToday appState = iota
	stateOnboarding
	stateGoalInput
	stateDetailInput
	stateTagSelect
	stateStats
	stateHistory
	stateSettings
	stateNameInput
	stateConfirmReset
)

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	motdStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	confirmStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	streakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	goalCardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241"))
)

var tagColors = map[model.GoalTag]string{
	model.TagGeneral:        "39",
	model.TagPersonalHealth: "148",
	model.TagWorkSchool:     "205",
}

// Model is the top-level BubbleTea model for the forge TUI.
type Model struct {
	state   appState
	tracker *tracker.Tracker
	lib     *content.Library
	planner *notify.Planner

	goal    *model.Goal
	stats   model.Stats
	profile *model.UserProfile
	app     model.AppState
	rate    int

	input       textinput.Model
	nameInput   textinput.Model
	detailInput textarea.Model
	history     list.Model

	tagCursor      int
	settingsCursor int
	status         string
	width          int
	height         int
	now            func() time.Time
}

type dataLoadedMsg struct {
	goal    *model.Goal
	stats   model.Stats
	profile *model.UserProfile
	app     model.AppState
	rate    int
}

type historyLoadedMsg []model.DailyRecord

// NewModel creates a new TUI model.
func NewModel(t *tracker.Tracker, lib *content.Library) Model {
	ti := textinput.New()
	ti.Placeholder = "Today's one goal..."
	ti.CharLimit = model.MaxGoalTextLen

	ni := textinput.New()
	ni.Placeholder = "Your name..."
	ni.CharLimit = model.MaxNameLen

	ta := textarea.New()
	ta.Placeholder = "Add a note..."
	ta.CharLimit = model.MaxDetailTextLen

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	l := list.New(nil, delegate, 0, 0)
	l.Title = "History"
	l.Styles.Title = titleStyle
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("day", "days")

	return Model{
		state:       stateToday,
		tracker:     t,
		lib:         lib,
		planner:     notify.NewPlanner(lib),
		stats:       model.DefaultStats(),
		app:         model.DefaultAppState(),
		input:       ti,
		nameInput:   ni,
		detailInput: ta,
		history:     l,
		now:         time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadData
}

// loadData runs the rollover check first, then reloads every record.
// Mirrors the app-foreground sequence: rollover, then fresh truth.
func (m Model) loadData() tea.Msg {
	m.tracker.CheckRollover()
	return dataLoadedMsg{
		goal:    m.tracker.CurrentGoal(),
		stats:   m.tracker.Stats(),
		profile: m.tracker.Profile(),
		app:     m.tracker.AppState(),
		rate:    m.tracker.CompletionRate(),
	}
}

func (m Model) loadHistory() tea.Msg {
	return historyLoadedMsg(m.tracker.DailyRecords())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		m.history.SetSize(msg.Width-h, msg.Height-v)
		m.detailInput.SetWidth(msg.Width - h - 4)
		m.detailInput.SetHeight(5)
		return m, nil

	case dataLoadedMsg:
		m.goal = msg.goal
		m.stats = msg.stats
		m.profile = msg.profile
		m.app = msg.app
		m.rate = msg.rate
		if m.profile == nil || !m.app.IsOnboardingComplete {
			m.state = stateOnboarding
			m.nameInput.Reset()
			return m, m.nameInput.Focus()
		}
		return m, nil

	case historyLoadedMsg:
		items := make([]list.Item, len(msg))
		for i, r := range msg {
			items[i] = recordItem{Record: r}
		}
		m.history.SetItems(items)
		return m, nil
	}

	switch m.state {
	case stateToday:
		return m.updateToday(msg)
	case stateOnboarding:
		return m.updateOnboarding(msg)
	case stateGoalInput:
		return m.updateGoalInput(msg)
	case stateDetailInput:
		return m.updateDetailInput(msg)
	case stateTagSelect:
		return m.updateTagSelect(msg)
	case stateStats:
		return m.updateStats(msg)
	case stateHistory:
		return m.updateHistory(msg)
	case stateSettings:
		return m.updateSettings(msg)
	case stateNameInput:
		return m.updateNameInput(msg)
	case stateConfirmReset:
		return m.updateConfirmReset(msg)
	}

	return m, nil
}

func (m Model) updateToday(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		m.status = ""
		switch keyMsg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "g":
			if m.goal == nil {
				m.state = stateGoalInput
				m.input.Reset()
				return m, m.input.Focus()
			}
			m.status = "A goal is already set for today"
		case "enter", "x":
			if m.goal == nil {
				return m, nil
			}
			if m.goal.IsCompleted() {
				if m.tracker.MarkNotComplete() {
					m.tracker.RevertCompletion()
				}
			} else {
				if m.tracker.MarkComplete() {
					m.tracker.RecordCompletion()
				}
			}
			return m, m.loadData
		case "d":
			if m.goal != nil && !m.goal.IsCompleted() {
				m.state = stateDetailInput
				m.detailInput.Reset()
				return m, m.detailInput.Focus()
			}
			m.status = "Notes need an in-progress goal"
		case "T":
			if m.goal != nil && !m.goal.IsCompleted() {
				m.state = stateTagSelect
				for i, tag := range model.Tags {
					if tag == m.goal.Tag {
						m.tagCursor = i
					}
				}
				return m, nil
			}
			m.status = "Tags can only change while the goal is in progress"
		case "s":
			m.state = stateStats
			return m, nil
		case "h":
			m.state = stateHistory
			return m, m.loadHistory
		case "o":
			m.state = stateSettings
			m.settingsCursor = 0
			return m, nil
		case "r":
			return m, m.loadData
		}
	}
	return m, nil
}

func (m Model) updateOnboarding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if m.tracker.CompleteOnboarding(m.nameInput.Value()) {
				m.state = stateToday
				return m, m.loadData
			}
			m.status = "Enter a name (30 characters max)"
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateGoalInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if !m.tracker.SetGoal(m.input.Value(), model.TagGeneral) {
				m.status = "Could not save the goal"
			}
			m.state = stateToday
			return m, m.loadData
		case "esc":
			m.state = stateToday
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateDetailInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if strings.TrimSpace(m.detailInput.Value()) != "" {
				if !m.tracker.AddDetail(m.detailInput.Value()) {
					m.status = "Could not save the note"
				}
			}
			m.state = stateToday
			return m, m.loadData
		case "ctrl+c":
			m.state = stateToday
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.detailInput, cmd = m.detailInput.Update(msg)
	return m, cmd
}

func (m Model) updateTagSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "j", "down":
			if m.tagCursor < len(model.Tags)-1 {
				m.tagCursor++
			}
		case "k", "up":
			if m.tagCursor > 0 {
				m.tagCursor--
			}
		case "enter", " ":
			if !m.tracker.UpdateTag(model.Tags[m.tagCursor]) {
				m.status = "Could not change the tag"
			}
			m.state = stateToday
			return m, m.loadData
		case "esc":
			m.state = stateToday
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y":
			if err := clipboard.WriteAll(m.shareText()); err != nil {
				m.status = "Clipboard unavailable"
			} else {
				m.status = "Copied to clipboard"
			}
			return m, nil
		case "esc", "q", "s":
			m.state = stateToday
			m.status = ""
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.history.SettingFilter() {
		switch keyMsg.String() {
		case "esc", "q":
			m.state = stateToday
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "j", "down":
			if m.settingsCursor < 2 {
				m.settingsCursor++
			}
		case "k", "up":
			if m.settingsCursor > 0 {
				m.settingsCursor--
			}
		case "enter", " ":
			switch m.settingsCursor {
			case 0:
				m.tracker.SetNotificationsEnabled(!m.app.NotificationsEnabled)
				return m, m.loadData
			case 1:
				m.state = stateNameInput
				m.nameInput.Reset()
				if m.profile != nil {
					m.nameInput.SetValue(m.profile.Name)
				}
				return m, m.nameInput.Focus()
			case 2:
				m.state = stateConfirmReset
				return m, nil
			}
		case "esc", "q":
			m.state = stateToday
			m.status = ""
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateNameInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if !m.tracker.UpdateName(m.nameInput.Value()) {
				m.status = "Enter a name (30 characters max)"
				return m, nil
			}
			m.state = stateSettings
			return m, m.loadData
		case "esc":
			m.state = stateSettings
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y":
			if m.tracker.ResetAll() {
				m.status = "All data cleared"
			}
			m.state = stateToday
			return m, m.loadData
		case "n", "esc":
			m.state = stateSettings
			return m, nil
		}
	}
	return m, nil
}

func (m Model) shareText() string {
	return fmt.Sprintf("forge: %d day streak (best %d), %d goals completed.",
		m.stats.CurrentStreak, m.stats.LongestStreak, m.stats.TotalCompleted)
}

func (m Model) renderGoalCard() string {
	if m.goal == nil {
		return goalCardStyle.Render(statusStyle.Render("No goal yet. Press g to set today's goal."))
	}

	check := "[ ]"
	if m.goal.IsCompleted() {
		check = doneStyle.Render("[x]")
	}
	tagBadge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(tagColors[m.goal.Tag])).
		Render("[" + string(m.goal.Tag) + "]")

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s", check, m.goal.Text, tagBadge)
	for _, d := range m.goal.Details {
		fmt.Fprintf(&b, "\n   · %s", d.Text)
	}
	return goalCardStyle.Render(b.String())
}

func (m Model) renderToday() string {
	now := m.now()
	name := ""
	if m.profile != nil {
		name = m.profile.Name
	}

	dayOfYear, _ := dateutil.DayOfYear(dateutil.LocalDate(now))
	var b strings.Builder
	b.WriteString(titleStyle.Render(dateutil.Greeting(name, now)) + "\n")
	b.WriteString(motdStyle.Render(m.lib.MOTDForDayOfYear(dayOfYear)) + "\n\n")
	b.WriteString(m.renderGoalCard() + "\n\n")

	if m.stats.CurrentStreak > 0 {
		b.WriteString(streakStyle.Render(fmt.Sprintf("%d day streak", m.stats.CurrentStreak)) + "\n\n")
	}

	help := "g: set goal  enter/x: toggle  d: note  T: tag  s: stats  h: history  o: settings  q: quit"
	b.WriteString(statusStyle.Render(help))
	return b.String()
}

func (m Model) renderStats() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Stats") + "\n\n")
	fmt.Fprintf(&b, "Current streak:  %d\n", m.stats.CurrentStreak)
	fmt.Fprintf(&b, "Longest streak:  %d\n", m.stats.LongestStreak)
	fmt.Fprintf(&b, "Total completed: %d\n", m.stats.TotalCompleted)
	fmt.Fprintf(&b, "Completion rate: %d%%\n\n", m.rate)

	b.WriteString("Archived goals by tag:\n")
	for _, tag := range model.Tags {
		badge := lipgloss.NewStyle().
			Foreground(lipgloss.Color(tagColors[tag])).
			Render(string(tag))
		fmt.Fprintf(&b, "  %s: %d\n", badge, m.stats.TagCounts[tag])
	}

	b.WriteString("\n" + statusStyle.Render("y: copy share text  esc: back"))
	return b.String()
}

func (m Model) renderSettings() string {
	notifLabel := "Notifications: off"
	if m.app.NotificationsEnabled {
		notifLabel = "Notifications: on"
	}
	items := []string{notifLabel, "Edit name", "Reset all data"}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings") + "\n\n")
	for i, item := range items {
		cursor := "  "
		if i == m.settingsCursor {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}

	if m.app.NotificationsEnabled {
		dayOfYear, _ := dateutil.DayOfYear(dateutil.LocalDate(m.now()))
		plan := m.planner.Plan(notify.DayState{
			HasGoalSet:           m.goal != nil,
			IsCompleted:          m.goal != nil && m.goal.IsCompleted(),
			CurrentStreak:        m.stats.CurrentStreak,
			DayOfYear:            dayOfYear,
			NotificationsEnabled: true,
		})
		b.WriteString("\nToday's notifications:\n")
		for _, n := range plan {
			fmt.Fprintf(&b, "  %02d:%02d  %s — %s\n", n.Hour, n.Minute, n.Title, n.Body)
		}
	}

	b.WriteString("\n" + statusStyle.Render("j/k: navigate  enter: select  esc: back"))
	return b.String()
}

func (m Model) View() string {
	statusLine := ""
	if m.status != "" {
		statusLine = "\n\n" + errorStyle.Render(m.status)
	}

	switch m.state {
	case stateOnboarding:
		return appStyle.Render(
			titleStyle.Render("Welcome to forge") + "\n\n" +
				"One goal a day. What should we call you?\n\n" +
				m.nameInput.View() + "\n\n" +
				statusStyle.Render("enter: continue") +
				statusLine,
		)
	case stateGoalInput:
		return appStyle.Render(
			titleStyle.Render("Today's Goal") + "\n\n" +
				m.input.View() + "\n\n" +
				statusStyle.Render("enter: save  esc: cancel") +
				statusLine,
		)
	case stateDetailInput:
		return appStyle.Render(
			titleStyle.Render("Add Note") + "\n\n" +
				m.detailInput.View() + "\n\n" +
				statusStyle.Render("esc: save  ctrl+c: cancel") +
				statusLine,
		)
	case stateTagSelect:
		var lines []string
		for i, tag := range model.Tags {
			cursor := "  "
			if i == m.tagCursor {
				cursor = "> "
			}
			badge := lipgloss.NewStyle().
				Foreground(lipgloss.Color(tagColors[tag])).
				Render(string(tag))
			lines = append(lines, cursor+badge)
		}
		return appStyle.Render(
			titleStyle.Render("Tag") + "\n\n" +
				strings.Join(lines, "\n") + "\n\n" +
				statusStyle.Render("j/k: navigate  enter: select  esc: cancel") +
				statusLine,
		)
	case stateStats:
		return appStyle.Render(m.renderStats() + statusLine)
	case stateHistory:
		return appStyle.Render(m.history.View())
	case stateSettings:
		return appStyle.Render(m.renderSettings() + statusLine)
	case stateNameInput:
		return appStyle.Render(
			titleStyle.Render("Edit Name") + "\n\n" +
				m.nameInput.View() + "\n\n" +
				statusStyle.Render("enter: save  esc: cancel") +
				statusLine,
		)
	case stateConfirmReset:
		return appStyle.Render(
			confirmStyle.Render("Reset all data?") + "\n\n" +
				"  This clears your goal, stats and history.\n\n" +
				statusStyle.Render("y: reset  n/esc: cancel") +
				statusLine,
		)
	default:
		return appStyle.Render(m.renderToday() + statusLine)
	}
}
