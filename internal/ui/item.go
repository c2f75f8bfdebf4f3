package ui

import (
	"fmt"

	"github.com/sohta-m/forge/internal/model"
)

// recordItem wraps a DailyRecord to satisfy the list.DefaultItem interface.
type recordItem struct {
	Record model.DailyRecord
}

func (i recordItem) Title() string {
	check := "[ ]"
	if i.Record.Completed {
		check = "[x]"
	}
	text := "(no goal set)"
	if i.Record.Goal != nil {
		text = i.Record.Goal.Text
	}
	return fmt.Sprintf("%s %s  %s", check, i.Record.Date, text)
}

func (i recordItem) Description() string {
	if i.Record.Goal == nil {
		return ""
	}
	return string(i.Record.Goal.Tag)
}

func (i recordItem) FilterValue() string {
	if i.Record.Goal == nil {
		return i.Record.Date
	}
	return i.Record.Goal.Text
}
