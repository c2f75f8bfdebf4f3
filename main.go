package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sohta-m/forge/internal/content"
	"github.com/sohta-m/forge/internal/logging"
	"github.com/sohta-m/forge/internal/store"
	"github.com/sohta-m/forge/internal/tracker"
	"github.com/sohta-m/forge/internal/ui"
)

func main() {
	if dir, err := store.DefaultDataDir(); err == nil {
		if err := logging.Init(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		}
	}

	s, err := store.NewRecordStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	lib := content.NewLibrary(nil)
	if themePath := os.Getenv("FORGE_THEME"); themePath != "" {
		theme, err := content.LoadTheme(themePath)
		if err != nil {
			logging.Error("main", "load theme: %v", err)
		} else {
			lib.ApplyTheme(theme)
		}
	}

	t := tracker.New(s)
	t.CheckRollover()

	p := tea.NewProgram(ui.NewModel(t, lib), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
