package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GURROLAG/appAgenda/internal/auth"
	"github.com/GURROLAG/appAgenda/internal/config"
	"github.com/GURROLAG/appAgenda/internal/store"
	"github.com/GURROLAG/appAgenda/internal/tui"
)

func main() {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	// A theme toggled inside the app overrides the config file.
	dark := cfg.Theme == "dark"
	if v, err := s.GetSetting("dark_mode"); err == nil && v != "" {
		dark = v == "true"
	}
	theme := tui.LightTheme()
	if dark {
		theme = tui.DarkTheme()
	}

	weekStart := time.Monday
	if cfg.WeekStart == "sunday" {
		weekStart = time.Sunday
	}

	app := tui.NewApp(s, auth.New(s), &theme, weekStart)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
