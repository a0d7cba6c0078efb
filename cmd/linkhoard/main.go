package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"linkhoard/internal/adapters/explorer"
	"linkhoard/internal/adapters/sqlite"
	"linkhoard/internal/adapters/tui"
	"linkhoard/internal/config"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := sqlite.Open(settings.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	app := tui.NewApp(store, explorer.NewOpener(), settings)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
