package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atelier-sh/atelier/internal/app"
	"github.com/atelier-sh/atelier/internal/config"
	"github.com/atelier-sh/atelier/internal/state"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	stateMgr, err := state.Open()
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	m, err := app.New(cfg, stateMgr)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, opts...)
	_, err = p.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
