package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"grouplist/internal/config"
	"grouplist/internal/eventbus"
	"grouplist/internal/ui"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("grouplist.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Stop()

	sched := ui.NewProgramScheduler()
	uiModel := ui.NewModel(bus, cfg, configSvc, sched)

	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	sched.SetProgram(p)
	uiModel.SetProgram(p)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
