package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"grouplist/internal/config"
	"grouplist/internal/domain"
	"grouplist/internal/eventbus"
	"grouplist/internal/ui"
)

func main() {
	var single bool
	var horizontal bool
	var configPath string
	flag.BoolVar(&single, "single", false, "single-expansion mode: expanding a group collapses the previous one")
	flag.BoolVar(&horizontal, "horizontal", false, "scroll nested item lists horizontally")
	flag.StringVar(&configPath, "config", "", "explicit config file path")
	flag.Parse()

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
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	if single {
		cfg.SingleExpansion = true
	}
	if horizontal {
		cfg.Orientation = domain.Horizontal.String()
	}

	// Create event bus
	bus := eventbus.New()

	// Scheduler for the bulk expansion continuations; the program is wired
	// in below, queued continuations flush then
	sched := ui.NewProgramScheduler()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, configSvc, sched)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	sched.SetProgram(p)
	uiModel.SetProgram(p)

	// Forward diagnostic events into the UI's event log
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventGroupInserted,
		eventbus.EventGroupRemoved,
		eventbus.EventGroupToggled,
		eventbus.EventBulkExpansion,
		eventbus.EventInvalidPosition,
		eventbus.EventSurfaceMissing,
		eventbus.EventNotify,
	} {
		bus.Subscribe(t, forward)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Stop the bus before closing the forward channel so no handler can
	// publish into it afterwards
	bus.Stop()
	close(eventChan)
	<-done
}
