package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFnMsg carries a render-context continuation into the program's
// update loop. The model executes Fn inline, which is what makes the update
// loop the render context.
type RenderFnMsg struct {
	Fn func()
}

// ProgramScheduler implements bulk.Scheduler on top of a tea.Program:
// background work runs on fresh goroutines, continuations are posted as
// messages and executed by the update loop in arrival order.
type ProgramScheduler struct {
	mu      sync.Mutex
	program *tea.Program
	pending []func()
}

// NewProgramScheduler creates a scheduler with no program yet. Continuations
// submitted before SetProgram are queued and flushed once it is set.
func NewProgramScheduler() *ProgramScheduler {
	return &ProgramScheduler{}
}

// SetProgram wires the program and flushes anything queued.
func (s *ProgramScheduler) SetProgram(p *tea.Program) {
	s.mu.Lock()
	s.program = p
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range pending {
		p.Send(RenderFnMsg{Fn: fn})
	}
}

func (s *ProgramScheduler) Go(fn func()) { go fn() }

func (s *ProgramScheduler) OnRender(fn func()) {
	s.mu.Lock()
	p := s.program
	if p == nil {
		s.pending = append(s.pending, fn)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	p.Send(RenderFnMsg{Fn: fn})
}
