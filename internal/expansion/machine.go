package expansion

import (
	"log"

	"grouplist/internal/domain"
	"grouplist/internal/eventbus"
	"grouplist/internal/store"
)

// Notifier receives the point updates the machine decides on. The adapter
// implements it and is responsible for gating on attachment.
type Notifier interface {
	ItemChanged(position int)
	ScrollTo(position int)
}

// Machine decides what a header interaction means: toggle one group,
// enforce single-expansion exclusivity, or collapse everything. It owns the
// adapter-level expansion state (the fully-expanded flag and the last
// single-expanded index).
type Machine struct {
	groups   *store.GroupList
	bus      eventbus.EventBus
	notifier Notifier

	// single enables single-expansion mode: at most one group expanded,
	// expanding one collapses the previous.
	single bool

	// collapseAll is the bulk collapse path, taken in single mode when the
	// whole list is flagged expanded.
	collapseAll func()

	lastExpanded  int
	fullyExpanded bool
}

// NewMachine creates a machine over the given collection. collapseAll must
// trigger the asynchronous bulk collapse (it is only called in single mode).
func NewMachine(groups *store.GroupList, bus eventbus.EventBus, notifier Notifier, single bool, collapseAll func()) *Machine {
	return &Machine{
		groups:       groups,
		bus:          bus,
		notifier:     notifier,
		single:       single,
		collapseAll:  collapseAll,
		lastExpanded: domain.NoPosition,
	}
}

// Single reports whether single-expansion mode is active.
func (m *Machine) Single() bool { return m.single }

// LastExpanded returns the last index expanded through a single-mode
// interaction, or domain.NoPosition. The index is not adjusted when groups
// are inserted or removed; staleness is tolerated by the validity check in
// HeaderClicked.
func (m *Machine) LastExpanded() int { return m.lastExpanded }

// FullyExpanded reports the approximate all-expanded flag: true only while
// the last bulk operation requested expand-all and no individual toggle has
// happened since.
func (m *Machine) FullyExpanded() bool { return m.fullyExpanded }

// SetFullyExpanded records the target of a bulk operation.
func (m *Machine) SetFullyExpanded(v bool) { m.fullyExpanded = v }

// HeaderClicked handles a header interaction at position p.
func (m *Machine) HeaderClicked(p int) {
	if p < 0 || p >= m.groups.Len() {
		log.Printf("expansion: header click at %d ignored, collection size %d", p, m.groups.Len())
		return
	}

	if !m.single {
		m.toggle(p)
		m.notifier.ItemChanged(p)
		return
	}

	if m.fullyExpanded {
		// Everything is expanded; the only sensible reaction is a global
		// collapse, which runs through the bulk path.
		m.fullyExpanded = false
		m.lastExpanded = domain.NoPosition
		m.collapseAll()
		return
	}

	prev := m.lastExpanded
	// Toggle p before touching prev, so re-clicking the expanded group
	// collapses it instead of bouncing back open.
	m.toggle(p)
	m.notifier.ItemChanged(p)

	if prev != domain.NoPosition && prev != p && prev < m.groups.Len() && m.groups.At(prev).Expanded() {
		m.groups.At(prev).SetExpanded(false)
		m.notifier.ItemChanged(prev)
	}
	m.lastExpanded = p

	if p == m.groups.Len()-1 {
		// The nested list growing under the last row would push it out of
		// sight; keep the interacted row visible.
		m.notifier.ScrollTo(p)
	}
}

func (m *Machine) toggle(p int) {
	g := m.groups.At(p)
	g.SetExpanded(!g.Expanded())
	m.fullyExpanded = false
	m.bus.Publish(eventbus.GroupToggledEvent{Position: p, Expanded: g.Expanded()})
}
