package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"grouplist/internal/adapter"
	"grouplist/internal/bulk"
	"grouplist/internal/config"
	"grouplist/internal/domain"
	"grouplist/internal/eventbus"
)

const maxEventLog = 200

// EventMsg wraps a diagnostic bus event forwarded into the program.
type EventMsg struct {
	Event eventbus.DomainEvent
}

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Add         key.Binding
	Remove      key.Binding
	EventLog    key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle/play")),
		ExpandAll:   key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "expand all")),
		CollapseAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "collapse all")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add group")),
		Remove:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove group")),
		EventLog:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "event log")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.ExpandAll, k.CollapseAll, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.ExpandAll, k.CollapseAll, k.Add, k.Remove},
		{k.EventLog, k.Help, k.Quit},
	}
}

// Model is the demo application: a grouped album/track list driven entirely
// through the adapter.
type Model struct {
	bus       eventbus.EventBus
	cfg       *config.Config
	configSvc config.ConfigService

	binder *CatalogBinder
	ad     *adapter.Adapter
	lv     *ListView
	styles *Styles

	keys   keyMap
	help   help.Model
	cursor int

	width  int
	height int

	status string
	events []string
	added  int

	program *tea.Program
}

// NewModel wires the binder, adapter, and list view together.
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService, sched bulk.Scheduler) *Model {
	styles := NewStyles()
	m := &Model{
		bus:       bus,
		cfg:       cfg,
		configSvc: configSvc,
		styles:    styles,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	m.binder = NewCatalogBinder(styles, func(msg string) { m.status = msg })
	m.ad = adapter.New(m.binder, CatalogFromConfig(cfg), bus, sched, adapter.Options{
		SingleExpansion: cfg.SingleExpansion,
		Orientation:     cfg.Orient(),
	})
	m.lv = NewListView(styles)
	m.lv.SetAdapter(m.ad)
	return m
}

// SetProgram hands the model its running program, needed for the pager.
func (m *Model) SetProgram(p *tea.Program) { m.program = p }

// Adapter exposes the adapter for the entrypoint's wiring.
func (m *Model) Adapter() *adapter.Adapter { return m.ad }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.lv.SetHeight(msg.Height - 4)
		return m, nil

	case RenderFnMsg:
		msg.Fn()
		m.clampCursor()
		return m, nil

	case EventMsg:
		m.logEvent(msg.Event)
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("pager: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.cfg.UISettings.AutosaveOnExit {
			m.saveExpansionState()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.lv.Rows())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		rows := m.lv.Rows()
		if m.cursor < len(rows) {
			m.lv.ClickRow(rows[m.cursor])
		}

	case key.Matches(msg, m.keys.ExpandAll):
		m.ad.SetExpanded(true)

	case key.Matches(msg, m.keys.CollapseAll):
		m.ad.SetExpanded(false)

	case key.Matches(msg, m.keys.Add):
		m.added++
		alb := &Album{
			Title:  fmt.Sprintf("Untitled %d", m.added),
			Tracks: []string{"Track 1", "Track 2"},
		}
		m.ad.AddGroup(alb, false, m.insertPosition())

	case key.Matches(msg, m.keys.Remove):
		rows := m.lv.Rows()
		if m.cursor < len(rows) {
			m.ad.RemoveGroup(rows[m.cursor].Group)
		}

	case key.Matches(msg, m.keys.EventLog):
		return m, m.openEventLog()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.clampCursor()
	return m, nil
}

// insertPosition places new groups right after the cursor's group, or at
// the end of an empty list.
func (m *Model) insertPosition() int {
	rows := m.lv.Rows()
	if m.cursor >= len(rows) {
		return domain.NoPosition
	}
	p := rows[m.cursor].Group + 1
	if p >= m.ad.ItemCount() {
		return domain.NoPosition
	}
	return p
}

func (m *Model) clampCursor() {
	if n := len(m.lv.Rows()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) logEvent(e eventbus.DomainEvent) {
	m.events = append(m.events, fmt.Sprintf("%-16s %+v", e.Type(), e))
	if len(m.events) > maxEventLog {
		m.events = m.events[len(m.events)-maxEventLog:]
	}
}

// saveExpansionState writes the current per-group flags back into the
// config catalog before exit.
func (m *Model) saveExpansionState() {
	catalog := make([]config.GroupConfig, 0, m.ad.ItemCount())
	for i := 0; i < m.ad.ItemCount(); i++ {
		if alb, ok := m.ad.GroupAt(i).(*Album); ok {
			catalog = append(catalog, config.GroupConfig{
				Title:    alb.Title,
				Items:    alb.Tracks,
				Expanded: alb.Expanded(),
			})
		}
	}
	m.cfg.Catalog = catalog
	if err := m.configSvc.Save(m.cfg); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
	}
}

func (m *Model) View() string {
	title := m.styles.Title.Render("grouplist")
	list := m.lv.Render(m.lv.Rows(), m.cursor, m.width)
	status := m.styles.Status.Render(m.status)
	helpView := m.help.View(m.keys)
	return title + "\n" + list + "\n" + status + "\n" + helpView
}
