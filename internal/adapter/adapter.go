package adapter

import (
	"log"

	"grouplist/internal/bulk"
	"grouplist/internal/domain"
	"grouplist/internal/eventbus"
	"grouplist/internal/expansion"
	"grouplist/internal/store"
	"grouplist/internal/view"
)

// Options configures an adapter at construction.
type Options struct {
	// SingleExpansion limits the list to at most one expanded group;
	// expanding a group collapses the previously expanded one.
	SingleExpansion bool

	// Orientation sets the scroll axis of every nested item list.
	Orientation domain.Orientation
}

// Adapter is the parent list controller: it owns the group collection,
// creates and binds parent cells through the host Binder, attaches a nested
// ChildController per bound cell, and reports structural changes to the
// attached Surface.
//
// Everything except the bulk expansion flag pass must run on the render
// context. The collection is single-writer by contract; there are no locks.
type Adapter struct {
	binder  Binder
	groups  *store.GroupList
	bus     eventbus.EventBus
	machine *expansion.Machine
	updater *bulk.Updater
	opts    Options

	surface  Surface
	attached bool

	// nested surface per created cell, located once at creation
	surfaces map[ParentCell]*view.ListSurface
}

// New creates an adapter over the caller-supplied groups. sched carries the
// bulk expansion pass; hosts with a program loop use bulk.NewAsyncScheduler,
// synchronous hosts use bulk.SyncScheduler.
func New(binder Binder, groups []domain.Group, bus eventbus.EventBus, sched bulk.Scheduler, opts Options) *Adapter {
	a := &Adapter{
		binder:   binder,
		groups:   store.New(groups),
		bus:      bus,
		opts:     opts,
		surfaces: make(map[ParentCell]*view.ListSurface),
	}
	a.machine = expansion.NewMachine(a.groups, bus, machineNotifier{a}, opts.SingleExpansion, func() {
		a.SetExpanded(false)
	})
	a.updater = bulk.NewUpdater(a.groups, bus, sched,
		func() bool { return a.attached },
		func(bool) { a.notifyRange(0, a.groups.Len()) },
	)
	return a
}

// ItemCount returns the number of groups.
func (a *Adapter) ItemCount() int { return a.groups.Len() }

// GroupAt returns the group at position p.
func (a *Adapter) GroupAt(p int) domain.Group { return a.groups.At(p) }

// LastExpanded returns the last single-mode expanded index, or
// domain.NoPosition.
func (a *Adapter) LastExpanded() int { return a.machine.LastExpanded() }

// FullyExpanded reports the approximate all-expanded flag (see
// expansion.Machine).
func (a *Adapter) FullyExpanded() bool { return a.machine.FullyExpanded() }

// Attached reports whether a surface is currently attached.
func (a *Adapter) Attached() bool { return a.attached }

// CreateCell builds a parent cell of the given kind, wires its header
// handler to the expansion machine, and locates the nested list surface in
// the cell's subtree, configuring its scroll axis.
func (a *Adapter) CreateCell(kind int) ParentCell {
	cell := a.binder.CreateParentCell(kind)
	cell.SetHeaderHandler(func() { a.headerClicked(cell) })
	a.initChildSurface(cell)
	return cell
}

func (a *Adapter) initChildSurface(cell ParentCell) {
	s := view.FindListSurface(cell.Root())
	if s == nil {
		log.Printf("adapter: parent cell has no nested list surface, nested binding disabled for it")
		a.bus.Publish(eventbus.SurfaceMissingEvent{Position: cell.Position()})
		return
	}
	l := s.Layout()
	l.Orientation = a.opts.Orientation
	s.SetLayout(l)
	a.surfaces[cell] = s
}

// BindCell binds the group at position into cell: fresh child controller,
// nested surface visible iff expanded, then the host's parent bind hook.
func (a *Adapter) BindCell(cell ParentCell, position int) {
	if position < 0 || position >= a.groups.Len() {
		log.Printf("adapter: bind at %d ignored, collection size %d", position, a.groups.Len())
		return
	}
	g := a.groups.At(position)
	cell.SetPosition(position)

	if s, ok := a.surfaces[cell]; ok {
		s.SetSource(NewChildController(a.binder, cell, g))
		s.SetVisible(g.Expanded())
	}

	a.binder.BindParentCell(cell, g, position)
}

// AddGroup inserts g with the given expansion flag. position -1 or equal to
// the current count appends; a valid index inserts there. Anything else is
// logged and ignored. Issues one point-insert notification when attached.
func (a *Adapter) AddGroup(g domain.Group, expanded bool, position int) {
	n := a.groups.Len()
	if position < domain.NoPosition || position > n {
		log.Printf("adapter: add at %d rejected, collection size %d", position, n)
		a.bus.Publish(eventbus.InvalidPositionEvent{Op: "add", Position: position, Size: n})
		return
	}
	g.SetExpanded(expanded)

	resolved := position
	if position == domain.NoPosition || position == n {
		resolved = n
		a.groups.Append(g)
	} else if err := a.groups.Insert(position, g); err != nil {
		log.Printf("adapter: add at %d failed: %v", position, err)
		a.bus.Publish(eventbus.InvalidPositionEvent{Op: "add", Position: position, Size: n})
		return
	}

	a.bus.Publish(eventbus.GroupInsertedEvent{Position: resolved})
	a.notifyInserted(resolved)
}

// RemoveGroup removes the group at position. Bounds violations are logged
// and ignored, no notification.
//
// The guard admits position == ItemCount(), one past the last valid index;
// the collection then rejects the removal, so the call degenerates to a
// logged no-op. The historical bound is kept as-is rather than silently
// tightened.
func (a *Adapter) RemoveGroup(position int) {
	n := a.groups.Len()
	if position < 0 || position > n {
		log.Printf("adapter: remove at %d rejected, collection size %d", position, n)
		a.bus.Publish(eventbus.InvalidPositionEvent{Op: "remove", Position: position, Size: n})
		return
	}
	if _, err := a.groups.RemoveAt(position); err != nil {
		log.Printf("adapter: remove at %d failed: %v", position, err)
		a.bus.Publish(eventbus.InvalidPositionEvent{Op: "remove", Position: position, Size: n})
		return
	}

	a.bus.Publish(eventbus.GroupRemovedEvent{Position: position})
	a.notifyRemoved(position)
}

// SetExpanded applies the given expansion state to every group through the
// bulk updater: flags mutate off the render context, one full-range
// notification follows on it if still attached by then.
func (a *Adapter) SetExpanded(expanded bool) {
	a.machine.SetFullyExpanded(expanded)
	a.updater.Apply(expanded)
}

// Attach records the surface and installs the default layout on it.
// Notifications only flow while attached.
func (a *Adapter) Attach(s Surface) {
	a.surface = s
	a.attached = true
	s.SetLayout(view.DefaultLayout())
}

// Detach clears the surface. Mutations made while detached surface on the
// next attach through the host's initial full bind.
func (a *Adapter) Detach(s Surface) {
	a.surface = nil
	a.attached = false
}

func (a *Adapter) headerClicked(cell ParentCell) {
	p := cell.Position()
	if p < 0 || p >= a.groups.Len() {
		log.Printf("adapter: header click on unbound cell ignored")
		return
	}
	a.binder.OnGroupClicked(a.groups.At(p), p)
	a.machine.HeaderClicked(p)
}

func (a *Adapter) notifyChanged(p int) {
	if !a.attached {
		return
	}
	a.surface.NotifyItemChanged(p)
	a.bus.Publish(eventbus.NotifyEvent{Kind: domain.NotifyChanged, Position: p})
}

func (a *Adapter) notifyInserted(p int) {
	if !a.attached {
		return
	}
	a.surface.NotifyItemInserted(p)
	a.bus.Publish(eventbus.NotifyEvent{Kind: domain.NotifyInserted, Position: p})
}

func (a *Adapter) notifyRemoved(p int) {
	if !a.attached {
		return
	}
	a.surface.NotifyItemRemoved(p)
	a.bus.Publish(eventbus.NotifyEvent{Kind: domain.NotifyRemoved, Position: p})
}

func (a *Adapter) notifyRange(start, count int) {
	if !a.attached {
		return
	}
	a.surface.NotifyRangeChanged(start, count)
	a.bus.Publish(eventbus.NotifyEvent{Kind: domain.NotifyRangeChanged, Position: start, Count: count})
}

// machineNotifier adapts the adapter's gated notification path to the
// expansion machine.
type machineNotifier struct{ a *Adapter }

func (n machineNotifier) ItemChanged(p int) { n.a.notifyChanged(p) }

func (n machineNotifier) ScrollTo(p int) {
	if !n.a.attached {
		return
	}
	n.a.surface.SmoothScrollTo(p)
}
