package view

import "grouplist/internal/domain"

// Layout is the layout strategy assigned to a list surface. The default is
// a vertical single-span list, matching what the adapter installs on the
// host surface at attach time.
type Layout struct {
	Orientation domain.Orientation
	Spans       int
}

// DefaultLayout returns the single-column vertical layout.
func DefaultLayout() Layout {
	return Layout{Orientation: domain.Vertical, Spans: 1}
}

// Source supplies cells to a list surface. The nested controller the
// adapter builds per (group, parent cell) implements this; cells are opaque
// to the surface and interpreted by the host renderer.
type Source interface {
	ItemCount() int
	CreateCell() any
	BindCell(cell any, position int)
}

// ListSurface is the nested list surface type expected somewhere among the
// immediate children of each parent cell's root node. It recycles its own
// cells independently of the outer list: created cells are pooled and
// rebound in place whenever the source changes.
type ListSurface struct {
	source  Source
	layout  Layout
	visible bool
	pool    []any
	bound   []any
}

// NewListSurface creates a hidden surface with the default layout.
func NewListSurface() *ListSurface {
	return &ListSurface{layout: DefaultLayout()}
}

// Children implements Node. A surface is a leaf of the outer view tree; its
// rows belong to the nested recycler, not the tree walk.
func (s *ListSurface) Children() []Node { return nil }

// SetLayout replaces the surface's layout strategy.
func (s *ListSurface) SetLayout(l Layout) { s.layout = l }

// Layout returns the current layout strategy.
func (s *ListSurface) Layout() Layout { return s.layout }

// SetVisible shows or hides the surface.
func (s *ListSurface) SetVisible(v bool) { s.visible = v }

// Visible reports whether the surface is shown.
func (s *ListSurface) Visible() bool { return s.visible }

// SetSource installs a new cell source and rebinds. Passing nil clears the
// surface but keeps the pool for reuse.
func (s *ListSurface) SetSource(src Source) {
	s.source = src
	s.Rebind()
}

// Source returns the current cell source, nil when cleared.
func (s *ListSurface) Source() Source { return s.source }

// Rebind materializes one bound cell per source position, growing the pool
// only when the source outgrows it.
func (s *ListSurface) Rebind() {
	if s.source == nil {
		s.bound = nil
		return
	}
	n := s.source.ItemCount()
	for len(s.pool) < n {
		s.pool = append(s.pool, s.source.CreateCell())
	}
	s.bound = s.pool[:n]
	for i := 0; i < n; i++ {
		s.source.BindCell(s.bound[i], i)
	}
}

// BoundCells returns the currently bound cells in position order.
func (s *ListSurface) BoundCells() []any { return s.bound }
