package ui

import (
	"strings"

	"grouplist/internal/adapter"
	"grouplist/internal/domain"
	"grouplist/internal/view"
)

// Row addresses one visible line of the flattened list. Child == -1 means
// the group header; otherwise the child index inside the group's expanded
// item list.
type Row struct {
	Group int
	Child int
}

// ListView is the demo rendering surface: a small recycling list host that
// keeps one bound parent cell per group, reuses cells through a pool, and
// reacts to the adapter's structural notifications by rebinding only the
// affected positions. It stands in for the platform list widget; its
// internals are not part of the adapter contract.
type ListView struct {
	ad     *adapter.Adapter
	styles *Styles

	rows []adapter.ParentCell
	pool []adapter.ParentCell

	layout view.Layout
	offset int
	height int

	// pending smooth-scroll target, NoPosition when none
	scrollTarget int
}

// NewListView creates an empty view.
func NewListView(styles *Styles) *ListView {
	return &ListView{styles: styles, scrollTarget: domain.NoPosition}
}

// SetAdapter attaches the view to ad and performs the initial full bind.
func (v *ListView) SetAdapter(ad *adapter.Adapter) {
	v.ad = ad
	ad.Attach(v)
	v.Reload()
}

// Reload recycles every row and rebinds the whole collection. This is the
// initial full bind after attach and the catch-up path for mutations made
// while detached.
func (v *ListView) Reload() {
	v.pool = append(v.pool, v.rows...)
	v.rows = v.rows[:0]
	for i := 0; i < v.ad.ItemCount(); i++ {
		cell := v.acquire()
		v.rows = append(v.rows, cell)
		v.ad.BindCell(cell, i)
	}
}

func (v *ListView) acquire() adapter.ParentCell {
	if n := len(v.pool); n > 0 {
		c := v.pool[n-1]
		v.pool = v.pool[:n-1]
		return c
	}
	return v.ad.CreateCell(0)
}

// SetHeight sets the visible line budget.
func (v *ListView) SetHeight(h int) { v.height = h }

// NotifyItemChanged implements adapter.Surface.
func (v *ListView) NotifyItemChanged(position int) {
	if position < 0 || position >= len(v.rows) {
		return
	}
	v.ad.BindCell(v.rows[position], position)
}

// NotifyItemInserted implements adapter.Surface.
func (v *ListView) NotifyItemInserted(position int) {
	if position < 0 || position > len(v.rows) {
		return
	}
	cell := v.acquire()
	v.rows = append(v.rows, nil)
	copy(v.rows[position+1:], v.rows[position:])
	v.rows[position] = cell
	// positions at and after the insert shifted
	for i := position; i < len(v.rows); i++ {
		v.ad.BindCell(v.rows[i], i)
	}
}

// NotifyItemRemoved implements adapter.Surface.
func (v *ListView) NotifyItemRemoved(position int) {
	if position < 0 || position >= len(v.rows) {
		return
	}
	v.pool = append(v.pool, v.rows[position])
	v.rows = append(v.rows[:position], v.rows[position+1:]...)
	for i := position; i < len(v.rows); i++ {
		v.ad.BindCell(v.rows[i], i)
	}
}

// NotifyRangeChanged implements adapter.Surface.
func (v *ListView) NotifyRangeChanged(start, count int) {
	for i := start; i < start+count && i < len(v.rows); i++ {
		if i >= 0 {
			v.ad.BindCell(v.rows[i], i)
		}
	}
}

// SmoothScrollTo implements adapter.Surface.
func (v *ListView) SmoothScrollTo(position int) {
	v.scrollTarget = position
}

// SetLayout implements adapter.Surface.
func (v *ListView) SetLayout(l view.Layout) { v.layout = l }

// Rows returns the flattened visible rows: every group header, followed by
// its items when the group's nested surface is shown.
func (v *ListView) Rows() []Row {
	var rows []Row
	for g, cell := range v.rows {
		rows = append(rows, Row{Group: g, Child: -1})
		s := v.cellSurface(cell)
		if s == nil || !s.Visible() {
			continue
		}
		if s.Layout().Orientation == domain.Horizontal {
			// horizontal nested lists collapse onto a single strip row
			if len(s.BoundCells()) > 0 {
				rows = append(rows, Row{Group: g, Child: 0})
			}
			continue
		}
		for c := range s.BoundCells() {
			rows = append(rows, Row{Group: g, Child: c})
		}
	}
	return rows
}

// Render draws the visible window with the cursor on rows[cursor].
func (v *ListView) Render(rows []Row, cursor, width int) string {
	v.settleScroll(rows, cursor)

	var b strings.Builder
	end := len(rows)
	if v.height > 0 && v.offset+v.height < end {
		end = v.offset + v.height
	}
	for i := v.offset; i < end; i++ {
		if i > v.offset {
			b.WriteString("\n")
		}
		b.WriteString(v.renderRow(rows[i], i == cursor, width))
	}
	if len(rows) == 0 {
		b.WriteString(v.styles.EmptyState.Render("no groups, press a to add one"))
	}
	return b.String()
}

func (v *ListView) renderRow(r Row, selected bool, width int) string {
	cell, ok := v.rows[r.Group].(*AlbumCell)
	if !ok {
		return ""
	}
	if r.Child < 0 {
		return cell.RenderLine(selected, width)
	}
	s := cell.Surface()
	if s == nil {
		return ""
	}
	bound := s.BoundCells()
	if s.Layout().Orientation == domain.Horizontal {
		labels := make([]string, 0, len(bound))
		for _, bc := range bound {
			if tc, ok := bc.(*TrackCell); ok {
				labels = append(labels, tc.Label())
			}
		}
		line := "  " + strings.Join(labels, " · ")
		if selected {
			return v.styles.Cursor.Render(line)
		}
		return v.styles.Item.Render(line)
	}
	if r.Child >= len(bound) {
		return ""
	}
	tc, ok := bound[r.Child].(*TrackCell)
	if !ok {
		return ""
	}
	tc.last = r.Child == len(bound)-1
	return tc.RenderLine(selected, width)
}

// settleScroll keeps the cursor visible and honors a pending smooth-scroll
// request toward a group header.
func (v *ListView) settleScroll(rows []Row, cursor int) {
	if v.scrollTarget != domain.NoPosition {
		for i, r := range rows {
			if r.Group == v.scrollTarget && r.Child == -1 {
				v.scrollRowIntoView(i, len(rows))
				break
			}
		}
		v.scrollTarget = domain.NoPosition
	}
	v.scrollRowIntoView(cursor, len(rows))
}

func (v *ListView) scrollRowIntoView(i, total int) {
	if v.height <= 0 {
		v.offset = 0
		return
	}
	if i < v.offset {
		v.offset = i
	}
	if i >= v.offset+v.height {
		v.offset = i - v.height + 1
	}
	if max := total - v.height; v.offset > max && max >= 0 {
		v.offset = max
	}
	if v.offset < 0 || total <= v.height {
		v.offset = 0
	}
}

// ClickRow forwards an interaction to the addressed cell: header rows get a
// header click, child rows a row click.
func (v *ListView) ClickRow(r Row) {
	if r.Group < 0 || r.Group >= len(v.rows) {
		return
	}
	cell, ok := v.rows[r.Group].(*AlbumCell)
	if !ok {
		return
	}
	if r.Child < 0 {
		cell.Click()
		return
	}
	s := cell.Surface()
	if s == nil {
		return
	}
	bound := s.BoundCells()
	if r.Child < len(bound) {
		if tc, ok := bound[r.Child].(*TrackCell); ok {
			tc.Click()
		}
	}
}

func (v *ListView) cellSurface(cell adapter.ParentCell) *view.ListSurface {
	if c, ok := cell.(*AlbumCell); ok {
		return c.Surface()
	}
	return view.FindListSurface(cell.Root())
}
