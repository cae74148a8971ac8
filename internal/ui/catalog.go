package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grouplist/internal/adapter"
	"grouplist/internal/config"
	"grouplist/internal/domain"
	"grouplist/internal/view"
)

// Album is the demo group type: a titled, expandable set of tracks.
type Album struct {
	domain.Expansion
	Title  string
	Tracks []string
}

// Items returns the album's tracks as opaque items.
func (a *Album) Items() []any {
	items := make([]any, len(a.Tracks))
	for i, t := range a.Tracks {
		items[i] = t
	}
	return items
}

// CatalogFromConfig builds the demo group collection.
func CatalogFromConfig(cfg *config.Config) []domain.Group {
	groups := make([]domain.Group, 0, len(cfg.Catalog))
	for _, gc := range cfg.Catalog {
		alb := &Album{Title: gc.Title, Tracks: gc.Items}
		alb.SetExpanded(gc.Expanded)
		groups = append(groups, alb)
	}
	return groups
}

// AlbumCell is the parent cell: one header line plus a nested track list.
type AlbumCell struct {
	*adapter.BaseCell
	surface *view.ListSurface
	styles  *Styles
	title   string
	count   int
}

// Surface returns the cell's nested list surface.
func (c *AlbumCell) Surface() *view.ListSurface { return c.surface }

// RenderLine renders the header row.
func (c *AlbumCell) RenderLine(selected bool, width int) string {
	arrow := "▶"
	if c.surface != nil && c.surface.Visible() {
		arrow = "▼"
	}
	line := fmt.Sprintf("%s %s (%d)", arrow, c.title, c.count)
	if selected {
		if width > 0 {
			if pad := width - lipgloss.Width(line); pad > 0 {
				line += strings.Repeat(" ", pad)
			}
		}
		return c.styles.Cursor.Render(line)
	}
	return c.styles.Header.Render(line)
}

// TrackCell is the child cell: a single indented track row.
type TrackCell struct {
	*adapter.BaseChildCell
	styles *Styles
	label  string
	last   bool
}

// Label returns the bound track title.
func (c *TrackCell) Label() string { return c.label }

// RenderLine renders the track row.
func (c *TrackCell) RenderLine(selected bool, width int) string {
	branch := "├"
	if c.last {
		branch = "└"
	}
	line := fmt.Sprintf("  %s %s", branch, c.label)
	if selected {
		if width > 0 {
			if pad := width - lipgloss.Width(line); pad > 0 {
				line += strings.Repeat(" ", pad)
			}
		}
		return c.styles.Cursor.Render(line)
	}
	return c.styles.Item.Render(line)
}

// CatalogBinder implements adapter.Binder for the demo catalog. Click
// feedback goes to a status callback instead of any toast mechanism.
type CatalogBinder struct {
	styles *Styles
	status func(msg string)
}

// NewCatalogBinder creates a binder reporting interactions through status.
func NewCatalogBinder(styles *Styles, status func(msg string)) *CatalogBinder {
	if status == nil {
		status = func(string) {}
	}
	return &CatalogBinder{styles: styles, status: status}
}

func (b *CatalogBinder) CreateParentCell(kind int) adapter.ParentCell {
	surface := view.NewListSurface()
	header := view.Leaf{}
	return &AlbumCell{
		BaseCell: adapter.NewBaseCell(view.NewBox(header, surface)),
		surface:  surface,
		styles:   b.styles,
	}
}

func (b *CatalogBinder) BindParentCell(cell adapter.ParentCell, group domain.Group, position int) {
	c := cell.(*AlbumCell)
	alb := group.(*Album)
	c.title = alb.Title
	c.count = len(alb.Tracks)
}

func (b *CatalogBinder) CreateChildCell(parent adapter.ParentCell) adapter.ChildCell {
	return &TrackCell{
		BaseChildCell: adapter.NewBaseChildCell(view.Leaf{}),
		styles:        b.styles,
	}
}

func (b *CatalogBinder) BindChildCell(cell adapter.ChildCell, item any, position int) {
	c := cell.(*TrackCell)
	c.label, _ = item.(string)
	c.last = false
}

func (b *CatalogBinder) OnGroupClicked(group domain.Group, position int) {
	if alb, ok := group.(*Album); ok {
		b.status(alb.Title)
	}
}

func (b *CatalogBinder) OnItemClicked(click adapter.ItemClick) {
	if title, ok := click.Item.(string); ok {
		b.status(fmt.Sprintf("playing %s", title))
	}
}
