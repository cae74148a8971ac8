package adapter

import "grouplist/internal/domain"

// ChildController manages the nested item list of one (group, parent cell)
// pair. A fresh controller is built on every parent bind, so it always
// reflects the item sequence of the group currently occupying the cell.
// The sequence is materialized once, at construction.
//
// It implements view.Source; the parent cell's list surface pulls cells
// from it. Expansion state stays with the parent controller; the
// controller itself only knows its items.
type ChildController struct {
	binder Binder
	parent ParentCell
	group  domain.Group
	items  []any
}

// NewChildController captures the group's current items.
func NewChildController(binder Binder, parent ParentCell, group domain.Group) *ChildController {
	return &ChildController{
		binder: binder,
		parent: parent,
		group:  group,
		items:  group.Items(),
	}
}

// ItemCount returns the size of the captured sequence.
func (c *ChildController) ItemCount() int { return len(c.items) }

// CreateCell delegates to the host's child cell factory.
func (c *ChildController) CreateCell() any {
	return c.binder.CreateChildCell(c.parent)
}

// BindCell binds the item at position and wires the row interaction to the
// host's item click hook, reporting the full (parent, child, group, item)
// context.
func (c *ChildController) BindCell(cell any, position int) {
	cc, ok := cell.(ChildCell)
	if !ok || position < 0 || position >= len(c.items) {
		return
	}
	item := c.items[position]
	cc.SetClickHandler(func() {
		c.binder.OnItemClicked(ItemClick{
			Parent: c.parent,
			Child:  cc,
			Group:  c.group,
			Item:   item,
			Index:  position,
		})
	})
	c.binder.BindChildCell(cc, item, position)
}
