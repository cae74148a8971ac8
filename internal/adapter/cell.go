package adapter

import (
	"grouplist/internal/domain"
	"grouplist/internal/view"
)

// BaseCell carries the bound position and the header interaction handler
// for a parent cell. Hosts embed it and provide the view tree.
type BaseCell struct {
	root     view.Node
	position int
	headerFn func()
}

// NewBaseCell creates an unbound cell over the given root node.
func NewBaseCell(root view.Node) *BaseCell {
	return &BaseCell{root: root, position: domain.NoPosition}
}

func (c *BaseCell) Root() view.Node { return c.root }

// SetHeaderHandler installs the header interaction handler. The adapter
// wires this at cell creation; the handler resolves the position bound at
// click time.
func (c *BaseCell) SetHeaderHandler(fn func()) { c.headerFn = fn }

// Position returns the currently bound position, domain.NoPosition while
// the cell is in the pool.
func (c *BaseCell) Position() int { return c.position }

// SetPosition records the bound position. Called by the adapter on bind.
func (c *BaseCell) SetPosition(p int) { c.position = p }

// Click simulates a header interaction, the way a host forwards a tap or a
// key press on the header row.
func (c *BaseCell) Click() {
	if c.headerFn != nil {
		c.headerFn()
	}
}

// BaseChildCell is the nested-row counterpart of BaseCell.
type BaseChildCell struct {
	root    view.Node
	clickFn func()
}

// NewBaseChildCell creates a child cell over the given root node.
func NewBaseChildCell(root view.Node) *BaseChildCell {
	return &BaseChildCell{root: root}
}

func (c *BaseChildCell) Root() view.Node { return c.root }

// SetClickHandler installs the row interaction handler; rewired on every
// bind since the handler captures the bound item.
func (c *BaseChildCell) SetClickHandler(fn func()) { c.clickFn = fn }

// Click simulates a row interaction.
func (c *BaseChildCell) Click() {
	if c.clickFn != nil {
		c.clickFn()
	}
}
