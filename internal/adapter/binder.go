package adapter

import (
	"grouplist/internal/domain"
	"grouplist/internal/view"
)

// ParentCell is a reusable top-level display cell. Concrete hosts embed
// BaseCell for the position/handler plumbing and compose their own view
// nodes; the root's immediate children must include one view.ListSurface
// for the nested item list.
type ParentCell interface {
	Root() view.Node
	SetHeaderHandler(fn func())
	Position() int
	SetPosition(p int)
}

// ChildCell is a reusable nested display cell.
type ChildCell interface {
	Root() view.Node
	SetClickHandler(fn func())
}

// ItemClick reports a nested-row interaction to the host.
type ItemClick struct {
	Parent ParentCell
	Child  ChildCell
	Group  domain.Group
	Item   any
	Index  int
}

// Binder supplies the host-specific halves of the adapter: cell creation
// and binding for both levels, plus the interaction callbacks. The core
// only ever holds cells through ParentCell/ChildCell, never through
// concrete host types.
type Binder interface {
	CreateParentCell(kind int) ParentCell
	BindParentCell(cell ParentCell, group domain.Group, position int)
	CreateChildCell(parent ParentCell) ChildCell
	BindChildCell(cell ChildCell, item any, position int)
	OnGroupClicked(group domain.Group, position int)
	OnItemClicked(click ItemClick)
}
