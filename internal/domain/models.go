package domain

// Group is a top-level list entry owning an ordered set of child items and
// an expansion flag. Items must be stable within one bind cycle: the nested
// list is materialized once per bind, so repeated calls during a bind have
// to yield identical content.
type Group interface {
	Items() []any
	Expanded() bool
	SetExpanded(expanded bool)
}

// Expansion provides the expansion flag for concrete group types. Embed it
// to satisfy the Expanded/SetExpanded half of Group. Groups start collapsed.
type Expansion struct {
	expanded bool
}

// Expanded reports whether the group is currently expanded.
func (e *Expansion) Expanded() bool { return e.expanded }

// SetExpanded sets the expansion flag.
func (e *Expansion) SetExpanded(expanded bool) { e.expanded = expanded }

// Orientation selects the scroll axis of a nested item list.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// NoPosition is the sentinel index meaning "none" (no previously expanded
// group) or "append" (AddGroup position parameter).
const NoPosition = -1
