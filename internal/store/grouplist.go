package store

import (
	"fmt"

	"grouplist/internal/domain"
)

// GroupList is the ordered, index-addressable group collection backing an
// adapter. Insertion order is display order. It is not synchronized: the
// contract is one writer at a time (the render context, plus at most the
// bulk expansion pass, which only touches expansion flags).
type GroupList struct {
	groups []domain.Group
}

// New wraps the caller-supplied groups. The slice is adopted, not copied;
// the collection lives for the adapter's lifetime.
func New(groups []domain.Group) *GroupList {
	return &GroupList{groups: groups}
}

// Len returns the number of groups.
func (l *GroupList) Len() int { return len(l.groups) }

// At returns the group at index i. Panics on out-of-range, like a slice:
// callers validate positions first.
func (l *GroupList) At(i int) domain.Group { return l.groups[i] }

// Insert places g at index i, shifting later groups right. i == Len appends.
func (l *GroupList) Insert(i int, g domain.Group) error {
	if i < 0 || i > len(l.groups) {
		return fmt.Errorf("insert at %d outside [0,%d]", i, len(l.groups))
	}
	l.groups = append(l.groups, nil)
	copy(l.groups[i+1:], l.groups[i:])
	l.groups[i] = g
	return nil
}

// Append adds g at the end.
func (l *GroupList) Append(g domain.Group) {
	l.groups = append(l.groups, g)
}

// RemoveAt removes and returns the group at index i.
func (l *GroupList) RemoveAt(i int) (domain.Group, error) {
	if i < 0 || i >= len(l.groups) {
		return nil, fmt.Errorf("remove at %d outside [0,%d)", i, len(l.groups))
	}
	g := l.groups[i]
	l.groups = append(l.groups[:i], l.groups[i+1:]...)
	return g, nil
}
