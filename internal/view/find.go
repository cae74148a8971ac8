package view

// FindListSurface scans the immediate children of root for a ListSurface.
// The scan is deliberately shallow: cells are expected to place the surface
// one level below their root, and a deep walk could pick up a surface
// belonging to an unrelated nested widget. Returns nil when absent.
func FindListSurface(root Node) *ListSurface {
	if root == nil {
		return nil
	}
	for _, child := range root.Children() {
		if s, ok := child.(*ListSurface); ok {
			return s
		}
	}
	return nil
}
