package adapter

import "grouplist/internal/view"

// Surface is the rendering surface the adapter is attached to. All calls
// happen on the render context. Implementations own recycling and diffing;
// the adapter only reports structural changes at specific positions.
type Surface interface {
	NotifyItemChanged(position int)
	NotifyItemInserted(position int)
	NotifyItemRemoved(position int)
	NotifyRangeChanged(start, count int)
	SmoothScrollTo(position int)
	SetLayout(l view.Layout)
}
