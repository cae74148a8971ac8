package bulk

import (
	"grouplist/internal/eventbus"
	"grouplist/internal/store"
)

// Updater applies a uniform expansion state to every group off the render
// context, then re-enters the render context to notify. The flag pass fully
// completes before the notification step begins.
//
// Apply is fire-and-forget: no cancellation, no queueing, no mutual
// exclusion. Two overlapping calls race on the flags, last writer wins per
// group in unspecified order. Callers must not run structural mutations
// concurrently with an in-flight pass.
type Updater struct {
	groups   *store.GroupList
	bus      eventbus.EventBus
	sched    Scheduler
	attached func() bool
	notify   func(expanded bool)
}

// NewUpdater creates an updater. attached is polled at completion time on
// the render context; notify issues the full-range notification and is only
// called while attached. The flag mutation applies either way.
func NewUpdater(groups *store.GroupList, bus eventbus.EventBus, sched Scheduler, attached func() bool, notify func(expanded bool)) *Updater {
	return &Updater{
		groups:   groups,
		bus:      bus,
		sched:    sched,
		attached: attached,
		notify:   notify,
	}
}

// Apply sets every group's expansion flag to state in the background and
// posts one notification continuation to the render context.
func (u *Updater) Apply(state bool) {
	u.sched.Go(func() {
		n := u.groups.Len()
		for i := 0; i < n; i++ {
			u.groups.At(i).SetExpanded(state)
		}
		u.sched.OnRender(func() {
			ok := u.attached()
			if ok {
				u.notify(state)
			}
			u.bus.Publish(eventbus.BulkExpansionEvent{Expanded: state, Groups: n, Notified: ok})
		})
	})
}
