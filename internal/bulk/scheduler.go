package bulk

// Scheduler splits work between a background execution context and the
// single render context. Go submits fire-and-forget background work;
// OnRender posts a continuation where surface mutation is safe.
type Scheduler interface {
	Go(fn func())
	OnRender(fn func())
}

// AsyncScheduler runs background work on fresh goroutines and hands render
// continuations to a sink, typically a program's message queue.
type AsyncScheduler struct {
	render func(func())
}

// NewAsyncScheduler creates a scheduler posting continuations through
// render. render must execute the functions it is given on the render
// context, in submission order.
func NewAsyncScheduler(render func(func())) *AsyncScheduler {
	return &AsyncScheduler{render: render}
}

func (s *AsyncScheduler) Go(fn func()) { go fn() }

func (s *AsyncScheduler) OnRender(fn func()) { s.render(fn) }

// SyncScheduler executes everything inline on the calling goroutine. Useful
// for hosts without a separate render queue and for deterministic tests.
type SyncScheduler struct{}

func (SyncScheduler) Go(fn func())       { fn() }
func (SyncScheduler) OnRender(fn func()) { fn() }
