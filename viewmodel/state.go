// Package viewmodel binds a page's lifecycle to store calls and local
// pure transformations. View models are single-writer over their own
// state and hold no business invariants beyond sequencing, so they use
// no locking.
package viewmodel

// State is a view model's lifecycle position.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}
