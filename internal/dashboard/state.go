package dashboard

// State tracks a resource list's lifecycle. Loading is entered on the
// first refresh and on every post-mutation refetch; mutations carry their
// own flags so a list stays interactive while one is in flight.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}
