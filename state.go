package tailwindr

// renderState tracks post-processing progress for one render. Each render
// walks Idle through Done; any fatal error transitions directly to Failed.
type renderState int

const (
	stateIdle renderState = iota
	stateMaterializing
	stateCompiling
	stateBuildingReference
	stateSplicing
	stateCleaningUp
	stateDone
	stateFailed
)

// String returns the state name for logging.
func (s renderState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateMaterializing:
		return "materializing"
	case stateCompiling:
		return "compiling"
	case stateBuildingReference:
		return "building-reference"
	case stateSplicing:
		return "splicing"
	case stateCleaningUp:
		return "cleaning-up"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

// renderRun holds the per-render state machine.
type renderRun struct {
	state renderState
}

func (r *renderRun) transition(s renderState) {
	r.state = s
}
