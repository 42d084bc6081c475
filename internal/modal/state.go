package modal

import "fmt"

// State is the decision surface's lifecycle position.
type State int

const (
	StateLoading State = iota
	StateResult
	StateError
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateResult:
		return "result"
	case StateError:
		return "error"
	case StateResolved:
		return "resolved"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Event drives state transitions.
type Event int

const (
	// EventAnalysis: the oracle produced a result.
	EventAnalysis Event = iota
	// EventFailure: the oracle call failed.
	EventFailure
	// EventDecision: the user activated a decision control.
	EventDecision
)

// Transition returns the state reached by applying ev in state s. The second
// return value is false when the transition is not legal; the state machine
// never moves on an illegal event.
func Transition(s State, ev Event) (State, bool) {
	switch s {
	case StateLoading:
		switch ev {
		case EventAnalysis:
			return StateResult, true
		case EventFailure:
			return StateError, true
		}
	case StateResult, StateError:
		if ev == EventDecision {
			return StateResolved, true
		}
	}
	return s, false
}

// ControlsEnabled reports whether the approve/reject controls are usable in
// state s. They are disabled while loading and after resolution, and always
// enabled in the error state so a failed analysis never strands the user.
func ControlsEnabled(s State) bool {
	return s == StateResult || s == StateError
}
