package databricks

import "fmt"

// LifeCycleState is the coarse stage of a run's lifecycle, distinct from
// the run's outcome.
type LifeCycleState string

// Life-cycle states the jobs API is known to emit.
const (
	LifeCycleStatePending       LifeCycleState = "PENDING"
	LifeCycleStateRunning       LifeCycleState = "RUNNING"
	LifeCycleStateTerminating   LifeCycleState = "TERMINATING"
	LifeCycleStateTerminated    LifeCycleState = "TERMINATED"
	LifeCycleStateSkipped       LifeCycleState = "SKIPPED"
	LifeCycleStateInternalError LifeCycleState = "INTERNAL_ERROR"
)

// ResultStateSuccess is the result state reported for a run that
// finished successfully.
const ResultStateSuccess = "SUCCESS"

var recognizedLifeCycleStates = map[LifeCycleState]bool{
	LifeCycleStatePending:       true,
	LifeCycleStateRunning:       true,
	LifeCycleStateTerminating:   true,
	LifeCycleStateTerminated:    true,
	LifeCycleStateSkipped:       true,
	LifeCycleStateInternalError: true,
}

// RunState models the state of a single job run.
//
// RunState is an immutable value: [Client.GetRunState] returns a fresh
// one on every query, and two RunStates compare equal with == exactly
// when all three fields match.
type RunState struct {
	// LifeCycleState is the stage of the run's lifecycle.
	LifeCycleState LifeCycleState

	// ResultState is the outcome classification, e.g. "SUCCESS".
	// Empty until the run reaches a terminal life-cycle state.
	ResultState string

	// StateMessage is a human-readable description of the current
	// state, supplied by the API.
	StateMessage string
}

// IsTerminal reports whether the run has reached a terminal life-cycle
// state (TERMINATED, SKIPPED, or INTERNAL_ERROR).
//
// A life-cycle state outside the recognized set is an error rather than
// false: it usually means the API introduced a new state this client
// does not know how to classify.
func (s RunState) IsTerminal() (bool, error) {
	if !recognizedLifeCycleStates[s.LifeCycleState] {
		return false, newError(CodeUnexpectedState,
			fmt.Sprintf("unexpected life cycle state %q: if the state has been introduced recently, check the jobs API documentation for troubleshooting information", s.LifeCycleState),
			0, nil)
	}
	switch s.LifeCycleState {
	case LifeCycleStateTerminated, LifeCycleStateSkipped, LifeCycleStateInternalError:
		return true, nil
	default:
		return false, nil
	}
}

// IsSuccessful reports whether the run finished with result state
// SUCCESS. Any other result state, including the empty one a
// non-terminal run carries, is not successful.
func (s RunState) IsSuccessful() bool {
	return s.ResultState == ResultStateSuccess
}

func (s RunState) String() string {
	return fmt.Sprintf("RunState(life_cycle_state=%s, result_state=%s, state_message=%s)",
		s.LifeCycleState, s.ResultState, s.StateMessage)
}
