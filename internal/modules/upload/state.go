package upload

import "fmt"

// State is where an upload session currently sits. Results are reached
// only through partial results; there is no shortcut from uploading.
type State string

const (
	StateInitial        State = "initial"
	StateUploading      State = "uploading"
	StatePartialResults State = "partial_results"
	StateResults        State = "results"
)

type Event string

const (
	EventFileAccepted      Event = "file_accepted"
	EventFileRejected      Event = "file_rejected"
	EventAnalyzeSucceeded  Event = "analyze_succeeded"
	EventAnalyzeFailed     Event = "analyze_failed"
	EventGenerateSucceeded Event = "generate_succeeded"
	EventGenerateFailed    Event = "generate_failed"
	EventRestart           Event = "restart"
	EventDelete            Event = "delete"
)

var transitions = map[State]map[Event]State{
	StateInitial: {
		EventFileAccepted: StateUploading,
		EventFileRejected: StateInitial,
		EventRestart:      StateInitial,
	},
	StateUploading: {
		EventAnalyzeSucceeded: StatePartialResults,
		EventAnalyzeFailed:    StateInitial,
		EventRestart:          StateInitial,
	},
	StatePartialResults: {
		EventGenerateSucceeded: StateResults,
		EventGenerateFailed:    StateInitial,
		EventRestart:           StateInitial,
	},
	StateResults: {
		EventRestart: StateInitial,
		EventDelete:  StateInitial,
	},
}

// Transition applies one event to a state. Unknown combinations are an
// error and leave the caller's state untouched.
func Transition(state State, event Event) (State, error) {
	next, ok := transitions[state][event]
	if !ok {
		return state, fmt.Errorf("event %s not allowed in state %s", event, state)
	}
	return next, nil
}
