package upload

import "testing"

func TestTransition(t *testing.T) {
	cases := []struct {
		name  string
		state State
		event Event
		next  State
		ok    bool
	}{
		{"accept file", StateInitial, EventFileAccepted, StateUploading, true},
		{"reject file stays initial", StateInitial, EventFileRejected, StateInitial, true},
		{"analyze succeeds", StateUploading, EventAnalyzeSucceeded, StatePartialResults, true},
		{"analyze fails", StateUploading, EventAnalyzeFailed, StateInitial, true},
		{"generate succeeds", StatePartialResults, EventGenerateSucceeded, StateResults, true},
		{"generate fails", StatePartialResults, EventGenerateFailed, StateInitial, true},
		{"restart from results", StateResults, EventRestart, StateInitial, true},
		{"delete from results", StateResults, EventDelete, StateInitial, true},

		{"no skip to results", StateUploading, EventGenerateSucceeded, StateUploading, false},
		{"no delete before results", StatePartialResults, EventDelete, StatePartialResults, false},
		{"no double accept", StateUploading, EventFileAccepted, StateUploading, false},
		{"no analyze from initial", StateInitial, EventAnalyzeSucceeded, StateInitial, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next, err := Transition(c.state, c.event)
			if c.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.ok && err == nil {
				t.Fatalf("expected error")
			}
			if next != c.next {
				t.Fatalf("expected state %s, got %s", c.next, next)
			}
		})
	}
}
