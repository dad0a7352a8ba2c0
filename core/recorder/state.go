package recorder

// State is the recording orchestrator's lifecycle phase. All movement between
// phases goes through one transition path so illegal jumps cannot happen.
type State string

const (
	StateIdle         State = "idle"
	StateCountingDown State = "counting_down"
	StateRecording    State = "recording"
	StatePaused       State = "paused"
	StateStopping     State = "stopping"
	StateSavingDraft  State = "saving_draft"
	StateDiscarded    State = "discarded"
	StateError        State = "error"
)

var validTransitions = map[State][]State{
	StateIdle:         {StateCountingDown},
	StateCountingDown: {StateRecording, StateStopping, StateIdle},
	StateRecording:    {StatePaused, StateStopping},
	StatePaused:       {StateRecording, StateStopping},
	StateStopping:     {StateSavingDraft, StateDiscarded, StateError},
	StateSavingDraft:  {StateIdle, StateError},
	StateDiscarded:    {StateIdle},
	StateError:        {StateIdle},
}

func canTransition(from, to State) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
