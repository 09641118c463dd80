package convert

// State discriminates the three conversion outcomes.
type State int

const (
	// StateSuccess indicates the value was restructured.
	StateSuccess State = iota

	// StateUnchanged indicates the value required no restructuring; the
	// outcome carries the original input.
	StateUnchanged

	// StateFailure indicates the conversion failed; the outcome carries a
	// categorized error.
	StateFailure
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateSuccess:
		return "success"
	case StateUnchanged:
		return "unchanged"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is the discriminated result of a lossless conversion. Callers
// branch on State or use Unwrap.
type Outcome struct {
	// State discriminates success, unchanged, and failure.
	State State
	// Value is the converted value (Success) or the original input
	// (Unchanged). Nil on failure.
	Value any
	// Err is the categorized error on failure, nil otherwise.
	Err error
}

// Success returns a restructured outcome.
func Success(v any) Outcome {
	return Outcome{State: StateSuccess, Value: v}
}

// Unchanged returns an outcome signaling that no restructuring occurred.
func Unchanged(v any) Outcome {
	return Outcome{State: StateUnchanged, Value: v}
}

// Failure returns a failed outcome.
func Failure(err error) Outcome {
	return Outcome{State: StateFailure, Err: err}
}

// Ok reports whether the outcome is Success or Unchanged.
func (o Outcome) Ok() bool {
	return o.State != StateFailure
}

// Unwrap returns the outcome's value, or its error on failure.
func (o Outcome) Unwrap() (any, error) {
	if o.State == StateFailure {
		return nil, o.Err
	}
	return o.Value, nil
}
