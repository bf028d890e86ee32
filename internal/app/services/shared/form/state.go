package form

import "clinic-site/internal/pkg/exceptions"

// State is where a public form is in its submit cycle.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailure    State = "failure"
)

var transitions = map[State][]State{
	StateIdle:       {StateValidating},
	StateValidating: {StateSubmitting, StateIdle},
	StateSubmitting: {StateSuccess, StateFailure},
	StateSuccess:    {StateIdle},
	StateFailure:    {StateIdle, StateValidating},
}

// Machine tracks one submission. The zero value starts idle.
type Machine struct {
	state State
}

func (m *Machine) State() State {
	if m.state == "" {
		return StateIdle
	}
	return m.state
}

// To moves the machine to next, rejecting moves the submit cycle does not allow.
func (m *Machine) To(next State) error {
	current := m.State()
	for _, allowed := range transitions[current] {
		if allowed == next {
			m.state = next
			return nil
		}
	}
	return exceptions.ErrInvalidFormTransition(string(current), string(next))
}

// Result is what a submission hands back to the page that rendered the form.
type Result struct {
	State        State             `json:"state"`
	FieldErrors  map[string]string `json:"field_errors,omitempty"`
	Notification string            `json:"notification,omitempty"`
	Redirect     string            `json:"redirect,omitempty"`
}

func (r *Result) Succeeded() bool {
	return r.State == StateSuccess
}
