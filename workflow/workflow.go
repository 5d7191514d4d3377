// Package workflow is the host's step table. It only tracks which action is
// allowed next; no action carries any processing.
package workflow

import (
	"errors"
	"fmt"
	"strings"
)

type State int

const (
	Init State = iota
	Loaded
	Step1Done
	Step2Done
	Step3Done
	Step4Done
)

var stateNames = [...]string{"init", "loaded", "step1-done", "step2-done", "step3-done", "step4-done"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

type Action int

const (
	Reset Action = iota
	Load
	Step1
	Step2
	Step3
	Step4
)

// Actions lists every action in button order.
var Actions = []Action{Reset, Load, Step1, Step2, Step3, Step4}

var actionNames = [...]string{"Reset", "Load from file", "Step1", "Step2", "Step3", "Step4"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// transitions maps each action to the state it requires and the state it
// produces. Reset has no requirement.
var transitions = map[Action]struct{ from, to State }{
	Load:  {Init, Loaded},
	Step1: {Loaded, Step1Done},
	Step2: {Step1Done, Step2Done},
	Step3: {Step2Done, Step3Done},
	Step4: {Step3Done, Step4Done},
}

var ErrActionDisabled = errors.New("workflow: action disabled")

// Machine holds the current workflow state.
type Machine struct {
	state State
}

func New() *Machine {
	return &Machine{state: Init}
}

func (m *Machine) State() State {
	return m.state
}

// Enabled reports whether a can be applied in the current state.
func (m *Machine) Enabled(a Action) bool {
	if a == Reset {
		return true
	}
	t, ok := transitions[a]
	return ok && t.from == m.state
}

// Apply performs a, or returns ErrActionDisabled without changing state.
func (m *Machine) Apply(a Action) error {
	if a == Reset {
		m.state = Init
		return nil
	}
	if !m.Enabled(a) {
		return fmt.Errorf("%w: %s in state %s", ErrActionDisabled, a, m.state)
	}
	m.state = transitions[a].to
	return nil
}

// Summary describes the state and the enabled actions, e.g. for a window title.
func (m *Machine) Summary() string {
	var enabled []string
	for _, a := range Actions {
		if m.Enabled(a) {
			enabled = append(enabled, a.String())
		}
	}
	return fmt.Sprintf("%s [%s]", m.state, strings.Join(enabled, ", "))
}
