// Package fsm implements a small named-state machine with enter/update/exit
// hooks. Transitions requested while another transition is running are
// queued and applied one per Update.
package fsm

import (
	"log"
)

// State is a named behavior mode. Every hook is optional.
type State struct {
	Name     string
	OnEnter  func()
	OnUpdate func(dt float64)
	OnExit   func()

	// Terminal states have no way out: once current, further SetState
	// requests are dropped.
	Terminal bool
}

// Machine owns a registry of states and drives transitions between them.
// It is not safe for concurrent use; it expects to be ticked from a single
// game loop.
type Machine struct {
	id     string
	logger *log.Logger

	states   map[string]*State
	current  *State
	previous *State

	changing bool
	queue    []string
}

// New creates an empty machine. id only shows up in log output.
func New(id string) *Machine {
	return &Machine{
		id:     id,
		logger: log.Default(),
		states: map[string]*State{},
	}
}

// WithLogger replaces the logger used for usage warnings.
func (m *Machine) WithLogger(l *log.Logger) *Machine {
	if l != nil {
		m.logger = l
	}
	return m
}

// ID returns the owner tag given to New.
func (m *Machine) ID() string { return m.id }

// AddState registers s under name, replacing any state already registered
// under the same name.
func (m *Machine) AddState(name string, s State) *Machine {
	s.Name = name
	m.states[name] = &s
	return m
}

// HasState reports whether name is registered.
func (m *Machine) HasState(name string) bool {
	_, ok := m.states[name]
	return ok
}

// SetState transitions to name. Unknown names are logged and ignored. If a
// transition is already running (an OnEnter or OnExit asked for another
// state) the request is queued for a later Update.
func (m *Machine) SetState(name string) {
	next, ok := m.states[name]
	if !ok {
		m.logger.Printf("fsm[%s]: tried to change to unknown state %q", m.id, name)
		return
	}

	if m.current != nil && m.current.Terminal {
		m.logger.Printf("fsm[%s]: ignoring %q, %q is terminal", m.id, name, m.current.Name)
		return
	}

	if m.changing {
		m.queue = append(m.queue, name)
		return
	}

	m.changing = true

	if m.current != nil && m.current.OnExit != nil {
		m.current.OnExit()
	}

	m.previous = m.current
	m.current = next

	if next.OnEnter != nil {
		next.OnEnter()
	}

	m.changing = false
}

// Update services at most one queued transition. When nothing is queued it
// runs the current state's OnUpdate with dt.
func (m *Machine) Update(dt float64) {
	if len(m.queue) > 0 {
		name := m.queue[0]
		m.queue = m.queue[1:]
		m.SetState(name)
		return
	}

	if m.current != nil && m.current.OnUpdate != nil {
		m.current.OnUpdate(dt)
	}
}

// IsCurrentState reports whether the current state is called name.
func (m *Machine) IsCurrentState(name string) bool {
	if m.current == nil {
		return false
	}
	return m.current.Name == name
}

// CurrentStateName returns the current state's name, or "" before the first
// transition.
func (m *Machine) CurrentStateName() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name
}

// PreviousStateName returns the name of the state left by the last
// transition, or "" if there is none.
func (m *Machine) PreviousStateName() string {
	if m.previous == nil {
		return ""
	}
	return m.previous.Name
}

// Pending returns the number of queued transition requests.
func (m *Machine) Pending() int { return len(m.queue) }
