package lexfsm

import (
	"fmt"
	"log/slog"
)

// FSM is a finite-state machine driven one input symbol at a time. It owns
// the transition graph (per-state edge lists plus a global fallback list) and
// the live position (current and previous state).
//
// An FSM is built once — a constructor call followed by a sequence of
// CreateEdge/CreateGlobalEdge/SetStateName calls — and then driven repeatedly
// via Process. There is no edge removal; callers must finish the build phase
// before the first Process call.
//
// A single FSM instance is not safe for concurrent use: the live position is
// mutated by every Process call. Use Clone to give each input stream its own
// position over a shared, frozen edge graph.
type FSM[TState, TCondition comparable] struct {
	defaultState  TState
	currentState  TState
	previousState TState

	possibleStates map[TState]struct{}
	edges          map[TState][]Edge[TState, TCondition]
	globalEdges    []Edge[TState, TCondition]
	stateNames     map[TState]string

	logger *slog.Logger
}

// Option configures an FSM at construction time.
type Option[TState, TCondition comparable] func(*FSM[TState, TCondition])

// WithLogger sets a logger that records every state change at Debug level.
func WithLogger[TState, TCondition comparable](logger *slog.Logger) Option[TState, TCondition] {
	return func(m *FSM[TState, TCondition]) {
		m.logger = logger
	}
}

// New creates a machine whose default and start state are both defaultState.
// The default state is the machine's "home": reaching it mid-step triggers one
// extra dispatch of the same symbol (see Process).
func New[TState, TCondition comparable](
	defaultState TState,
	opts ...Option[TState, TCondition],
) *FSM[TState, TCondition] {
	return NewAt(defaultState, defaultState, opts...)
}

// NewAt creates a machine with a start state distinct from the default state.
func NewAt[TState, TCondition comparable](
	defaultState, startState TState,
	opts ...Option[TState, TCondition],
) *FSM[TState, TCondition] {
	m := &FSM[TState, TCondition]{
		defaultState:   defaultState,
		currentState:   startState,
		previousState:  startState,
		possibleStates: make(map[TState]struct{}),
		edges:          make(map[TState][]Edge[TState, TCondition]),
		stateNames:     make(map[TState]string),
	}
	m.possibleStates[defaultState] = struct{}{}
	m.possibleStates[startState] = struct{}{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateEdge registers a transition from source to destination guarded by
// rule. Both endpoints are added to the machine's state set. Edges are
// consulted in registration order; the first rule that accepts a symbol wins.
func (m *FSM[TState, TCondition]) CreateEdge(
	source, destination TState,
	rule Rule[TCondition],
	label string,
	flags EdgeFlag,
) {
	m.edges[source] = append(m.edges[source], newEdge(source, destination, rule, label, flags))
	m.possibleStates[source] = struct{}{}
	m.possibleStates[destination] = struct{}{}
}

// CreateGlobalEdge registers a fallback transition usable from any state,
// consulted only after every local edge of the current state has declined the
// symbol. The edge is tagged FlagGlobal in addition to any supplied flags.
func (m *FSM[TState, TCondition]) CreateGlobalEdge(
	destination TState,
	rule Rule[TCondition],
	label string,
	flags EdgeFlag,
) {
	m.globalEdges = append(m.globalEdges, newEdge(m.defaultState, destination, rule, label, flags|FlagGlobal))
	m.possibleStates[destination] = struct{}{}
}

// SetStateName attaches a diagnostic label to a state. Names have no effect
// on transition behavior.
func (m *FSM[TState, TCondition]) SetStateName(state TState, name string) {
	m.stateNames[state] = name
}

// StateName returns the diagnostic label registered for state, or "" if none.
func (m *FSM[TState, TCondition]) StateName(state TState) string {
	return m.stateNames[state]
}

// Process feeds one symbol to the machine and reports whether an observable
// (non-silent) transition happened.
//
// The first edge accepting cond — local edges of the current state in
// registration order, then global edges in registration order — is applied.
// If that lands the machine on its default state, the same symbol is
// dispatched once more, letting the default state act as a transparent
// pass-through: one symbol can chain two transitions within a single call.
// The result is true if any applied edge was non-silent.
//
// When no edge accepts the symbol the state is left untouched and Process
// returns false; that is the normal no-transition outcome, not an error.
func (m *FSM[TState, TCondition]) Process(cond TCondition) bool {
	m.previousState = m.currentState

	edge, ok := m.findEdge(cond)
	if !ok {
		return false
	}
	m.changeState(edge.Destination)
	passed := !edge.IsSilent()

	if m.currentState == m.defaultState {
		if edge, ok = m.findEdge(cond); ok {
			m.changeState(edge.Destination)
			passed = passed || !edge.IsSilent()
		}
	}

	return passed
}

// ProcessState feeds one symbol to the machine and additionally returns the
// state the machine was in before the call — the same value PreviousState
// reports afterwards, not the state that was reached. The boolean is exactly
// Process's result.
func (m *FSM[TState, TCondition]) ProcessState(cond TCondition) (TState, bool) {
	changed := m.Process(cond)
	return m.previousState, changed
}

// CurrentState returns the state the machine is in.
func (m *FSM[TState, TCondition]) CurrentState() TState {
	return m.currentState
}

// PreviousState returns the state the machine was in before the most recent
// Process call.
func (m *FSM[TState, TCondition]) PreviousState() TState {
	return m.previousState
}

// DefaultState returns the machine's home state.
func (m *FSM[TState, TCondition]) DefaultState() TState {
	return m.defaultState
}

// Reset rewinds the live position to the default state. The edge graph is
// unaffected.
func (m *FSM[TState, TCondition]) Reset() {
	m.currentState = m.defaultState
	m.previousState = m.defaultState
}

// Clone returns a machine sharing this machine's edge graph, names and state
// set, with a fresh live position at the default state. The graph must be
// fully built before cloning; clones exist so many input streams can run over
// one frozen graph, each with its own position.
func (m *FSM[TState, TCondition]) Clone() *FSM[TState, TCondition] {
	return &FSM[TState, TCondition]{
		defaultState:   m.defaultState,
		currentState:   m.defaultState,
		previousState:  m.defaultState,
		possibleStates: m.possibleStates,
		edges:          m.edges,
		globalEdges:    m.globalEdges,
		stateNames:     m.stateNames,
		logger:         m.logger,
	}
}

// findEdge returns the first edge accepting cond: local edges of the current
// state first, then global edges, both in registration order.
func (m *FSM[TState, TCondition]) findEdge(cond TCondition) (Edge[TState, TCondition], bool) {
	for _, edge := range m.edges[m.currentState] {
		if edge.Rule.Match(cond) {
			return edge, true
		}
	}
	for _, edge := range m.globalEdges {
		if edge.Rule.Match(cond) {
			return edge, true
		}
	}
	var zero Edge[TState, TCondition]
	return zero, false
}

func (m *FSM[TState, TCondition]) changeState(destination TState) {
	if m.logger != nil {
		m.logger.Debug("state change", "from", m.currentState, "to", destination)
	}
	m.currentState = destination
}

// String returns a short description of the machine's position.
func (m *FSM[TState, TCondition]) String() string {
	return fmt.Sprintf("FSM { State = %v }", m.currentState)
}
