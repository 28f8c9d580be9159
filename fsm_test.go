package lexfsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test state type.
type testState int

const (
	stateDefault testState = iota
	stateWord
	stateNumber
	stateSymbol
)

func (s testState) String() string {
	switch s {
	case stateDefault:
		return "Default"
	case stateWord:
		return "Word"
	case stateNumber:
		return "Number"
	case stateSymbol:
		return "Symbol"
	default:
		return "Unknown"
	}
}

func TestNewStartsAtDefault(t *testing.T) {
	m := New[testState, byte](stateDefault)

	assert.Equal(t, stateDefault, m.CurrentState())
	assert.Equal(t, stateDefault, m.PreviousState())
	assert.Equal(t, stateDefault, m.DefaultState())
}

func TestNewAtStartsAtStartState(t *testing.T) {
	m := NewAt[testState, byte](stateDefault, stateWord)

	assert.Equal(t, stateWord, m.CurrentState())
	assert.Equal(t, stateWord, m.PreviousState())
	assert.Equal(t, stateDefault, m.DefaultState())

	info := m.Info()
	require.Len(t, info.States, 2)
	assert.Equal(t, "Default", info.States[0].ID)
	assert.Equal(t, "Word", info.States[1].ID)
}

func TestProcessSimpleTransition(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.CreateEdge(stateDefault, stateWord, Eq[byte]('w'), "w", FlagNone)

	assert.True(t, m.Process('w'))
	assert.Equal(t, stateWord, m.CurrentState())
	assert.Equal(t, stateDefault, m.PreviousState())
}

func TestProcessNoMatchLeavesStateUntouched(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.CreateEdge(stateDefault, stateWord, Eq[byte]('w'), "w", FlagNone)

	assert.False(t, m.Process('x'))
	assert.Equal(t, stateDefault, m.CurrentState())
	assert.Equal(t, stateDefault, m.PreviousState())
}

func TestProcessSnapshotsPreviousStateEveryCall(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.CreateEdge(stateDefault, stateWord, Eq[byte]('w'), "w", FlagNone)
	m.CreateEdge(stateWord, stateNumber, Eq[byte]('1'), "1", FlagNone)

	m.Process('w')
	assert.Equal(t, stateDefault, m.PreviousState())

	m.Process('1')
	assert.Equal(t, stateWord, m.PreviousState())

	// No-match calls still move the snapshot forward.
	m.Process('?')
	assert.Equal(t, stateNumber, m.PreviousState())
}

func TestLocalEdgeWinsOverGlobalEdge(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.CreateGlobalEdge(stateSymbol, Eq[byte]('x'), "x", FlagNone)
	m.CreateEdge(stateDefault, stateWord, Eq[byte]('x'), "x", FlagNone)

	assert.True(t, m.Process('x'))
	assert.Equal(t, stateWord, m.CurrentState())
}

func TestGlobalEdgeAppliesFromAnyState(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.CreateEdge(stateDefault, stateWord, Eq[byte]('w'), "w", FlagNone)
	m.CreateGlobalEdge(stateSymbol, Eq[byte]('!'), "!", FlagNone)

	m.Process('w')
	require.Equal(t, stateWord, m.CurrentState())

	assert.True(t, m.Process('!'))
	assert.Equal(t, stateSymbol, m.CurrentState())
}

func TestFirstMatchingEdgeWins(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.CreateEdge(stateDefault, stateWord, Compile("a-z"), "a-z", FlagNone)
	m.CreateEdge(stateDefault, stateNumber, Compile("."), ".", FlagNone)

	m.Process('q')
	assert.Equal(t, stateWord, m.CurrentState(), "earlier edge must take priority")

	m.Reset()
	m.Process('5')
	assert.Equal(t, stateNumber, m.CurrentState())
}

func TestSilentTransitionChangesStateButReturnsFalse(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.CreateEdge(stateDefault, stateWord, Eq[byte]('w'), "w", FlagSilent)

	assert.False(t, m.Process('w'))
	assert.Equal(t, stateWord, m.CurrentState())
}

func TestDefaultStateReentry(t *testing.T) {
	// Word --x--> Default --x--> Number: one symbol, two chained
	// transitions within a single call.
	m := NewAt[testState, byte](stateDefault, stateWord)
	m.CreateEdge(stateWord, stateDefault, Eq[byte]('x'), "x", FlagNone)
	m.CreateEdge(stateDefault, stateNumber, Eq[byte]('x'), "x", FlagNone)

	assert.True(t, m.Process('x'))
	assert.Equal(t, stateNumber, m.CurrentState())
	assert.Equal(t, stateWord, m.PreviousState())
}

func TestDefaultStateReentryHappensOnlyOnce(t *testing.T) {
	// Default --x--> Default would loop if re-entry repeated; it must be
	// attempted exactly once more.
	m := New[testState, byte](stateDefault)
	m.CreateEdge(stateDefault, stateDefault, Eq[byte]('x'), "x", FlagNone)

	assert.True(t, m.Process('x'))
	assert.Equal(t, stateDefault, m.CurrentState())
}

func TestNoReentryThroughNonDefaultState(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.CreateEdge(stateDefault, stateWord, Eq[byte]('x'), "x", FlagNone)
	m.CreateEdge(stateWord, stateNumber, Eq[byte]('x'), "x", FlagNone)

	m.Process('x')
	assert.Equal(t, stateWord, m.CurrentState(), "chaining is reserved for the default state")
}

func TestReentrySilenceAccumulatesAsOr(t *testing.T) {
	build := func(firstFlags, secondFlags EdgeFlag) *FSM[testState, byte] {
		m := NewAt[testState, byte](stateDefault, stateWord)
		m.CreateEdge(stateWord, stateDefault, Eq[byte]('x'), "x", firstFlags)
		m.CreateEdge(stateDefault, stateNumber, Eq[byte]('x'), "x", secondFlags)
		return m
	}

	assert.True(t, build(FlagNone, FlagNone).Process('x'))
	assert.True(t, build(FlagSilent, FlagNone).Process('x'))
	assert.True(t, build(FlagNone, FlagSilent).Process('x'))
	assert.False(t, build(FlagSilent, FlagSilent).Process('x'))
}

func TestReentryConsultsGlobalEdges(t *testing.T) {
	m := NewAt[testState, byte](stateDefault, stateWord)
	m.CreateEdge(stateWord, stateDefault, Eq[byte]('x'), "x", FlagSilent)
	m.CreateGlobalEdge(stateSymbol, Eq[byte]('x'), "x", FlagNone)

	assert.True(t, m.Process('x'))
	assert.Equal(t, stateSymbol, m.CurrentState())
}

func TestProcessStateReturnsPreTransitionState(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.CreateEdge(stateDefault, stateWord, Eq[byte]('w'), "w", FlagNone)

	state, changed := m.ProcessState('w')
	assert.True(t, changed)
	assert.Equal(t, stateDefault, state, "ProcessState reports the state before the call")
	assert.Equal(t, state, m.PreviousState())
	assert.Equal(t, stateWord, m.CurrentState())

	state, changed = m.ProcessState('?')
	assert.False(t, changed)
	assert.Equal(t, stateWord, state)
}

func TestDeterministicTrajectories(t *testing.T) {
	build := func() *FSM[testState, byte] {
		m := New[testState, byte](stateDefault)
		m.CreateEdge(stateDefault, stateWord, Compile(`\w`), `\w`, FlagNone)
		m.CreateEdge(stateWord, stateWord, Compile(`\w\d`), `\w\d`, FlagSilent)
		m.CreateEdge(stateDefault, stateNumber, Compile(`\d`), `\d`, FlagNone)
		m.CreateGlobalEdge(stateDefault, Compile("."), ".", FlagSilent)
		return m
	}

	input := "foo1 bar 42x \tmix9"

	run := func(m *FSM[testState, byte]) ([]testState, []bool) {
		states := make([]testState, 0, len(input))
		results := make([]bool, 0, len(input))
		for i := 0; i < len(input); i++ {
			results = append(results, m.Process(input[i]))
			states = append(states, m.CurrentState())
		}
		return states, results
	}

	statesA, resultsA := run(build())
	statesB, resultsB := run(build())

	assert.Equal(t, statesA, statesB)
	assert.Equal(t, resultsA, resultsB)
}

func TestStateNames(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.SetStateName(stateDefault, "boundary")

	assert.Equal(t, "boundary", m.StateName(stateDefault))
	assert.Equal(t, "", m.StateName(stateWord), "unnamed states report the empty string")
}

func TestReset(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.CreateEdge(stateDefault, stateWord, Eq[byte]('w'), "w", FlagNone)
	m.Process('w')
	require.Equal(t, stateWord, m.CurrentState())

	m.Reset()
	assert.Equal(t, stateDefault, m.CurrentState())
	assert.Equal(t, stateDefault, m.PreviousState())
}

func TestCloneSharesGraphWithFreshPosition(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.CreateEdge(stateDefault, stateWord, Eq[byte]('w'), "w", FlagNone)
	m.SetStateName(stateWord, "word")
	m.Process('w')
	require.Equal(t, stateWord, m.CurrentState())

	clone := m.Clone()
	assert.Equal(t, stateDefault, clone.CurrentState())
	assert.Equal(t, "word", clone.StateName(stateWord))

	// Driving the clone leaves the original's position alone.
	assert.True(t, clone.Process('w'))
	assert.Equal(t, stateWord, clone.CurrentState())
	assert.Equal(t, stateWord, m.CurrentState())
}

func TestEdgeFlagChecks(t *testing.T) {
	edge := newEdge(stateDefault, stateWord, Eq[byte]('w'), "w", FlagSilent|FlagGlobal)

	assert.True(t, edge.IsSilent())
	assert.True(t, edge.IsGlobal())
	assert.False(t, newEdge(stateDefault, stateWord, Eq[byte]('w'), "w", FlagNone).IsSilent())
}

func TestEdgeLabelDoublesBackslashes(t *testing.T) {
	edge := newEdge(stateDefault, stateWord, Compile(`\w`), `\w`, FlagNone)

	assert.Equal(t, `\\w`, edge.Label)
}

func TestInfoSnapshot(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.SetStateName(stateDefault, "boundary")
	m.CreateEdge(stateDefault, stateWord, Compile(`\w`), `\w`, FlagNone)
	m.CreateEdge(stateWord, stateWord, Compile(`\w`), `\w`, FlagSilent)
	m.CreateGlobalEdge(stateDefault, Compile("."), ".", FlagNone)

	info := m.Info()

	assert.Equal(t, "Default", info.DefaultState)

	require.Len(t, info.States, 2)
	assert.Equal(t, "Default", info.States[0].ID)
	assert.Equal(t, "boundary (Default)", info.States[0].Label())
	assert.Equal(t, "Word", info.States[1].ID)
	assert.Equal(t, "Word", info.States[1].Label())

	require.Len(t, info.Edges, 3)
	assert.Equal(t, EdgeInfo{Source: "Default", Destination: "Word", Label: `\\w`}, info.Edges[0])
	assert.Equal(t, EdgeInfo{Source: "Word", Destination: "Word", Label: `\\w`, Silent: true}, info.Edges[1])
	assert.Equal(t, EdgeInfo{Destination: "Default", Label: ".", Global: true}, info.Edges[2])
}

func TestCreateGlobalEdgeForcesGlobalFlag(t *testing.T) {
	m := New[testState, byte](stateDefault)
	m.CreateGlobalEdge(stateWord, Eq[byte]('x'), "x", FlagSilent)

	info := m.Info()
	require.Len(t, info.Edges, 1)
	assert.True(t, info.Edges[0].Global)
	assert.True(t, info.Edges[0].Silent)
}

func TestGenericStringStates(t *testing.T) {
	m := New[string, rune]("idle")
	m.CreateEdge("idle", "busy", Eq('g'), "g", FlagNone)
	m.CreateGlobalEdge("idle", RuleFunc[rune](func(r rune) bool { return r == 's' }), "stop", FlagNone)

	assert.True(t, m.Process('g'))
	assert.Equal(t, "busy", m.CurrentState())
	assert.True(t, m.Process('s'))
	assert.Equal(t, "idle", m.CurrentState())
}
