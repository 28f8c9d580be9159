package lexfsm

import (
	"fmt"
	"sort"
)

// StateInfo describes one state for diagnostic consumers.
type StateInfo struct {
	// ID is the state's identity rendered as text.
	ID string

	// Name is the diagnostic label registered via SetStateName, or "".
	Name string
}

// EdgeInfo describes one edge for diagnostic consumers. For a global edge
// Source is empty: conceptually the edge leaves every state.
type EdgeInfo struct {
	Source      string
	Destination string

	// Label is the stored display text (backslashes doubled).
	Label string

	Silent bool
	Global bool
}

// MachineInfo is an immutable snapshot of a machine's graph, taken for
// diagnostic export. It carries no live position and no rules; consumers get
// read access to the state set, the edges and the registered names, nothing
// more.
type MachineInfo struct {
	// DefaultState is the home state's identity.
	DefaultState string

	// States lists every possible state, ordered by ID.
	States []StateInfo

	// Edges lists local edges grouped by source state (sources ordered by
	// ID, edges within a source in registration order), followed by global
	// edges in registration order.
	Edges []EdgeInfo
}

// Info snapshots the machine's graph for diagnostic export. The snapshot is
// independent of the machine's live position and safe to hold across
// subsequent Process calls.
func (m *FSM[TState, TCondition]) Info() *MachineInfo {
	info := &MachineInfo{
		DefaultState: stateID(m.defaultState),
	}

	info.States = make([]StateInfo, 0, len(m.possibleStates))
	for state := range m.possibleStates {
		info.States = append(info.States, StateInfo{
			ID:   stateID(state),
			Name: m.stateNames[state],
		})
	}
	sort.Slice(info.States, func(i, j int) bool {
		return info.States[i].ID < info.States[j].ID
	})

	sources := make([]TState, 0, len(m.edges))
	for source := range m.edges {
		sources = append(sources, source)
	}
	sort.Slice(sources, func(i, j int) bool {
		return stateID(sources[i]) < stateID(sources[j])
	})

	for _, source := range sources {
		for _, edge := range m.edges[source] {
			info.Edges = append(info.Edges, EdgeInfo{
				Source:      stateID(edge.Source),
				Destination: stateID(edge.Destination),
				Label:       edge.Label,
				Silent:      edge.IsSilent(),
				Global:      false,
			})
		}
	}
	for _, edge := range m.globalEdges {
		info.Edges = append(info.Edges, EdgeInfo{
			Destination: stateID(edge.Destination),
			Label:       edge.Label,
			Silent:      edge.IsSilent(),
			Global:      true,
		})
	}

	return info
}

// Label returns the display text for the state: "name (id)" when a name is
// registered, the bare id otherwise.
func (s StateInfo) Label() string {
	if s.Name != "" {
		return fmt.Sprintf("%s (%s)", s.Name, s.ID)
	}
	return s.ID
}

func stateID[TState comparable](state TState) string {
	return fmt.Sprintf("%v", state)
}
