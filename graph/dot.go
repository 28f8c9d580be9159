package graph

import (
	"fmt"

	"github.com/lexfsm/lexfsm"
)

// DotGraphStyle generates Graphviz DOT graphs: box-shaped state nodes
// labeled "name (id)" when a diagnostic name is registered, solid arcs for
// observable edges, dotted arcs for silent ones.
type DotGraphStyle struct{}

// NewDotGraphStyle creates a new DOT graph style.
func NewDotGraphStyle() *DotGraphStyle {
	return &DotGraphStyle{}
}

// Prefix returns the text that starts a new DOT graph.
func (s *DotGraphStyle) Prefix(_ *lexfsm.MachineInfo) string {
	return "digraph G {\n"
}

// FormatOneState formats a single state node.
func (s *DotGraphStyle) FormatOneState(state lexfsm.StateInfo) string {
	return fmt.Sprintf("\t\"%s\" [shape=box label=\"%s\"]\n",
		EscapeLabel(state.ID), EscapeLabel(state.Label()))
}

// FormatOneTransition formats a single arc. The stored label already carries
// doubled backslashes, so only quotes need escaping here.
func (s *DotGraphStyle) FormatOneTransition(source, destination, label string, silent bool) string {
	style := "solid"
	if silent {
		style = "dotted"
	}
	return fmt.Sprintf("\t\"%s\" -> \"%s\" [style=%s label=\"%s\"]\n",
		EscapeLabel(source), EscapeLabel(destination), style, escapeQuotes(label))
}

// Suffix returns the text that closes the graph.
func (s *DotGraphStyle) Suffix() string {
	return "}\n"
}

// DotGraph renders a machine snapshot as a Graphviz DOT graph.
func DotGraph(info *lexfsm.MachineInfo) string {
	return Render(info, NewDotGraphStyle())
}
