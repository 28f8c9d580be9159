// Package graph renders diagnostic snapshots of lexfsm machines as text
// graph descriptions. It consumes the read-only MachineInfo view and never
// touches a machine's live position.
package graph

import (
	"strings"

	"github.com/lexfsm/lexfsm"
)

// Style defines the interface for formatting machine graphs.
type Style interface {
	// Prefix returns the text that starts a new graph.
	Prefix(info *lexfsm.MachineInfo) string

	// FormatOneState formats a single state node.
	FormatOneState(state lexfsm.StateInfo) string

	// FormatOneTransition formats a single arc. Source and destination are
	// state IDs; label is the stored (escaped) edge label.
	FormatOneTransition(source, destination, label string, silent bool) string

	// Suffix returns the text that closes the graph.
	Suffix() string
}

// Render formats a snapshot using the given style. Every possible state
// becomes one node; every local edge becomes one arc; every global edge is
// fanned out into one arc per possible state, all converging on the global
// edge's destination.
func Render(info *lexfsm.MachineInfo, style Style) string {
	var sb strings.Builder

	sb.WriteString(style.Prefix(info))

	for _, state := range info.States {
		sb.WriteString(style.FormatOneState(state))
	}
	sb.WriteString("\n")

	for _, edge := range info.Edges {
		if edge.Global {
			for _, state := range info.States {
				sb.WriteString(style.FormatOneTransition(state.ID, edge.Destination, edge.Label, edge.Silent))
			}
			continue
		}
		sb.WriteString(style.FormatOneTransition(edge.Source, edge.Destination, edge.Label, edge.Silent))
	}

	sb.WriteString(style.Suffix())
	return sb.String()
}

// EscapeLabel escapes backslashes and double quotes for embedding in a
// quoted graph label.
func EscapeLabel(label string) string {
	label = strings.ReplaceAll(label, `\`, `\\`)
	label = strings.ReplaceAll(label, `"`, `\"`)
	return label
}

// escapeQuotes escapes double quotes only, for text that already carries
// doubled backslashes (stored edge labels).
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
