package graph

import (
	"fmt"
	"strings"

	"github.com/lexfsm/lexfsm"
)

// MermaidDirection specifies the direction of a Mermaid graph.
type MermaidDirection int

const (
	// TopToBottom flows from top to bottom.
	TopToBottom MermaidDirection = iota
	// BottomToTop flows from bottom to top.
	BottomToTop
	// LeftToRight flows from left to right.
	LeftToRight
	// RightToLeft flows from right to left.
	RightToLeft
)

// MermaidGraphStyle generates Mermaid stateDiagram-v2 graphs.
type MermaidGraphStyle struct {
	direction *MermaidDirection
}

// NewMermaidGraphStyle creates a new Mermaid graph style.
func NewMermaidGraphStyle(direction *MermaidDirection) *MermaidGraphStyle {
	return &MermaidGraphStyle{direction: direction}
}

// Prefix returns the diagram header, the optional direction line, and one
// alias line per state whose display label differs from its node name.
func (s *MermaidGraphStyle) Prefix(info *lexfsm.MachineInfo) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	if s.direction != nil {
		sb.WriteString(fmt.Sprintf("\tdirection %s\n", directionCode(*s.direction)))
	}

	for _, state := range info.States {
		node := sanitizeNodeName(state.ID)
		if label := state.Label(); label != node {
			sb.WriteString(fmt.Sprintf("\t%s : %s\n", node, label))
		}
	}

	return sb.String()
}

// FormatOneState formats nothing: Mermaid needs no explicit node lines
// beyond the aliases emitted by Prefix.
func (s *MermaidGraphStyle) FormatOneState(_ lexfsm.StateInfo) string {
	return ""
}

// FormatOneTransition formats a single arc.
func (s *MermaidGraphStyle) FormatOneTransition(source, destination, label string, silent bool) string {
	text := label
	if silent {
		text += " [silent]"
	}
	return fmt.Sprintf("\t%s --> %s : %s\n",
		sanitizeNodeName(source), sanitizeNodeName(destination), text)
}

// Suffix returns the text that closes the graph.
func (s *MermaidGraphStyle) Suffix() string {
	return ""
}

// MermaidGraph renders a machine snapshot as a Mermaid state diagram.
func MermaidGraph(info *lexfsm.MachineInfo) string {
	return Render(info, NewMermaidGraphStyle(nil))
}

// MermaidGraphWithDirection renders a machine snapshot as a Mermaid state
// diagram flowing in the given direction.
func MermaidGraphWithDirection(info *lexfsm.MachineInfo, direction MermaidDirection) string {
	return Render(info, NewMermaidGraphStyle(&direction))
}

func directionCode(direction MermaidDirection) string {
	switch direction {
	case BottomToTop:
		return "BT"
	case LeftToRight:
		return "LR"
	case RightToLeft:
		return "RL"
	default:
		return "TB"
	}
}

// sanitizeNodeName maps a state ID to a Mermaid-safe node identifier.
func sanitizeNodeName(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
