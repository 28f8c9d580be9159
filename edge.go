package lexfsm

import "strings"

// EdgeFlag is a bitmask of edge properties.
type EdgeFlag uint8

const (
	// FlagNone marks an edge with no special behavior.
	FlagNone EdgeFlag = 0

	// FlagSilent marks a transition that changes state without being
	// reported as an observable change by Process.
	FlagSilent EdgeFlag = 1 << 0

	// FlagGlobal marks a fallback edge usable from any state. It is applied
	// automatically by CreateGlobalEdge and carries no runtime behavior of
	// its own; globality is expressed by where the edge is stored.
	FlagGlobal EdgeFlag = 1 << 1
)

// Rule is a pure predicate over one input symbol. A rule is attached to an
// edge once and evaluated on every symbol the machine processes; it must be
// side-effect-free and stable.
type Rule[TCondition comparable] interface {
	Match(cond TCondition) bool
}

// RuleFunc adapts a plain predicate function to a Rule.
type RuleFunc[TCondition comparable] func(TCondition) bool

// Match reports whether the predicate accepts cond.
func (f RuleFunc[TCondition]) Match(cond TCondition) bool {
	return f(cond)
}

// literalRule accepts exactly one symbol, by equality.
type literalRule[TCondition comparable] struct {
	value TCondition
}

func (r literalRule[TCondition]) Match(cond TCondition) bool {
	return cond == r.value
}

// Eq returns the rule that accepts exactly value. It is the literal-value
// shorthand form of edge registration.
func Eq[TCondition comparable](value TCondition) Rule[TCondition] {
	return literalRule[TCondition]{value: value}
}

// Edge is a directed, rule-guarded transition between two states. Edges are
// immutable once created; the machine never deletes an edge or swaps its rule.
type Edge[TState, TCondition comparable] struct {
	// Source is the state the edge leaves from. For global edges it holds
	// the machine's default state as a placeholder and has no meaning.
	Source TState

	// Destination is the state the edge leads to.
	Destination TState

	// Rule guards the edge.
	Rule Rule[TCondition]

	// Label is the display text supplied at creation, with every backslash
	// doubled so graph exports round-trip escape sequences visually.
	Label string

	// Flags holds the edge's SILENT/GLOBAL bits.
	Flags EdgeFlag
}

func newEdge[TState, TCondition comparable](
	source, destination TState,
	rule Rule[TCondition],
	label string,
	flags EdgeFlag,
) Edge[TState, TCondition] {
	return Edge[TState, TCondition]{
		Source:      source,
		Destination: destination,
		Rule:        rule,
		Label:       escapeLabel(label),
		Flags:       flags,
	}
}

// IsSilent reports whether the edge's transitions are hidden from Process's
// return value.
func (e Edge[TState, TCondition]) IsSilent() bool {
	return e.Flags&FlagSilent != 0
}

// IsGlobal reports whether the edge was registered as a fallback from any
// state.
func (e Edge[TState, TCondition]) IsGlobal() bool {
	return e.Flags&FlagGlobal != 0
}

// escapeLabel doubles every backslash in label.
func escapeLabel(label string) string {
	return strings.ReplaceAll(label, `\`, `\\`)
}
