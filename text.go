package lexfsm

// TextFSM is the byte-symbol specialization of FSM used by hand-built lexers.
// Its edge registration methods take compiled rule patterns (see Compile) or
// single-byte literals, with the raw pattern text doubling as the edge label.
type TextFSM[TState comparable] struct {
	*FSM[TState, byte]
}

// NewText creates a text machine whose default and start state are both
// defaultState.
func NewText[TState comparable](
	defaultState TState,
	opts ...Option[TState, byte],
) *TextFSM[TState] {
	return &TextFSM[TState]{FSM: New(defaultState, opts...)}
}

// NewTextAt creates a text machine with a start state distinct from the
// default state.
func NewTextAt[TState comparable](
	defaultState, startState TState,
	opts ...Option[TState, byte],
) *TextFSM[TState] {
	return &TextFSM[TState]{FSM: NewAt(defaultState, startState, opts...)}
}

// CreateEdge registers a transition guarded by the compiled pattern. The
// pattern text is used as the edge label.
func (m *TextFSM[TState]) CreateEdge(source, destination TState, pattern string, flags EdgeFlag) {
	m.FSM.CreateEdge(source, destination, Compile(pattern), pattern, flags)
}

// CreateEdgeByte registers a transition taken on exactly the byte value.
func (m *TextFSM[TState]) CreateEdgeByte(source, destination TState, value byte, flags EdgeFlag) {
	m.FSM.CreateEdge(source, destination, Eq(value), string(value), flags)
}

// CreateGlobalEdge registers a fallback transition guarded by the compiled
// pattern, usable from any state.
func (m *TextFSM[TState]) CreateGlobalEdge(destination TState, pattern string, flags EdgeFlag) {
	m.FSM.CreateGlobalEdge(destination, Compile(pattern), pattern, flags)
}

// CreateGlobalEdgeByte registers a fallback transition taken on exactly the
// byte value.
func (m *TextFSM[TState]) CreateGlobalEdgeByte(destination TState, value byte, flags EdgeFlag) {
	m.FSM.CreateGlobalEdge(destination, Eq(value), string(value), flags)
}

// ProcessString feeds every byte of s through Process in order and returns
// the number of observable (non-silent) transitions.
func (m *TextFSM[TState]) ProcessString(s string) int {
	passed := 0
	for i := 0; i < len(s); i++ {
		if m.Process(s[i]) {
			passed++
		}
	}
	return passed
}
