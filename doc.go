// Package lexfsm provides a small, embeddable finite-state-machine engine
// built as the transition core for hand-written lexers and tokenizers.
//
// The engine owns no I/O and produces no tokens: callers feed it one input
// symbol at a time and it moves a current state along predicate-guarded
// edges. Two pieces do the real work:
//
//   - The transition engine: per-state edge lists plus a global fallback
//     list, first-match-wins in registration order, silent transitions, and
//     a one-level re-dispatch through the default state so a "reset" state
//     can absorb a symbol and immediately re-route it.
//
//   - The rule compiler: Compile turns a compact single-symbol pattern
//     ("a-z", "^\\s", ".", "\\d") into a reusable predicate over one byte.
//
// # Basic usage
//
// Build a machine, register edges, then drive it:
//
//	const (
//		Boundary = iota
//		Word
//	)
//
//	m := lexfsm.NewText(Boundary)
//	m.CreateEdge(Boundary, Word, `\w`, lexfsm.FlagNone)
//	m.CreateEdge(Word, Word, `\w`, lexfsm.FlagNone)
//	m.CreateGlobalEdge(Boundary, `\s`, lexfsm.FlagSilent)
//
//	for i := 0; i < len(input); i++ {
//		if m.Process(input[i]) {
//			// observable transition
//		}
//	}
//
// The generic FSM type works over any comparable state and symbol types;
// TextFSM is the byte specialization with pattern-string edge registration.
//
// # Diagnostics
//
// Info snapshots the graph for read-only consumers. The graph subpackage
// renders snapshots as Graphviz DOT or Mermaid text:
//
//	dot := graph.DotGraph(m.Info())
//
// A single machine instance must not be shared by concurrent callers; give
// each input stream its own Clone.
package lexfsm
