// Package definition loads declarative machine descriptions from YAML and
// builds lexfsm text machines from them. It exists for tooling (the lexfsm
// CLI) and for applications that keep their tokenizer graphs in config files
// rather than code.
package definition

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexfsm/lexfsm"
)

// State declares one state and its optional diagnostic name.
type State struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name,omitempty"`
}

// Edge declares one transition. Exactly one of Rule (a compiled pattern) or
// Byte (a single-character literal) must be set. From is empty for global
// edges.
type Edge struct {
	From   string `yaml:"from,omitempty"`
	To     string `yaml:"to"`
	Rule   string `yaml:"rule,omitempty"`
	Byte   string `yaml:"byte,omitempty"`
	Silent bool   `yaml:"silent,omitempty"`
}

// Machine is a declarative description of a text machine.
type Machine struct {
	DefaultState string  `yaml:"default_state"`
	StartState   string  `yaml:"start_state,omitempty"`
	States       []State `yaml:"states,omitempty"`
	Edges        []Edge  `yaml:"edges"`
	GlobalEdges  []Edge  `yaml:"global_edges,omitempty"`
}

// Load decodes a machine description from r and validates it.
func Load(r io.Reader) (*Machine, error) {
	var m Machine
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode machine definition: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile decodes a machine description from the file at path.
func LoadFile(path string) (*Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open machine definition: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (m *Machine) validate() error {
	if m.DefaultState == "" {
		return fmt.Errorf("machine definition: default_state is required")
	}
	for i, s := range m.States {
		if s.ID == "" {
			return fmt.Errorf("machine definition: states[%d]: id is required", i)
		}
	}
	for i, e := range m.Edges {
		if e.From == "" {
			return fmt.Errorf("machine definition: edges[%d]: from is required", i)
		}
		if err := e.validate(); err != nil {
			return fmt.Errorf("machine definition: edges[%d]: %w", i, err)
		}
	}
	for i, e := range m.GlobalEdges {
		if e.From != "" {
			return fmt.Errorf("machine definition: global_edges[%d]: from is not allowed", i)
		}
		if err := e.validate(); err != nil {
			return fmt.Errorf("machine definition: global_edges[%d]: %w", i, err)
		}
	}
	return nil
}

func (e *Edge) validate() error {
	if e.To == "" {
		return fmt.Errorf("to is required")
	}
	if (e.Rule == "") == (e.Byte == "") {
		return fmt.Errorf("exactly one of rule or byte is required")
	}
	if e.Byte != "" && len(e.Byte) != 1 {
		return fmt.Errorf("byte literal %q must be a single character", e.Byte)
	}
	return nil
}

// Build instantiates the described machine. States referenced only by edges
// need no declaration; the engine grows its state set as edges are
// registered.
func (m *Machine) Build(opts ...lexfsm.Option[string, byte]) *lexfsm.TextFSM[string] {
	var fsm *lexfsm.TextFSM[string]
	if m.StartState != "" {
		fsm = lexfsm.NewTextAt(m.DefaultState, m.StartState, opts...)
	} else {
		fsm = lexfsm.NewText(m.DefaultState, opts...)
	}

	for _, s := range m.States {
		if s.Name != "" {
			fsm.SetStateName(s.ID, s.Name)
		}
	}

	for _, e := range m.Edges {
		if e.Byte != "" {
			fsm.CreateEdgeByte(e.From, e.To, e.Byte[0], e.flags())
			continue
		}
		fsm.CreateEdge(e.From, e.To, e.Rule, e.flags())
	}
	for _, e := range m.GlobalEdges {
		if e.Byte != "" {
			fsm.CreateGlobalEdgeByte(e.To, e.Byte[0], e.flags())
			continue
		}
		fsm.CreateGlobalEdge(e.To, e.Rule, e.flags())
	}

	return fsm
}

func (e *Edge) flags() lexfsm.EdgeFlag {
	if e.Silent {
		return lexfsm.FlagSilent
	}
	return lexfsm.FlagNone
}
