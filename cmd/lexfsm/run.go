package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexfsm/lexfsm"
	"github.com/lexfsm/lexfsm/definition"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		input string
		trace bool
	)

	cmd := &cobra.Command{
		Use:   "run <machine.yaml>",
		Short: "Drive input text through a machine",
		Long: `Feed input bytes through a machine definition one at a time, printing one
line per observable transition. Input comes from stdin unless --input is set.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(rootOpts, args[0], input, trace, cmd)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input text (defaults to stdin)")
	cmd.Flags().BoolVar(&trace, "trace", false, "also print silent steps")

	return cmd
}

func runRun(opts *RootOptions, path, input string, trace bool, cmd *cobra.Command) error {
	def, err := definition.LoadFile(path)
	if err != nil {
		return err
	}

	var machineOpts []lexfsm.Option[string, byte]
	if opts.Verbose {
		machineOpts = append(machineOpts, lexfsm.WithLogger[string, byte](opts.Logger()))
	}
	m := def.Build(machineOpts...)

	var r io.Reader = cmd.InOrStdin()
	if input != "" {
		r = strings.NewReader(input)
	}

	return feed(m.FSM, r, trace, cmd)
}

func feed(m *lexfsm.FSM[string, byte], r io.Reader, trace bool, cmd *cobra.Command) error {
	buf := bufio.NewReader(r)
	pos := 0
	for {
		b, err := buf.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		from, changed := m.ProcessState(b)
		if changed || trace {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d %q  %s -> %s\n",
				pos, b, describe(m, from), describe(m, m.CurrentState()))
		}
		pos++
	}
}

func describe(m *lexfsm.FSM[string, byte], state string) string {
	if name := m.StateName(state); name != "" {
		return fmt.Sprintf("%s (%s)", name, state)
	}
	return state
}
