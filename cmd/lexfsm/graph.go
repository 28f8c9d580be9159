package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexfsm/lexfsm/definition"
	"github.com/lexfsm/lexfsm/graph"
)

// NewGraphCommand creates the graph command.
func NewGraphCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "graph <machine.yaml>",
		Short: "Render a machine's transition graph",
		Long: `Render the diagnostic graph of a machine definition.

Every state becomes one node, every edge one arc (dotted when silent), and
every global edge is fanned out from all states into its destination.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(rootOpts, args[0], format, out, cmd)
		},
	}

	cmd.Flags().StringVar(&format, "format", "dot", "output format (dot|mermaid)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write output to file instead of stdout")

	return cmd
}

func runGraph(opts *RootOptions, path, format, out string, cmd *cobra.Command) error {
	logger := opts.Logger()

	def, err := definition.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("definition loaded",
		"path", path,
		"edges", len(def.Edges),
		"global_edges", len(def.GlobalEdges))

	info := def.Build().Info()

	var rendered string
	switch format {
	case "dot":
		rendered = graph.DotGraph(info)
	case "mermaid":
		rendered = graph.MermaidGraph(info)
	default:
		return fmt.Errorf("invalid format %q: must be dot or mermaid", format)
	}

	if out == "" {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}
	if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	return nil
}
