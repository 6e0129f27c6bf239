package main

import (
	"fmt"

	"github.com/philipparndt/meshbake/pkg/analysis"
	"github.com/philipparndt/meshbake/pkg/pathgraph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <file.path>",
	Short: "Display information about a generated path graph",
	Args:  cobra.ExactArgs(1),
	RunE:  runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	graph, err := pathgraph.Parse(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	bbox := graph.BoundingBox()

	fmt.Fprintln(out, "Path Graph Information")
	fmt.Fprintln(out, "======================")
	fmt.Fprintf(out, "File: %s\n\n", args[0])
	fmt.Fprintf(out, "  Positions: %d\n", len(graph.Positions))
	fmt.Fprintf(out, "  Links: %d\n", len(graph.Links))
	fmt.Fprintf(out, "  Endpoints: %d\n", graph.Endpoints())
	fmt.Fprintf(out, "  Total Length: %.6f units\n", graph.TotalLength())
	if len(graph.Positions) > 0 {
		fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(bbox.Min))
		fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(bbox.Max))
	}
	return nil
}
