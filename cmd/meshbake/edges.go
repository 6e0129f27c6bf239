package main

import (
	"fmt"

	"github.com/philipparndt/meshbake/internal/config"
	"github.com/philipparndt/meshbake/pkg/analysis"
	"github.com/philipparndt/meshbake/pkg/off"
	"github.com/spf13/cobra"
)

var edgesFlags struct {
	count    int
	longest  bool
	shortest bool
	boundary bool
}

var edgesCmd = &cobra.Command{
	Use:   "edges <object_id|file.off>",
	Short: "List the edges of an OFF mesh",
	Long:  "List polygon edges, optionally the longest, the shortest or only those on an open boundary.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdges,
}

func init() {
	edgesCmd.Flags().IntVarP(&edgesFlags.count, "count", "n", 10, "number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesFlags.longest, "longest", "l", false, "show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesFlags.shortest, "shortest", "s", false, "show shortest edges")
	edgesCmd.Flags().BoolVarP(&edgesFlags.boundary, "boundary", "b", false, "show edges used by a single face")
	edgesCmd.MarkFlagsMutuallyExclusive("longest", "shortest", "boundary")
	rootCmd.AddCommand(edgesCmd)
}

func runEdges(cmd *cobra.Command, args []string) error {
	if edgesFlags.count < 0 {
		return fmt.Errorf("invalid --count %d: must not be negative", edgesFlags.count)
	}
	cfg, err := loadConfig(config.Flags{})
	if err != nil {
		return err
	}
	filename, err := resolveMesh(cfg, args[0])
	if err != nil {
		return err
	}
	mesh, err := off.Parse(filename)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeMesh(mesh)

	var edges []analysis.EdgeInfo
	var title string

	switch {
	case edgesFlags.longest:
		edges = analysis.FindLongestEdges(result, edgesFlags.count)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case edgesFlags.shortest:
		edges = analysis.FindShortestEdges(result, edgesFlags.count)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case edgesFlags.boundary:
		for _, edge := range result.AllEdges {
			if edge.Faces == 1 {
				edges = append(edges, edge)
			}
		}
		title = fmt.Sprintf("Boundary Edges (%d)", len(edges))
		if len(edges) > edgesFlags.count {
			edges = edges[:edgesFlags.count]
		}
	default:
		edges = result.AllEdges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesFlags.count, len(edges)), len(edges))
		if len(edges) > edgesFlags.count {
			edges = edges[:edgesFlags.count]
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total edges in mesh: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "Min edge length: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "Max edge length: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "Avg edge length: %.6f units\n\n", result.AvgEdgeLength)

	if len(edges) == 0 {
		fmt.Fprintln(out, "No edges found matching the criteria.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-13s %-35s %-35s %-15s\n", "Index", "Vertices", "Start", "End", "Length")
	fmt.Fprintln(out, "---------------------------------------------------------------------------------------------------------------------")
	for i, edge := range edges {
		fmt.Fprintf(out, "%-6d %-13s %-35s %-35s %-15.6f\n",
			i+1,
			fmt.Sprintf("%d-%d", edge.A, edge.B),
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}
	return nil
}
