package main

import (
	"fmt"

	"github.com/philipparndt/meshbake/internal/config"
	"github.com/philipparndt/meshbake/pkg/off"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <object_id|file.off> <output.off>",
	Short: "Write a mesh scaled into the unit cube",
	Long: `Write a copy of the mesh moved to the origin and uniformly scaled so its
largest extent is 1. Path graph positions are expressed in this frame.`,
	Args: cobra.ExactArgs(2),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
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

	mesh.Normalize()
	if err := off.WriteFile(args[1], mesh); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[1])
	return nil
}
