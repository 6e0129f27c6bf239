package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/meshbake/internal/config"
	"github.com/philipparndt/meshbake/version"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "meshbake",
	Short: "Bake mesh datasets into path graphs and inspect the results",
	Long: `meshbake converts every OFF mesh of a ModelNet-style dataset into a path
graph by running an external generator, mirroring the dataset tree. It can
also inspect meshes, path graphs and dataset metadata, and render a mesh
textured with planar UV colors.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(flags config.Flags) (config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return cfg, err
	}
	cfg.Resolve(flags)
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
