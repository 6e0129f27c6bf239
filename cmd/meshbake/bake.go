package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/philipparndt/meshbake/internal/config"
	"github.com/philipparndt/meshbake/pkg/bake"
	"github.com/philipparndt/meshbake/pkg/graphgen"
	"github.com/spf13/cobra"
)

var bakeFlags struct {
	root        string
	datasetName string
	generator   string
	order       string
	dryRun      bool
	verbose     bool
	quiet       bool
}

var bakeCmd = &cobra.Command{
	Use:   "bake <num_layer>",
	Short: "Convert every .off mesh of the dataset into a path graph",
	Long: `Walk the dataset and run the graph generator once per .off file.

Each source below <dataset>/ is written to the mirrored location below
<dataset>-path-<num_layer>/ with the .path extension. Files whose output
already exists are skipped, so an interrupted run can simply be restarted.
Generator failures are reported and the walk continues.`,
	Example: `  meshbake bake 3
  meshbake bake 3 --order reverse --verbose
  meshbake bake 5 --root Dataset/ModelNet40/chair --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runBake,
}

func init() {
	bakeCmd.Flags().StringVarP(&bakeFlags.root, "root", "r", "", "directory to walk (default: dataset_dir)")
	bakeCmd.Flags().StringVar(&bakeFlags.datasetName, "dataset", "", "dataset directory name to mirror (default ModelNet40)")
	bakeCmd.Flags().StringVarP(&bakeFlags.generator, "generator", "g", "", "graph generator executable (default "+graphgen.DefaultExecutable+")")
	bakeCmd.Flags().StringVarP(&bakeFlags.order, "order", "o", "", "sibling directory order: native or reverse")
	bakeCmd.Flags().BoolVarP(&bakeFlags.dryRun, "dry-run", "n", false, "print generator commands instead of running them")
	bakeCmd.Flags().BoolVarP(&bakeFlags.verbose, "verbose", "v", false, "report files that already have an output")
	bakeCmd.Flags().BoolVarP(&bakeFlags.quiet, "quiet", "q", false, "suppress per-file progress")
	rootCmd.AddCommand(bakeCmd)
}

// parseLayers validates the layer count; the original text is kept for
// the generator and the output directory name
func parseLayers(arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("num_layer must be a positive integer, got %q", arg)
	}
	return arg, nil
}

func runBake(cmd *cobra.Command, args []string) error {
	layers, err := parseLayers(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(config.Flags{
		DatasetName: bakeFlags.datasetName,
		Generator:   bakeFlags.generator,
		Order:       bakeFlags.order,
	})
	if err != nil {
		return err
	}

	order, err := bake.ParseOrder(cfg.Order)
	if err != nil {
		return err
	}

	root := bakeFlags.root
	if root == "" {
		root = cfg.DatasetDir
	}

	out := cmd.OutOrStdout()
	generator := graphgen.NewGenerator(cfg.Generator, layers)

	var converter bake.Converter = generator
	if bakeFlags.dryRun {
		converter = &graphgen.DryRun{Generator: generator, Out: out}
	} else if !bakeFlags.quiet {
		generator.Stdout = out
	}

	baker := bake.NewBaker(converter, layers)
	baker.DatasetName = cfg.DatasetName
	baker.Order = order
	baker.Out = out
	baker.Err = cmd.ErrOrStderr()
	baker.Verbose = bakeFlags.verbose
	baker.Quiet = bakeFlags.quiet || bakeFlags.dryRun

	if !bakeFlags.quiet {
		fmt.Fprintf(out, "num_layer: %s\n", layers)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	stats, err := baker.Run(ctx, root)
	if !bakeFlags.quiet {
		fmt.Fprintf(out, "\nMeshes: %d  Converted: %d  Skipped: %d  Failed: %d\n",
			stats.Visited, stats.Converted, stats.Skipped, stats.Failed)
		if dir, ok := bake.KnownOutputRoot(root, cfg.DatasetName, layers); ok {
			fmt.Fprintf(out, "Output: %s\n", dir)
		} else {
			fmt.Fprintf(out, "Output: %s next to each %s directory under %s\n",
				bake.OutputDatasetName(cfg.DatasetName, layers), cfg.DatasetName, root)
		}
	}
	return err
}
