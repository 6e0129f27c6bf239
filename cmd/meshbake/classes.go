package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/philipparndt/meshbake/internal/config"
	"github.com/philipparndt/meshbake/pkg/dataset"
	"github.com/spf13/cobra"
)

var classesFlags struct {
	metadata string
	split    string
}

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List dataset classes with their train and test counts",
	Long: `List the classes found in the dataset metadata. With --split the
objects of that split are listed instead.`,
	Args: cobra.NoArgs,
	RunE: runClasses,
}

func init() {
	classesCmd.Flags().StringVar(&classesFlags.metadata, "metadata", "", "metadata CSV (default Dataset/"+dataset.DefaultFile+")")
	classesCmd.Flags().StringVar(&classesFlags.split, "split", "", "list the objects of one split (train or test)")
	rootCmd.AddCommand(classesCmd)
}

func runClasses(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.Flags{Metadata: classesFlags.metadata})
	if err != nil {
		return err
	}
	meta, err := dataset.LoadMetadata(cfg.Metadata)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer tw.Flush()

	if classesFlags.split != "" {
		fmt.Fprintln(tw, "OBJECT\tCLASS\tPATH")
		for _, e := range meta.Split(classesFlags.split) {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ObjectID, e.Class, e.ObjectPath)
		}
		return nil
	}

	train := countByClass(meta.Split("train"))
	test := countByClass(meta.Split("test"))
	total := meta.Count()

	fmt.Fprintln(tw, "CLASS\tTRAIN\tTEST\tTOTAL")
	for _, class := range meta.Classes() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", class, train[class], test[class], total[class])
	}
	fmt.Fprintf(tw, "\t%d\t%d\t%d\n", len(meta.Split("train")), len(meta.Split("test")), len(meta.Entries))
	return nil
}

func countByClass(entries []dataset.Entry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Class]++
	}
	return counts
}
