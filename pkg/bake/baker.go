// Package bake mirrors a mesh dataset into path graphs by running an
// external converter once per mesh.
//
// A destination file that already exists marks its source as processed and
// is never regenerated. Conversions run one at a time; failures are
// reported but neither retried nor fatal.
package bake

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Converter turns one source mesh into its destination file
type Converter interface {
	Convert(ctx context.Context, src, dst string) error
}

// Stats summarizes a run
type Stats struct {
	Visited   int // .off files seen
	Converted int // converter invoked and returned without error
	Skipped   int // destination already present
	Failed    int // converter returned an error
}

// Baker walks a dataset and converts each mesh
type Baker struct {
	Converter   Converter
	DatasetName string
	Layers      string
	Order       Order

	Out     io.Writer
	Err     io.Writer
	Verbose bool // report skipped files
	Quiet   bool // suppress per-file progress
}

// NewBaker creates a baker with the default dataset name and native order
func NewBaker(converter Converter, layers string) *Baker {
	return &Baker{
		Converter:   converter,
		DatasetName: DefaultDatasetName,
		Layers:      layers,
		Order:       OrderNative,
		Out:         io.Discard,
		Err:         io.Discard,
	}
}

// Run converts every .off file under root whose destination does not exist
// yet. It stops early only on file system errors or a cancelled context.
func (b *Baker) Run(ctx context.Context, root string) (Stats, error) {
	var stats Stats

	// a dataset found deeper below root gets its output root from the
	// per-file MkdirAll instead
	if outputRoot, ok := KnownOutputRoot(root, b.DatasetName, b.Layers); ok {
		if err := os.MkdirAll(outputRoot, 0755); err != nil {
			return stats, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	err := Walk(root, b.Order, func(src string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !IsSource(filepath.Base(src)) {
			return nil
		}
		stats.Visited++

		dst := DestinationPath(src, b.DatasetName, b.Layers)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", dst, err)
		}

		done, err := Exists(dst)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", dst, err)
		}
		if done {
			stats.Skipped++
			if b.Verbose {
				fmt.Fprintf(b.out(), "%s already exists\n", dst)
			}
			return nil
		}

		if !b.Quiet {
			fmt.Fprintf(b.out(), "[%d] %s -> %s\n", stats.Visited, src, dst)
		}
		if err := b.Converter.Convert(ctx, src, dst); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			stats.Failed++
			fmt.Fprintf(b.err(), "Warning: %v\n", err)
			return nil
		}
		stats.Converted++
		return nil
	})

	return stats, err
}

func (b *Baker) out() io.Writer {
	if b.Out == nil {
		return io.Discard
	}
	return b.Out
}

func (b *Baker) err() io.Writer {
	if b.Err == nil {
		return io.Discard
	}
	return b.Err
}
