// Package graphgen invokes the external GraphGenerator executable that
// turns an OFF mesh into a path graph file.
//
// The executable's argument grammar is a fixed, opaque contract:
//
//	GraphGenerator <input.off> <num_layer> -p <output.path> -r
//
// The meaning of -r is not interpreted here and the exit status is only
// reported, never acted upon.
package graphgen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// DefaultExecutable is the generator binary looked up relative to the
// working directory
const DefaultExecutable = "./GraphGenerator.exe"

// Generator runs the external graph generator
type Generator struct {
	Executable string
	WorkDir    string
	Layers     string

	// Stdout receives the generator's progress output. Nil discards it.
	Stdout io.Writer
}

// NewGenerator creates a generator for the given executable and layer count
func NewGenerator(executable, layers string) *Generator {
	if executable == "" {
		executable = DefaultExecutable
	}
	return &Generator{
		Executable: executable,
		Layers:     layers,
	}
}

// Args returns the positional arguments passed to the executable
func (g *Generator) Args(src, dst string) []string {
	return []string{src, g.Layers, "-p", dst, "-r"}
}

// Command returns the full command line for display
func (g *Generator) Command(src, dst string) string {
	return strings.Join(append([]string{g.Executable}, g.Args(src, dst)...), " ")
}

// Convert runs the generator for one mesh and waits for it to finish
func (g *Generator) Convert(ctx context.Context, src, dst string) error {
	cmd := exec.CommandContext(ctx, g.Executable, g.Args(src, dst)...)
	cmd.Dir = g.WorkDir

	var stderr bytes.Buffer
	cmd.Stdout = g.Stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		errMsg.WriteString(fmt.Sprintf("failed to convert %s", src))
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			errMsg.WriteString(": ")
			errMsg.WriteString(msg)
		}
		return fmt.Errorf("%s: %w", errMsg.String(), err)
	}

	return nil
}

// DryRun prints the commands instead of running them
type DryRun struct {
	Generator *Generator
	Out       io.Writer
}

// Convert prints the command line that would be executed
func (d *DryRun) Convert(_ context.Context, src, dst string) error {
	_, err := fmt.Fprintln(d.Out, d.Generator.Command(src, dst))
	return err
}
