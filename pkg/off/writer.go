package off

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Write serializes a mesh in OFF format. The edge count is written as 0.
func Write(w io.Writer, mesh *Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, Header)
	fmt.Fprintf(bw, "%d %d 0\n", len(mesh.Vertices), len(mesh.Faces))

	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "%s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	}

	for _, face := range mesh.Faces {
		fields := make([]string, 0, len(face)+1)
		fields = append(fields, strconv.Itoa(len(face)))
		for _, idx := range face {
			fields = append(fields, strconv.Itoa(idx))
		}
		fmt.Fprintln(bw, strings.Join(fields, " "))
	}

	return bw.Flush()
}

// WriteFile writes a mesh to the named file
func WriteFile(filename string, mesh *Mesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(file, mesh); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return file.Close()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
