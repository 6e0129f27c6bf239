package off

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/meshbake/pkg/geometry"
)

// Header is the literal first line of every OFF file
const Header = "OFF"

// ErrInvalidHeader is returned when the first line is not "OFF"
var ErrInvalidHeader = errors.New("not a valid OFF header")

// ParseError reports a problem at a specific line of the input
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads an OFF file and returns a Mesh named after the file stem
func Parse(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	mesh, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	mesh.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return mesh, nil
}

// Read parses OFF data. The first line must be exactly "OFF", followed by
// the vertex, face and edge counts, the vertex lines and the face lines.
// The edge count is read but unused.
func Read(reader io.Reader) (*Mesh, error) {
	lines := &lineReader{scanner: bufio.NewScanner(reader)}

	header, ok := lines.next(false)
	if !ok {
		if err := lines.err(); err != nil {
			return nil, err
		}
		return nil, &ParseError{Line: 1, Err: ErrInvalidHeader}
	}
	if header != Header {
		return nil, &ParseError{Line: lines.number, Err: ErrInvalidHeader}
	}

	counts, ok := lines.next(true)
	if !ok {
		return nil, lines.eof("counts")
	}
	vertexCount, faceCount, err := parseCounts(counts)
	if err != nil {
		return nil, &ParseError{Line: lines.number, Err: err}
	}

	mesh := NewMesh("")
	mesh.Vertices = make([]geometry.Vector3, 0, min(vertexCount, maxPrealloc))
	mesh.Faces = make([][]int, 0, min(faceCount, maxPrealloc))

	for i := 0; i < vertexCount; i++ {
		line, ok := lines.next(true)
		if !ok {
			return nil, lines.eof(fmt.Sprintf("vertex %d of %d", i+1, vertexCount))
		}
		v, err := geometry.ParseVector3(strings.Fields(line))
		if err != nil {
			return nil, &ParseError{Line: lines.number, Err: err}
		}
		mesh.AddVertex(v)
	}

	for i := 0; i < faceCount; i++ {
		line, ok := lines.next(true)
		if !ok {
			return nil, lines.eof(fmt.Sprintf("face %d of %d", i+1, faceCount))
		}
		face, err := parseFace(strings.Fields(line), vertexCount)
		if err != nil {
			return nil, &ParseError{Line: lines.number, Err: err}
		}
		mesh.AddFace(face...)
	}

	return mesh, nil
}

// maxPrealloc bounds the capacity taken from the counts line; larger
// meshes grow through append.
const maxPrealloc = 1 << 16

func parseCounts(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("expected vertex, face and edge counts, got %q", line)
	}
	var counts [3]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid count %q: %w", field, err)
		}
		if n < 0 {
			return 0, 0, fmt.Errorf("negative count %d", n)
		}
		counts[i] = n
	}
	return counts[0], counts[1], nil
}

// parseFace drops the leading corner count and returns the vertex indices.
// Trailing fields beyond the declared corners (per-face colors) are ignored.
func parseFace(fields []string, vertexCount int) ([]int, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty face")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid face size %q: %w", fields[0], err)
	}
	if n < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", n)
	}
	if len(fields)-1 < n {
		return nil, fmt.Errorf("face declares %d vertices but lists %d", n, len(fields)-1)
	}

	face := make([]int, n)
	for i := 0; i < n; i++ {
		idx, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid vertex index %q: %w", fields[i+1], err)
		}
		if idx < 0 || idx >= vertexCount {
			return nil, fmt.Errorf("vertex index %d out of range [0, %d)", idx, vertexCount)
		}
		face[i] = idx
	}
	return face, nil
}

// lineReader yields trimmed lines and tracks the 1-based line number
type lineReader struct {
	scanner *bufio.Scanner
	number  int
}

// next returns the next line. With skipBlank, empty lines and # comments
// are passed over.
func (l *lineReader) next(skipBlank bool) (string, bool) {
	for l.scanner.Scan() {
		l.number++
		line := strings.TrimSpace(l.scanner.Text())
		if skipBlank && (line == "" || strings.HasPrefix(line, "#")) {
			continue
		}
		return line, true
	}
	return "", false
}

func (l *lineReader) err() error {
	if err := l.scanner.Err(); err != nil {
		return fmt.Errorf("error reading OFF data: %w", err)
	}
	return nil
}

func (l *lineReader) eof(expected string) error {
	if err := l.err(); err != nil {
		return err
	}
	return &ParseError{Line: l.number + 1, Err: fmt.Errorf("unexpected end of file, expected %s: %w", expected, io.ErrUnexpectedEOF)}
}
