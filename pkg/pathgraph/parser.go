package pathgraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/meshbake/pkg/geometry"
)

// Magic is the first line of every path graph file
const Magic = "PATHGRAPH"

// ErrInvalidHeader is returned when the magic line is missing
var ErrInvalidHeader = errors.New("not a path graph file")

// Parse reads a path graph file
func Parse(filename string) (*Graph, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	graph, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return graph, nil
}

// Read parses path graph data: the magic line, "<positions> <links>",
// one "x y z" line per position and one "a b" line per link.
func Read(reader io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(reader)
	lineNo := 0
	next := func() ([]string, bool) {
		if !scanner.Scan() {
			return nil, false
		}
		lineNo++
		return strings.Fields(scanner.Text()), true
	}

	fields, ok := next()
	if !ok || len(fields) != 1 || fields[0] != Magic {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading path graph: %w", err)
		}
		return nil, ErrInvalidHeader
	}

	fields, ok = next()
	if !ok || len(fields) != 2 {
		return nil, fmt.Errorf("line %d: expected position and link counts", lineNo+1)
	}
	positionCount, err1 := strconv.Atoi(fields[0])
	linkCount, err2 := strconv.Atoi(fields[1])
	if err := errors.Join(err1, err2); err != nil || positionCount < 0 || linkCount < 0 {
		return nil, fmt.Errorf("line %d: invalid counts %q", lineNo, strings.Join(fields, " "))
	}

	graph := &Graph{
		Positions: make([]geometry.Vector3, 0, min(positionCount, maxPrealloc)),
		Links:     make([][2]int, 0, min(linkCount, maxPrealloc)),
	}

	for i := 0; i < positionCount; i++ {
		fields, ok := next()
		if !ok {
			return nil, unexpectedEOF(scanner, "position", i, positionCount)
		}
		p, err := geometry.ParseVector3(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		graph.Positions = append(graph.Positions, p)
	}

	for i := 0; i < linkCount; i++ {
		fields, ok := next()
		if !ok {
			return nil, unexpectedEOF(scanner, "link", i, linkCount)
		}
		link, err := parseLink(fields, positionCount)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		graph.Links = append(graph.Links, link)
	}

	return graph, nil
}

// maxPrealloc bounds the capacity taken from the counts line
const maxPrealloc = 1 << 16

func parseLink(fields []string, positionCount int) ([2]int, error) {
	if len(fields) < 2 {
		return [2]int{}, fmt.Errorf("expected 2 link indices, got %d", len(fields))
	}
	var link [2]int
	for i := 0; i < 2; i++ {
		idx, err := strconv.Atoi(fields[i])
		if err != nil {
			return [2]int{}, fmt.Errorf("invalid link index %q: %w", fields[i], err)
		}
		if idx < 0 || idx >= positionCount {
			return [2]int{}, fmt.Errorf("link index %d out of range [0, %d)", idx, positionCount)
		}
		link[i] = idx
	}
	return link, nil
}

func unexpectedEOF(scanner *bufio.Scanner, what string, got, want int) error {
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading path graph: %w", err)
	}
	return fmt.Errorf("expected %d %ss, got %d: %w", want, what, got, io.ErrUnexpectedEOF)
}
