// Package pathgraph reads the path graphs written by the external graph
// generator. The bake pipeline never inspects these files; they are read
// only for inspection and display.
package pathgraph

import (
	"github.com/philipparndt/meshbake/pkg/geometry"
)

// Graph is the largest connected path component of a mesh
type Graph struct {
	Positions []geometry.Vector3
	Links     [][2]int
}

// BoundingBox returns the bounds of all positions
func (g *Graph) BoundingBox() geometry.BoundingBox {
	return geometry.BoundsOf(g.Positions)
}

// TotalLength sums the lengths of all links
func (g *Graph) TotalLength() float64 {
	total := 0.0
	for _, link := range g.Links {
		total += g.Positions[link[0]].Distance(g.Positions[link[1]])
	}
	return total
}

// Degree returns the number of links touching each position
func (g *Graph) Degree() []int {
	degree := make([]int, len(g.Positions))
	for _, link := range g.Links {
		degree[link[0]]++
		if link[1] != link[0] {
			degree[link[1]]++
		}
	}
	return degree
}

// Endpoints counts positions with exactly one link
func (g *Graph) Endpoints() int {
	count := 0
	for _, d := range g.Degree() {
		if d == 1 {
			count++
		}
	}
	return count
}
