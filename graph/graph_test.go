package graph

import "testing"

import (
	"github.com/stretchr/testify/assert"
)

// tree is a directed balanced binary tree: 0 -> {1, 2}, 1 -> {3, 4},
// 2 -> {5, 6}.
func tree(t *testing.T) *Graph {
	b := Build(true, 7, 6)
	v := make([]*Vertex, 0, 7)
	for i := 0; i < 7; i++ {
		v = append(v, b.AddVertex(0))
	}
	b.AddEdge(v[0], v[1], 0)
	b.AddEdge(v[0], v[2], 0)
	b.AddEdge(v[1], v[3], 0)
	b.AddEdge(v[1], v[4], 0)
	b.AddEdge(v[2], v[5], 0)
	b.AddEdge(v[2], v[6], 0)
	return b.Build()
}

func TestTreeDegrees(t *testing.T) {
	x := assert.New(t)
	g := tree(t)
	x.Equal(7, len(g.V))
	x.Equal(6, len(g.E))
	x.Equal(2, g.OutDegree(0))
	x.Equal(0, g.InDegree(0))
	x.Equal(2, g.Degree(0))
	x.Equal(3, g.Degree(1))
	x.Equal(1, g.InDegree(3))
	x.Equal(0, g.OutDegree(3))
}

func TestNeighbors(t *testing.T) {
	x := assert.New(t)
	g := tree(t)
	x.Equal([]int{1, 2}, g.Neighbors(0))
	x.Equal([]int{0, 3, 4}, g.Neighbors(1), "neighbors ignore direction")
	x.Equal([]int{1}, g.Neighbors(3))
}

func TestFindEdge(t *testing.T) {
	x := assert.New(t)
	g := tree(t)
	x.True(g.HasEdge(0, 1))
	x.False(g.HasEdge(1, 0), "directed arcs answer one way")
	x.False(g.HasEdge(3, 4))
	e, has := g.FindEdge(1, 3)
	x.True(has)
	x.Equal(1, e.Src)
	x.Equal(3, e.Targ)
}

func TestFindEdgeUndirected(t *testing.T) {
	x := assert.New(t)
	b := Build(false, 2, 1)
	u := b.AddVertex(0)
	v := b.AddVertex(0)
	b.AddEdge(u, v, 0)
	g := b.Build()
	x.True(g.HasEdge(0, 1))
	x.True(g.HasEdge(1, 0), "undirected arcs answer both ways")
}

func TestDuplicateArcsCollapse(t *testing.T) {
	x := assert.New(t)
	db := Build(true, 2, 3)
	u := db.AddVertex(0)
	v := db.AddVertex(0)
	db.AddEdge(u, v, 0)
	db.AddEdge(u, v, 0)
	db.AddEdge(v, u, 0)
	dg := db.Build()
	x.Equal(2, len(dg.E), "directed: u->v twice collapses, v->u is its own arc")

	ub := Build(false, 2, 2)
	a := ub.AddVertex(0)
	c := ub.AddVertex(0)
	ub.AddEdge(a, c, 0)
	ub.AddEdge(c, a, 0)
	ug := ub.Build()
	x.Equal(1, len(ug.E), "undirected: both orientations are the same edge")
}

func TestSelfLoop(t *testing.T) {
	x := assert.New(t)
	b := Build(true, 2, 2)
	u := b.AddVertex(0)
	v := b.AddVertex(0)
	b.AddEdge(u, u, 0)
	b.AddEdge(u, v, 0)
	g := b.Build()
	x.Equal(2, g.Degree(0), "a self loop sits in Adj once")
	x.Equal(2, g.OutDegree(0))
	x.Equal(1, g.InDegree(0))
	x.Equal([]int{1}, g.Neighbors(0), "a vertex is not its own neighbor")
}

func TestLabels(t *testing.T) {
	x := assert.New(t)
	labels := NewLabels()
	black := labels.Color("black")
	red := labels.Color("red")
	x.Equal(black, labels.Color("black"))
	x.NotEqual(black, red)
	x.Equal("black", labels.Label(black))
	x.Equal("red", labels.Label(red))
	x.Equal(2, labels.Len())
	x.Equal("color-[99]", labels.Label(99))
}
