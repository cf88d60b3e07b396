package subgraph

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/motif/graph"
)

type Labels interface {
	Label(int) string
}

// SubGraph is a frozen pattern over dense vertex indices. Build one with
// Induce, FromGraph, or a Builder; never mutate it afterwards, the caches
// assume it is fixed.
type SubGraph struct {
	Directed   bool
	V          Vertices
	E          Edges
	Adj        [][]int
	InDeg      []int
	OutDeg     []int
	labelCache []byte
	graphCache *graph.Graph
}

type Vertices []Vertex
type Edges []Edge

type Vertex struct {
	Idx   int
	Color int
}

type Edge struct {
	Src, Targ, Color int
}

// FromGraph takes a whole graph as a pattern.
func FromGraph(g *graph.Graph) *SubGraph {
	b := Build(g.Directed, len(g.V), len(g.E))
	for i := range g.V {
		b.AddVertex(g.V[i].Color)
	}
	for i := range g.E {
		e := &g.E[i]
		b.AddEdge(&b.V[e.Src], &b.V[e.Targ], e.Color)
	}
	return b.Build()
}

// Induce extracts the subgraph of g induced by the given vertices: those
// vertices plus every edge of g with both endpoints among them. Vertices
// are taken in ascending host order and duplicates dropped, so equal
// subsets always give the same pattern.
func Induce(g *graph.Graph, vids []int) *SubGraph {
	nodes := make([]int, len(vids))
	copy(nodes, vids)
	sort.Ints(nodes)
	vidx := make(map[int]int, len(nodes))
	b := Build(g.Directed, len(nodes), len(nodes))
	for _, id := range nodes {
		if _, has := vidx[id]; has {
			continue
		}
		v := b.AddVertex(g.V[id].Color)
		vidx[id] = v.Idx
	}
	for i := range g.E {
		e := &g.E[i]
		src, hasSrc := vidx[e.Src]
		targ, hasTarg := vidx[e.Targ]
		if hasSrc && hasTarg {
			b.AddEdge(&b.V[src], &b.V[targ], e.Color)
		}
	}
	return b.Build()
}

// Graph renders the pattern as a concrete graph so it can serve as the
// host of an embedding search. The result is cached on the pattern.
func (sg *SubGraph) Graph() *graph.Graph {
	if sg.graphCache == nil {
		b := graph.Build(sg.Directed, len(sg.V), len(sg.E))
		for i := range sg.V {
			b.AddVertex(sg.V[i].Color)
		}
		for i := range sg.E {
			e := &sg.E[i]
			b.AddEdge(&b.V[e.Src], &b.V[e.Targ], e.Color)
		}
		sg.graphCache = b.Build()
	}
	return sg.graphCache
}

// Label serializes the pattern. Equal labels imply isomorphic patterns;
// the converse only holds when the vertex orders happen to agree.
func (sg *SubGraph) Label() []byte {
	if sg.labelCache != nil {
		return sg.labelCache
	}
	size := 9 + len(sg.V)*4 + len(sg.E)*12
	label := make([]byte, size)
	if sg.Directed {
		label[0] = 1
	}
	binary.BigEndian.PutUint32(label[1:5], uint32(len(sg.E)))
	binary.BigEndian.PutUint32(label[5:9], uint32(len(sg.V)))
	off := 9
	for i, v := range sg.V {
		s := off + i*4
		e := s + 4
		binary.BigEndian.PutUint32(label[s:e], uint32(v.Color))
	}
	off += len(sg.V) * 4
	for i, edge := range sg.E {
		s := off + i*12
		e := s + 4
		binary.BigEndian.PutUint32(label[s:e], uint32(edge.Src))
		s += 4
		e += 4
		binary.BigEndian.PutUint32(label[s:e], uint32(edge.Targ))
		s += 4
		e += 4
		binary.BigEndian.PutUint32(label[s:e], uint32(edge.Color))
	}
	sg.labelCache = label
	return label
}

func (sg *SubGraph) arrow() string {
	if sg.Directed {
		return "->"
	}
	return "--"
}

func (sg *SubGraph) String() string {
	V := make([]string, 0, len(sg.V))
	E := make([]string, 0, len(sg.E))
	for _, v := range sg.V {
		V = append(V, fmt.Sprintf(
			"(%v)",
			v.Color,
		))
	}
	for _, e := range sg.E {
		E = append(E, fmt.Sprintf(
			"[%v%v%v:%v]",
			e.Src,
			sg.arrow(),
			e.Targ,
			e.Color,
		))
	}
	return fmt.Sprintf("{%v:%v}%v%v", len(sg.E), len(sg.V), strings.Join(V, ""), strings.Join(E, ""))
}

func (sg *SubGraph) Pretty(labels Labels) string {
	V := make([]string, 0, len(sg.V))
	E := make([]string, 0, len(sg.E))
	for _, v := range sg.V {
		V = append(V, fmt.Sprintf(
			"(%v)",
			labels.Label(v.Color),
		))
	}
	for _, e := range sg.E {
		E = append(E, fmt.Sprintf(
			"[%v%v%v:%v]",
			e.Src,
			sg.arrow(),
			e.Targ,
			labels.Label(e.Color),
		))
	}
	return fmt.Sprintf("{%v:%v}%v%v", len(sg.E), len(sg.V), strings.Join(V, ""), strings.Join(E, ""))
}

func (sg *SubGraph) Dotty(labels Labels) string {
	kind := "digraph"
	if !sg.Directed {
		kind = "graph"
	}
	V := make([]string, 0, len(sg.V))
	E := make([]string, 0, len(sg.E))
	for vidx, v := range sg.V {
		V = append(V, fmt.Sprintf(
			"n%v [label=%v];",
			vidx,
			strconv.Quote(labels.Label(v.Color)),
		))
	}
	for _, e := range sg.E {
		E = append(E, fmt.Sprintf(
			"n%v%vn%v [label=%v];",
			e.Src,
			sg.arrow(),
			e.Targ,
			strconv.Quote(labels.Label(e.Color)),
		))
	}
	return fmt.Sprintf("%v{\n%v\n%v\n}", kind, strings.Join(V, "\n"), strings.Join(E, "\n"))
}
