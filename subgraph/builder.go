package subgraph

import (
	"sort"
)

type Builder struct {
	Directed bool
	V        Vertices
	E        Edges
}

func Build(directed bool, V, E int) *Builder {
	return &Builder{
		Directed: directed,
		V:        make(Vertices, 0, V),
		E:        make(Edges, 0, E),
	}
}

func (b *Builder) AddVertex(color int) *Vertex {
	b.V = append(b.V, Vertex{
		Idx:   len(b.V),
		Color: color,
	})
	return &b.V[len(b.V)-1]
}

// AddEdge does not collapse duplicate arcs. Patterns taken from a Graph
// never contain any; hand built patterns are on their own.
func (b *Builder) AddEdge(src, targ *Vertex, color int) *Edge {
	b.E = append(b.E, Edge{
		Src:   src.Idx,
		Targ:  targ.Idx,
		Color: color,
	})
	return &b.E[len(b.E)-1]
}

// Build freezes the builder into a SubGraph. Undirected edges are stored
// low endpoint first and the edge list is sorted, so patterns assembled in
// any edge order share a Label.
func (b *Builder) Build() *SubGraph {
	V := make(Vertices, len(b.V))
	E := make(Edges, len(b.E))
	copy(V, b.V)
	copy(E, b.E)
	if !b.Directed {
		for i := range E {
			if E[i].Src > E[i].Targ {
				E[i].Src, E[i].Targ = E[i].Targ, E[i].Src
			}
		}
	}
	sort.Slice(E, func(i, j int) bool {
		if E[i].Src != E[j].Src {
			return E[i].Src < E[j].Src
		}
		if E[i].Targ != E[j].Targ {
			return E[i].Targ < E[j].Targ
		}
		return E[i].Color < E[j].Color
	})
	sg := &SubGraph{
		Directed: b.Directed,
		V:        V,
		E:        E,
		Adj:      make([][]int, len(V)),
		InDeg:    make([]int, len(V)),
		OutDeg:   make([]int, len(V)),
	}
	for i := range sg.Adj {
		sg.Adj[i] = make([]int, 0, 5)
	}
	for i := range E {
		e := &E[i]
		sg.Adj[e.Src] = append(sg.Adj[e.Src], i)
		if e.Targ != e.Src {
			sg.Adj[e.Targ] = append(sg.Adj[e.Targ], i)
		}
		sg.OutDeg[e.Src]++
		sg.InDeg[e.Targ]++
	}
	return sg
}
