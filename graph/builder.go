package graph

type Builder struct {
	Directed bool
	V        Vertices
	E        Edges
	arcs     map[arc]int
}

func Build(directed bool, V, E int) *Builder {
	if V < 10 {
		V = 10
	}
	if E < 10 {
		E = 10
	}
	return &Builder{
		Directed: directed,
		V:        make(Vertices, 0, V),
		E:        make(Edges, 0, E),
		arcs:     make(map[arc]int, E),
	}
}

func (b *Builder) AddVertex(color int) *Vertex {
	if b == nil {
		panic("b was nil")
	}
	idx := len(b.V)
	b.V = append(b.V, Vertex{
		Idx:   idx,
		Color: color,
	})
	return &b.V[idx]
}

// AddEdge records the arc u->v. Duplicate arcs are collapsed onto the
// first: no multi edges, in either orientation when the builder is
// undirected.
func (b *Builder) AddEdge(u, v *Vertex, color int) *Edge {
	if e, has := b.findArc(u.Idx, v.Idx); has {
		return e
	}
	idx := len(b.E)
	b.E = append(b.E, Edge{
		Src:   u.Idx,
		Targ:  v.Idx,
		Color: color,
	})
	b.arcs[arc{u.Idx, v.Idx}] = idx
	return &b.E[idx]
}

func (b *Builder) HasEdge(src, targ int) bool {
	_, has := b.findArc(src, targ)
	return has
}

func (b *Builder) findArc(src, targ int) (*Edge, bool) {
	if eid, has := b.arcs[arc{src, targ}]; has {
		return &b.E[eid], true
	}
	if !b.Directed {
		if eid, has := b.arcs[arc{targ, src}]; has {
			return &b.E[eid], true
		}
	}
	return nil, false
}

// Build freezes the builder into a Graph. The builder hands over its
// slices and must not be reused afterwards.
func (b *Builder) Build() *Graph {
	g := &Graph{
		Directed: b.Directed,
		V:        b.V,
		E:        b.E,
		Adj:      make([][]int, len(b.V)),
		Kids:     make([][]int, len(b.V)),
		Parents:  make([][]int, len(b.V)),
		arcs:     b.arcs,
	}
	for i := range g.E {
		e := &g.E[i]
		g.Adj[e.Src] = append(g.Adj[e.Src], i)
		if e.Targ != e.Src {
			g.Adj[e.Targ] = append(g.Adj[e.Targ], i)
		}
		g.Kids[e.Src] = append(g.Kids[e.Src], i)
		g.Parents[e.Targ] = append(g.Parents[e.Targ], i)
	}
	return g
}
