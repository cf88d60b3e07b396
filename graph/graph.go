package graph

type Vertex struct {
	Idx, Color int
}

type Edge struct {
	Src, Targ, Color int
}

type Vertices []Vertex
type Edges []Edge

type arc struct {
	src, targ int
}

// Graph is a frozen graph. Vertices are dense indices into V, edges are
// indices into E. Adj holds the incident edge indices of each vertex, Kids
// and Parents split them by stored orientation. For undirected graphs the
// stored orientation is arbitrary and the arc index answers both ways.
type Graph struct {
	Directed bool
	V        Vertices
	E        Edges
	Adj      [][]int
	Kids     [][]int
	Parents  [][]int
	arcs     map[arc]int
}

func (g *Graph) HasEdge(src, targ int) bool {
	_, has := g.FindEdge(src, targ)
	return has
}

func (g *Graph) FindEdge(src, targ int) (*Edge, bool) {
	if eid, has := g.arcs[arc{src, targ}]; has {
		return &g.E[eid], true
	}
	if !g.Directed {
		if eid, has := g.arcs[arc{targ, src}]; has {
			return &g.E[eid], true
		}
	}
	return nil, false
}

func (g *Graph) Degree(v int) int {
	return len(g.Adj[v])
}

func (g *Graph) InDegree(v int) int {
	return len(g.Parents[v])
}

func (g *Graph) OutDegree(v int) int {
	return len(g.Kids[v])
}

// Neighbors gives the distinct vertices adjacent to v ignoring direction.
// v itself never appears, even when it carries a self loop.
func (g *Graph) Neighbors(v int) []int {
	seen := make(map[int]bool, len(g.Adj[v]))
	nbrs := make([]int, 0, len(g.Adj[v]))
	for _, eid := range g.Adj[v] {
		e := &g.E[eid]
		u := e.Src
		if u == v {
			u = e.Targ
		}
		if u == v || seen[u] {
			continue
		}
		seen[u] = true
		nbrs = append(nbrs, u)
	}
	return nbrs
}
