package graph

import (
	"fmt"
)

// Named pairs a built graph with the external vertex names it was loaded
// under. The name -> index map is the relabeling bijection: algorithms
// speak dense indices, callers translate back through Name.
type Named struct {
	G      *Graph
	Labels *Labels
	Names  []string
	ids    map[string]int
}

func NewNamed(g *Graph, labels *Labels, names []string) *Named {
	ids := make(map[string]int, len(names))
	for idx, name := range names {
		ids[name] = idx
	}
	return &Named{
		G:      g,
		Labels: labels,
		Names:  names,
		ids:    ids,
	}
}

func (n *Named) Id(name string) (int, bool) {
	idx, has := n.ids[name]
	return idx, has
}

func (n *Named) Name(idx int) string {
	if idx < 0 || idx >= len(n.Names) {
		return fmt.Sprintf("vertex-[%d]", idx)
	}
	return n.Names[idx]
}

// WithGraph rebinds the names to another graph over the same vertex set,
// for instance a randomized copy.
func (n *Named) WithGraph(g *Graph) *Named {
	return &Named{
		G:      g,
		Labels: n.Labels,
		Names:  n.Names,
		ids:    n.ids,
	}
}
