package subgraph

import (
	"bytes"
	"fmt"
	"sort"
)

// TypeMismatch rejects mixing directed and undirected graphs at the
// matching boundary, instead of silently producing wrong counts.
type TypeMismatch struct {
	HostDirected    bool
	PatternDirected bool
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: pattern directed=%v but host directed=%v", e.PatternDirected, e.HostDirected)
}

// Isomorphic reports whether a and b share their topology, colors
// ignored. Both must agree on directedness. Vertex count, edge count, and
// degree sequence rejections run first; equal Labels shortcut to true; the
// full check embeds a into b, which with equal counts forces a bijection.
func Isomorphic(a, b *SubGraph) (bool, error) {
	if a.Directed != b.Directed {
		return false, &TypeMismatch{HostDirected: b.Directed, PatternDirected: a.Directed}
	}
	if len(a.V) != len(b.V) || len(a.E) != len(b.E) {
		return false, nil
	}
	if !degreesMatch(a, b) {
		return false, nil
	}
	if bytes.Equal(a.Label(), b.Label()) {
		return true, nil
	}
	return a.EmbeddedIn(b.Graph(), nil)
}

func degreesMatch(a, b *SubGraph) bool {
	ak := degreeKeys(a)
	bk := degreeKeys(b)
	for i := range ak {
		if ak[i] != bk[i] {
			return false
		}
	}
	return true
}

// degreeKeys is the sorted multiset of vertex degrees, in and out degree
// packed into one key for directed patterns.
func degreeKeys(sg *SubGraph) []int {
	keys := make([]int, len(sg.V))
	n := len(sg.V) + 1
	for i := range sg.V {
		if sg.Directed {
			keys[i] = sg.InDeg[i]*n + sg.OutDeg[i]
		} else {
			keys[i] = len(sg.Adj[i])
		}
	}
	sort.Ints(keys)
	return keys
}
