package motif

import (
	"github.com/timtadh/motif/graph"
	"github.com/timtadh/motif/subgraph"
)

// Patterns lazily yields patterns for classification.
type Patterns func() (*subgraph.SubGraph, Patterns)

// Topology is one distinct shape and how often it occurred.
type Topology struct {
	Pattern *subgraph.SubGraph
	Count   int
}

// InducedPatterns adapts a subset stream into the stream of patterns the
// subsets induce on g.
func InducedPatterns(g *graph.Graph, subsets Subsets) (pi Patterns) {
	pi = func() (*subgraph.SubGraph, Patterns) {
		sub, next := subsets()
		if next == nil {
			return nil, nil
		}
		subsets = next
		return subgraph.Induce(g, sub), pi
	}
	return pi
}

// CountUniqueTopologies folds a pattern stream into its distinct
// topologies, in first appearance order, counting instances. The first
// pattern of a topology stands for it. Patterns serializing to an already
// seen Label are counted without consulting the isomorphism test; the scan
// over representatives is otherwise quadratic in the number of distinct
// topologies, which stays tiny for the sizes enumeration affords.
func CountUniqueTopologies(patterns Patterns) ([]*Topology, error) {
	tops := make([]*Topology, 0, 10)
	index := make(map[string]*Topology, 10)
	for sg, next := patterns(); next != nil; sg, next = next() {
		label := string(sg.Label())
		if t, has := index[label]; has {
			t.Count++
			continue
		}
		var found *Topology
		for _, t := range tops {
			iso, err := subgraph.Isomorphic(sg, t.Pattern)
			if err != nil {
				return nil, err
			}
			if iso {
				found = t
				break
			}
		}
		if found == nil {
			found = &Topology{Pattern: sg, Count: 0}
			tops = append(tops, found)
		}
		found.Count++
		index[label] = found
	}
	return tops, nil
}
