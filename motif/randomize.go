package motif

import (
	"math/rand"
)

import (
	"github.com/timtadh/motif/graph"
)

// Randomize builds a degree preserving shuffle of g by crossing pairs of
// edges: (s1->t1),(s2->t2) become (s1->t2),(s2->t1), which keeps every in
// and out degree. An attempt is discarded when a crossed arc already
// exists or would be a self loop; every attempt, applied or not, counts
// against maxSteps. This is the mfinder randomization of Yeger-Lotem et
// al. (PNAS 2004).
//
// Negative swapSteps means 3|E|; negative maxSteps means 10x the swap
// count. Zero is honored as given: zero swapSteps returns an unshuffled
// copy, zero maxSteps cannot apply a single swap. g is never mutated.
// The prng must not be nil and must not be shared across goroutines.
func Randomize(g *graph.Graph, prng *rand.Rand, swapSteps, maxSteps int) (*graph.Graph, error) {
	if prng == nil {
		panic("prng was nil")
	}
	if swapSteps < 0 {
		swapSteps = 3 * len(g.E)
	}
	if maxSteps < 0 {
		maxSteps = 10 * swapSteps
	}
	if swapSteps > 0 && len(g.E) < 2 {
		// no pair of edges to cross, the budget cannot help
		return nil, &RandomizationExhausted{Swaps: 0, Attempts: 0, MaxSteps: maxSteps, Trial: -1}
	}
	type arc struct {
		src, targ int
	}
	E := make(graph.Edges, len(g.E))
	copy(E, g.E)
	arcs := make(map[arc]bool, len(E))
	for i := range E {
		arcs[arc{E[i].Src, E[i].Targ}] = true
	}
	hasArc := func(src, targ int) bool {
		if arcs[arc{src, targ}] {
			return true
		}
		if !g.Directed && arcs[arc{targ, src}] {
			return true
		}
		return false
	}
	swaps := 0
	attempts := 0
	for swaps < swapSteps {
		if attempts >= maxSteps {
			return nil, &RandomizationExhausted{Swaps: swaps, Attempts: attempts, MaxSteps: maxSteps, Trial: -1}
		}
		attempts++
		i := prng.Intn(len(E))
		j := prng.Intn(len(E) - 1)
		if j >= i {
			j++
		}
		e1 := &E[i]
		e2 := &E[j]
		if e1.Src == e2.Targ || e2.Src == e1.Targ {
			// crossing would close a self loop
			continue
		}
		if hasArc(e1.Src, e2.Targ) || hasArc(e2.Src, e1.Targ) {
			continue
		}
		delete(arcs, arc{e1.Src, e1.Targ})
		delete(arcs, arc{e2.Src, e2.Targ})
		e1.Targ, e2.Targ = e2.Targ, e1.Targ
		arcs[arc{e1.Src, e1.Targ}] = true
		arcs[arc{e2.Src, e2.Targ}] = true
		swaps++
	}
	b := graph.Build(g.Directed, len(g.V), len(E))
	for i := range g.V {
		b.AddVertex(g.V[i].Color)
	}
	for i := range E {
		e := &E[i]
		b.AddEdge(&b.V[e.Src], &b.V[e.Targ], e.Color)
	}
	return b.Build(), nil
}
