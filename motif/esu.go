package motif

import (
	"sort"
)

import (
	"github.com/timtadh/motif/graph"
)

// Subsets lazily yields vertex subsets. Each pull returns a fresh slice
// and the continuation; a nil continuation ends the stream.
type Subsets func() ([]int, Subsets)

// EnumerateSubgraphs yields every connected induced subgraph of g with
// exactly size vertices, each one exactly once, as a subset of vertex
// indices in construction order. This is the ESU enumeration of Wernicke,
// "Efficient Detection of Network Motifs" (IEEE/ACM TCBB 2006). A branch
// is rooted at every vertex; a subset grows by the exclusive neighbors of
// its newest vertex (neighbors the older vertices cannot already see)
// that sit above the root, and a candidate handed to one branch is
// withheld from the branches after it. Those rules reach every connected
// subset from its minimum vertex exactly once, including subsets no
// label-increasing path covers.
//
// seeds is the initial subset. Every yielded subset starts with the seed
// vertices in the order given; extensions follow, each above the first
// seed. Seeds are taken as they are: they are not checked for
// connectivity, so disconnected seeds can yield disconnected subsets.
// With no seeds the enumeration covers the whole graph, rooting branches
// in ascending vertex order.
//
// size equal to the seed count yields the seed subset itself; anything
// smaller yields nothing.
func EnumerateSubgraphs(g *graph.Graph, seeds []int, size int) (si Subsets) {
	if size < len(seeds) {
		si = func() ([]int, Subsets) {
			return nil, nil
		}
		return si
	}
	start := make([]int, len(seeds))
	copy(start, seeds)
	if size == len(start) {
		done := false
		si = func() ([]int, Subsets) {
			if done {
				return nil, nil
			}
			done = true
			return start, si
		}
		return si
	}
	type frame struct {
		sub  []int
		ext  []int
		next int
	}
	var ext []int
	if len(start) == 0 {
		ext = make([]int, len(g.V))
		for i := range g.V {
			ext[i] = i
		}
	} else {
		ext = seedExtensions(g, start)
	}
	stack := make([]frame, 0, size)
	stack = append(stack, frame{sub: start, ext: ext})
	si = func() ([]int, Subsets) {
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.ext) {
				stack = stack[:len(stack)-1]
				continue
			}
			w := top.ext[top.next]
			top.next++
			sub := make([]int, len(top.sub)+1)
			copy(sub, top.sub)
			sub[len(sub)-1] = w
			if len(sub) == size {
				return sub, si
			}
			ext := extensions(g, top.sub, top.ext[top.next:], w)
			stack = append(stack, frame{sub: sub, ext: ext})
		}
		return nil, nil
	}
	return si
}

// extensions builds the candidate list for the subset sub plus w: the
// candidates w did not consume carry over, then come w's exclusive
// neighbors above the root. Every carried candidate neighbors sub, so the
// neighborhood exclusion also keeps the list duplicate free. An empty sub
// means w roots a fresh branch: nothing carries over and w's own upper
// neighbors are the only candidates.
func extensions(g *graph.Graph, sub, remaining []int, w int) []int {
	if len(sub) == 0 {
		ext := make([]int, 0, len(g.Adj[w]))
		for _, u := range g.Neighbors(w) {
			if u > w {
				ext = append(ext, u)
			}
		}
		sort.Ints(ext)
		return ext
	}
	root := sub[0]
	in := make(map[int]bool, len(sub)+1)
	for _, v := range sub {
		in[v] = true
	}
	in[w] = true
	hood := make(map[int]bool, 10)
	for _, v := range sub {
		for _, u := range g.Neighbors(v) {
			hood[u] = true
		}
	}
	fresh := make([]int, 0, len(g.Adj[w]))
	for _, u := range g.Neighbors(w) {
		if u > root && !in[u] && !hood[u] {
			fresh = append(fresh, u)
		}
	}
	sort.Ints(fresh)
	ext := make([]int, 0, len(remaining)+len(fresh))
	ext = append(ext, remaining...)
	ext = append(ext, fresh...)
	return ext
}

// seedExtensions opens a seeded enumeration: every neighbor of a seed
// that sits above the first seed qualifies.
func seedExtensions(g *graph.Graph, seeds []int) []int {
	root := seeds[0]
	in := make(map[int]bool, len(seeds))
	for _, v := range seeds {
		in[v] = true
	}
	seen := make(map[int]bool, 10)
	ext := make([]int, 0, 10)
	for _, v := range seeds {
		for _, u := range g.Neighbors(v) {
			if u > root && !in[u] && !seen[u] {
				seen[u] = true
				ext = append(ext, u)
			}
		}
	}
	sort.Ints(ext)
	return ext
}
