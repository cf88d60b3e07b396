package motif

import (
	"fmt"
	"sort"
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
)

import (
	"github.com/timtadh/motif/graph"
)

// tree is the directed balanced binary tree 0 -> {1, 2}, 1 -> {3, 4},
// 2 -> {5, 6}, vertices numbered breadth first from the root.
func tree(t *testing.T) *graph.Graph {
	b := graph.Build(true, 7, 6)
	v := make([]*graph.Vertex, 0, 7)
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

func subsets(si Subsets) [][]int {
	subs := make([][]int, 0, 10)
	for sub, next := si(); next != nil; sub, next = next() {
		subs = append(subs, sub)
	}
	return subs
}

func TestEnumerateTreeTriples(t *testing.T) {
	x := assert.New(t)
	g := tree(t)
	x.Equal([][]int{
		{0, 1, 2},
		{0, 1, 3},
		{0, 1, 4},
		{0, 2, 5},
		{0, 2, 6},
		{1, 3, 4},
		{2, 5, 6},
	}, subsets(EnumerateSubgraphs(g, nil, 3)))
}

func TestEnumerateTreeQuads(t *testing.T) {
	x := assert.New(t)
	g := tree(t)
	x.Equal([][]int{
		{0, 1, 2, 3},
		{0, 1, 2, 4},
		{0, 1, 2, 5},
		{0, 1, 2, 6},
		{0, 1, 3, 4},
		{0, 2, 5, 6},
	}, subsets(EnumerateSubgraphs(g, nil, 4)))
}

func TestEnumerateSizeZero(t *testing.T) {
	x := assert.New(t)
	g := tree(t)
	x.Equal([][]int{{}}, subsets(EnumerateSubgraphs(g, nil, 0)))
}

func TestEnumerateSizeOne(t *testing.T) {
	x := assert.New(t)
	g := tree(t)
	subs := subsets(EnumerateSubgraphs(g, nil, 1))
	x.Equal(7, len(subs))
	for i, sub := range subs {
		x.Equal([]int{i}, sub)
	}
}

func TestEnumerateOversized(t *testing.T) {
	x := assert.New(t)
	g := tree(t)
	x.Equal(0, len(subsets(EnumerateSubgraphs(g, nil, 8))))
}

func TestEnumerateSeeds(t *testing.T) {
	x := assert.New(t)
	g := tree(t)
	x.Equal([][]int{
		{0, 1, 2},
		{0, 1, 3},
		{0, 1, 4},
	}, subsets(EnumerateSubgraphs(g, []int{0, 1}, 3)))
	x.Equal([][]int{
		{1, 3, 4},
	}, subsets(EnumerateSubgraphs(g, []int{1}, 3)),
		"extensions sit above the root seed, 0 stays out")
}

func TestEnumerateSeedsLenient(t *testing.T) {
	x := assert.New(t)
	g := tree(t)
	// disconnected seeds pass through, the caller asked for them
	x.Equal([][]int{{3, 5}}, subsets(EnumerateSubgraphs(g, []int{3, 5}, 2)))
	x.Equal(0, len(subsets(EnumerateSubgraphs(g, []int{3, 5}, 3))),
		"the seeds' neighbors all sit below the root")
}

func TestEnumerateSizeBelowSeeds(t *testing.T) {
	x := assert.New(t)
	g := tree(t)
	x.Equal(0, len(subsets(EnumerateSubgraphs(g, []int{0, 1}, 1))))
}

func TestEnumerateRestartable(t *testing.T) {
	x := assert.New(t)
	g := tree(t)
	a := subsets(EnumerateSubgraphs(g, nil, 3))
	b := subsets(EnumerateSubgraphs(g, nil, 3))
	x.Equal(a, b)
}

// chordedCycle is the undirected 6-cycle 0-1-2-3-4-5-0 with the chord 0-3.
func chordedCycle(t *testing.T) *graph.Graph {
	b := graph.Build(false, 6, 7)
	v := make([]*graph.Vertex, 0, 6)
	for i := 0; i < 6; i++ {
		v = append(v, b.AddVertex(0))
	}
	for i := 0; i < 6; i++ {
		b.AddEdge(v[i], v[(i+1)%6], 0)
	}
	b.AddEdge(v[0], v[3], 0)
	return b.Build()
}

func connected(g *graph.Graph, sub []int) bool {
	if len(sub) == 0 {
		return true
	}
	in := make(map[int]bool, len(sub))
	for _, v := range sub {
		in[v] = true
	}
	seen := map[int]bool{sub[0]: true}
	queue := []int{sub[0]}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if in[v] && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return len(seen) == len(in)
}

// bruteCount counts the connected k-subsets of g the slow way, by testing
// every combination of vertices.
func bruteCount(g *graph.Graph, k int) int {
	count := 0
	var walk func(start int, sub []int)
	walk = func(start int, sub []int) {
		if len(sub) == k {
			if connected(g, sub) {
				count++
			}
			return
		}
		for v := start; v < len(g.V); v++ {
			walk(v+1, append(sub, v))
		}
	}
	walk(0, make([]int, 0, k))
	return count
}

func canonical(sub []int) string {
	sorted := make([]int, len(sub))
	copy(sorted, sub)
	sort.Ints(sorted)
	return fmt.Sprint(sorted)
}

func TestEnumerateCompleteAndDuplicateFree(t *testing.T) {
	x := assert.New(t)
	for _, g := range []*graph.Graph{tree(t), chordedCycle(t)} {
		for k := 1; k <= 4; k++ {
			seen := make(map[string]bool)
			count := 0
			for sub, next := EnumerateSubgraphs(g, nil, k)(); next != nil; sub, next = next() {
				x.True(connected(g, sub), "disconnected subset %v at size %v", sub, k)
				key := canonical(sub)
				x.False(seen[key], "subset %v enumerated twice at size %v", sub, k)
				seen[key] = true
				count++
			}
			x.Equal(bruteCount(g, k), count, "size %v", k)
		}
	}
}

func TestEnumerateChordedCycleTriples(t *testing.T) {
	x := assert.New(t)
	g := chordedCycle(t)
	seen := make(map[string]bool)
	for sub, next := EnumerateSubgraphs(g, nil, 3)(); next != nil; sub, next = next() {
		seen[canonical(sub)] = true
	}
	x.Equal(10, len(seen))
	// {0, 4, 5} hangs together through 4-5 and 5-0: its vertices descend
	// from 5, so only the exclusive-neighbor rule reaches it
	x.True(seen[canonical([]int{0, 4, 5})], "missed {0 4 5}: got %v", seen)
}
