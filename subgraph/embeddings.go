package subgraph

import (
	"github.com/timtadh/data-structures/heap"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/motif/graph"
)

// EdgeMatch accepts or rejects a host edge for a pattern edge by color.
// A nil EdgeMatch matches on structure alone.
type EdgeMatch func(patternColor, hostColor int) bool

// SignsEqual is the sign sensitive EdgeMatch: edge labels must agree.
func SignsEqual(patternColor, hostColor int) bool {
	return patternColor == hostColor
}

// EmbIterator lazily yields embeddings. Pass true to stop the stream.
type EmbIterator func(bool) (*Embedding, EmbIterator)

// IterEmbeddings finds every injective mapping of sg into g preserving
// adjacency, orientation included when the graphs are directed. Host edges
// outside the pattern do not matter, so the match is not induced. Vertex
// colors are decoration here: the optional EdgeMatch is the only label
// constraint, a nil one matches on structure alone. Mixing a directed
// pattern with an undirected host (or the reverse) is a *TypeMismatch.
func (sg *SubGraph) IterEmbeddings(g *graph.Graph, em EdgeMatch) (EmbIterator, error) {
	if sg.Directed != g.Directed {
		return nil, &TypeMismatch{HostDirected: g.Directed, PatternDirected: sg.Directed}
	}
	if len(sg.V) == 0 {
		var ei EmbIterator
		ei = func(bool) (*Embedding, EmbIterator) {
			return nil, nil
		}
		return ei, nil
	}
	type entry struct {
		ids  *Embedding
		step int
	}
	pop := func(stack []entry) (entry, []entry) {
		return stack[len(stack)-1], stack[0 : len(stack)-1]
	}
	startIdx := argMax(len(sg.V), sg.vertexConnectedness)
	plan := sg.searchPlan(startIdx)
	vembs := sg.startEmbeddings(g, startIdx)
	stack := make([]entry, 0, len(vembs)*2)
	for _, vemb := range vembs {
		stack = append(stack, entry{vemb, 0})
	}

	var ei EmbIterator
	ei = func(stop bool) (*Embedding, EmbIterator) {
		for !stop && len(stack) > 0 {
			var i entry
			i, stack = pop(stack)
			if i.step >= len(plan) {
				return i.ids, ei
			}
			sg.extendEmbedding(g, i.ids, plan[i.step], em, func(ext *Embedding) {
				stack = append(stack, entry{ext, i.step + 1})
			})
		}
		return nil, nil
	}
	return ei, nil
}

// Matches collects every embedding of sg in g.
func (sg *SubGraph) Matches(g *graph.Graph, em EdgeMatch) (Embeddings, error) {
	ei, err := sg.IterEmbeddings(g, em)
	if err != nil {
		return nil, err
	}
	embs := make(Embeddings, 0, 10)
	for emb, next := ei(false); next != nil; emb, next = next(false) {
		embs = append(embs, emb)
	}
	return embs, nil
}

// EmbeddedIn reports whether at least one embedding of sg in g exists.
func (sg *SubGraph) EmbeddedIn(g *graph.Graph, em EdgeMatch) (bool, error) {
	ei, err := sg.IterEmbeddings(g, em)
	if err != nil {
		return false, err
	}
	emb, _ := ei(false)
	return emb != nil, nil
}

func argMax(length int, f func(int) int) (arg int) {
	max := 0
	arg = -1
	for i := 0; i < length; i++ {
		x := f(i)
		if arg == -1 || x > max {
			max = x
			arg = i
		}
	}
	return arg
}

func (sg *SubGraph) vertexConnectedness(idx int) int {
	return len(sg.Adj[idx])
}

func (sg *SubGraph) other(u int, e int) int {
	s := sg.E[e].Src
	t := sg.E[e].Targ
	var v int
	if s == u {
		v = t
	} else if t == u {
		v = s
	} else {
		panic("unreachable")
	}
	return v
}

// planStep is one move of the search: apply pattern edge eid, placing vid
// if it is still free, or when eid is -1 place vid on a fresh host vertex
// (the root of a new component).
type planStep struct {
	eid, vid int
}

// searchPlan orders the placement of sg's vertices and edges so that every
// edge step touches at least one placed vertex. This is a breadth first
// search from startIdx; vertices with more placed neighbors come off the
// queue first, leftover edges close cycles at the end, and disconnected
// patterns restart from the lowest unplaced vertex.
func (sg *SubGraph) searchPlan(startIdx int) []planStep {
	plan := make([]planStep, 0, len(sg.V)+len(sg.E))
	seen := make(map[int]bool, len(sg.V))
	added := make(map[int]bool, len(sg.E))
	queue := heap.NewUnique(heap.NewMinHeap(len(sg.V)))
	place := func(u int) {
		seen[u] = true
		for _, e := range sg.Adj[u] {
			v := sg.other(u, e)
			if seen[v] {
				continue
			}
			p := 0
			for _, ae := range sg.Adj[v] {
				if seen[sg.other(v, ae)] {
					p--
				}
			}
			queue.Add(p, types.Int(v))
		}
	}
	place(startIdx)
	for len(seen) < len(sg.V) {
		if queue.Size() == 0 {
			// a new component
			for v := range sg.V {
				if !seen[v] {
					plan = append(plan, planStep{eid: -1, vid: v})
					place(v)
					break
				}
			}
			continue
		}
		u := int(queue.Pop().(types.Int))
		if seen[u] {
			continue
		}
		eid := -1
		for _, e := range sg.Adj[u] {
			if !added[e] && seen[sg.other(u, e)] {
				eid = e
				break
			}
		}
		if eid == -1 {
			panic("assert-fail: queued vertex had no placed neighbor")
		}
		plan = append(plan, planStep{eid: eid, vid: u})
		added[eid] = true
		place(u)
	}
	for e := range sg.E {
		if !added[e] {
			plan = append(plan, planStep{eid: e, vid: -1})
			added[e] = true
		}
	}
	edges := 0
	for _, s := range plan {
		if s.eid >= 0 {
			edges++
		}
	}
	if edges != len(sg.E) {
		panic("assert-fail: edges != len(sg.E)")
	}
	return plan
}

// startEmbeddings seeds the search with every admissible host vertex for
// the start vertex.
func (sg *SubGraph) startEmbeddings(g *graph.Graph, startIdx int) []*Embedding {
	embs := make([]*Embedding, 0, len(g.V))
	for id := range g.V {
		if sg.admissible(g, startIdx, id) {
			embs = append(embs, StartEmbedding(VertexEmbedding{EmbIdx: id, SgIdx: startIdx}))
		}
	}
	return embs
}

func (sg *SubGraph) extendEmbedding(g *graph.Graph, cur *Embedding, s planStep, em EdgeMatch, do func(*Embedding)) {
	matches := func(patternColor, hostColor int) bool {
		return em == nil || em(patternColor, hostColor)
	}
	doNew := func(newIdx, newId int) {
		if cur.hasId(newId) {
			return
		}
		if sg.admissible(g, newIdx, newId) {
			do(cur.Extend(VertexEmbedding{EmbIdx: newId, SgIdx: newIdx}))
		}
	}
	if s.eid < 0 {
		for id := range g.V {
			doNew(s.vid, id)
		}
		return
	}
	e := &sg.E[s.eid]
	srcId, targId := cur.ids(e.Src, e.Targ)
	if srcId == -1 && targId == -1 {
		panic("src and targ == -1. Which means the search plan was not connected.")
	} else if srcId != -1 && targId != -1 {
		// both endpoints are placed, the edge only needs checking
		if he, has := g.FindEdge(srcId, targId); has && matches(e.Color, he.Color) {
			do(cur)
		}
	} else if srcId != -1 {
		for _, eid := range g.Kids[srcId] {
			he := &g.E[eid]
			if matches(e.Color, he.Color) {
				doNew(e.Targ, he.Targ)
			}
		}
		if !g.Directed {
			for _, eid := range g.Parents[srcId] {
				he := &g.E[eid]
				if matches(e.Color, he.Color) {
					doNew(e.Targ, he.Src)
				}
			}
		}
	} else {
		for _, eid := range g.Parents[targId] {
			he := &g.E[eid]
			if matches(e.Color, he.Color) {
				doNew(e.Src, he.Src)
			}
		}
		if !g.Directed {
			for _, eid := range g.Kids[targId] {
				he := &g.E[eid]
				if matches(e.Color, he.Color) {
					doNew(e.Src, he.Targ)
				}
			}
		}
	}
}

// admissible prunes host vertices that cannot carry the pattern vertex:
// every edge at the pattern vertex needs a distinct host edge.
func (sg *SubGraph) admissible(g *graph.Graph, sgIdx, id int) bool {
	if g.Directed {
		return sg.OutDeg[sgIdx] <= g.OutDegree(id) && sg.InDeg[sgIdx] <= g.InDegree(id)
	}
	return len(sg.Adj[sgIdx]) <= g.Degree(id)
}
