package subgraph

import "testing"

import (
	"github.com/stretchr/testify/assert"
)

import (
	"github.com/timtadh/motif/graph"
)

func collect(t *testing.T, sg *SubGraph, g *graph.Graph, em EdgeMatch) Embeddings {
	embs, err := sg.Matches(g, em)
	if err != nil {
		t.Fatal(err)
	}
	return embs
}

// blackToRed is the pattern (black)->(red).
func blackToRed(labels *graph.Labels) *SubGraph {
	b := Build(true, 2, 1)
	u := b.AddVertex(labels.Color("black"))
	v := b.AddVertex(labels.Color("red"))
	b.AddEdge(u, v, labels.Color(""))
	return b.Build()
}

func TestMatchesEdge(t *testing.T) {
	x := assert.New(t)
	g, labels := host(t)
	embs := collect(t, blackToRed(labels), g, nil)
	x.Equal(6, len(embs), "vertex colors never constrain a match: every arc carries a single-edge pattern")
}

func TestMatchesPath(t *testing.T) {
	x := assert.New(t)
	g, labels := host(t)
	b := Build(true, 3, 2)
	u := b.AddVertex(labels.Color("black"))
	v := b.AddVertex(labels.Color("red"))
	w := b.AddVertex(labels.Color("red"))
	b.AddEdge(u, v, labels.Color(""))
	b.AddEdge(v, w, labels.Color(""))
	sg := b.Build()
	embs := collect(t, sg, g, nil)
	x.Equal(2, len(embs), "only 0->3->5 and 1->4->2 chain through")
	for _, emb := range embs {
		ids := emb.Slice(sg)
		x.Equal(3, len(ids))
		x.NotContains(ids, -1, "embeddings are complete")
		e, has := g.FindEdge(ids[0], ids[1])
		x.True(has)
		x.NotNil(e)
	}
}

func TestMatchesRespectDirection(t *testing.T) {
	x := assert.New(t)
	g, labels := host(t)
	// the in-fork u -> v <- w: only the shared targets 2 and 5 carry it,
	// while the chain u -> v -> w (TestMatchesPath) fits elsewhere
	b := Build(true, 3, 2)
	u := b.AddVertex(labels.Color("black"))
	v := b.AddVertex(labels.Color("red"))
	w := b.AddVertex(labels.Color("black"))
	b.AddEdge(u, v, labels.Color(""))
	b.AddEdge(w, v, labels.Color(""))
	embs := collect(t, b.Build(), g, nil)
	x.Equal(4, len(embs), "two in-forks, two source orders each")
}

func TestMatchesUndirectedHost(t *testing.T) {
	x := assert.New(t)
	labels := graph.NewLabels()
	c := labels.Color("n")
	gb := graph.Build(false, 3, 2)
	h0 := gb.AddVertex(c)
	h1 := gb.AddVertex(c)
	h2 := gb.AddVertex(c)
	gb.AddEdge(h0, h1, labels.Color(""))
	gb.AddEdge(h1, h2, labels.Color(""))
	g := gb.Build()
	b := Build(false, 2, 1)
	u := b.AddVertex(c)
	v := b.AddVertex(c)
	b.AddEdge(u, v, labels.Color(""))
	embs := collect(t, b.Build(), g, nil)
	x.Equal(4, len(embs), "both orientations of both edges")
}

func TestMatchesTypeMismatch(t *testing.T) {
	x := assert.New(t)
	g, labels := host(t)
	b := Build(false, 2, 1)
	u := b.AddVertex(labels.Color("black"))
	v := b.AddVertex(labels.Color("red"))
	b.AddEdge(u, v, labels.Color(""))
	_, err := b.Build().Matches(g, nil)
	x.Error(err)
	tm, ok := err.(*TypeMismatch)
	x.True(ok, "expected a *TypeMismatch got %T", err)
	x.True(tm.HostDirected)
	x.False(tm.PatternDirected)
}

func TestMatchesSignSensitive(t *testing.T) {
	x := assert.New(t)
	labels := graph.NewLabels()
	c := labels.Color("n")
	plus := labels.Color("+")
	minus := labels.Color("-")
	gb := graph.Build(true, 3, 2)
	h0 := gb.AddVertex(c)
	h1 := gb.AddVertex(c)
	h2 := gb.AddVertex(c)
	gb.AddEdge(h0, h1, plus)
	gb.AddEdge(h0, h2, minus)
	g := gb.Build()
	b := Build(true, 2, 1)
	u := b.AddVertex(c)
	v := b.AddVertex(c)
	b.AddEdge(u, v, plus)
	sg := b.Build()
	x.Equal(2, len(collect(t, sg, g, nil)), "signs are ignored without a predicate")
	embs := collect(t, sg, g, SignsEqual)
	x.Equal(1, len(embs))
	x.Equal([]int{0, 1}, embs[0].Slice(sg))
}

func TestSortedIdsAgreeAcrossAutomorphisms(t *testing.T) {
	x := assert.New(t)
	labels := graph.NewLabels()
	c := labels.Color("n")
	s := labels.Color("")
	gb := graph.Build(true, 3, 2)
	h0 := gb.AddVertex(c)
	h1 := gb.AddVertex(c)
	h2 := gb.AddVertex(c)
	gb.AddEdge(h0, h1, s)
	gb.AddEdge(h0, h2, s)
	g := gb.Build()
	b := Build(true, 3, 2)
	u := b.AddVertex(c)
	v := b.AddVertex(c)
	w := b.AddVertex(c)
	b.AddEdge(u, v, s)
	b.AddEdge(u, w, s)
	sg := b.Build()
	embs := collect(t, sg, g, nil)
	x.Equal(2, len(embs), "the fork maps onto itself both ways")
	x.Equal(embs[0].SortedIds(sg), embs[1].SortedIds(sg))
}

func TestEmbeddedIn(t *testing.T) {
	x := assert.New(t)
	g, labels := host(t)
	has, err := blackToRed(labels).EmbeddedIn(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	x.True(has)
	b := Build(true, 3, 3)
	u := b.AddVertex(labels.Color("red"))
	v := b.AddVertex(labels.Color("red"))
	w := b.AddVertex(labels.Color("red"))
	b.AddEdge(u, v, labels.Color(""))
	b.AddEdge(v, w, labels.Color(""))
	b.AddEdge(w, u, labels.Color(""))
	has, err = b.Build().EmbeddedIn(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	x.False(has, "the host is acyclic, no directed triangle embeds")
}
