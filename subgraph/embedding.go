package subgraph

import (
	"fmt"
	"sort"
	"strings"
)

type Embeddings []*Embedding

// Embedding is one injective pattern to host vertex mapping, stored as a
// linked list so partial embeddings share their prefixes during search.
type Embedding struct {
	VertexEmbedding
	Prev *Embedding
}

type VertexEmbedding struct {
	SgIdx, EmbIdx int
}

func StartEmbedding(v VertexEmbedding) *Embedding {
	return &Embedding{VertexEmbedding: v, Prev: nil}
}

func (emb *Embedding) Extend(v VertexEmbedding) *Embedding {
	return &Embedding{VertexEmbedding: v, Prev: emb}
}

// Slice flattens the mapping to pattern order: element i is the host id
// of pattern vertex i, -1 where nothing is mapped yet.
func (emb *Embedding) Slice(sg *SubGraph) []int {
	ids := make([]int, len(sg.V))
	for i := 0; i < len(sg.V); i++ {
		ids[i] = -1
	}
	for e := emb; e != nil; e = e.Prev {
		ids[e.SgIdx] = e.EmbIdx
	}
	return ids
}

// SortedIds gives the mapped host ids in ascending order. Two complete
// embeddings over the same host vertices produce equal slices.
func (emb *Embedding) SortedIds(sg *SubGraph) []int {
	ids := emb.Slice(sg)
	sort.Ints(ids)
	return ids
}

func (emb *Embedding) hasId(id int) bool {
	for c := emb; c != nil; c = c.Prev {
		if id == c.EmbIdx {
			return true
		}
	}
	return false
}

func (emb *Embedding) ids(srcIdx, targIdx int) (srcId, targId int) {
	srcId = -1
	targId = -1
	for c := emb; c != nil; c = c.Prev {
		if c.SgIdx == srcIdx {
			srcId = c.EmbIdx
		}
		if c.SgIdx == targIdx {
			targId = c.EmbIdx
		}
	}
	return srcId, targId
}

func (emb *Embedding) String() string {
	items := make([]string, 0, 10)
	for e := emb; e != nil; e = e.Prev {
		items = append(items, fmt.Sprintf("<sg-idx: %v, emb-idx: %v>", e.SgIdx, e.EmbIdx))
	}
	return fmt.Sprintf("(%v)", strings.Join(items, ", "))
}
