// Package motif finds network motifs: small connected subgraphs that
// occur in a graph more often than chance predicts. The pipeline
// enumerates all induced subgraphs of a given size (ESU), groups them
// into distinct topologies, and estimates each topology's significance
// against an ensemble of degree preserving randomizations of the graph.
package motif

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/motif/graph"
	"github.com/timtadh/motif/subgraph"
)

// Motif is a candidate topology, its count in the real graph, and the
// estimated probability of meeting that count by chance.
type Motif struct {
	Pattern *subgraph.SubGraph
	Count   int
	PValue  float64
}

type Motifs []*Motif

// Sort orders by ascending p-value. The sort is stable, ties keep their
// discovery order.
func (ms Motifs) Sort() {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].PValue < ms[j].PValue
	})
}

func (ms Motifs) String() string {
	lines := make([]string, 0, len(ms)+1)
	lines = append(lines, fmt.Sprintf("%-10v %-8v %v", "p-value", "count", "topology"))
	for _, m := range ms {
		lines = append(lines, fmt.Sprintf("%-10.4f %-8d %v", m.PValue, m.Count, m.Pattern))
	}
	return strings.Join(lines, "\n")
}

type Strategy func(g *graph.Graph, opts ...Option) (Motifs, error)

var Strategies = map[string]Strategy{
	"fast": FindMotifs,
	"slow": FindMotifsSlow,
}

// FindMotifs runs the engine with the fast strategy: every trial
// re-enumerates and re-classifies the randomized graph, then each
// candidate succeeds when some randomized topology is isomorphic to it
// with at least the candidate's real count.
func FindMotifs(g *graph.Graph, opts ...Option) (Motifs, error) {
	return findMotifs(g, fastTrial, opts...)
}

// FindMotifsSlow runs the engine with the direct strategy: every trial
// searches each candidate pattern in the randomized graph one by one and
// counts embeddings on distinct vertex sets. Much slower than FindMotifs
// on anything but small graphs; kept as the reference the fast strategy
// is measured against.
func FindMotifsSlow(g *graph.Graph, opts ...Option) (Motifs, error) {
	return findMotifs(g, slowTrial, opts...)
}

type trialFunc func(g *graph.Graph, cands []*Topology, o *Options, prng *rand.Rand) ([]bool, error)

func findMotifs(g *graph.Graph, trial trialFunc, opts ...Option) (Motifs, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	cands, err := candidates(g, o)
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		return make(Motifs, 0), nil
	}
	successes, err := runTrials(g, cands, o, trial)
	if err != nil {
		return nil, err
	}
	motifs := make(Motifs, 0, len(cands))
	for i, t := range cands {
		motifs = append(motifs, &Motif{
			Pattern: t.Pattern,
			Count:   t.Count,
			PValue:  float64(successes[i]) / float64(o.RandNetworks),
		})
	}
	motifs.Sort()
	return motifs, nil
}

// candidates classifies the real graph and keeps the topologies frequent
// enough to be worth testing.
func candidates(g *graph.Graph, o *Options) ([]*Topology, error) {
	tops, err := CountUniqueTopologies(InducedPatterns(g, EnumerateSubgraphs(g, nil, o.Size)))
	if err != nil {
		return nil, err
	}
	cands := make([]*Topology, 0, len(tops))
	for _, t := range tops {
		if t.Count >= o.MinOccurrences {
			cands = append(cands, t)
		}
	}
	return cands, nil
}

// runTrials draws one seed per trial from the master source up front, in
// trial order, so results do not depend on scheduling, then dispatches
// sequentially or to the worker pipeline.
func runTrials(g *graph.Graph, cands []*Topology, o *Options, trial trialFunc) ([]int, error) {
	seeds := make([]int64, o.RandNetworks)
	for i := range seeds {
		seeds[i] = o.Rng.Int63()
	}
	if o.Workers > 1 {
		return parTrials(g, cands, o, trial, seeds)
	}
	successes := make([]int, len(cands))
	for i, seed := range seeds {
		hits, err := trial(g, cands, o, rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, trialErr(err, i)
		}
		tally(successes, hits)
		if o.Progress != nil && (i+1)%o.ProgressEvery == 0 {
			o.Progress(i + 1)
		}
	}
	return successes, nil
}

func tally(successes []int, hits []bool) {
	for i, hit := range hits {
		if hit {
			successes[i]++
		}
	}
}

// trialErr pins the failing trial on errors that carry a slot for it.
func trialErr(err error, trial int) error {
	if re, ok := err.(*RandomizationExhausted); ok {
		re.Trial = trial
	}
	return err
}

// fastTrial scores one randomized network by full re-enumeration. A
// candidate is hit at most once per trial no matter how many randomized
// topologies happen to match it.
func fastTrial(g *graph.Graph, cands []*Topology, o *Options, prng *rand.Rand) ([]bool, error) {
	rg, err := Randomize(g, prng, o.SwapSteps, o.MaxSteps)
	if err != nil {
		return nil, err
	}
	rtops, err := CountUniqueTopologies(InducedPatterns(rg, EnumerateSubgraphs(rg, nil, o.Size)))
	if err != nil {
		return nil, err
	}
	hits := make([]bool, len(cands))
	for _, rt := range rtops {
		if rt.Count < o.MinOccurrences {
			continue
		}
		for i, t := range cands {
			if hits[i] || rt.Count < t.Count {
				continue
			}
			iso, err := subgraph.Isomorphic(t.Pattern, rt.Pattern)
			if err != nil {
				return nil, err
			}
			if iso {
				hits[i] = true
			}
		}
	}
	return hits, nil
}

// slowTrial scores one randomized network by searching every candidate
// pattern in it directly.
func slowTrial(g *graph.Graph, cands []*Topology, o *Options, prng *rand.Rand) ([]bool, error) {
	rg, err := Randomize(g, prng, o.SwapSteps, o.MaxSteps)
	if err != nil {
		return nil, err
	}
	hits := make([]bool, len(cands))
	for i, t := range cands {
		count, err := uniqueMatches(t.Pattern, rg, nil)
		if err != nil {
			return nil, err
		}
		hits[i] = count >= t.Count
	}
	return hits, nil
}

// uniqueMatches counts the embeddings of sg in g that cover distinct
// vertex sets, so the permutations of one occurrence count once.
func uniqueMatches(sg *subgraph.SubGraph, g *graph.Graph, em subgraph.EdgeMatch) (int, error) {
	ei, err := sg.IterEmbeddings(g, em)
	if err != nil {
		return 0, err
	}
	ids := set.NewSortedSet(10)
	for emb, next := ei(false); next != nil; emb, next = next(false) {
		ids.Add(types.ByteSlice(embKey(emb.SortedIds(sg))))
	}
	return ids.Size(), nil
}

// embKey packs sorted host ids into one comparable key.
func embKey(ids []int) []byte {
	key := make([]byte, 4*len(ids))
	for i, id := range ids {
		binary.BigEndian.PutUint32(key[i*4:i*4+4], uint32(id))
	}
	return key
}
