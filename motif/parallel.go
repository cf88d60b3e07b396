package motif

import (
	"math/rand"
	"sync"
)

import (
	"github.com/timtadh/motif/graph"
)

type trialResult struct {
	trial int
	hits  []bool
	err   error
}

// parTrials fans the trials out over Workers goroutines. Every trial owns
// a fresh prng built from its pre-drawn seed, and the candidate patterns
// are read only during trials (their caches were filled while
// classifying), so the tallies match a sequential run over the same
// master source; only the timing of Progress calls differs. The first
// error by trial order wins; remaining trials are drained, not canceled.
func parTrials(g *graph.Graph, cands []*Topology, o *Options, trial trialFunc, seeds []int64) ([]int, error) {
	type job struct {
		trial int
		seed  int64
	}
	var wg sync.WaitGroup
	jobs := make(chan job)
	results := make(chan trialResult)
	gen := func() {
		for i, seed := range seeds {
			jobs <- job{trial: i, seed: seed}
		}
		close(jobs)
		wg.Wait()
		close(results)
	}
	work := func() {
		for j := range jobs {
			hits, err := trial(g, cands, o, rand.New(rand.NewSource(j.seed)))
			results <- trialResult{trial: j.trial, hits: hits, err: err}
		}
		wg.Done()
	}
	wg.Add(o.Workers)
	for i := 0; i < o.Workers; i++ {
		go work()
	}
	go gen()
	successes := make([]int, len(cands))
	done := 0
	failedTrial := -1
	var failed error
	for res := range results {
		if res.err != nil {
			if failedTrial == -1 || res.trial < failedTrial {
				failedTrial = res.trial
				failed = res.err
			}
			continue
		}
		if failed != nil {
			continue
		}
		tally(successes, res.hits)
		done++
		if o.Progress != nil && done%o.ProgressEvery == 0 {
			o.Progress(done)
		}
	}
	if failed != nil {
		return nil, trialErr(failed, failedTrial)
	}
	return successes, nil
}
