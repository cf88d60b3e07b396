package motif

import (
	"math/rand"
	"time"
)

// Options configures the significance engine. Build it through the Option
// functions; anything not set falls back to the defaults below.
type Options struct {
	Size           int              // subgraph size k (default 3)
	MinOccurrences int              // candidate threshold in the real graph (default 5)
	RandNetworks   int              // number of randomized trials (default 1000)
	SwapSteps      int              // swaps per randomization, negative for 3|E| (default -1)
	MaxSteps       int              // attempt budget, negative for 10x swaps (default -1)
	Workers        int              // parallel trial workers (default 1)
	Rng            *rand.Rand       // master source, seeds every trial (default time seeded)
	Progress       func(done int)   // called as trials complete, nil for silent
	ProgressEvery  int              // stride between Progress calls (default 100)
}

type Option func(*Options)

func Size(k int) Option {
	return func(o *Options) {
		o.Size = k
	}
}

func MinOccurrences(m int) Option {
	return func(o *Options) {
		o.MinOccurrences = m
	}
}

func RandNetworks(n int) Option {
	return func(o *Options) {
		o.RandNetworks = n
	}
}

func SwapSteps(s int) Option {
	return func(o *Options) {
		o.SwapSteps = s
	}
}

func MaxSteps(s int) Option {
	return func(o *Options) {
		o.MaxSteps = s
	}
}

func Workers(w int) Option {
	return func(o *Options) {
		o.Workers = w
	}
}

// Rng supplies the master random source. Runs with the same master source
// and configuration produce identical results, whatever Workers is.
func Rng(prng *rand.Rand) Option {
	return func(o *Options) {
		o.Rng = prng
	}
}

// Seed is shorthand for Rng over a fixed seed.
func Seed(seed int64) Option {
	return func(o *Options) {
		o.Rng = rand.New(rand.NewSource(seed))
	}
}

func Progress(progress func(done int)) Option {
	return func(o *Options) {
		o.Progress = progress
	}
}

func ProgressEvery(stride int) Option {
	return func(o *Options) {
		o.ProgressEvery = stride
	}
}

func newOptions(opts ...Option) (*Options, error) {
	o := &Options{
		Size:           3,
		MinOccurrences: 5,
		RandNetworks:   1000,
		SwapSteps:      -1,
		MaxSteps:       -1,
		Workers:        1,
		ProgressEvery:  100,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.Rng == nil {
		o.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Options) validate() error {
	if o.Size < 1 {
		return &InvalidConfiguration{Field: "Size", Value: o.Size, Reason: "subgraph size must be at least 1"}
	}
	if o.MinOccurrences < 1 {
		return &InvalidConfiguration{Field: "MinOccurrences", Value: o.MinOccurrences, Reason: "candidate threshold must be at least 1"}
	}
	if o.RandNetworks < 1 {
		return &InvalidConfiguration{Field: "RandNetworks", Value: o.RandNetworks, Reason: "need at least one randomized trial"}
	}
	if o.Workers < 1 {
		return &InvalidConfiguration{Field: "Workers", Value: o.Workers, Reason: "need at least one worker"}
	}
	if o.ProgressEvery < 1 {
		return &InvalidConfiguration{Field: "ProgressEvery", Value: o.ProgressEvery, Reason: "progress stride must be at least 1"}
	}
	return nil
}
