package motif

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/motif/cmd"
	"github.com/timtadh/motif/graph"
	"github.com/timtadh/motif/subgraph"
)

// NewCommand builds the motif subcommands. The shared config supplies the
// input graph and the output sink.
func NewCommand(c *cmd.Config) cmd.Runnable {
	return cmd.Commands(map[string]cmd.Runnable{
		"find":      findCommand(c),
		"enumerate": enumerateCommand(c),
		"randomize": randomizeCommand(c),
		"match":     matchCommand(c),
	})
}

func findCommand(c *cmd.Config) cmd.Runnable {
	return cmd.Cmd(
		"find",
		`[options]`,
		`
Search the graph for motifs: connected subgraph topologies which occur
more often than they would in comparable random networks. Each motif is
reported with its occurrence count and the fraction of randomized trials
which matched or beat that count (the p-value).

Option Flags
    -h,--help                         Show this message
    -k,--size=<int>                   Size of the motifs to look for (default 3)
    -m,--min-occurrences=<int>        Occurrences required in the input graph
                                      (default 5)
    -n,--rand-networks=<int>          Number of randomized trials (default 1000)
    --swap-steps=<int>                Edge swaps per randomized network
                                      (default 3 per edge)
    --max-steps=<int>                 Swap attempt budget per randomized
                                      network (default 10 times the swap steps)
    -w,--workers=<int>                Concurrent randomized trials (default 1)
    --seed=<int>                      Seed for the random source (default from
                                      the clock)
    --strategy=<name>                 Counting strategy, one of: fast, slow
                                      (default fast)
    --ping=<int>                      Log progress every <int> trials, 0 to
                                      silence (default 100)
    --dotty                           Also render each motif as dotty output
`,
		"k:m:n:w:",
		[]string{
			"size=",
			"min-occurrences=",
			"rand-networks=",
			"swap-steps=",
			"max-steps=",
			"workers=",
			"seed=",
			"strategy=",
			"ping=",
			"dotty",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			opts := make([]Option, 0, 10)
			find := Strategies["fast"]
			trials := 1000
			ping := 100
			dotty := false
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-k", "--size":
					k, err := strconv.Atoi(oa.Arg())
					if err != nil {
						return nil, cmd.Errorf(1, "Could not parse arg to `%v` expected an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					opts = append(opts, Size(k))
				case "-m", "--min-occurrences":
					m, err := strconv.Atoi(oa.Arg())
					if err != nil {
						return nil, cmd.Errorf(1, "Could not parse arg to `%v` expected an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					opts = append(opts, MinOccurrences(m))
				case "-n", "--rand-networks":
					t, err := strconv.Atoi(oa.Arg())
					if err != nil {
						return nil, cmd.Errorf(1, "Could not parse arg to `%v` expected an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					opts = append(opts, RandNetworks(t))
					trials = t
				case "--swap-steps":
					s, err := strconv.Atoi(oa.Arg())
					if err != nil {
						return nil, cmd.Errorf(1, "Could not parse arg to `%v` expected an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					opts = append(opts, SwapSteps(s))
				case "--max-steps":
					s, err := strconv.Atoi(oa.Arg())
					if err != nil {
						return nil, cmd.Errorf(1, "Could not parse arg to `%v` expected an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					opts = append(opts, MaxSteps(s))
				case "-w", "--workers":
					w, err := strconv.Atoi(oa.Arg())
					if err != nil {
						return nil, cmd.Errorf(1, "Could not parse arg to `%v` expected an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					opts = append(opts, Workers(w))
				case "--seed":
					s, err := strconv.ParseInt(oa.Arg(), 10, 64)
					if err != nil {
						return nil, cmd.Errorf(1, "Could not parse arg to `%v` expected an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					opts = append(opts, Seed(s))
				case "--strategy":
					f, has := Strategies[oa.Arg()]
					if !has {
						return nil, cmd.Errorf(1, "Strategy `%v` is not supported, expected one of: %v", oa.Arg(), strings.Join(strategyNames(), ", "))
					}
					find = f
				case "--ping":
					p, err := strconv.Atoi(oa.Arg())
					if err != nil {
						return nil, cmd.Errorf(1, "Could not parse arg to `%v` expected an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					ping = p
				case "--dotty":
					dotty = true
				}
			}
			if ping > 0 {
				total := trials
				opts = append(opts, ProgressEvery(ping), Progress(func(done int) {
					errors.Logf("INFO", "processed %v of %v random networks", done, total)
				}))
			}
			n, err := loadInput(c)
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			motifs, err := find(n.G, opts...)
			if err != nil {
				return nil, cmd.Err(3, err)
			}
			out, cleanup, err := c.Output()
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			defer cleanup()
			fmt.Fprintf(out, "%-10v %-8v %v\n", "p-value", "count", "topology")
			for _, m := range motifs {
				fmt.Fprintf(out, "%-10.4f %-8d %v\n", m.PValue, m.Count, m.Pattern.Pretty(n.Labels))
			}
			if dotty {
				for _, m := range motifs {
					fmt.Fprintf(out, "\n// p-value %.4f count %v\n%v\n", m.PValue, m.Count, m.Pattern.Dotty(n.Labels))
				}
			}
			return args, nil
		})
}

func enumerateCommand(c *cmd.Config) cmd.Runnable {
	return cmd.Cmd(
		"enumerate",
		`[options]`,
		`
List every connected induced subgraph of the requested size, one per
line as a space separated list of vertex names.

Option Flags
    -h,--help                         Show this message
    -k,--size=<int>                   Size of the subgraphs (default 3)
    --seeds=<names>                   Comma separated vertex names every
                                      subgraph must contain
`,
		"k:",
		[]string{
			"size=",
			"seeds=",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			size := 3
			seedNames := ""
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-k", "--size":
					k, err := strconv.Atoi(oa.Arg())
					if err != nil {
						return nil, cmd.Errorf(1, "Could not parse arg to `%v` expected an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					size = k
				case "--seeds":
					seedNames = oa.Arg()
				}
			}
			n, err := loadInput(c)
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			var seeds []int
			if seedNames != "" {
				for _, name := range strings.Split(seedNames, ",") {
					name = strings.TrimSpace(name)
					idx, has := n.Id(name)
					if !has {
						return nil, cmd.Errorf(1, "the graph has no vertex named `%v`", name)
					}
					seeds = append(seeds, idx)
				}
			}
			out, cleanup, err := c.Output()
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			defer cleanup()
			count := 0
			subsets := EnumerateSubgraphs(n.G, seeds, size)
			for sub, next := subsets(); next != nil; sub, next = next() {
				names := make([]string, 0, len(sub))
				for _, v := range sub {
					names = append(names, n.Name(v))
				}
				fmt.Fprintln(out, strings.Join(names, " "))
				count++
			}
			errors.Logf("INFO", "enumerated %v subgraphs of size %v", count, size)
			return args, nil
		})
}

func randomizeCommand(c *cmd.Config) cmd.Runnable {
	return cmd.Cmd(
		"randomize",
		`[options]`,
		`
Rewire the graph with degree preserving edge swaps and write the result
in the input's format.

Option Flags
    -h,--help                         Show this message
    --swap-steps=<int>                Edge swaps to apply (default 3 per edge)
    --max-steps=<int>                 Swap attempt budget (default 10 times the
                                      swap steps)
    --seed=<int>                      Seed for the random source (default from
                                      the clock)
`,
		"",
		[]string{
			"swap-steps=",
			"max-steps=",
			"seed=",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			swapSteps := -1
			maxSteps := -1
			seed := time.Now().UnixNano()
			for _, oa := range optargs {
				switch oa.Opt() {
				case "--swap-steps":
					s, err := strconv.Atoi(oa.Arg())
					if err != nil {
						return nil, cmd.Errorf(1, "Could not parse arg to `%v` expected an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					swapSteps = s
				case "--max-steps":
					s, err := strconv.Atoi(oa.Arg())
					if err != nil {
						return nil, cmd.Errorf(1, "Could not parse arg to `%v` expected an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					maxSteps = s
				case "--seed":
					s, err := strconv.ParseInt(oa.Arg(), 10, 64)
					if err != nil {
						return nil, cmd.Errorf(1, "Could not parse arg to `%v` expected an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					seed = s
				}
			}
			n, err := loadInput(c)
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			rg, err := Randomize(n.G, rand.New(rand.NewSource(seed)), swapSteps, maxSteps)
			if err != nil {
				return nil, cmd.Err(3, err)
			}
			out, cleanup, err := c.Output()
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			defer cleanup()
			rn := n.WithGraph(rg)
			if c.InputFormat() == "dot" {
				err = rn.WriteDotty(out)
			} else {
				err = rn.WriteSimple(out)
			}
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			return args, nil
		})
}

func matchCommand(c *cmd.Config) cmd.Runnable {
	return cmd.Cmd(
		"match",
		`[options]`,
		`
Find every embedding of a pattern graph in the input graph. Each line
maps the pattern's vertices to the host vertices of one embedding.

Option Flags
    -h,--help                         Show this message
    -p,--pattern=<path>               File holding the pattern graph
    --sign-sensitive                  Edge labels must match exactly
    --unique                          Report each host vertex set once
`,
		"p:",
		[]string{
			"pattern=",
			"sign-sensitive",
			"unique",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			pattern := ""
			var em subgraph.EdgeMatch
			unique := false
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-p", "--pattern":
					pattern = oa.Arg()
				case "--sign-sensitive":
					em = subgraph.SignsEqual
				case "--unique":
					unique = true
				}
			}
			if pattern == "" {
				return nil, cmd.Usage(r, -1, "a pattern file must be supplied with -p")
			}
			n, err := loadInput(c)
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			// the pattern shares the host's label table so edge colors line up
			pn, err := loadPattern(c, pattern, n.Labels)
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			sg := subgraph.FromGraph(pn.G)
			out, cleanup, err := c.Output()
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			defer cleanup()
			ei, err := sg.IterEmbeddings(n.G, em)
			if err != nil {
				return nil, cmd.Err(3, err)
			}
			seen := make(map[string]bool)
			count := 0
			for emb, next := ei(false); next != nil; emb, next = next(false) {
				if unique {
					key := string(embKey(emb.SortedIds(sg)))
					if seen[key] {
						continue
					}
					seen[key] = true
				}
				ids := emb.Slice(sg)
				parts := make([]string, 0, len(ids))
				for i, id := range ids {
					parts = append(parts, fmt.Sprintf("%v=%v", pn.Name(i), n.Name(id)))
				}
				fmt.Fprintln(out, strings.Join(parts, " "))
				count++
			}
			errors.Logf("INFO", "found %v embeddings", count)
			return args, nil
		})
}

func strategyNames() []string {
	names := make([]string, 0, len(Strategies))
	for name := range Strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadInput(c *cmd.Config) (*graph.Named, error) {
	input, closeall, err := c.Input()
	if err != nil {
		return nil, err
	}
	defer closeall()
	labels := graph.NewLabels()
	if c.InputFormat() == "dot" {
		return graph.LoadDot(labels, input)
	}
	return graph.LoadSimple(labels, !c.Undirected, input)
}

func loadPattern(c *cmd.Config, path string, labels *graph.Labels) (*graph.Named, error) {
	input, closeall, err := cmd.Input(path)
	if err != nil {
		return nil, err
	}
	defer closeall()
	switch filepath.Ext(strings.TrimSuffix(path, ".gz")) {
	case ".dot", ".gv":
		return graph.LoadDot(labels, input)
	}
	return graph.LoadSimple(labels, !c.Undirected, input)
}
