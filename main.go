package main

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/motif/cmd"
	"github.com/timtadh/motif/motif"
)

var conf cmd.Config

var root = cmd.Cmd(os.Args[0],
	`[options] <command>`,
	`
Find network motifs: small connected subgraph topologies which occur
more often in the input graph than they do in comparable random
networks.

Option Flags
    -h,--help                         Show this message
    -i,--input=<path>                 Graph to read (default stdin). Gzipped
                                      files are decompressed.
    -o,--output=<path>                Where to write results (default stdout)
    -f,--format=<name>                Input format, one of: simple, dot
                                      (default sniffs the file extension)
    --undirected                      Treat headerless simple input as
                                      undirected
    --cpu-profile=<path>              Write a cpu profile to the path
`,
	"i:o:f:",
	[]string{
		"input=",
		"output=",
		"format=",
		"undirected",
		"cpu-profile=",
	},
	func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
		for _, oa := range optargs {
			switch oa.Opt() {
			case "-i", "--input":
				conf.InputPath = oa.Arg()
			case "-o", "--output":
				conf.OutputPath = oa.Arg()
			case "-f", "--format":
				switch oa.Arg() {
				case "simple", "dot":
					conf.Format = oa.Arg()
				default:
					return nil, cmd.Usage(r, -1, "Expected a format of simple or dot got %v", oa.Arg())
				}
			case "--undirected":
				conf.Undirected = true
			case "--cpu-profile":
				cleanup, err := cmd.CPUProfile(oa.Arg())
				if err != nil {
					return nil, err
				}
				conf.Cleanup = cleanup
			}
		}
		return args, nil
	},
)

func main() {
	main := cmd.Concat(
		root,
		motif.NewCommand(&conf),
	)
	args, err := main.Run(os.Args[1:])
	if conf.Cleanup != nil {
		conf.Cleanup()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(err.ExitCode)
	}
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "expected 0 args left got %v\n", args)
		os.Exit(1)
	}
}
