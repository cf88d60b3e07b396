package cmd

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
)

import (
	"github.com/timtadh/getopt"
)

// leaf builds a command taking -a/--alpha which records the values it
// saw into got and passes the leftover arguments along.
func leaf(name string, got *[]string) Runnable {
	return Cmd(name, `[options]`, `
a test command

Option Flags
    -h,--help                         Show this message
    -a,--alpha=<value>                Record a value
`,
		"a:",
		[]string{"alpha="},
		func(r Runnable, args []string, optargs []getopt.OptArg) ([]string, *Error) {
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-a", "--alpha":
					*got = append(*got, oa.Arg())
				}
			}
			return args, nil
		})
}

func TestCommandParsesOpts(t *testing.T) {
	x := assert.New(t)
	var got []string
	args, err := leaf("test", &got).Run([]string{"-a", "one", "--alpha=two", "rest"})
	x.Nil(err)
	x.Equal([]string{"one", "two"}, got)
	x.Equal([]string{"rest"}, args)
}

func TestCommandHelp(t *testing.T) {
	x := assert.New(t)
	var got []string
	_, err := leaf("test", &got).Run([]string{"--help"})
	if !x.NotNil(err) {
		return
	}
	x.Equal(0, err.ExitCode, "help is not a failure")
	x.Contains(err.Error(), "a test command")
	x.Equal(0, len(got), "the action never runs under --help")
}

func TestCommandBadOpt(t *testing.T) {
	x := assert.New(t)
	var got []string
	_, err := leaf("test", &got).Run([]string{"--no-such-flag"})
	if !x.NotNil(err) {
		return
	}
	x.Equal(-1, err.ExitCode)
	x.Contains(err.Error(), "could not process args")
}

func TestAlternativesDispatch(t *testing.T) {
	x := assert.New(t)
	var ran []string
	alts := Commands(map[string]Runnable{
		"one": leaf("one", &ran),
		"two": leaf("two", &ran),
	})
	x.Equal("(one|two)", alts.Name())
	args, err := alts.Run([]string{"two", "-a", "hit"})
	x.Nil(err)
	x.Equal(0, len(args))
	x.Equal([]string{"hit"}, ran)
	_, err = alts.Run([]string{"three"})
	if x.NotNil(err) {
		x.Equal(-1, err.ExitCode)
	}
	_, err = alts.Run(nil)
	if x.NotNil(err) {
		x.Contains(err.Error(), "end of arguments")
	}
}

func TestConcatThreadsArgs(t *testing.T) {
	x := assert.New(t)
	var first, second []string
	// the root parses up to the subcommand name, the dispatch takes over
	seq := Concat(leaf("first", &first), Commands(map[string]Runnable{
		"run": leaf("run", &second),
	}))
	args, err := seq.Run([]string{"-a", "r", "run", "-a", "s"})
	x.Nil(err)
	x.Equal([]string{"r"}, first)
	x.Equal([]string{"s"}, second)
	x.Equal(0, len(args))
}

func TestConfigInputFormat(t *testing.T) {
	x := assert.New(t)
	x.Equal("dot", (&Config{InputPath: "g.dot"}).InputFormat())
	x.Equal("dot", (&Config{InputPath: "g.gv.gz"}).InputFormat())
	x.Equal("simple", (&Config{InputPath: "g.el"}).InputFormat())
	x.Equal("simple", (&Config{}).InputFormat())
	x.Equal("dot", (&Config{InputPath: "g.el", Format: "dot"}).InputFormat())
}

func TestInputGunzips(t *testing.T) {
	x := assert.New(t)
	path := filepath.Join(t.TempDir(), "lines.txt.gz")
	f, err := os.Create(path)
	x.NoError(err)
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte("0 1\n"))
	x.NoError(err)
	x.NoError(w.Close())
	x.NoError(f.Close())
	r, closeall, err := Input(path)
	x.NoError(err)
	defer closeall()
	buf := make([]byte, 16)
	n, _ := r.Read(buf)
	x.Equal("0 1\n", string(buf[:n]))
}
