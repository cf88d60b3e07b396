package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the input/output settings shared by every subcommand. The
// root option parser fills it in before the subcommand runs.
type Config struct {
	InputPath  string // empty or "-" means standard input
	OutputPath string // empty or "-" means standard output
	Format     string // "simple" or "dot"; empty sniffs the input path
	Undirected bool   // treat headerless simple input as undirected
	Cleanup    func() // run before exit when set
}

// InputFormat resolves the graph format. An explicit --format wins;
// otherwise a .dot or .gv extension on the input path (before any .gz)
// selects dot and everything else selects the simple line format.
func (c *Config) InputFormat() string {
	if c.Format != "" {
		return c.Format
	}
	switch filepath.Ext(strings.TrimSuffix(c.InputPath, ".gz")) {
	case ".dot", ".gv":
		return "dot"
	}
	return "simple"
}

func (c *Config) Input() (io.Reader, func(), error) {
	if c.InputPath == "" || c.InputPath == "-" {
		return os.Stdin, func() {}, nil
	}
	return Input(c.InputPath)
}

func (c *Config) Output() (io.Writer, func(), error) {
	if c.OutputPath == "" || c.OutputPath == "-" {
		return os.Stdout, func() {}, nil
	}
	return Output(c.OutputPath)
}
