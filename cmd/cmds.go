package cmd

import (
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/getopt"
)

// Runnable is one piece of the command line: a leaf command, a sequence
// of them, or a dispatch over subcommand names.
type Runnable interface {
	Run(argv []string) ([]string, *Error)
	ShortOpts() string
	LongOpts() []string
	Name() string
	ShortUsage() string
	Usage() string
}

// Action consumes the parsed options and returns the arguments it did
// not use, so the next Runnable in a sequence picks up where it stopped.
type Action func(r Runnable, argv []string, optargs []getopt.OptArg) ([]string, *Error)

type Command struct {
	act       Action
	shortOpts string
	longOpts  []string
	name      string
	shortMsg  string
	message   string
}

type Sequence struct {
	runners []Runnable
}

type Alternatives struct {
	runners map[string]Runnable
}

// Cmd builds a leaf command. A -h/--help flag is always available and
// prints msg without running the action.
func Cmd(name, shortMsg, msg, shortOpts string, longOpts []string, act Action) Runnable {
	return &Command{
		act:       act,
		shortOpts: shortOpts,
		longOpts:  longOpts,
		name:      strings.TrimSpace(name),
		shortMsg:  strings.TrimSpace(shortMsg),
		message:   strings.TrimSpace(msg),
	}
}

// Concat runs the runners in order, each on the arguments the previous
// one left over.
func Concat(runners ...Runnable) Runnable {
	return &Sequence{
		runners: runners,
	}
}

// Commands dispatches on the first argument.
func Commands(runners map[string]Runnable) Runnable {
	return &Alternatives{
		runners: runners,
	}
}

func (c *Command) Run(argv []string) ([]string, *Error) {
	args, optargs, err := getopt.GetOpt(argv, c.ShortOpts(), c.LongOpts())
	if err != nil {
		return nil, Usage(c, -1, "could not process args: %v", err)
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			return nil, Usage(c, 0)
		}
	}
	return c.act(c, args, optargs)
}

func (c *Command) ShortOpts() string {
	if strings.Contains(c.shortOpts, "h") {
		return c.shortOpts
	}
	return c.shortOpts + "h"
}

func (c *Command) LongOpts() []string {
	for _, opt := range c.longOpts {
		if opt == "help" {
			return c.longOpts
		}
	}
	return append(c.longOpts, "help")
}

func (c *Command) Name() string {
	return c.name
}

func (c *Command) ShortUsage() string {
	return fmt.Sprintf("%v %v", c.name, c.shortMsg)
}

func (c *Command) Usage() string {
	return c.message
}

func (s *Sequence) Run(argv []string) ([]string, *Error) {
	_, optargs, err := getopt.GetOpt(argv, s.ShortOpts(), s.LongOpts())
	if err != nil {
		return nil, Usage(s, -1, "could not process args: %v", err)
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			return nil, Usage(s, 0)
		}
	}
	for _, r := range s.runners {
		var err *Error
		argv, err = r.Run(argv)
		if err != nil {
			return nil, err
		}
	}
	return argv, nil
}

func (s *Sequence) Name() string {
	return s.runners[0].Name()
}

func (s *Sequence) ShortOpts() string {
	return s.runners[0].ShortOpts()
}

func (s *Sequence) LongOpts() []string {
	return s.runners[0].LongOpts()
}

func (s *Sequence) ShortUsage() string {
	shorts := make([]string, 0, len(s.runners))
	for _, r := range s.runners {
		shorts = append(shorts, r.ShortUsage())
	}
	return strings.Join(shorts, " ")
}

func (s *Sequence) Usage() string {
	longs := make([]string, 0, len(s.runners))
	for _, r := range s.runners {
		longs = append(longs, r.Usage())
	}
	return strings.Join(longs, "\n\n")
}

func (a *Alternatives) Run(argv []string) ([]string, *Error) {
	if len(argv) == 0 {
		return nil, Usage(a, -1, "Expected one of %v got end of arguments", a.Name())
	}
	r, has := a.runners[argv[0]]
	if !has {
		return nil, Usage(a, -1, "Expected one of %v got %v", a.Name(), argv[0])
	}
	return r.Run(argv[1:])
}

func (a *Alternatives) names() []string {
	keys := make([]string, 0, len(a.runners))
	for k := range a.runners {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (a *Alternatives) Name() string {
	keys := a.names()
	if len(keys) == 1 {
		return keys[0]
	}
	return fmt.Sprintf("(%v)", strings.Join(keys, "|"))
}

func (a *Alternatives) ShortOpts() string {
	return ""
}

func (a *Alternatives) LongOpts() []string {
	return nil
}

func (a *Alternatives) ShortUsage() string {
	return a.Name()
}

func (a *Alternatives) Usage() string {
	keys := a.names()
	shorts := make([]string, 0, len(keys))
	longs := make([]string, 0, len(keys))
	for _, name := range keys {
		r := a.runners[name]
		shorts = append(shorts, "    "+r.ShortUsage())
		longs = append(longs, fmt.Sprintf("%v\n%v", r.ShortUsage(), indent(r.Usage(), 4)))
	}
	if len(keys) <= 1 {
		return strings.Join(longs, "\n\n")
	}
	return fmt.Sprintf("Commands\n%v\n\n%v",
		strings.Join(shorts, "\n"), indent(strings.Join(longs, "\n\n"), 4))
}

func indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
