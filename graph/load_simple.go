package graph

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

type SimpleLoader struct {
	Builder *Builder
	Labels  *Labels
	names   []string
	vidxs   map[string]int
}

// LoadSimple reads the line oriented graph format:
//
//	digraph
//	vertex	<id>[,<label>]
//	edge	<src>,<targ>[,<sign>]
//
// The first non-blank line may be `digraph` or `graph` and fixes the
// directedness; without it the directed parameter applies. Fields are
// comma separated and may be quoted (Go string syntax) when they contain
// commas or whitespace. A vertex without a label is labeled by its id; an
// edge without a sign gets the empty sign. Edges may only reference
// declared vertices.
func LoadSimple(labels *Labels, directed bool, input io.Reader) (*Named, error) {
	l := &SimpleLoader{
		Builder: Build(directed, 10, 10),
		Labels:  labels,
		vidxs:   make(map[string]int),
	}
	return l.load(directed, input)
}

func (l *SimpleLoader) load(directed bool, input io.Reader) (*Named, error) {
	first := true
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			first = false
			switch line {
			case "digraph":
				l.Builder.Directed = true
				continue
			case "graph":
				l.Builder.Directed = false
				continue
			}
		}
		split := strings.SplitN(line, "\t", 2)
		kind, rest := split[0], split[1:]
		switch kind {
		case "vertex":
			err := l.vertex(rest)
			if err != nil {
				return nil, err
			}
		case "edge":
			err := l.edge(rest)
			if err != nil {
				return nil, err
			}
		default:
			return nil, errors.Errorf("unexpected kind `%v` for line `%v`", kind, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewNamed(l.Builder.Build(), l.Labels, l.names), nil
}

func (l *SimpleLoader) vertex(rest []string) error {
	if len(rest) != 1 {
		return errors.Errorf("vertex line in unexpected format: `%v`", rest)
	}
	tokens, err := l.tokens(rest[0])
	if err != nil {
		return err
	}
	if len(tokens) < 1 || len(tokens) > 2 {
		return errors.Errorf("vertex line in unexpected format (expected 1-2 tokens): `%v`", tokens)
	}
	id, err := unquote(tokens[0])
	if err != nil {
		return err
	}
	label := id
	if len(tokens) == 2 {
		label, err = unquote(tokens[1])
		if err != nil {
			return err
		}
	}
	if _, has := l.vidxs[id]; has {
		return errors.Errorf("duplicate vertex id `%v`", id)
	}
	vertex := l.Builder.AddVertex(l.Labels.Color(label))
	l.vidxs[id] = vertex.Idx
	l.names = append(l.names, id)
	return nil
}

func (l *SimpleLoader) edge(rest []string) error {
	if len(rest) != 1 {
		return errors.Errorf("edge line in unexpected format: `%v`", rest)
	}
	tokens, err := l.tokens(rest[0])
	if err != nil {
		return err
	}
	if len(tokens) < 2 || len(tokens) > 3 {
		return errors.Errorf("edge line in unexpected format (expected 2-3 tokens): `%v`", tokens)
	}
	src, err := unquote(tokens[0])
	if err != nil {
		return err
	}
	targ, err := unquote(tokens[1])
	if err != nil {
		return err
	}
	sign := ""
	if len(tokens) == 3 {
		sign, err = unquote(tokens[2])
		if err != nil {
			return err
		}
	}
	sidx, has := l.vidxs[src]
	if !has {
		return errors.Errorf("unknown src id %v", src)
	}
	tidx, has := l.vidxs[targ]
	if !has {
		return errors.Errorf("unknown targ id %v", targ)
	}
	l.Builder.AddEdge(&l.Builder.V[sidx], &l.Builder.V[tidx], l.Labels.Color(sign))
	return nil
}

func (l *SimpleLoader) tokens(s string) ([]string, error) {
	buf := make([]rune, 0, len(s))
	parts := make([]string, 0, 3)
	quotes := false
	backslash := false
	for _, c := range s {
		switch c {
		case '"':
			if !backslash {
				quotes = !quotes
			}
		case ',':
			if !backslash && !quotes {
				parts = append(parts, strings.TrimSpace(string(buf)))
				buf = buf[:0]
				continue
			}
		}
		if c == '\\' {
			backslash = !backslash
		} else if backslash {
			backslash = false
		}
		buf = append(buf, c)
	}
	if backslash {
		return nil, errors.Errorf("unfinished backslash: `%v`", s)
	}
	if quotes {
		return nil, errors.Errorf("unclosed quote: `%v`", s)
	}
	if len(buf) > 0 {
		parts = append(parts, strings.TrimSpace(string(buf)))
	}
	return parts, nil
}

func unquote(token string) (string, error) {
	if strings.HasPrefix(token, `"`) {
		return strconv.Unquote(token)
	}
	return token, nil
}
