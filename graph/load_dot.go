package graph

import (
	"io"
	"strconv"
)

import (
	"github.com/awalterschulze/gographviz"
)

type DotLoader struct {
	Builder *Builder
	Labels  *Labels
	names   []string
	vidxs   map[string]int
}

// LoadDot reads a graphviz graph. `digraph` inputs come out directed,
// `graph` inputs undirected. Vertex labels default to the node name and
// edge signs to the edge's label attribute; endpoints of an edge that were
// never declared as nodes are created on the fly.
func LoadDot(labels *Labels, input io.Reader) (*Named, error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}
	parsed, err := gographviz.ParseString(string(text))
	if err != nil {
		return nil, err
	}
	dg := gographviz.NewGraph()
	if err := gographviz.Analyse(parsed, dg); err != nil {
		return nil, err
	}
	l := &DotLoader{
		Builder: Build(dg.Directed, 10, 10),
		Labels:  labels,
		vidxs:   make(map[string]int),
	}
	return l.load(dg)
}

func (l *DotLoader) load(dg *gographviz.Graph) (*Named, error) {
	for _, n := range dg.Nodes.Nodes {
		l.addVertex(n.Name, n.Attrs["label"])
	}
	for _, e := range dg.Edges.Edges {
		l.addEdge(e.Src, e.Dst, e.Attrs["label"])
	}
	return NewNamed(l.Builder.Build(), l.Labels, l.names), nil
}

func (l *DotLoader) addVertex(sid, label string) int {
	name := dotUnquote(sid)
	if idx, has := l.vidxs[name]; has {
		return idx
	}
	if label == "" {
		label = name
	} else {
		label = dotUnquote(label)
	}
	vertex := l.Builder.AddVertex(l.Labels.Color(label))
	l.vidxs[name] = vertex.Idx
	l.names = append(l.names, name)
	return vertex.Idx
}

func (l *DotLoader) addEdge(src, dst, label string) {
	sidx := l.addVertex(src, "")
	tidx := l.addVertex(dst, "")
	l.Builder.AddEdge(&l.Builder.V[sidx], &l.Builder.V[tidx], l.Labels.Color(dotUnquote(label)))
}

// gographviz keeps the quotes on quoted identifiers.
func dotUnquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if uq, err := strconv.Unquote(s); err == nil {
			return uq
		}
		return s[1 : len(s)-1]
	}
	return s
}
