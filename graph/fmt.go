package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteSimple produces the format LoadSimple reads. Quoting is applied to
// every field so ids with commas survive the round trip.
func (n *Named) WriteSimple(w io.Writer) error {
	out := bufio.NewWriter(w)
	kind := "digraph"
	if !n.G.Directed {
		kind = "graph"
	}
	fmt.Fprintln(out, kind)
	for idx, v := range n.G.V {
		fmt.Fprintf(out, "vertex\t%v,%v\n",
			strconv.Quote(n.Name(idx)),
			strconv.Quote(n.Labels.Label(v.Color)))
	}
	for i := range n.G.E {
		e := &n.G.E[i]
		sign := n.Labels.Label(e.Color)
		if sign == "" {
			fmt.Fprintf(out, "edge\t%v,%v\n",
				strconv.Quote(n.Name(e.Src)),
				strconv.Quote(n.Name(e.Targ)))
		} else {
			fmt.Fprintf(out, "edge\t%v,%v,%v\n",
				strconv.Quote(n.Name(e.Src)),
				strconv.Quote(n.Name(e.Targ)),
				strconv.Quote(sign))
		}
	}
	return out.Flush()
}

// WriteDotty produces a graphviz rendition LoadDot reads back.
func (n *Named) WriteDotty(w io.Writer) error {
	kind := "digraph"
	arrow := "->"
	if !n.G.Directed {
		kind = "graph"
		arrow = "--"
	}
	V := make([]string, 0, len(n.G.V))
	E := make([]string, 0, len(n.G.E))
	for idx, v := range n.G.V {
		V = append(V, fmt.Sprintf(
			"%v [label=%v];",
			strconv.Quote(n.Name(idx)),
			strconv.Quote(n.Labels.Label(v.Color)),
		))
	}
	for i := range n.G.E {
		e := &n.G.E[i]
		attrs := ""
		if sign := n.Labels.Label(e.Color); sign != "" {
			attrs = fmt.Sprintf(" [label=%v]", strconv.Quote(sign))
		}
		E = append(E, fmt.Sprintf(
			"%v%v%v%v;",
			strconv.Quote(n.Name(e.Src)),
			arrow,
			strconv.Quote(n.Name(e.Targ)),
			attrs,
		))
	}
	_, err := fmt.Fprintf(w, "%v{\n%v\n%v\n}\n", kind, strings.Join(V, "\n"), strings.Join(E, "\n"))
	return err
}
