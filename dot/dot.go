// Package dot renders the seating of a table as a Graphviz graph.
package dot // import "github.com/nickng/dinephil/dot"

import (
	"fmt"
	"io"

	"github.com/awalterschulze/gographviz"
	"github.com/nickng/dinephil/table"
)

// PhilosopherNode returns the node name of a philosopher.
func PhilosopherNode(p *table.Philosopher) string {
	return fmt.Sprintf("P%d", p.Priority())
}

// ForkNode returns the node name of a fork.
func ForkNode(f *table.Fork) string {
	return fmt.Sprintf("F%d", f.ID())
}

// Ring creates a graph with a node for every philosopher and fork, and an
// edge from each philosopher to its left and right fork.
func Ring(t *table.Table) *gographviz.Escape {
	graph := gographviz.NewEscape()
	graph.SetDir(true)
	graph.SetName("table")

	forks := gographviz.NewSubGraph("cluster_forks")
	graph.AddSubGraph(graph.Name, forks.Name, map[string]string{"label": "Forks"})
	for _, f := range t.Forks {
		graph.AddNode(forks.Name, ForkNode(f), map[string]string{
			"label": f.String(),
			"shape": "circle",
		})
	}

	for _, p := range t.Philosophers {
		graph.AddNode(graph.Name, PhilosopherNode(p), map[string]string{
			"label": p.String(),
			"shape": "rect",
		})
		graph.AddEdge(PhilosopherNode(p), ForkNode(p.Left()), true, map[string]string{"label": "left"})
		graph.AddEdge(PhilosopherNode(p), ForkNode(p.Right()), true, map[string]string{"label": "right"})
	}
	return graph
}

// WriteTo writes the ring of t in DOT format.
func WriteTo(w io.Writer, t *table.Table) (int64, error) {
	n, err := io.WriteString(w, Ring(t).String())
	return int64(n), err
}
