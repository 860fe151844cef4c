package routing

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/hilexa-hlxa/SafeRoute/internal/geo"
	"github.com/hilexa-hlxa/SafeRoute/pkg/e"
)

type Node struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Edge struct {
	From    int64   `json:"from"`
	To      int64   `json:"to"`
	LengthM float64 `json:"length_m,omitempty"`
	SpeedMS float64 `json:"speed_ms,omitempty"`
}

// Graph is a read-only road graph. It is built once (LoadFile or AddNode/
// AddEdge during setup) and never mutated afterwards, so the planner reads
// it without locks; refreshes swap the whole graph via Holder.
type Graph struct {
	nodes map[int64]Node
	adj   map[int64][]Edge
	edges int
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int64]Node),
		adj:   make(map[int64][]Edge),
	}
}

func (g *Graph) AddNode(n Node) {
	g.nodes[n.ID] = n
}

// AddEdge inserts an undirected edge. A zero length is computed from the
// endpoint coordinates.
func (g *Graph) AddEdge(ed Edge) error {
	from, ok := g.nodes[ed.From]
	if !ok {
		return fmt.Errorf("edge references unknown node %d", ed.From)
	}
	to, ok := g.nodes[ed.To]
	if !ok {
		return fmt.Errorf("edge references unknown node %d", ed.To)
	}

	if ed.LengthM <= 0 {
		ed.LengthM = geo.HaversineM(from.Lat, from.Lng, to.Lat, to.Lng)
	}

	g.adj[ed.From] = append(g.adj[ed.From], ed)
	reverse := Edge{From: ed.To, To: ed.From, LengthM: ed.LengthM, SpeedMS: ed.SpeedMS}
	g.adj[ed.To] = append(g.adj[ed.To], reverse)
	g.edges++
	return nil
}

func (g *Graph) Node(id int64) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) Neighbors(id int64) []Edge {
	return g.adj[id]
}

func (g *Graph) NumNodes() int { return len(g.nodes) }
func (g *Graph) NumEdges() int { return g.edges }

// NearestNode snaps a coordinate to the closest node within maxSnapM meters.
func (g *Graph) NearestNode(lat, lng, maxSnapM float64) (Node, error) {
	const op = "routing.Graph.NearestNode"

	best := Node{}
	bestDist := maxSnapM
	found := false
	for _, n := range g.nodes {
		d := geo.HaversineM(lat, lng, n.Lat, n.Lng)
		if d < bestDist || (!found && d == bestDist) {
			best = n
			bestDist = d
			found = true
		}
	}
	if !found {
		return Node{}, fmt.Errorf("%s: no node within %.0fm: %w", op, maxSnapM, e.ErrPointUnreachable)
	}
	return best, nil
}

type graphFile struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// LoadFile reads a road graph from a JSON file. A broken graph file is an
// infrastructure fault: callers abort startup on error.
func LoadFile(path string) (*Graph, error) {
	const op = "routing.LoadFile"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var gf graphFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(gf.Nodes) == 0 {
		return nil, fmt.Errorf("%s: graph file %s has no nodes", op, path)
	}

	g := NewGraph()
	for _, n := range gf.Nodes {
		g.AddNode(n)
	}
	for _, ed := range gf.Edges {
		if err := g.AddEdge(ed); err != nil {
			return nil, e.Wrap(op, err)
		}
	}
	return g, nil
}

// Holder hands out the current graph and lets the refresh worker swap in a
// new one without blocking in-flight route computations.
type Holder struct {
	current atomic.Pointer[Graph]
}

func NewHolder(g *Graph) *Holder {
	h := &Holder{}
	h.current.Store(g)
	return h
}

func (h *Holder) Graph() *Graph {
	return h.current.Load()
}

func (h *Holder) Swap(g *Graph) {
	h.current.Store(g)
}
