package routing

import (
	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/geo"
)

// costModel inflates edge costs near hazards. Edge-to-hazard distances are
// computed lazily and memoized per edge, so only edges the search actually
// touches pay for the geometry work.
type costModel struct {
	graph         *Graph
	hazards       []hazardPoint
	avoidRadiusM  float64
	penaltyFactor float64

	cache map[edgeKey]edgePenalty
}

type edgeKey struct {
	from, to int64
}

type edgePenalty struct {
	penalized bool
	hazards   []uuid.UUID
}

func newCostModel(g *Graph, hazards []hazardPoint, avoidRadiusM, penaltyFactor float64) *costModel {
	return &costModel{
		graph:         g,
		hazards:       hazards,
		avoidRadiusM:  avoidRadiusM,
		penaltyFactor: penaltyFactor,
		cache:         make(map[edgeKey]edgePenalty),
	}
}

// unpenalized returns a view of the same graph with hazards ignored, for
// baseline comparisons.
func (c *costModel) unpenalized() *costModel {
	return &costModel{
		graph: c.graph,
		cache: make(map[edgeKey]edgePenalty),
	}
}

// edgeCost returns the traversal cost for ed. In hard-exclusion mode a
// penalized edge is blocked instead.
func (c *costModel) edgeCost(ed Edge, hardExclude bool) (cost float64, blocked bool) {
	pen := c.penalty(ed)
	if !pen.penalized {
		return ed.LengthM, false
	}
	if hardExclude {
		return 0, true
	}
	return ed.LengthM * c.penaltyFactor, false
}

func (c *costModel) penalty(ed Edge) edgePenalty {
	if len(c.hazards) == 0 {
		return edgePenalty{}
	}

	// Undirected edges share one cache slot.
	key := edgeKey{from: ed.From, to: ed.To}
	if key.from > key.to {
		key.from, key.to = key.to, key.from
	}
	if pen, ok := c.cache[key]; ok {
		return pen
	}

	from, _ := c.graph.Node(ed.From)
	to, _ := c.graph.Node(ed.To)

	var pen edgePenalty
	for _, h := range c.hazards {
		d := geo.PointToSegmentM(h.lat, h.lng, from.Lat, from.Lng, to.Lat, to.Lng)
		if d < c.avoidRadiusM {
			pen.penalized = true
			pen.hazards = append(pen.hazards, h.id)
		}
	}
	c.cache[key] = pen
	return pen
}

// hazardsTouchingPath returns the distinct hazards that penalize at least
// one edge of the given node path.
func (c *costModel) hazardsTouchingPath(g *Graph, path []int64) map[uuid.UUID]bool {
	out := make(map[uuid.UUID]bool)
	for i := 1; i < len(path); i++ {
		ed := edgeBetween(g, path[i-1], path[i])
		for _, id := range c.penalty(ed).hazards {
			out[id] = true
		}
	}
	return out
}
