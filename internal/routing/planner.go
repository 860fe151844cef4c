package routing

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/internal/geo"
	"github.com/hilexa-hlxa/SafeRoute/pkg/e"
)

// costEpsilon is the float tolerance for "equal" path costs; ties are broken
// on fewer hops to keep results deterministic.
const costEpsilon = 1e-6

type Config struct {
	MaxSnapM            float64
	DefaultAvoidRadiusM float64
	PenaltyFactor       float64
	AvgSpeedMS          float64
	MaxExpansions       int
	// FallbackOnDisconnect re-runs the penalized search when hard exclusion
	// disconnects the endpoints. Disabled, such requests fail NoRouteFound.
	FallbackOnDisconnect bool
}

func DefaultConfig() Config {
	return Config{
		MaxSnapM:             250,
		DefaultAvoidRadiusM:  100,
		PenaltyFactor:        5,
		AvgSpeedMS:           1.4,
		MaxExpansions:        200_000,
		FallbackOnDisconnect: true,
	}
}

// HazardSource yields a consistent snapshot of queryable hazards inside an
// envelope. The planner computes entirely off that snapshot.
type HazardSource interface {
	Snapshot(env geo.Envelope) []domain.Hazard
}

// Planner computes hazard-aware walking routes. It holds no long-lived
// state beyond configuration; each Plan call reads one graph snapshot and
// one hazard snapshot, so concurrent plans run fully in parallel.
type Planner struct {
	logger  *slog.Logger
	graphs  *Holder
	hazards HazardSource
	cfg     Config
}

func NewPlanner(logger *slog.Logger, graphs *Holder, hazards HazardSource, cfg Config) *Planner {
	if cfg.MaxSnapM <= 0 {
		cfg.MaxSnapM = 250
	}
	if cfg.DefaultAvoidRadiusM <= 0 {
		cfg.DefaultAvoidRadiusM = 100
	}
	if cfg.PenaltyFactor <= 1 {
		cfg.PenaltyFactor = 5
	}
	if cfg.AvgSpeedMS <= 0 {
		cfg.AvgSpeedMS = 1.4
	}
	if cfg.MaxExpansions <= 0 {
		cfg.MaxExpansions = 200_000
	}
	return &Planner{logger: logger, graphs: graphs, hazards: hazards, cfg: cfg}
}

type hazardPoint struct {
	id       uuid.UUID
	lat, lng float64
}

func (p *Planner) Plan(req domain.RouteRequest) (*domain.RouteResult, error) {
	const op = "routing.Planner.Plan"

	if req.StartLat < -90 || req.StartLat > 90 || req.EndLat < -90 || req.EndLat > 90 ||
		req.StartLng < -180 || req.StartLng > 180 || req.EndLng < -180 || req.EndLng > 180 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidRequest)
	}
	if req.AvoidRadius < 0 {
		return nil, fmt.Errorf("%s: negative avoid_radius: %w", op, e.ErrInvalidRequest)
	}
	avoidRadius := req.AvoidRadius
	if avoidRadius == 0 {
		avoidRadius = p.cfg.DefaultAvoidRadiusM
	}

	// Degenerate request: identical endpoints never reach the graph search.
	if req.StartLat == req.EndLat && req.StartLng == req.EndLng {
		return nil, fmt.Errorf("%s: start equals end: %w", op, e.ErrInvalidRequest)
	}

	g := p.graphs.Graph()

	start, err := g.NearestNode(req.StartLat, req.StartLng, p.cfg.MaxSnapM)
	if err != nil {
		return nil, err
	}
	end, err := g.NearestNode(req.EndLat, req.EndLng, p.cfg.MaxSnapM)
	if err != nil {
		return nil, err
	}
	if start.ID == end.ID {
		// Both endpoints snap to the same node: degenerate within tolerance.
		return nil, fmt.Errorf("%s: endpoints snap to the same node: %w", op, e.ErrInvalidRequest)
	}

	// One spatial query for every hazard relevant to the corridor.
	env := geo.NewEnvelope(req.StartLat, req.StartLng, req.EndLat, req.EndLng, avoidRadius)
	snapshot := p.hazards.Snapshot(env)
	hazards := make([]hazardPoint, 0, len(snapshot))
	for _, h := range snapshot {
		hazards = append(hazards, hazardPoint{id: h.ID, lat: h.Lat, lng: h.Lng})
	}

	costs := newCostModel(g, hazards, avoidRadius, p.cfg.PenaltyFactor)

	degraded := false
	path, found := p.search(g, start.ID, end.ID, costs, req.HardExclude)
	if !found && req.HardExclude {
		if !p.cfg.FallbackOnDisconnect {
			return nil, fmt.Errorf("%s: hard exclusion disconnects endpoints: %w", op, e.ErrNoRouteFound)
		}
		degraded = true
		path, found = p.search(g, start.ID, end.ID, costs, false)
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNoRouteFound)
	}

	avoided := 0
	if len(hazards) > 0 {
		avoided = p.countAvoided(g, start.ID, end.ID, costs, path)
	}

	result := p.buildResult(g, path, avoided)
	result.Degraded = degraded

	p.logger.Debug("route planned",
		slog.Int("waypoints", len(result.Geometry)),
		slog.Float64("distance_m", result.DistanceM),
		slog.Int("incidents_avoided", result.IncidentsAvoided),
		slog.Bool("degraded", degraded),
	)
	return result, nil
}

// countAvoided runs the unpenalized baseline search and counts distinct
// hazards that fall within the avoidance radius of the baseline path but
// not of the chosen path: the hazards the route actually detoured around.
func (p *Planner) countAvoided(g *Graph, startID, endID int64, costs *costModel, finalPath []int64) int {
	baseline, ok := p.search(g, startID, endID, costs.unpenalized(), false)
	if !ok {
		return 0
	}

	onBaseline := costs.hazardsTouchingPath(g, baseline)
	if len(onBaseline) == 0 {
		return 0
	}
	onFinal := costs.hazardsTouchingPath(g, finalPath)

	avoided := 0
	for id := range onBaseline {
		if !onFinal[id] {
			avoided++
		}
	}
	return avoided
}

func (p *Planner) buildResult(g *Graph, path []int64, avoided int) *domain.RouteResult {
	geom := make([]domain.LatLng, 0, len(path))
	var distance, duration float64

	for i, id := range path {
		n, _ := g.Node(id)
		geom = append(geom, domain.LatLng{Lat: n.Lat, Lng: n.Lng})
		if i == 0 {
			continue
		}
		ed := edgeBetween(g, path[i-1], id)
		distance += ed.LengthM
		speed := ed.SpeedMS
		if speed <= 0 {
			speed = p.cfg.AvgSpeedMS
		}
		duration += ed.LengthM / speed
	}

	return &domain.RouteResult{
		Geometry:         geom,
		DistanceM:        distance,
		DurationS:        duration,
		IncidentsAvoided: avoided,
	}
}

func edgeBetween(g *Graph, from, to int64) Edge {
	for _, ed := range g.Neighbors(from) {
		if ed.To == to {
			return ed
		}
	}
	return Edge{}
}

// search is A* with a haversine heuristic. The heuristic never exceeds the
// true remaining length, and penalties only inflate costs, so it stays
// admissible. Expansions are capped; exceeding the cap means no result.
func (p *Planner) search(g *Graph, startID, endID int64, costs *costModel, hardExclude bool) ([]int64, bool) {
	goal, _ := g.Node(endID)

	states := map[int64]nodeState{startID: {prev: -1}}
	closed := make(map[int64]bool)

	startNode, _ := g.Node(startID)
	pq := &searchQueue{}
	heap.Init(pq)
	heap.Push(pq, &searchItem{
		node:     startID,
		priority: geo.HaversineM(startNode.Lat, startNode.Lng, goal.Lat, goal.Lng),
	})

	expansions := 0
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*searchItem)
		if closed[item.node] {
			continue
		}
		if item.node == endID {
			return reconstruct(states, endID), true
		}
		closed[item.node] = true

		expansions++
		if expansions > p.cfg.MaxExpansions {
			p.logger.Warn("route search expansion cap exceeded",
				slog.Int("cap", p.cfg.MaxExpansions))
			return nil, false
		}

		cur := states[item.node]
		for _, ed := range g.Neighbors(item.node) {
			if closed[ed.To] {
				continue
			}
			penalized, blocked := costs.edgeCost(ed, hardExclude)
			if blocked {
				continue
			}
			cand := nodeState{
				cost: cur.cost + penalized,
				hops: cur.hops + 1,
				prev: item.node,
			}
			old, seen := states[ed.To]
			if seen && !better(cand.cost, cand.hops, old.cost, old.hops) {
				continue
			}
			states[ed.To] = cand
			to, _ := g.Node(ed.To)
			heap.Push(pq, &searchItem{
				node:     ed.To,
				priority: cand.cost + geo.HaversineM(to.Lat, to.Lng, goal.Lat, goal.Lng),
				hops:     cand.hops,
			})
		}
	}
	return nil, false
}

// better prefers lower cost; equal costs (within epsilon) prefer fewer hops.
func better(cost float64, hops int, oldCost float64, oldHops int) bool {
	if math.Abs(cost-oldCost) <= costEpsilon {
		return hops < oldHops
	}
	return cost < oldCost
}

type nodeState struct {
	cost float64
	hops int
	prev int64
}

func reconstruct(states map[int64]nodeState, endID int64) []int64 {
	var rev []int64
	for id := endID; id != -1; id = states[id].prev {
		rev = append(rev, id)
	}
	out := make([]int64, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}
	return out
}

type searchItem struct {
	node     int64
	priority float64
	hops     int
	index    int
}

type searchQueue []*searchItem

func (q searchQueue) Len() int { return len(q) }
func (q searchQueue) Less(i, j int) bool {
	if math.Abs(q[i].priority-q[j].priority) <= costEpsilon {
		return q[i].hops < q[j].hops
	}
	return q[i].priority < q[j].priority
}
func (q searchQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *searchQueue) Push(x any) {
	item := x.(*searchItem)
	item.index = len(*q)
	*q = append(*q, item)
}
func (q *searchQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
