package fleetgen

import (
	"math/rand"
)

const (
	minDemand      = 1
	maxDemand      = 10
	minCost        = 1
	maxCost        = 10
	minPriority    = 0.5
	maxPriority    = 1.0
	minReliability = 0.5
	maxReliability = 1.0
)

// Generator draws datasets from its own random source. It is not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds a connected dataset with exactly s.Nodes nodes and
// s.Edges edges.
func (g *Generator) Generate(s Settings) (*Dataset, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	n := s.Nodes

	nodes := make([]Node, n)
	nodes[0] = Node{ID: 0}
	for i := 1; i < n; i++ {
		nodes[i] = Node{
			ID:       i,
			Demand:   g.intn(minDemand, maxDemand),
			Priority: round2(g.uniform(minPriority, maxPriority)),
		}
	}

	edges := make([]Edge, 0, s.Edges)
	seen := make(map[int]struct{}, s.Edges)
	add := func(u, v int) {
		seen[GetEdgeIndex(u, v, n)] = struct{}{}
		edges = append(edges, g.edge(u, v))
	}

	// spanning tree
	connected := make([]int, 1, n)
	remaining := make([]int, n-1)
	for i := range remaining {
		remaining[i] = i + 1
	}
	for len(remaining) > 0 {
		u := connected[g.rng.Intn(len(connected))]
		k := g.rng.Intn(len(remaining))
		v := remaining[k]
		remaining[k] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		add(u, v)
		connected = append(connected, v)
	}

	need := s.Edges - len(edges)
	free := MaxEdges(n) - len(edges)
	if need*2 > free {
		// Too dense for rejection sampling, draw from the free pairs instead.
		pairs := make([][2]int, 0, free)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if _, ok := seen[GetEdgeIndex(u, v, n)]; !ok {
					pairs = append(pairs, [2]int{u, v})
				}
			}
		}
		g.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
		for _, p := range pairs[:need] {
			add(p[0], p[1])
		}
	} else {
		for len(edges) < s.Edges {
			u := g.rng.Intn(n)
			v := g.rng.Intn(n)
			if u == v {
				continue
			}
			if _, ok := seen[GetEdgeIndex(u, v, n)]; ok {
				continue
			}
			add(u, v)
		}
	}

	return &Dataset{
		Graph: Graph{
			NumNodes: n,
			Nodes:    nodes,
			Edges:    edges,
		},
		Vehicles: BuildFleet(nodes),
	}, nil
}

// BuildFleet returns one vehicle per 50 nodes (at least one), all with the
// same capacity.
func BuildFleet(nodes []Node) []Vehicle {
	k := VehicleCount(len(nodes))
	capacity := VehicleCapacity(TotalDemand(nodes), k)
	vehicles := make([]Vehicle, k)
	for i := range vehicles {
		vehicles[i] = Vehicle{ID: i + 1, Capacity: capacity}
	}
	return vehicles
}

func (g *Generator) edge(u, v int) Edge {
	return Edge{
		U:           u,
		V:           v,
		Cost:        g.intn(minCost, maxCost),
		Reliability: round2(g.uniform(minReliability, maxReliability)),
	}
}

// intn is uniform over [lo, hi].
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
