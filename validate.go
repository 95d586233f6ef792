package fleetgen

import (
	"fmt"

	"github.com/gammazero/deque"
	"go.uber.org/multierr"
)

// Validate checks every structural promise the generator makes about d and
// returns all violations combined. Each one wraps ErrInvalidDataset.
func Validate(d *Dataset) error {
	var err error
	fail := func(format string, args ...interface{}) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidDataset}, args...)...))
	}

	g := d.Graph
	n := len(g.Nodes)
	if g.NumNodes != n {
		fail("num_nodes is %d but %d nodes are listed", g.NumNodes, n)
	}
	if n == 0 {
		fail("no nodes")
		return err
	}

	ids := make([]bool, n)
	for i, node := range g.Nodes {
		if node.ID < 0 || node.ID >= n {
			fail("node %d has id %d outside 0..%d", i, node.ID, n-1)
			continue
		}
		if ids[node.ID] {
			fail("node id %d listed twice", node.ID)
		}
		ids[node.ID] = true

		if node.ID == 0 {
			if node.Demand != 0 || node.Priority != 0 {
				fail("depot has demand %d and priority %.2f, want 0", node.Demand, node.Priority)
			}
			continue
		}
		if node.Demand < minDemand || node.Demand > maxDemand {
			fail("node %d demand %d outside [%d,%d]", node.ID, node.Demand, minDemand, maxDemand)
		}
		if node.Priority < minPriority || node.Priority > maxPriority {
			fail("node %d priority %.2f outside [%.2f,%.2f]", node.ID, node.Priority, minPriority, maxPriority)
		}
	}

	seen := make(map[int]int, len(g.Edges))
	for i, e := range g.Edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			fail("edge %d (%d,%d) has an endpoint outside 0..%d", i, e.U, e.V, n-1)
			continue
		}
		if e.U == e.V {
			fail("edge %d is a self-loop on %d", i, e.U)
			continue
		}
		key := GetEdgeIndex(e.U, e.V, n)
		if first, ok := seen[key]; ok {
			fail("edge %d (%d,%d) duplicates edge %d", i, e.U, e.V, first)
		} else {
			seen[key] = i
		}
		if e.Cost < minCost || e.Cost > maxCost {
			fail("edge %d cost %d outside [%d,%d]", i, e.Cost, minCost, maxCost)
		}
		if e.Reliability < minReliability || e.Reliability > maxReliability {
			fail("edge %d reliability %.2f outside [%.2f,%.2f]", i, e.Reliability, minReliability, maxReliability)
		}
	}
	if !Connected(d) {
		fail("graph is not connected from the depot")
	}

	k := VehicleCount(n)
	if len(d.Vehicles) != k {
		fail("%d vehicles, want %d", len(d.Vehicles), k)
	}
	capacity := VehicleCapacity(TotalDemand(g.Nodes), k)
	for i, v := range d.Vehicles {
		if v.ID != i+1 {
			fail("vehicle %d has id %d, want %d", i, v.ID, i+1)
		}
		if v.Capacity != capacity {
			fail("vehicle %d capacity %d, want %d", v.ID, v.Capacity, capacity)
		}
	}
	return err
}

// ValidateSettings runs Validate and also checks that d has the size s
// asked for.
func ValidateSettings(d *Dataset, s Settings) error {
	err := Validate(d)
	if len(d.Graph.Nodes) != s.Nodes {
		err = multierr.Append(err, fmt.Errorf("%w: %d nodes, want %d", ErrInvalidDataset, len(d.Graph.Nodes), s.Nodes))
	}
	if len(d.Graph.Edges) != s.Edges {
		err = multierr.Append(err, fmt.Errorf("%w: %d edges, want %d", ErrInvalidDataset, len(d.Graph.Edges), s.Edges))
	}
	return err
}

// Connected reports whether every node is reachable from node 0. Edges with
// endpoints outside the node range are ignored.
func Connected(d *Dataset) bool {
	n := len(d.Graph.Nodes)
	if n == 0 {
		return false
	}
	adj := adjacency(n, d.Graph.Edges)

	visited := make([]bool, n)
	visited[0] = true
	reached := 1
	var queue deque.Deque[int]
	queue.PushBack(0)
	for queue.Len() > 0 {
		u := queue.PopFront()
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				reached++
				queue.PushBack(v)
			}
		}
	}
	return reached == n
}

func adjacency(n int, edges []Edge) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			continue
		}
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	return adj
}
