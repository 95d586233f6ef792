package fleetgen

import (
	"errors"
	"fmt"
)

var (
	ErrInfeasible     = errors.New("infeasible settings")
	ErrInvalidDataset = errors.New("invalid dataset")
)

// DefaultSettings is the fixture table generated when no sizes are given.
var DefaultSettings = []Settings{
	{Nodes: 50, Edges: 100},
	{Nodes: 100, Edges: 500},
	{Nodes: 200, Edges: 1000},
	{Nodes: 300, Edges: 1500},
	{Nodes: 400, Edges: 2000},
	{Nodes: 500, Edges: 2500},
	{Nodes: 600, Edges: 3000},
	{Nodes: 800, Edges: 4000},
	{Nodes: 1000, Edges: 5000},
	{Nodes: 1500, Edges: 10000},
	{Nodes: 2000, Edges: 15000},
	{Nodes: 2500, Edges: 20000},
	{Nodes: 3000, Edges: 25000},
	{Nodes: 4000, Edges: 40000},
	{Nodes: 4500, Edges: 45000},
	{Nodes: 5000, Edges: 50000},
}

// Check reports whether a connected simple graph with exactly s.Edges edges
// exists on s.Nodes nodes.
func (s Settings) Check() error {
	if s.Nodes < 1 {
		return fmt.Errorf("%w: need at least one node, got %d", ErrInfeasible, s.Nodes)
	}
	if s.Edges < s.Nodes-1 {
		return fmt.Errorf("%w: %d edges cannot connect %d nodes (need %d)", ErrInfeasible, s.Edges, s.Nodes, s.Nodes-1)
	}
	if limit := MaxEdges(s.Nodes); s.Edges > limit {
		return fmt.Errorf("%w: %d edges exceed the %d distinct pairs of %d nodes", ErrInfeasible, s.Edges, limit, s.Nodes)
	}
	return nil
}

func (s Settings) String() string {
	return fmt.Sprintf("%d:%d", s.Nodes, s.Edges)
}
