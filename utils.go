package fleetgen

import (
	"math"
)

// GetEdgeIndex maps the unordered pair {i, j} of an n node graph to its
// position in the upper triangle of the adjacency matrix, row by row.
func GetEdgeIndex(i, j, n int) int {
	if j < i {
		i, j = j, i
	}
	return i*(2*n-i-1)/2 + j - i - 1
}

// MaxEdges is the number of distinct unordered pairs over n nodes.
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

func VehicleCount(n int) int {
	if k := n / 50; k > 1 {
		return k
	}
	return 1
}

// VehicleCapacity is 1.2 times the demand share of one vehicle, rounded up.
func VehicleCapacity(totalDemand, vehicles int) int {
	avg := float64(totalDemand) / float64(vehicles)
	c := int(math.Ceil(avg * 1.2))
	if c < 1 {
		c = 1
	}
	return c
}

func TotalDemand(nodes []Node) int {
	sum := 0
	for _, n := range nodes {
		sum += n.Demand
	}
	return sum
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
