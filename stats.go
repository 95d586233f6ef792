package fleetgen

// Stats summarizes one dataset for reporting.
type Stats struct {
	Nodes           int
	Edges           int
	Vehicles        int
	Capacity        int
	TotalDemand     int
	MinDegree       int
	MaxDegree       int
	MeanDegree      float64
	MeanCost        float64
	MeanReliability float64
	Degrees         []int
}

func Summarize(d *Dataset) Stats {
	n := len(d.Graph.Nodes)
	st := Stats{
		Nodes:       n,
		Edges:       len(d.Graph.Edges),
		Vehicles:    len(d.Vehicles),
		TotalDemand: TotalDemand(d.Graph.Nodes),
	}
	if len(d.Vehicles) > 0 {
		st.Capacity = d.Vehicles[0].Capacity
	}

	adj := adjacency(n, d.Graph.Edges)
	st.Degrees = make([]int, n)
	for i, a := range adj {
		deg := len(a)
		st.Degrees[i] = deg
		if i == 0 || deg < st.MinDegree {
			st.MinDegree = deg
		}
		if deg > st.MaxDegree {
			st.MaxDegree = deg
		}
	}
	if n > 0 {
		st.MeanDegree = 2 * float64(st.Edges) / float64(n)
	}

	if st.Edges > 0 {
		cost, rel := 0, 0.0
		for _, e := range d.Graph.Edges {
			cost += e.Cost
			rel += e.Reliability
		}
		st.MeanCost = float64(cost) / float64(st.Edges)
		st.MeanReliability = rel / float64(st.Edges)
	}
	return st
}
