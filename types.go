package fleetgen

type Dataset struct {
	Graph    Graph     `json:"graph"`
	Vehicles []Vehicle `json:"vehicles"`
}

type Graph struct {
	NumNodes int    `json:"num_nodes"`
	Nodes    []Node `json:"nodes"`
	Edges    []Edge `json:"edges"`
}

// Node 0 is always the depot.
type Node struct {
	ID       int     `json:"id"`
	Demand   int     `json:"demand"`
	Priority float64 `json:"priority"`
}

// Edge is undirected, U and V keep the order in which they were drawn.
type Edge struct {
	U           int     `json:"u"`
	V           int     `json:"v"`
	Cost        int     `json:"cost"`
	Reliability float64 `json:"reliability"`
}

type Vehicle struct {
	ID       int `json:"id"`
	Capacity int `json:"capacity"`
}

// Settings is one row of the generation table.
type Settings struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// Manifest records how a batch of datasets was produced.
type Manifest struct {
	RunID     string          `json:"run_id"`
	Seed      int64           `json:"seed"`
	Generated string          `json:"generated"`
	System    SysInfo         `json:"system"`
	Files     []ManifestEntry `json:"files"`
}

type ManifestEntry struct {
	File        string `json:"file"`
	Seed        int64  `json:"seed"`
	Nodes       int    `json:"nodes"`
	Edges       int    `json:"edges"`
	Vehicles    int    `json:"vehicles"`
	Capacity    int    `json:"capacity"`
	TotalDemand int    `json:"total_demand"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
}
