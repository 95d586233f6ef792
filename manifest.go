package fleetgen

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// CollectSysInfo describes the machine a run happened on. Fields that cannot
// be read are left empty.
func CollectSysInfo() SysInfo {
	var info SysInfo
	if hostStat, err := host.Info(); err == nil {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}
	return info
}

func NewManifest(seed int64, sys SysInfo) *Manifest {
	return &Manifest{
		RunID:     uuid.New().String(),
		Seed:      seed,
		Generated: time.Now().UTC().Format(time.RFC3339),
		System:    sys,
	}
}

// Add records a written dataset.
func (m *Manifest) Add(file string, seed int64, d *Dataset) {
	e := ManifestEntry{
		File:        file,
		Seed:        seed,
		Nodes:       len(d.Graph.Nodes),
		Edges:       len(d.Graph.Edges),
		Vehicles:    len(d.Vehicles),
		TotalDemand: TotalDemand(d.Graph.Nodes),
	}
	if len(d.Vehicles) > 0 {
		e.Capacity = d.Vehicles[0].Capacity
	}
	m.Files = append(m.Files, e)
}
