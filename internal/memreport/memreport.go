// Package memreport implements the optional per-allocation memory
// accounting collaborator spec §1 describes as out of scope for the VM
// core: a vm.AllocObserver that tallies heap traffic by object type and
// renders a human-diffable report, serialized the way funxy's own
// internal/ext.Config renders its YAML documents via yaml.v3 struct tags.
package memreport

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clearvm/clearvm/internal/vm"
)

// Report is the document written to the path given by the run command's
// --mem-report flag or the launcher config's mem_report key.
type Report struct {
	RunID       string         `yaml:"run_id,omitempty"`
	Allocations int            `yaml:"allocations"`
	Frees       int            `yaml:"frees"`
	Live        int            `yaml:"live"`
	ByType      map[string]int `yaml:"by_type"`
}

// Collector implements vm.AllocObserver, counting allocations and frees
// per object type as the VM runs.
type Collector struct {
	runID       string
	allocations int
	frees       int
	byType      map[string]int
}

// NewCollector returns a Collector ready to be installed on a VM via
// vm.SetAllocObserver. runID tags the eventual report, letting concurrent
// runs' reports be told apart.
func NewCollector(runID string) *Collector {
	return &Collector{runID: runID, byType: make(map[string]int)}
}

func (c *Collector) OnAlloc(o *vm.Object) {
	c.allocations++
	c.byType[o.Type.String()]++
}

func (c *Collector) OnFree(o *vm.Object) {
	c.frees++
	c.byType[o.Type.String()]--
}

// Report snapshots the collector's counters into a Report document.
func (c *Collector) Report() Report {
	return Report{
		RunID:       c.runID,
		Allocations: c.allocations,
		Frees:       c.frees,
		Live:        c.allocations - c.frees,
		ByType:      c.byType,
	}
}

// WriteFile renders the report as YAML to path.
func (c *Collector) WriteFile(path string) error {
	data, err := yaml.Marshal(c.Report())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
