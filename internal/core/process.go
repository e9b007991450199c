package core

import (
	"fmt"
	"math"
)

// ProcessSpec is the validated, immutable description of one process handed to a policy.
type ProcessSpec struct {
	Pid         string
	ArrivalTime int
	BurstTime   int
	// Priority and TimeQuantum are carried through for future policies; no current
	// policy reads them.
	Priority    int
	TimeQuantum int
}

// Process is the mutable simulation state of a single task during one run.
type Process struct {
	Spec      ProcessSpec
	Remaining int

	completionTime int
	completed      bool
}

// NewProcesses builds a fresh arena of process records for a single run.
// Policies hold indices into the returned slice and never copy records.
func NewProcesses(specs []ProcessSpec) []Process {
	processes := make([]Process, len(specs))
	for i, spec := range specs {
		processes[i] = Process{Spec: spec, Remaining: spec.BurstTime}
	}
	return processes
}

func (p *Process) Pid() string { return p.Spec.Pid }

func (p *Process) Completed() bool { return p.completed }

// CompletionTime returns the tick at which the process finished.
// Calling it on an unfinished process is a contract violation.
func (p *Process) CompletionTime() int {
	if !p.completed {
		panic(fmt.Sprintf("CompletionTime: process %q has not completed", p.Spec.Pid))
	}
	return p.completionTime
}

// Execute runs the process for ticks units of CPU time.
func (p *Process) Execute(ticks int) {
	if ticks < 0 || ticks > p.Remaining {
		panic(fmt.Sprintf("Execute: process %q cannot run %d ticks with %d remaining", p.Spec.Pid, ticks, p.Remaining))
	}
	p.Remaining -= ticks
}

// Complete stamps the completion time. The process must have no remaining work and
// must not already be complete.
func (p *Process) Complete(tick int) {
	if p.completed {
		panic(fmt.Sprintf("Complete: process %q completed twice", p.Spec.Pid))
	}
	if p.Remaining != 0 {
		panic(fmt.Sprintf("Complete: process %q still has %d ticks remaining", p.Spec.Pid, p.Remaining))
	}
	p.completionTime = tick
	p.completed = true
}

// TurnaroundTime is completion minus arrival.
func (p *Process) TurnaroundTime() int {
	return p.CompletionTime() - p.Spec.ArrivalTime
}

// WaitingTime is the time spent ready but not running.
func (p *Process) WaitingTime() int {
	return p.TurnaroundTime() - p.Spec.BurstTime
}

// Horizon is an upper bound on the number of ticks any policy can simulate for specs:
// the latest arrival plus the total burst. Times must be non-negative. The sum saturates
// at math.MaxInt instead of wrapping.
func Horizon(specs []ProcessSpec) int {
	var latest, total int
	for _, spec := range specs {
		latest = max(latest, spec.ArrivalTime)
		total = saturatingAdd(total, spec.BurstTime)
	}
	return saturatingAdd(latest, total)
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
