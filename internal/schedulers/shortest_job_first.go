package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive: whenever the cpu frees up it runs the
// arrived process with the smallest burst to completion. Ties fall back to arrival
// time and then pid.
func ScheduleShortestJobFirst(specs []core.ProcessSpec) (Result, error) {
	logrus.Debugf("running sjf algorithm over %d processes", len(specs))

	processes := core.NewProcesses(specs)
	var timeline core.Timeline
	clock := 0
	completed := 0

	readyQueue := make([]int, 0, len(processes))
	inReadyQueue := make([]bool, len(processes))

	for completed < len(processes) {
		for i := range processes {
			p := &processes[i]
			if !p.Completed() && !inReadyQueue[i] && p.Spec.ArrivalTime <= clock {
				readyQueue = append(readyQueue, i)
				inReadyQueue[i] = true
			}
		}

		if len(readyQueue) == 0 {
			next, ok := nextArrival(processes, clock)
			if !ok {
				break
			}
			logrus.Debugf("[tick %d] cpu idle until %d", clock, next)
			clock = next
			continue
		}

		pick := 0
		for k := 1; k < len(readyQueue); k++ {
			if shorterJob(&processes[readyQueue[k]], &processes[readyQueue[pick]]) {
				pick = k
			}
		}
		i := readyQueue[pick]
		readyQueue = append(readyQueue[:pick], readyQueue[pick+1:]...)

		p := &processes[i]
		start := clock
		clock += p.Remaining
		p.Execute(p.Remaining)
		p.Complete(clock)
		completed++
		timeline.AppendRun(p.Pid(), start, clock)
		logrus.Debugf("[tick %d] pid: %s completed", clock, p.Pid())
	}

	return generateResult(Policy{Kind: ShortestJobFirst}, &timeline, processes), nil
}

func shorterJob(a, b *core.Process) bool {
	if a.Spec.BurstTime != b.Spec.BurstTime {
		return a.Spec.BurstTime < b.Spec.BurstTime
	}
	if a.Spec.ArrivalTime != b.Spec.ArrivalTime {
		return a.Spec.ArrivalTime < b.Spec.ArrivalTime
	}
	return a.Pid() < b.Pid()
}

// nextArrival returns the earliest arrival after clock among unfinished processes.
func nextArrival(processes []core.Process, clock int) (int, bool) {
	next, found := 0, false
	for i := range processes {
		p := &processes[i]
		if p.Completed() || p.Spec.ArrivalTime <= clock {
			continue
		}
		if !found || p.Spec.ArrivalTime < next {
			next, found = p.Spec.ArrivalTime, true
		}
	}
	return next, found
}
