package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestRemainingTimeFirst is the preemptive variant of SJF. On every tick the
// arrived process with the least remaining work holds the cpu, ties broken by arrival
// time and then pid.
//
// The running process can only lose the cpu when something arrives, so the loop jumps
// straight to the earlier of the next arrival and the running process's completion
// instead of stepping one tick at a time. The resulting schedule is the same.
func ScheduleShortestRemainingTimeFirst(specs []core.ProcessSpec) (Result, error) {
	logrus.Debugf("running srtf algorithm over %d processes", len(specs))

	processes := core.NewProcesses(specs)
	var timeline core.Timeline
	clock := 0
	completed := 0
	running := -1

	for completed < len(processes) {
		pick := -1
		for i := range processes {
			p := &processes[i]
			if p.Completed() || p.Spec.ArrivalTime > clock {
				continue
			}
			if pick < 0 || lessRemaining(p, &processes[pick]) {
				pick = i
			}
		}
		next, hasNext := nextArrival(processes, clock)

		if pick < 0 {
			if !hasNext {
				break
			}
			logrus.Debugf("[tick %d] cpu idle until %d", clock, next)
			clock = next
			continue
		}

		p := &processes[pick]
		if running >= 0 && running != pick && !processes[running].Completed() {
			logrus.Debugf("[tick %d] pid: %s preempts %s", clock, p.Pid(), processes[running].Pid())
		}
		running = pick

		run := p.Remaining
		if hasNext && next-clock < run {
			run = next - clock
		}
		timeline.ExtendRun(p.Pid(), clock, clock+run)
		p.Execute(run)
		clock += run

		if p.Remaining == 0 {
			p.Complete(clock)
			completed++
			logrus.Debugf("[tick %d] pid: %s completed", clock, p.Pid())
		}
	}

	return generateResult(Policy{Kind: ShortestRemainingTimeFirst}, &timeline, processes), nil
}

func lessRemaining(a, b *core.Process) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	if a.Spec.ArrivalTime != b.Spec.ArrivalTime {
		return a.Spec.ArrivalTime < b.Spec.ArrivalTime
	}
	return a.Pid() < b.Pid()
}
