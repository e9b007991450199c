package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in (arrival, pid) order.
func ScheduleFirstComeFirstServe(specs []core.ProcessSpec) (Result, error) {
	logrus.Debugf("running fcfs algorithm over %d processes", len(specs))

	processes := core.NewProcesses(specs)
	var timeline core.Timeline
	clock := 0

	for _, i := range arrivalOrder(processes) {
		p := &processes[i]
		if clock < p.Spec.ArrivalTime {
			logrus.Debugf("[tick %d] cpu idle until %d", clock, p.Spec.ArrivalTime)
			clock = p.Spec.ArrivalTime
		}
		start := clock
		clock += p.Remaining
		p.Execute(p.Remaining)
		p.Complete(clock)
		timeline.AppendRun(p.Pid(), start, clock)
		logrus.Debugf("[tick %d] pid: %s completed", clock, p.Pid())
	}

	return generateResult(Policy{Kind: FirstComeFirstServe}, &timeline, processes), nil
}
