package schedulers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin gives each ready process up to timeQuantum ticks in FIFO order.
// Processes that arrive while a slice is running are queued ahead of the process
// being preempted at the end of that slice.
func ScheduleRoundRobin(specs []core.ProcessSpec, timeQuantum int) (Result, error) {
	if timeQuantum <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
	}
	logrus.Debugf("running roundRobin algorithm with timeQuantum = %d over %d processes", timeQuantum, len(specs))

	processes := core.NewProcesses(specs)
	order := arrivalOrder(processes)
	var timeline core.Timeline
	readyQueue := &ReadyQueue{}
	clock := 0
	completed := 0

	cursor := 0
	enqueueArrivals := func(upTo int) {
		for cursor < len(order) && processes[order[cursor]].Spec.ArrivalTime <= upTo {
			logrus.Debugf("[tick %d] pid: %s arrived", upTo, processes[order[cursor]].Pid())
			readyQueue.Enqueue(order[cursor])
			cursor++
		}
	}
	enqueueArrivals(clock)

	for completed < len(processes) {
		i, ok := readyQueue.Dequeue()
		if !ok {
			if cursor >= len(order) {
				break
			}
			next := processes[order[cursor]].Spec.ArrivalTime
			logrus.Debugf("[tick %d] cpu idle until %d", clock, next)
			clock = max(clock, next)
			enqueueArrivals(clock)
			continue
		}

		p := &processes[i]
		run := min(timeQuantum, p.Remaining)
		timeline.ExtendRun(p.Pid(), clock, clock+run)
		p.Execute(run)
		clock += run

		// arrivals during the slice go ahead of the preempted process
		enqueueArrivals(clock)

		if p.Remaining == 0 {
			p.Complete(clock)
			completed++
			logrus.Debugf("[tick %d] pid: %s completed", clock, p.Pid())
			continue
		}
		logrus.Debugf("[tick %d] pid: %s quantum expired, %d ticks remaining", clock, p.Pid(), p.Remaining)
		readyQueue.Enqueue(i)
	}

	return generateResult(Policy{Kind: RoundRobin, Quantum: timeQuantum}, &timeline, processes), nil
}
