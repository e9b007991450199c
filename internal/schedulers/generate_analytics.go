package schedulers

import (
	"sort"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// ProcessMetric holds the derived timing figures of one finished process.
type ProcessMetric struct {
	Pid            string
	ArrivalTime    int
	BurstTime      int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
}

// Averages are the mean waiting (AWT) and turnaround (ATT) times of a run,
// rounded to two decimals.
type Averages struct {
	AverageWaitingTime    float64
	AverageTurnAroundTime float64
}

// Result is the immutable outcome of a single simulation run.
type Result struct {
	Policy   Policy
	Timeline []core.Segment  // merged, chronological
	Metrics  []ProcessMetric // ordered by pid
	Averages Averages
}

// DeriveMetrics computes per-process metrics, ordered by pid, and the run averages.
// Every process must have completed; an unfinished process panics.
func DeriveMetrics(processes []core.Process) ([]ProcessMetric, Averages) {
	metrics := make([]ProcessMetric, 0, len(processes))
	waitingTimes := make([]int, 0, len(processes))
	turnAroundTimes := make([]int, 0, len(processes))

	for i := range processes {
		p := &processes[i]
		metric := ProcessMetric{
			Pid:            p.Pid(),
			ArrivalTime:    p.Spec.ArrivalTime,
			BurstTime:      p.Spec.BurstTime,
			CompletionTime: p.CompletionTime(),
			TurnaroundTime: p.TurnaroundTime(),
			WaitingTime:    p.WaitingTime(),
		}
		metrics = append(metrics, metric)
		waitingTimes = append(waitingTimes, metric.WaitingTime)
		turnAroundTimes = append(turnAroundTimes, metric.TurnaroundTime)
	}
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Pid < metrics[j].Pid
	})

	averageWaitingTime, averageTurnAroundTime := util.CalculateAverage(waitingTimes, turnAroundTimes)
	return metrics, Averages{
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
	}
}

func generateResult(policy Policy, timeline *core.Timeline, processes []core.Process) Result {
	metrics, averages := DeriveMetrics(processes)
	result := Result{
		Policy:   policy,
		Timeline: timeline.Segments(),
		Metrics:  metrics,
		Averages: averages,
	}
	logrus.Debugf("%s finished: %d segments, awt=%.2f att=%.2f",
		policy, len(result.Timeline), averages.AverageWaitingTime, averages.AverageTurnAroundTime)
	return result
}

// arrivalOrder returns indices into processes sorted by (arrival time, pid).
func arrivalOrder(processes []core.Process) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := processes[order[i]].Spec, processes[order[j]].Spec
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.Pid < b.Pid
	})
	return order
}
