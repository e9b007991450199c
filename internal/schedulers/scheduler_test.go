package schedulers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func spec(pid string, arrival, burst int) core.ProcessSpec {
	return core.ProcessSpec{Pid: pid, ArrivalTime: arrival, BurstTime: burst}
}

// sequential, overlapping and round robin workloads used throughout.
var (
	sequentialWorkload = []core.ProcessSpec{spec("P1", 0, 3), spec("P2", 1, 2)}
	overlapWorkload    = []core.ProcessSpec{spec("P1", 0, 5), spec("P2", 2, 2), spec("P3", 3, 1)}
	roundRobinWorkload = []core.ProcessSpec{spec("A", 0, 4), spec("B", 1, 3), spec("C", 2, 1)}
)

func metricsByPid(result Result) map[string]ProcessMetric {
	out := make(map[string]ProcessMetric, len(result.Metrics))
	for _, m := range result.Metrics {
		out[m.Pid] = m
	}
	return out
}

func assertTimeline(t *testing.T, want []core.Segment, result Result) {
	t.Helper()
	if diff := cmp.Diff(want, result.Timeline); diff != "" {
		t.Errorf("%s timeline mismatch (-want +got):\n%s", result.Policy, diff)
	}
}

func TestFirstComeFirstServe_Sequential(t *testing.T) {
	result, err := ScheduleFirstComeFirstServe(sequentialWorkload)
	require.NoError(t, err)

	assertTimeline(t, []core.Segment{{Pid: "P1", Start: 0, End: 3}, {Pid: "P2", Start: 3, End: 5}}, result)
	assert.Equal(t, []ProcessMetric{
		{Pid: "P1", ArrivalTime: 0, BurstTime: 3, CompletionTime: 3, TurnaroundTime: 3, WaitingTime: 0},
		{Pid: "P2", ArrivalTime: 1, BurstTime: 2, CompletionTime: 5, TurnaroundTime: 4, WaitingTime: 2},
	}, result.Metrics)
	assert.Equal(t, Averages{AverageWaitingTime: 1, AverageTurnAroundTime: 3.5}, result.Averages)
}

func TestFirstComeFirstServe_IdleGapAndInputOrder(t *testing.T) {
	// GIVEN processes listed out of arrival order with an idle gap between them
	specs := []core.ProcessSpec{spec("late", 10, 1), spec("early", 2, 3)}

	result, err := ScheduleFirstComeFirstServe(specs)
	require.NoError(t, err)

	// THEN they run in arrival order and the gap emits no segment
	assertTimeline(t, []core.Segment{{Pid: "early", Start: 2, End: 5}, {Pid: "late", Start: 10, End: 11}}, result)
	m := metricsByPid(result)
	assert.Equal(t, 0, m["early"].WaitingTime)
	assert.Equal(t, 0, m["late"].WaitingTime)
	assert.Equal(t, 11, m["late"].CompletionTime)
}

func TestFirstComeFirstServe_SimultaneousArrivalsOrderedByPid(t *testing.T) {
	result, err := ScheduleFirstComeFirstServe([]core.ProcessSpec{spec("P2", 0, 1), spec("P1", 0, 1)})
	require.NoError(t, err)
	assertTimeline(t, []core.Segment{{Pid: "P1", Start: 0, End: 1}, {Pid: "P2", Start: 1, End: 2}}, result)
}

func TestShortestJobFirst_Overlap(t *testing.T) {
	result, err := ScheduleShortestJobFirst(overlapWorkload)
	require.NoError(t, err)

	// P1 is alone at t=0 and is not preempted; P3 is shorter than P2 afterwards
	assertTimeline(t, []core.Segment{{Pid: "P1", Start: 0, End: 5}, {Pid: "P3", Start: 5, End: 6}, {Pid: "P2", Start: 6, End: 8}}, result)
	m := metricsByPid(result)
	assert.Equal(t, 5, m["P1"].CompletionTime)
	assert.Equal(t, 8, m["P2"].CompletionTime)
	assert.Equal(t, 6, m["P3"].CompletionTime)
	assert.Equal(t, Averages{AverageWaitingTime: 2, AverageTurnAroundTime: 4.67}, result.Averages)
}

func TestShortestJobFirst_TieBreaks(t *testing.T) {
	// GIVEN B and C tie on burst and arrival, D ties on burst but arrived later
	specs := []core.ProcessSpec{spec("A", 0, 4), spec("C", 1, 2), spec("D", 2, 2), spec("B", 1, 2)}

	result, err := ScheduleShortestJobFirst(specs)
	require.NoError(t, err)

	// THEN burst, then arrival, then pid decide
	assertTimeline(t, []core.Segment{{Pid: "A", Start: 0, End: 4}, {Pid: "B", Start: 4, End: 6}, {Pid: "C", Start: 6, End: 8}, {Pid: "D", Start: 8, End: 10}}, result)
}

func TestShortestJobFirst_IdleSkip(t *testing.T) {
	result, err := ScheduleShortestJobFirst([]core.ProcessSpec{spec("A", 3, 2), spec("B", 9, 1)})
	require.NoError(t, err)
	assertTimeline(t, []core.Segment{{Pid: "A", Start: 3, End: 5}, {Pid: "B", Start: 9, End: 10}}, result)
}

func TestShortestRemainingTimeFirst_Overlap(t *testing.T) {
	result, err := ScheduleShortestRemainingTimeFirst(overlapWorkload)
	require.NoError(t, err)

	// GIVEN P2 arrives at 2 with less work than P1 has left, it preempts P1.
	// At t=3 P2 and P3 both have 1 tick left; P2 arrived first and keeps the cpu.
	assertTimeline(t, []core.Segment{{Pid: "P1", Start: 0, End: 2}, {Pid: "P2", Start: 2, End: 4}, {Pid: "P3", Start: 4, End: 5}, {Pid: "P1", Start: 5, End: 8}}, result)
	m := metricsByPid(result)
	assert.Equal(t, 4, m["P2"].CompletionTime)
	assert.Equal(t, 5, m["P3"].CompletionTime)
	assert.Equal(t, 8, m["P1"].CompletionTime)
	assert.Equal(t, 3, m["P1"].WaitingTime)
	assert.Equal(t, Averages{AverageWaitingTime: 1.33, AverageTurnAroundTime: 4}, result.Averages)
}

func TestShortestRemainingTimeFirst_ShorterArrivalPreempts(t *testing.T) {
	// GIVEN a long job and a 1-tick job arriving mid-run
	result, err := ScheduleShortestRemainingTimeFirst([]core.ProcessSpec{spec("long", 0, 6), spec("short", 3, 1)})
	require.NoError(t, err)

	// THEN the short job runs on the very tick it arrives
	assertTimeline(t, []core.Segment{{Pid: "long", Start: 0, End: 3}, {Pid: "short", Start: 3, End: 4}, {Pid: "long", Start: 4, End: 7}}, result)
}

func TestShortestRemainingTimeFirst_EqualRemainingDoesNotPreempt(t *testing.T) {
	// GIVEN A has 2 ticks left when B arrives needing 2
	result, err := ScheduleShortestRemainingTimeFirst([]core.ProcessSpec{spec("B", 2, 2), spec("A", 0, 4)})
	require.NoError(t, err)

	// THEN A keeps the cpu because it arrived first
	assertTimeline(t, []core.Segment{{Pid: "A", Start: 0, End: 4}, {Pid: "B", Start: 4, End: 6}}, result)
}

func TestRoundRobin_ArrivalsQueuedAheadOfPreempted(t *testing.T) {
	result, err := ScheduleRoundRobin(roundRobinWorkload, 2)
	require.NoError(t, err)

	// GIVEN quantum 2: B and C arrive while A runs, so they are queued before A
	assertTimeline(t, []core.Segment{{Pid: "A", Start: 0, End: 2}, {Pid: "B", Start: 2, End: 4}, {Pid: "C", Start: 4, End: 5}, {Pid: "A", Start: 5, End: 7}, {Pid: "B", Start: 7, End: 8}}, result)
	m := metricsByPid(result)
	assert.Equal(t, 5, m["C"].CompletionTime)
	assert.Equal(t, 7, m["A"].CompletionTime)
	assert.Equal(t, 8, m["B"].CompletionTime)
	assert.Equal(t, Averages{AverageWaitingTime: 3, AverageTurnAroundTime: 5.67}, result.Averages)
	assert.Equal(t, Policy{Kind: RoundRobin, Quantum: 2}, result.Policy)
}

func TestRoundRobin_ArrivalAtQuantumBoundary(t *testing.T) {
	// GIVEN B arrives exactly when A's first quantum expires
	result, err := ScheduleRoundRobin([]core.ProcessSpec{spec("A", 0, 3), spec("B", 2, 2)}, 2)
	require.NoError(t, err)

	// THEN B is ahead of A in the queue
	assertTimeline(t, []core.Segment{{Pid: "A", Start: 0, End: 2}, {Pid: "B", Start: 2, End: 4}, {Pid: "A", Start: 4, End: 5}}, result)
}

func TestRoundRobin_FinishAtQuantumIsNotRequeued(t *testing.T) {
	result, err := ScheduleRoundRobin([]core.ProcessSpec{spec("A", 0, 2), spec("B", 0, 3)}, 2)
	require.NoError(t, err)
	assertTimeline(t, []core.Segment{{Pid: "A", Start: 0, End: 2}, {Pid: "B", Start: 2, End: 5}}, result)
	assert.Equal(t, 2, metricsByPid(result)["A"].CompletionTime)
}

func TestRoundRobin_IdleSkipAndSoleProcessMerges(t *testing.T) {
	result, err := ScheduleRoundRobin([]core.ProcessSpec{spec("A", 0, 1), spec("B", 5, 3)}, 1)
	require.NoError(t, err)

	// B's back-to-back slices merge into one segment
	assertTimeline(t, []core.Segment{{Pid: "A", Start: 0, End: 1}, {Pid: "B", Start: 5, End: 8}}, result)
}

func TestRoundRobin_SimultaneousArrivalsOrderedByPid(t *testing.T) {
	result, err := ScheduleRoundRobin([]core.ProcessSpec{spec("X", 0, 2), spec("W", 0, 2)}, 1)
	require.NoError(t, err)
	assertTimeline(t, []core.Segment{{Pid: "W", Start: 0, End: 1}, {Pid: "X", Start: 1, End: 2}, {Pid: "W", Start: 2, End: 3}, {Pid: "X", Start: 3, End: 4}}, result)
}

func TestRoundRobin_InvalidQuantum(t *testing.T) {
	for _, q := range []int{0, -3} {
		_, err := ScheduleRoundRobin(roundRobinWorkload, q)
		assert.ErrorIs(t, err, ErrInvalidQuantum)
	}
}

func TestAllPolicies_SingleProcess(t *testing.T) {
	for _, policy := range allPolicies(3) {
		t.Run(policy.String(), func(t *testing.T) {
			result, err := Run(policy, []core.ProcessSpec{spec("solo", 0, 7)})
			require.NoError(t, err)
			assertTimeline(t, []core.Segment{{Pid: "solo", Start: 0, End: 7}}, result)
			require.Len(t, result.Metrics, 1)
			assert.Equal(t, 0, result.Metrics[0].WaitingTime)
			assert.Equal(t, 7, result.Metrics[0].TurnaroundTime)
		})
	}
}

func TestAllPolicies_EmptyInput(t *testing.T) {
	for _, policy := range allPolicies(2) {
		t.Run(policy.String(), func(t *testing.T) {
			result, err := Run(policy, nil)
			require.NoError(t, err)
			assert.Empty(t, result.Timeline)
			assert.Empty(t, result.Metrics)
			assert.Equal(t, Averages{}, result.Averages)
		})
	}
}

func TestAllPolicies_ZeroBurstCompletesWithoutSegment(t *testing.T) {
	specs := []core.ProcessSpec{spec("P", 0, 2), spec("Z", 1, 0)}
	for _, policy := range allPolicies(1) {
		t.Run(policy.String(), func(t *testing.T) {
			result, err := Run(policy, specs)
			require.NoError(t, err)
			for _, seg := range result.Timeline {
				assert.NotEqual(t, "Z", seg.Pid)
				assert.Positive(t, seg.Duration())
			}
			z := metricsByPid(result)["Z"]
			assert.GreaterOrEqual(t, z.WaitingTime, 0)
			assert.Equal(t, z.TurnaroundTime, z.WaitingTime)
		})
	}
}

func TestDeriveMetrics_OrdersByPid(t *testing.T) {
	processes := core.NewProcesses([]core.ProcessSpec{spec("b", 0, 1), spec("a", 0, 2)})
	processes[1].Execute(2)
	processes[1].Complete(2)
	processes[0].Execute(1)
	processes[0].Complete(3)

	metrics, averages := DeriveMetrics(processes)

	require.Len(t, metrics, 2)
	assert.Equal(t, "a", metrics[0].Pid)
	assert.Equal(t, "b", metrics[1].Pid)
	assert.Equal(t, Averages{AverageWaitingTime: 1, AverageTurnAroundTime: 2.5}, averages)
}

func TestDeriveMetrics_UnfinishedProcessPanics(t *testing.T) {
	processes := core.NewProcesses([]core.ProcessSpec{spec("P1", 0, 1)})
	assert.Panics(t, func() { DeriveMetrics(processes) })
}
