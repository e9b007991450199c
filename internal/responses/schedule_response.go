package responses

import (
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/util"
)

type GanttSegment struct {
	Pid   string `json:"pid"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Color string `json:"color"`
}

type ProcessResponse struct {
	Pid            string `json:"pid"`
	CompletionTime int    `json:"completion_time"`
	TurnaroundTime int    `json:"turnaround_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type Averages struct {
	AverageWaitingTime    float64 `json:"awt"`
	AverageTurnAroundTime float64 `json:"att"`
}

type ScheduleResponse struct {
	GanttData []GanttSegment    `json:"gantt_data"`
	Metrics   []ProcessResponse `json:"metrics"`
	Averages  Averages          `json:"averages"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type InfoResponse struct {
	Message          string   `json:"message"`
	SupportedMethods []string `json:"supported_methods"`
}

// NewScheduleResponse converts an engine result into its wire form and colours the
// Gantt segments.
func NewScheduleResponse(result schedulers.Result) ScheduleResponse {
	pids := make([]string, 0, len(result.Metrics))
	for _, m := range result.Metrics {
		pids = append(pids, m.Pid)
	}
	colors := util.AssignColors(pids)

	gantt := make([]GanttSegment, 0, len(result.Timeline))
	for _, seg := range result.Timeline {
		gantt = append(gantt, GanttSegment{Pid: seg.Pid, Start: seg.Start, End: seg.End, Color: colors[seg.Pid]})
	}

	metrics := make([]ProcessResponse, 0, len(result.Metrics))
	for _, m := range result.Metrics {
		metrics = append(metrics, ProcessResponse{
			Pid:            m.Pid,
			CompletionTime: m.CompletionTime,
			TurnaroundTime: m.TurnaroundTime,
			WaitingTime:    m.WaitingTime,
		})
	}

	return ScheduleResponse{
		GanttData: gantt,
		Metrics:   metrics,
		Averages: Averages{
			AverageWaitingTime:    result.Averages.AverageWaitingTime,
			AverageTurnAroundTime: result.Averages.AverageTurnAroundTime,
		},
	}
}

// CpuStats summarises cpu usage over a schedule.
type CpuStats struct {
	TotalTime      int
	IdleTime       int
	CpuUtilization float64
	CpuThroughput  float64
}

// CpuStats derives total, idle, utilisation and throughput figures from the timeline
// and metrics. The schedule is taken to start at tick 0.
func (r ScheduleResponse) CpuStats() CpuStats {
	var stats CpuStats
	busy := 0
	for _, seg := range r.GanttData {
		busy += seg.End - seg.Start
		stats.TotalTime = max(stats.TotalTime, seg.End)
	}
	for _, m := range r.Metrics {
		stats.TotalTime = max(stats.TotalTime, m.CompletionTime)
	}
	stats.IdleTime = stats.TotalTime - busy
	if stats.TotalTime > 0 {
		stats.CpuUtilization = util.Round2(float64(busy) / float64(stats.TotalTime))
		stats.CpuThroughput = util.Round2(float64(len(r.Metrics)) / float64(stats.TotalTime))
	}
	return stats
}
