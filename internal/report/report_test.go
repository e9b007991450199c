package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/responses"
)

func sampleResponse() responses.ScheduleResponse {
	return responses.ScheduleResponse{
		GanttData: []responses.GanttSegment{
			{Pid: "P1", Start: 2, End: 5},
			{Pid: "P2", Start: 5, End: 7},
		},
		Metrics: []responses.ProcessResponse{
			{Pid: "P1", CompletionTime: 5, TurnaroundTime: 3, WaitingTime: 0},
			{Pid: "P2", CompletionTime: 7, TurnaroundTime: 4, WaitingTime: 2},
		},
		Averages: responses.Averages{AverageWaitingTime: 1, AverageTurnAroundTime: 3.5},
	}
}

func TestWriteGantt_DrawsIdleGap(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, sampleResponse().GanttData)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Gantt schedule", lines[0])
	assert.Equal(t, "|  idle  |   P1   |   P2   |", lines[1])
	assert.Equal(t, "0        2        5        7", lines[2])
}

func TestWriteGantt_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, nil)
	assert.Contains(t, buf.String(), "(empty)")
}

func TestWriteMetrics(t *testing.T) {
	var buf bytes.Buffer
	WriteMetrics(&buf, sampleResponse())
	out := buf.String()

	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "TURNAROUND")
	// arrival and burst are recovered from the metrics
	assert.Regexp(t, `P2\s+\|\s+3\s+\|\s+2\s+\|\s+7\s+\|\s+4\s+\|\s+2`, out)
	assert.Contains(t, out, "3.50")
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "total time: 7, idle time: 2, cpu utilization: 0.71")
}

func TestWrite_IncludesTitle(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, "RR(q=2)", sampleResponse())
	assert.True(t, strings.HasPrefix(buf.String(), strings.Repeat("-", 14)+"\n"))
	assert.Contains(t, buf.String(), "RR(q=2)")
}
