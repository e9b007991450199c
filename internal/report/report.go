// Package report renders schedule results for terminal output.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

const idleLabel = "idle"

// Write renders a titled Gantt chart followed by the metrics table.
func Write(w io.Writer, title string, resp responses.ScheduleResponse) {
	WriteTitle(w, title)
	WriteGantt(w, resp.GanttData)
	WriteMetrics(w, resp)
}

func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteGantt draws one cell per segment with the tick boundaries underneath.
// Gaps between segments are drawn as idle cells.
func WriteGantt(w io.Writer, gantt []responses.GanttSegment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(gantt) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		_, _ = fmt.Fprintln(w)
		return
	}

	type cell struct {
		label      string
		start, end int
	}
	cells := make([]cell, 0, len(gantt))
	clock := 0
	for _, seg := range gantt {
		if seg.Start > clock {
			cells = append(cells, cell{idleLabel, clock, seg.Start})
		}
		cells = append(cells, cell{seg.Pid, seg.Start, seg.End})
		clock = seg.End
	}

	width := 8
	for _, c := range cells {
		width = max(width, len(c.label)+2)
	}

	var bars, ticks strings.Builder
	bars.WriteString("|")
	for _, c := range cells {
		left := (width - len(c.label)) / 2
		bars.WriteString(strings.Repeat(" ", left) + c.label + strings.Repeat(" ", width-left-len(c.label)) + "|")
		ticks.WriteString(fmt.Sprintf("%-*d", width+1, c.start))
	}
	ticks.WriteString(fmt.Sprint(cells[len(cells)-1].end))

	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}

// WriteMetrics renders the per-process table with averages in the footer and a cpu
// usage summary below it.
func WriteMetrics(w io.Writer, resp responses.ScheduleResponse) {
	rows := make([][]string, 0, len(resp.Metrics))
	for _, m := range resp.Metrics {
		arrival := m.CompletionTime - m.TurnaroundTime
		burst := m.TurnaroundTime - m.WaitingTime
		rows = append(rows, []string{
			m.Pid,
			fmt.Sprint(arrival),
			fmt.Sprint(burst),
			fmt.Sprint(m.CompletionTime),
			fmt.Sprint(m.TurnaroundTime),
			fmt.Sprint(m.WaitingTime),
		})
	}
	stats := resp.CpuStats()

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Exit", "Turnaround", "Wait"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Throughput\n%.2f/t", stats.CpuThroughput),
		fmt.Sprintf("Average\n%.2f", resp.Averages.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", resp.Averages.AverageWaitingTime)})
	table.Render()

	_, _ = fmt.Fprintf(w, "total time: %d, idle time: %d, cpu utilization: %.2f\n\n",
		stats.TotalTime, stats.IdleTime, stats.CpuUtilization)
}
