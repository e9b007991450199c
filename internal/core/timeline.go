// Implements the Timeline, which records which process holds the CPU over time.

package core

import (
	"fmt"
	"strings"
)

// Segment is a half-open interval [Start, End) during which Pid occupies the CPU.
type Segment struct {
	Pid   string
	Start int
	End   int
}

// Duration returns the number of ticks covered by the segment.
func (s Segment) Duration() int {
	return s.End - s.Start
}

func (s Segment) String() string {
	return fmt.Sprintf("%s[%d,%d)", s.Pid, s.Start, s.End)
}

// Timeline accumulates CPU occupancy intervals in chronological order.
// Idle gaps are never recorded.
type Timeline struct {
	segments []Segment
}

// AppendOrExtend records one tick of execution for pid starting at tick.
// If the last segment belongs to pid and ends at tick it is extended,
// otherwise a new one-tick segment is appended.
func (t *Timeline) AppendOrExtend(pid string, tick int) {
	t.ExtendRun(pid, tick, tick+1)
}

// ExtendRun is the multi-tick form of AppendOrExtend, used by the event-driven
// preemptive policies to record a run of consecutive ticks at once.
func (t *Timeline) ExtendRun(pid string, start, end int) {
	if end <= start {
		return
	}
	if n := len(t.segments); n > 0 {
		last := &t.segments[n-1]
		if last.Pid == pid && last.End == start {
			last.End = end
			return
		}
	}
	t.AppendRun(pid, start, end)
}

// AppendRun appends a pre-computed segment without trying to extend the last one.
// Zero-length runs (zero burst processes) are dropped.
func (t *Timeline) AppendRun(pid string, start, end int) {
	if end < start {
		panic(fmt.Sprintf("AppendRun: segment for %q ends (%d) before it starts (%d)", pid, end, start))
	}
	if end == start {
		return
	}
	if n := len(t.segments); n > 0 && t.segments[n-1].End > start {
		panic(fmt.Sprintf("AppendRun: segment %s overlaps %s", Segment{pid, start, end}, t.segments[n-1]))
	}
	t.segments = append(t.segments, Segment{Pid: pid, Start: start, End: end})
}

// Len returns the number of recorded segments.
func (t *Timeline) Len() int {
	return len(t.segments)
}

// Segments returns the merged, chronological segments as a new slice.
func (t *Timeline) Segments() []Segment {
	return MergeSegments(t.segments)
}

func (t *Timeline) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, seg := range t.segments {
		sb.WriteString(seg.String())
		if i < len(t.segments)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// MergeSegments collapses consecutive segments of the same pid that are exactly
// adjacent. The input is not modified; MergeSegments(MergeSegments(x)) equals
// MergeSegments(x).
func MergeSegments(segments []Segment) []Segment {
	merged := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if last.Pid == seg.Pid && last.End == seg.Start {
				last.End = seg.End
				continue
			}
		}
		merged = append(merged, seg)
	}
	return merged
}
