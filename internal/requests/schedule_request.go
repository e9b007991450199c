package requests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
)

var (
	ErrInvalidProcess = errors.New("invalid process format: fields pid (string), arrival_time (int), burst_time (int) required")
	ErrNegativeTime   = errors.New("arrival_time and burst_time must be >= 0")
	ErrQuantumFormat  = errors.New("'quantum' must be an integer")
)

// Pid accepts either a JSON string or a JSON number and always holds the string form.
type Pid string

func (p *Pid) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Pid(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("pid must be a string or a number: %w", err)
	}
	*p = Pid(n.String())
	return nil
}

type Job struct {
	Pid         Pid `json:"pid" yaml:"pid"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
	TimeQuantum int `json:"time_quantum" yaml:"time_quantum"`
}

// UnmarshalJSON coerces the numeric fields with coerceInt. A missing arrival_time or
// burst_time is 0; priority and time_quantum may also be null.
func (j *Job) UnmarshalJSON(data []byte) error {
	var raw struct {
		Pid         Pid             `json:"pid"`
		ArrivalTime json.RawMessage `json:"arrival_time"`
		BurstTime   json.RawMessage `json:"burst_time"`
		Priority    json.RawMessage `json:"priority"`
		TimeQuantum json.RawMessage `json:"time_quantum"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProcess, err)
	}

	fields := []struct {
		name     string
		value    json.RawMessage
		nullable bool
		dst      *int
	}{
		{"arrival_time", raw.ArrivalTime, false, &j.ArrivalTime},
		{"burst_time", raw.BurstTime, false, &j.BurstTime},
		{"priority", raw.Priority, true, &j.Priority},
		{"time_quantum", raw.TimeQuantum, true, &j.TimeQuantum},
	}
	j.Pid = raw.Pid
	for _, f := range fields {
		*f.dst = 0
		if len(f.value) == 0 || (f.nullable && isNull(f.value)) {
			continue
		}
		n, err := coerceInt(f.value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidProcess, f.name, err)
		}
		*f.dst = n
	}
	return nil
}

// ScheduleRequest is the body of POST /api/schedule and the layout of process files.
type ScheduleRequest struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Processes []Job  `json:"processes" yaml:"processes"`
	Quantum   *int   `json:"quantum,omitempty" yaml:"quantum,omitempty"`
}

// UnmarshalJSON accepts the quantum as a number or a numeric string. A null quantum
// counts as absent.
func (r *ScheduleRequest) UnmarshalJSON(data []byte) error {
	type plain ScheduleRequest
	var raw struct {
		*plain
		Quantum json.RawMessage `json:"quantum"`
	}
	raw.plain = (*plain)(r)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Quantum = nil
	if len(raw.Quantum) == 0 || isNull(raw.Quantum) {
		return nil
	}
	q, err := coerceInt(raw.Quantum)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQuantumFormat, err)
	}
	r.Quantum = &q
	return nil
}

// ProcessSpecs validates the jobs and converts them into engine input, preserving order.
func (r *ScheduleRequest) ProcessSpecs() ([]core.ProcessSpec, error) {
	specs := make([]core.ProcessSpec, 0, len(r.Processes))
	for i, job := range r.Processes {
		if job.Pid == "" {
			return nil, fmt.Errorf("%w: process #%d has no pid", ErrInvalidProcess, i)
		}
		if job.ArrivalTime < 0 || job.BurstTime < 0 {
			return nil, fmt.Errorf("%w: pid %s", ErrNegativeTime, job.Pid)
		}
		specs = append(specs, core.ProcessSpec{
			Pid:         string(job.Pid),
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
			TimeQuantum: job.TimeQuantum,
		})
	}
	return specs, nil
}

// QuantumOr returns the requested quantum, or fallback when none was given.
func (r *ScheduleRequest) QuantumOr(fallback int) int {
	if r.Quantum == nil {
		return fallback
	}
	return *r.Quantum
}

func (j Job) String() string {
	return fmt.Sprintf("%s(arrival=%d,burst=%d)", j.Pid, j.ArrivalTime, j.BurstTime)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// coerceInt reads a JSON number or a string holding a decimal integer. Fractional
// numbers are truncated toward zero.
func coerceInt(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		return strconv.Atoi(strings.TrimSpace(s))
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil || n == "" {
		return 0, fmt.Errorf("%s is not a number", raw)
	}
	if i, err := strconv.ParseInt(n.String(), 10, 0); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, fmt.Errorf("%s is out of range", n)
	}
	return int(f), nil
}
