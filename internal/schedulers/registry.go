package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

var (
	// ErrInvalidQuantum is returned when Round Robin is configured with a non-positive quantum.
	ErrInvalidQuantum = errors.New("quantum must be > 0 for Round Robin")
	// ErrUnknownPolicy is returned when a policy name is not registered.
	ErrUnknownPolicy = errors.New("unsupported algorithm")
)

// Kind identifies one of the supported scheduling disciplines.
type Kind int

const (
	FirstComeFirstServe Kind = iota
	ShortestJobFirst
	ShortestRemainingTimeFirst
	RoundRobin
)

var kindNames = map[Kind]string{
	FirstComeFirstServe:        "FCFS",
	ShortestJobFirst:           "SJF",
	ShortestRemainingTimeFirst: "SRTF",
	RoundRobin:                 "RR",
}

// Kinds lists every supported discipline in registration order.
func Kinds() []Kind {
	return []Kind{FirstComeFirstServe, ShortestJobFirst, ShortestRemainingTimeFirst, RoundRobin}
}

// Names lists the identifiers accepted by ParseKind.
func Names() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves an identifier such as "SRTF" to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q, supported algorithms: %s", ErrUnknownPolicy, name, strings.Join(Names(), ", "))
}

// Policy is a discipline together with its parameters. Quantum is only read for RoundRobin.
type Policy struct {
	Kind    Kind
	Quantum int
}

// NewPolicy builds a Policy by name. Round Robin rejects a non-positive quantum here
// so configuration errors surface before any simulation starts.
func NewPolicy(name string, quantum int) (Policy, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return Policy{}, err
	}
	policy := Policy{Kind: kind}
	if kind == RoundRobin {
		if quantum <= 0 {
			return Policy{}, fmt.Errorf("%w: got %d", ErrInvalidQuantum, quantum)
		}
		policy.Quantum = quantum
	}
	return policy, nil
}

func (p Policy) String() string {
	if p.Kind == RoundRobin {
		return fmt.Sprintf("%s(q=%d)", p.Kind, p.Quantum)
	}
	return p.Kind.String()
}

// Run simulates specs under the policy.
func Run(policy Policy, specs []core.ProcessSpec) (Result, error) {
	switch policy.Kind {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(specs)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(specs)
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(specs)
	case RoundRobin:
		return ScheduleRoundRobin(specs, policy.Quantum)
	default:
		return Result{}, fmt.Errorf("%w %s", ErrUnknownPolicy, policy.Kind)
	}
}
