package schedulers

import (
	"fmt"
	"log/slog"
	"strings"

	"cpu-scheduler/internal/core"
)

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf"
	Priority                   Algorithm = "priority"
	RoundRobin                 Algorithm = "rr"
	ShortestRemainingTimeFirst Algorithm = "srtf"
)

var algorithmNames = map[string]Algorithm{
	"first-come-first-served":       FirstComeFirstServe,
	"shortest-job-first":            ShortestJobFirst,
	"fixed-priority":                Priority,
	"round-robin":                   RoundRobin,
	"shortest-remaining-time-first": ShortestRemainingTimeFirst,
}

// Algorithms lists the supported policies in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin, ShortestRemainingTimeFirst}
}

// ParseAlgorithm accepts a short id such as "rr" or a long name such as "round-robin".
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range Algorithms() {
		if string(a) == s {
			return a, nil
		}
	}
	if a, ok := algorithmNames[s]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, s)
}

// Schedule computes the complete timeline and statistics of processes under algorithm.
// timeQuantum is only used by round robin and is coerced to at least 1.
func Schedule(processes []core.Process, algorithm Algorithm, timeQuantum int) (core.ScheduleResult, error) {
	slog.Debug("running scheduler", "algorithm", algorithm, "processes", len(processes), "time_quantum", timeQuantum)

	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case Priority:
		return SchedulePriority(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, timeQuantum)
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(processes)
	default:
		return core.ScheduleResult{}, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, algorithm)
	}
}
