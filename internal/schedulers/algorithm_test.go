package schedulers

import (
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{
		"fcfs":                          FirstComeFirstServe,
		"SJF":                           ShortestJobFirst,
		" priority ":                    Priority,
		"rr":                            RoundRobin,
		"srtf":                          ShortestRemainingTimeFirst,
		"first-come-first-served":       FirstComeFirstServe,
		"shortest-job-first":            ShortestJobFirst,
		"fixed-priority":                Priority,
		"Round-Robin":                   RoundRobin,
		"shortest-remaining-time-first": ShortestRemainingTimeFirst,
	}
	for input, want := range cases {
		got, err := ParseAlgorithm(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseAlgorithm("mlfq")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScheduleUnknownAlgorithm(t *testing.T) {
	_, err := Schedule(twoProcesses(), Algorithm("lottery"), 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScheduleEmpty(t *testing.T) {
	for _, algorithm := range Algorithms() {
		result, err := Schedule(nil, algorithm, 2)
		require.NoError(t, err)
		assert.Empty(t, result.Chart)
		assert.Empty(t, result.Stats.Completed)
		assert.False(t, result.Stats.HasAverages())
	}
}

func workloads() map[string][]core.Process {
	return map[string][]core.Process{
		"two":    twoProcesses(),
		"sample": sampleProcesses(),
		"gaps": {
			process(1, 7, 2, 3),
			process(2, 0, 1, 2),
			process(3, 3, 4, 1),
			process(4, 3, 4, 1),
			process(5, 20, 1, 5),
		},
		"burst": {
			process(1, 0, 9, 4),
			process(2, 0, 1, 3),
			process(3, 0, 6, 2),
			process(4, 2, 2, 1),
			process(5, 4, 3, 1),
			process(6, 4, 1, 9),
		},
	}
}

func TestSchedulingProperties(t *testing.T) {
	for name, processes := range workloads() {
		burstSum := 0
		for _, p := range processes {
			burstSum += p.BurstTime
		}

		for _, algorithm := range Algorithms() {
			for _, quantum := range []int{1, 2, 3} {
				result, err := Schedule(processes, algorithm, quantum)
				require.NoError(t, err, "%s/%s", name, algorithm)

				busy := 0
				for i, s := range result.Chart {
					assert.Less(t, s.Start, s.End, "%s/%s segment %d", name, algorithm, i)
					busy += s.Duration()
					if i > 0 {
						assert.LessOrEqual(t, result.Chart[i-1].End, s.Start, "%s/%s overlap at %d", name, algorithm, i)
					}
				}
				assert.Equal(t, burstSum, busy, "%s/%s total cpu time", name, algorithm)
				assert.Equal(t, busy, result.Stats.Metric.UtilizationTime)
				assert.Equal(t, result.Chart[len(result.Chart)-1].End, result.Stats.Metric.TotalTime)
				assert.Equal(t, result.Stats.Metric.TotalTime-busy, result.Stats.Metric.IdleTime)

				require.Len(t, result.Stats.Completed, len(processes))
				seen := make(map[int]bool)
				for _, p := range result.Stats.Completed {
					assert.False(t, seen[p.Id], "%s/%s completed twice", name, algorithm)
					seen[p.Id] = true
					assert.Zero(t, p.RemainingTime)
					assert.GreaterOrEqual(t, p.CompletionTime, p.ArrivalTime+p.BurstTime, "%s/%s work conservation", name, algorithm)
				}
			}
		}
	}
}

func TestScheduleIsIdempotent(t *testing.T) {
	for _, algorithm := range Algorithms() {
		processes := sampleProcesses()
		first, err := Schedule(processes, algorithm, 2)
		require.NoError(t, err)
		second, err := Schedule(processes, algorithm, 2)
		require.NoError(t, err)

		assert.Equal(t, first, second, string(algorithm))
		assert.Equal(t, sampleProcesses(), processes, "caller processes must not change")
	}
}
