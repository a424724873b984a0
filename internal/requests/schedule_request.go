package requests

import (
	"math"

	"cpu-scheduler/internal/core"
)

type Job struct {
	ProcessId   int    `json:"process_id" yaml:"process_id"`
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" yaml:"jobs"`
	TimeQuantum *int  `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

// Processes converts the jobs into scheduler input, keeping the request order.
func (r ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.Process{
			Id:          job.ProcessId,
			Name:        job.Name,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
			Color:       job.Color,
		})
	}
	return processes
}

// TotalBurstTime is the upper bound of busy time a run over these jobs can take.
// Non-positive bursts are skipped and the sum saturates at math.MaxInt.
func (r ScheduleRequests) TotalBurstTime() int {
	total := 0
	for _, job := range r.Jobs {
		if job.BurstTime <= 0 {
			continue
		}
		if job.BurstTime > math.MaxInt-total {
			return math.MaxInt
		}
		total += job.BurstTime
	}
	return total
}

// LatestArrivalTime bounds how long a run can idle before the last job shows up.
func (r ScheduleRequests) LatestArrivalTime() int {
	latest := 0
	for _, job := range r.Jobs {
		latest = max(latest, job.ArrivalTime)
	}
	return latest
}

// SampleJobs is the default workload shown when the user has not entered any process.
func SampleJobs() []Job {
	return []Job{
		{ProcessId: 1, Name: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 2, Color: "#3b82f6"},
		{ProcessId: 2, Name: "P2", ArrivalTime: 1, BurstTime: 3, Priority: 1, Color: "#10b981"},
		{ProcessId: 3, Name: "P3", ArrivalTime: 2, BurstTime: 8, Priority: 3, Color: "#f59e0b"},
		{ProcessId: 4, Name: "P4", ArrivalTime: 3, BurstTime: 6, Priority: 2, Color: "#8b5cf6"},
	}
}
