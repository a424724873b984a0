package schedulers

import "cpu-scheduler/internal/core"

// SchedulePriority is non-preemptive fixed priority; the lowest priority value wins.
// A running process is never interrupted, even by a higher priority arrival.
func SchedulePriority(processes []core.Process) (core.ScheduleResult, error) {
	return scheduleNonPreemptive(processes, func(p *core.WorkingProcess) int {
		return p.Priority
	})
}
