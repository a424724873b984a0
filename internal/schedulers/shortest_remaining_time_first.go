package schedulers

import "cpu-scheduler/internal/core"

// ScheduleShortestRemainingTimeFirst is the preemptive variant of sjf. It decides on
// every tick and coalesces consecutive ticks of the same process into one segment.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) (core.ScheduleResult, error) {
	prepared, err := prepareProcesses(processes)
	if err != nil {
		return core.ScheduleResult{}, err
	}

	cpu := core.NewCpu()
	completed := make([]*core.WorkingProcess, 0, len(prepared))
	for len(completed) < len(prepared) {
		ready := available(prepared, cpu.Clock())
		if len(ready) == 0 {
			cpu.Idle()
			continue
		}

		shortest := pickFirstMin(ready, func(p *core.WorkingProcess) int {
			return p.RemainingTime
		})
		cpu.ExecuteMerged(shortest, 1)
		if shortest.Completed() {
			completed = append(completed, shortest)
		}
	}

	return generateResult(cpu, completed), nil
}
