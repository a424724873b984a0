package schedulers

import "cpu-scheduler/internal/core"

// ScheduleShortestJobFirst is non-preemptive: at every decision point the available
// process with the smallest burst time runs to completion.
func ScheduleShortestJobFirst(processes []core.Process) (core.ScheduleResult, error) {
	return scheduleNonPreemptive(processes, func(p *core.WorkingProcess) int {
		return p.BurstTime
	})
}

// scheduleNonPreemptive is the control loop shared by sjf and priority. The clock
// starts at 0 and idles one tick at a time while nothing has arrived.
func scheduleNonPreemptive(processes []core.Process, key func(*core.WorkingProcess) int) (core.ScheduleResult, error) {
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

		selected := pickFirstMin(ready, key)
		cpu.Execute(selected, selected.RemainingTime)
		completed = append(completed, selected)
	}

	return generateResult(cpu, completed), nil
}
