package schedulers

import "cpu-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs every process to completion in arrival order.
func ScheduleFirstComeFirstServe(processes []core.Process) (core.ScheduleResult, error) {
	prepared, err := prepareProcesses(processes)
	if err != nil {
		return core.ScheduleResult{}, err
	}

	cpu := core.NewCpu()
	completed := make([]*core.WorkingProcess, 0, len(prepared))
	for _, proccess := range prepared {
		// wait until arrival
		cpu.IdleUntil(proccess.ArrivalTime)
		cpu.Execute(proccess, proccess.BurstTime)
		completed = append(completed, proccess)
	}

	return generateResult(cpu, completed), nil
}
