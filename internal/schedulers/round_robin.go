package schedulers

import "cpu-scheduler/internal/core"

// ScheduleRoundRobin grants each process at most timeQuantum units per turn from a
// fifo ready queue. Every slice is its own segment, even when two slices of the
// same process happen to be adjacent.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (core.ScheduleResult, error) {
	if timeQuantum < 1 {
		timeQuantum = 1
	}
	prepared, err := prepareProcesses(processes)
	if err != nil {
		return core.ScheduleResult{}, err
	}

	cpu := core.NewCpu()
	completed := make([]*core.WorkingProcess, 0, len(prepared))
	readyQueue := make([]*core.WorkingProcess, 0, len(prepared))
	next := 0 // arrival cursor into prepared

	enqueueArrivals := func() {
		for next < len(prepared) && prepared[next].ArrivalTime <= cpu.Clock() {
			readyQueue = append(readyQueue, prepared[next])
			next++
		}
	}

	for len(completed) < len(prepared) || len(readyQueue) > 0 {
		enqueueArrivals()
		if len(readyQueue) == 0 {
			cpu.Idle()
			continue
		}

		current := readyQueue[0]
		readyQueue = readyQueue[1:]
		cpu.Execute(current, min(timeQuantum, current.RemainingTime))

		// processes that arrived during the slice queue ahead of the one just run
		enqueueArrivals()

		if current.Completed() {
			completed = append(completed, current)
		} else {
			readyQueue = append(readyQueue, current)
		}
	}

	return generateResult(cpu, completed), nil
}
