package schedulers

import (
	"errors"
	"fmt"
	"sort"

	"cpu-scheduler/internal/core"
)

// ErrInvalidInput is wrapped by every rejection of a process list, algorithm or quantum.
var ErrInvalidInput = errors.New("invalid input")

func validateProcesses(processes []core.Process) error {
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if p.BurstTime < 1 {
			return fmt.Errorf("%w: process %d burst time %d must be at least 1", ErrInvalidInput, p.Id, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d arrival time %d must not be negative", ErrInvalidInput, p.Id, p.ArrivalTime)
		}
		if _, ok := seen[p.Id]; ok {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidInput, p.Id)
		}
		seen[p.Id] = struct{}{}
	}
	return nil
}

// prepareProcesses copies the caller's processes into working records sorted by
// arrival time. Ties keep the caller's order; every policy relies on this order
// to break ties.
func prepareProcesses(processes []core.Process) ([]*core.WorkingProcess, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}

	prepared := make([]*core.WorkingProcess, 0, len(processes))
	for _, p := range processes {
		prepared = append(prepared, core.NewWorkingProcess(p))
	}
	sort.SliceStable(prepared, func(i, j int) bool {
		return prepared[i].ArrivalTime < prepared[j].ArrivalTime
	})
	return prepared, nil
}

// available returns the unfinished processes that have arrived by clock, in preparation order.
func available(processes []*core.WorkingProcess, clock int) []*core.WorkingProcess {
	ready := make([]*core.WorkingProcess, 0, len(processes))
	for _, p := range processes {
		if p.ArrivalTime <= clock && !p.Completed() {
			ready = append(ready, p)
		}
	}
	return ready
}

// pickFirstMin scans left to right and keeps the first process with the smallest key.
// Only a strictly smaller key displaces the incumbent, so earlier processes win ties.
func pickFirstMin(ready []*core.WorkingProcess, key func(*core.WorkingProcess) int) *core.WorkingProcess {
	best := ready[0]
	for _, p := range ready[1:] {
		if key(p) < key(best) {
			best = p
		}
	}
	return best
}
