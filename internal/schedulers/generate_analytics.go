package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

func generateResult(cpu *core.Cpu, completed []*core.WorkingProcess) core.ScheduleResult {
	return core.ScheduleResult{
		Chart: cpu.Chart(),
		Stats: CalculateStats(completed, cpu.Metric()),
	}
}

// CalculateStats derives turnaround, waiting and response times for every completed
// process and averages them. The completion order does not matter.
func CalculateStats(completed []*core.WorkingProcess, metric core.CpuMetric) core.Stats {
	proccessDetails := make([]core.WorkingProcess, 0, len(completed))
	for _, proccess := range completed {
		proccess.TurnAroundTime = proccess.CompletionTime - proccess.ArrivalTime
		proccess.WaitingTime = proccess.TurnAroundTime - proccess.BurstTime
		proccess.ResponseTime = proccess.StartTime - proccess.ArrivalTime
		proccessDetails = append(proccessDetails, *proccess)
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime, _ := util.CalculateAverage(proccessDetails)
	return core.Stats{
		Completed:             proccessDetails,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		AverageResponseTime:   averageResponseTime,
		Metric:                metric,
	}
}
