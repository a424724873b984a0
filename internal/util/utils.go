package util

import "cpu-scheduler/internal/core"

// CalculateAverage averages the per process times. ok is false when there is nothing to average.
func CalculateAverage(proccessDetails []core.WorkingProcess) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64, ok bool) {
	if len(proccessDetails) == 0 {
		return 0, 0, 0, false
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		responseTimeSum += float64(proccess.ResponseTime)
		turnAroundTimeSum += float64(proccess.TurnAroundTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTurnAroundTime = turnAroundTimeSum / proccessCount
	return averageWaitingTime, averageResponseTime, averageTurnAroundTime, true
}
