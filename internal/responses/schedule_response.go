package responses

import "cpu-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      int    `json:"process_id"`
	Name           string `json:"name"`
	Color          string `json:"color,omitempty"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type SegmentResponse struct {
	ProcessId int    `json:"process_id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

// ScheduleResponse leaves the averages and ratios out when no process completed.
type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    *float64          `json:"average_waiting_time,omitempty"`
	AverageResponseTime   *float64          `json:"average_response_time,omitempty"`
	AverageTurnAroundTime *float64          `json:"average_turn_around_time,omitempty"`
	CpuUtilization        *float64          `json:"cpu_utilization,omitempty"`
	CpuThroughput         *float64          `json:"cpu_throughput,omitempty"`
	Chart                 []SegmentResponse `json:"chart"`
	Details               []ProcessResponse `json:"details"`
}

func NewScheduleResponse(algorithm string, timeQuantum int, result core.ScheduleResult) ScheduleResponse {
	stats := result.Stats
	response := ScheduleResponse{
		Algorithm:   algorithm,
		TimeQuantum: timeQuantum,
		TotalTime:   stats.Metric.TotalTime,
		IdleTime:    stats.Metric.IdleTime,
		Chart:       make([]SegmentResponse, 0, len(result.Chart)),
		Details:     make([]ProcessResponse, 0, len(stats.Completed)),
	}

	for _, segment := range result.Chart {
		response.Chart = append(response.Chart, SegmentResponse{
			ProcessId: segment.Process.Id,
			Name:      segment.Process.Name,
			Color:     segment.Process.Color,
			Start:     segment.Start,
			End:       segment.End,
		})
	}
	for _, p := range stats.Completed {
		response.Details = append(response.Details, ProcessResponse{
			ProcessId:      p.Id,
			Name:           p.Name,
			Color:          p.Color,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			StartTime:      p.StartTime,
			CompletionTime: p.CompletionTime,
			ResponseTime:   p.ResponseTime,
			TurnAroundTime: p.TurnAroundTime,
			WaitingTime:    p.WaitingTime,
		})
	}

	if stats.HasAverages() {
		response.AverageWaitingTime = float(stats.AverageWaitingTime)
		response.AverageResponseTime = float(stats.AverageResponseTime)
		response.AverageTurnAroundTime = float(stats.AverageTurnAroundTime)
	}
	if utilization, ok := stats.Metric.Utilization(); ok {
		response.CpuUtilization = float(utilization)
	}
	if throughput, ok := stats.Metric.Throughput(len(stats.Completed)); ok {
		response.CpuThroughput = float(throughput)
	}
	return response
}

func float(v float64) *float64 {
	return &v
}
