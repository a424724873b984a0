package core

// Process is the caller supplied record. It is never mutated by a scheduler run.
type Process struct {
	Id          int
	Name        string
	ArrivalTime int
	BurstTime   int
	Priority    int // lower value means higher priority
	Color       string
}

// WorkingProcess is the per-run copy of a Process that the dispatch policies mutate.
type WorkingProcess struct {
	Process
	RemainingTime  int
	StartTime      int // -1 until the first allocation
	CompletionTime int
	TurnAroundTime int
	WaitingTime    int
	ResponseTime   int
}

func NewWorkingProcess(p Process) *WorkingProcess {
	return &WorkingProcess{
		Process:       p,
		RemainingTime: p.BurstTime,
		StartTime:     -1,
	}
}

func (p *WorkingProcess) Completed() bool {
	return p.RemainingTime == 0
}

// Segment is one block of the gantt chart: Process held the cpu during [Start, End).
type Segment struct {
	Process Process
	Start   int
	End     int
}

func (s Segment) Duration() int {
	return s.End - s.Start
}

// Stats is the statistics summary of a finished run. Averages are only meaningful
// when HasAverages reports true.
type Stats struct {
	Completed             []WorkingProcess
	AverageWaitingTime    float64
	AverageTurnAroundTime float64
	AverageResponseTime   float64
	Metric                CpuMetric
}

func (s Stats) HasAverages() bool {
	return len(s.Completed) > 0
}

// ScheduleResult is the full output of one dispatch run.
type ScheduleResult struct {
	Chart []Segment
	Stats Stats
}
