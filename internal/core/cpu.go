package core

// CpuMetric is measured in scheduler time units.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization returns busy time over total time. ok is false for a run that never advanced the clock.
func (m CpuMetric) Utilization() (float64, bool) {
	if m.TotalTime == 0 {
		return 0, false
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime), true
}

// Throughput returns completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) (float64, bool) {
	if m.TotalTime == 0 {
		return 0, false
	}
	return float64(processCount) / float64(m.TotalTime), true
}

// Cpu is the single virtual processor a dispatch run drives. It owns the clock and
// the growing gantt chart; nothing is shared between runs.
type Cpu struct {
	clock  int
	chart  []Segment
	metric CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{chart: make([]Segment, 0)}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// Idle advances the clock by one tick without emitting a segment.
func (c *Cpu) Idle() {
	c.clock++
	c.metric.IdleTime++
}

// IdleUntil jumps the clock forward to t. It never moves the clock backwards.
func (c *Cpu) IdleUntil(t int) {
	if c.clock < t {
		c.metric.IdleTime += t - c.clock
		c.clock = t
	}
}

// Execute runs p for units time units as a new segment.
func (c *Cpu) Execute(p *WorkingProcess, units int) {
	c.chart = append(c.chart, Segment{Process: p.Process, Start: c.clock, End: c.clock + units})
	c.run(p, units)
}

// ExecuteMerged runs p for units time units, extending the last segment when it
// belongs to p and ends at the current clock.
func (c *Cpu) ExecuteMerged(p *WorkingProcess, units int) {
	if n := len(c.chart); n > 0 {
		last := &c.chart[n-1]
		if last.Process.Id == p.Id && last.End == c.clock {
			last.End += units
			c.run(p, units)
			return
		}
	}
	c.Execute(p, units)
}

func (c *Cpu) run(p *WorkingProcess, units int) {
	if p.StartTime < 0 {
		p.StartTime = c.clock
	}
	c.clock += units
	c.metric.UtilizationTime += units
	p.RemainingTime -= units
	if p.RemainingTime == 0 {
		p.CompletionTime = c.clock
	}
}

func (c *Cpu) Chart() []Segment {
	return c.chart
}

func (c *Cpu) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
