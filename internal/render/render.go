package render

import (
	"fmt"
	"io"
	"strings"

	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/store"
	"github.com/olekukonko/tablewriter"
)

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt prints one cell per segment followed by the boundary times. Idle gaps show up
// as a jump between the end of one cell and the start of the next.
func Gantt(w io.Writer, chart []responses.SegmentResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(chart) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	var cells, times strings.Builder
	cells.WriteString("|")
	for i, segment := range chart {
		label := segment.Name
		if label == "" {
			label = fmt.Sprint("P", segment.ProcessId)
		}
		width := max(8, len(label)+2)
		pad := width - len(label)
		cells.WriteString(strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2) + "|")

		start := fmt.Sprint(segment.Start)
		if i > 0 && chart[i-1].End != segment.Start {
			start = fmt.Sprintf("%d/%d", chart[i-1].End, segment.Start)
		}
		times.WriteString(start + strings.Repeat(" ", max(1, width+1-len(start))))
	}
	times.WriteString(fmt.Sprint(chart[len(chart)-1].End))

	_, _ = fmt.Fprintln(w, cells.String())
	_, _ = fmt.Fprintln(w, times.String())
	_, _ = fmt.Fprintln(w)
}

func Schedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Priority", "Burst", "Arrival", "Start", "Exit", "Response", "Wait", "Turnaround"})
	for _, p := range response.Details {
		table.Append([]string{
			fmt.Sprint(p.ProcessId),
			p.Name,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnAroundTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Total\n%d", response.TotalTime),
		"Average\n" + optional(response.AverageResponseTime, ""),
		"Average\n" + optional(response.AverageWaitingTime, ""),
		"Average\n" + optional(response.AverageTurnAroundTime, ""),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "Idle time: %d  Utilization: %s  Throughput: %s\n\n",
		response.IdleTime,
		optional(response.CpuUtilization, ""),
		optional(response.CpuThroughput, "/t"))
}

func Runs(w io.Writer, runs []*store.Run) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Algorithm", "Quantum", "Processes", "Created"})
	for _, run := range runs {
		quantum := "-"
		if run.TimeQuantum > 0 {
			quantum = fmt.Sprint(run.TimeQuantum)
		}
		table.Append([]string{
			run.ID,
			run.Algorithm,
			quantum,
			fmt.Sprint(run.ProcessCount),
			run.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	table.Render()
}

func optional(v *float64, suffix string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%s", *v, suffix)
}
