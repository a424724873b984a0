package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/store"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		algorithmName string
		all           bool
		quantum       int
		input         string
		format        string
		save          bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute a schedule and print the gantt chart and statistics",
		Example: `  cpu-scheduler run --algorithm rr --quantum 2 --input processes.csv
  cpu-scheduler run --all --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			request := requests.ScheduleRequests{Jobs: requests.SampleJobs()}
			if input != "" {
				loaded, err := requests.LoadFile(input)
				if err != nil {
					return err
				}
				request = loaded
			}

			timeQuantum := cfg.RoundRobinTimeQuantum
			if request.TimeQuantum != nil {
				timeQuantum = *request.TimeQuantum
			}
			if cmd.Flags().Changed("quantum") {
				timeQuantum = quantum
			}
			timeQuantum = max(timeQuantum, 1)

			algorithms := schedulers.Algorithms()
			if !all {
				algorithm, err := schedulers.ParseAlgorithm(algorithmName)
				if err != nil {
					return err
				}
				algorithms = []schedulers.Algorithm{algorithm}
			}

			results := make([]responses.ScheduleResponse, 0, len(algorithms))
			for _, algorithm := range algorithms {
				q := 0
				if algorithm == schedulers.RoundRobin {
					q = timeQuantum
				}
				result, err := schedulers.Schedule(request.Processes(), algorithm, q)
				if err != nil {
					return err
				}
				results = append(results, responses.NewScheduleResponse(string(algorithm), q, result))
			}

			if save {
				if err := saveRuns(cmd, request, results); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if all {
					return enc.Encode(results)
				}
				return enc.Encode(results[0])
			case "text":
				for _, response := range results {
					title := titles[schedulers.Algorithm(response.Algorithm)]
					if response.TimeQuantum > 0 {
						title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
					}
					render.Title(out, title)
					render.Gantt(out, response.Chart)
					render.Schedule(out, response)
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&algorithmName, "algorithm", "a", "fcfs", "Algorithm: fcfs, sjf, priority, rr, srtf")
	cmd.Flags().BoolVar(&all, "all", false, "Run every algorithm")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Process file (.csv, .yaml, .yml, .json); the sample workload when empty")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&save, "save", false, "Record the runs in the history database")
	return cmd
}

var titles = map[schedulers.Algorithm]string{
	schedulers.FirstComeFirstServe:        "First-come, first-serve",
	schedulers.ShortestJobFirst:           "Shortest-job-first",
	schedulers.Priority:                   "Priority",
	schedulers.RoundRobin:                 "Round-robin",
	schedulers.ShortestRemainingTimeFirst: "Shortest-remaining-time-first",
}

func saveRuns(cmd *cobra.Command, request requests.ScheduleRequests, results []responses.ScheduleResponse) error {
	st, err := openStore(cmd.Context(), cfg.StorePath)
	if err != nil {
		return err
	}
	defer st.Close()

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	for _, response := range results {
		responseJSON, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("marshal response: %w", err)
		}
		run := &store.Run{
			Algorithm:    response.Algorithm,
			TimeQuantum:  response.TimeQuantum,
			ProcessCount: len(request.Jobs),
			Request:      requestJSON,
			Response:     responseJSON,
		}
		if err := st.SaveRun(cmd.Context(), run); err != nil {
			return err
		}
		logger.Info("run saved", "id", run.ID, "algorithm", run.Algorithm)
	}
	return nil
}
