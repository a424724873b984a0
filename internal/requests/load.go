package requests

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported input format")

// LoadFile reads a process list from a .csv, .yaml, .yml or .json file.
func LoadFile(path string) (ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return ScheduleRequests{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".json":
		return LoadJSON(f)
	default:
		return ScheduleRequests{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadCSV reads rows of id,name,arrival,burst,priority[,color]. A first row whose
// first column is "id" is treated as a header.
func LoadCSV(r io.Reader) (ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return ScheduleRequests{}, fmt.Errorf("read csv: %w", err)
	}

	var request ScheduleRequests
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "id") {
			continue
		}
		if len(row) < 5 {
			return ScheduleRequests{}, fmt.Errorf("csv line %d: want at least 5 columns, got %d", i+1, len(row))
		}

		job := Job{Name: strings.TrimSpace(row[1])}
		ints := []*int{&job.ProcessId, nil, &job.ArrivalTime, &job.BurstTime, &job.Priority}
		for col, dst := range ints {
			if dst == nil {
				continue
			}
			v, err := strconv.Atoi(strings.TrimSpace(row[col]))
			if err != nil {
				return ScheduleRequests{}, fmt.Errorf("csv line %d column %d: %w", i+1, col+1, err)
			}
			*dst = v
		}
		if len(row) > 5 {
			job.Color = strings.TrimSpace(row[5])
		}
		request.Jobs = append(request.Jobs, job)
	}
	return request, nil
}

func LoadYAML(r io.Reader) (ScheduleRequests, error) {
	var request ScheduleRequests
	if err := yaml.NewDecoder(r).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		return ScheduleRequests{}, fmt.Errorf("decode yaml: %w", err)
	}
	return request, nil
}

func LoadJSON(r io.Reader) (ScheduleRequests, error) {
	var request ScheduleRequests
	if err := json.NewDecoder(r).Decode(&request); err != nil {
		return ScheduleRequests{}, fmt.Errorf("decode json: %w", err)
	}
	return request, nil
}
