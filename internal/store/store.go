package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var ErrNotFound = errors.New("run not found")

// Run is one persisted schedule computation.
type Run struct {
	ID           string          `json:"id"`
	Algorithm    string          `json:"algorithm"`
	TimeQuantum  int             `json:"time_quantum"`
	ProcessCount int             `json:"process_count"`
	Request      json.RawMessage `json:"request"`
	Response     json.RawMessage `json:"response"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Store keeps the history of computed schedules.
type Store interface {
	Migrate(ctx context.Context) error
	SaveRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)
	Close() error
}
