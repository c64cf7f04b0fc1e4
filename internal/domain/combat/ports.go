package combat

import (
	"context"
	"time"
)

// LogEntry is one stored trace line of an engagement
type LogEntry struct {
	ID           int
	EngagementID string
	Round        int
	AttackerID   string
	DefenderID   string
	Outcome      string
	Message      string
	Timestamp    time.Time
}

// LogRepository persists combat traces
type LogRepository interface {
	// Record stores every trace line of the reports in firing order
	Record(ctx context.Context, engagementID string, reports []AttackReport) error

	// GetLogs retrieves an engagement's lines in firing order with pagination
	GetLogs(ctx context.Context, engagementID string, limit, offset int) ([]LogEntry, error)
}
