package helpers

import (
	"context"

	"github.com/andrescamacho/starship-engine/internal/domain/combat"
)

// MockCombatLogRepository is an in-memory implementation of combat.LogRepository for testing
type MockCombatLogRepository struct {
	Logs      map[string][]combat.LogEntry // key: engagement id
	RecordErr error
}

// NewMockCombatLogRepository creates a new mock combat log repository
func NewMockCombatLogRepository() *MockCombatLogRepository {
	return &MockCombatLogRepository{
		Logs: make(map[string][]combat.LogEntry),
	}
}

// Record flattens every report into one entry per trace line
func (m *MockCombatLogRepository) Record(ctx context.Context, engagementID string, reports []combat.AttackReport) error {
	if m.RecordErr != nil {
		return m.RecordErr
	}
	for _, report := range reports {
		for _, line := range report.Trace {
			m.Logs[engagementID] = append(m.Logs[engagementID], combat.LogEntry{
				ID:           len(m.Logs[engagementID]) + 1,
				EngagementID: engagementID,
				Round:        report.Round,
				AttackerID:   report.AttackerID,
				DefenderID:   report.DefenderID,
				Outcome:      report.Outcome.String(),
				Message:      line,
			})
		}
	}
	return nil
}

// GetLogs retrieves logs with pagination
func (m *MockCombatLogRepository) GetLogs(ctx context.Context, engagementID string, limit, offset int) ([]combat.LogEntry, error) {
	logs := m.Logs[engagementID]
	if offset >= len(logs) {
		return []combat.LogEntry{}, nil
	}
	end := len(logs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return logs[offset:end], nil
}
