package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/starship-engine/internal/domain/combat"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
)

// recordBatchSize bounds rows per INSERT when storing a long engagement
const recordBatchSize = 200

// GormCombatLogRepository is a GORM-based implementation of combat.LogRepository
type GormCombatLogRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormCombatLogRepository creates a new combat log repository
// If clock is nil, uses RealClock (production behavior)
func NewGormCombatLogRepository(db *gorm.DB, clock shared.Clock) *GormCombatLogRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormCombatLogRepository{db: db, clock: clock}
}

// Record stores one row per trace line in a single transaction
func (r *GormCombatLogRepository) Record(ctx context.Context, engagementID string, reports []combat.AttackReport) error {
	now := r.clock.Now()

	var rows []CombatLogModel
	for _, report := range reports {
		for _, line := range report.Trace {
			rows = append(rows, CombatLogModel{
				EngagementID: engagementID,
				Round:        report.Round,
				AttackerID:   report.AttackerID,
				DefenderID:   report.DefenderID,
				Outcome:      report.Outcome.String(),
				Message:      line,
				Timestamp:    now,
			})
		}
	}
	if len(rows) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(rows, recordBatchSize).Error; err != nil {
		return fmt.Errorf("failed to record combat log: %w", err)
	}
	return nil
}

// GetLogs retrieves an engagement's lines in firing order with pagination
func (r *GormCombatLogRepository) GetLogs(ctx context.Context, engagementID string, limit, offset int) ([]combat.LogEntry, error) {
	var models []CombatLogModel

	query := r.db.WithContext(ctx).
		Where("engagement_id = ?", engagementID).
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get combat log: %w", err)
	}

	entries := make([]combat.LogEntry, len(models))
	for i, model := range models {
		entries[i] = combat.LogEntry{
			ID:           model.ID,
			EngagementID: model.EngagementID,
			Round:        model.Round,
			AttackerID:   model.AttackerID,
			DefenderID:   model.DefenderID,
			Outcome:      model.Outcome,
			Message:      model.Message,
			Timestamp:    model.Timestamp,
		}
	}

	return entries, nil
}
