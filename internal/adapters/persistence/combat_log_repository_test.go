package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starship-engine/internal/adapters/persistence"
	"github.com/andrescamacho/starship-engine/internal/domain/combat"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
	"github.com/andrescamacho/starship-engine/test/helpers"
)

func sampleReports() []combat.AttackReport {
	return []combat.AttackReport{
		{Round: 1, AttackerID: "a", DefenderID: "b", Outcome: ship.OutcomeNoDamageNoDent, Trace: []string{"Laser Mk1 missed b!"}},
		{Round: 1, AttackerID: "b", DefenderID: "a", Hit: true, Outcome: ship.OutcomeDamaged, Trace: []string{
			"Attack hit causing 2 damage!",
			"Shield Mk1 damaged!",
		}},
		{Round: 2, AttackerID: "a", DefenderID: "b", Hit: true, Outcome: ship.OutcomeDestroyed, Trace: []string{
			"Attack hit causing 9 damage!",
			"Laser Mk1 is destroyed!",
			"b is destroyed!",
		}},
	}
}

func TestCombatLogRepository_RecordAndGet(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := persistence.NewGormCombatLogRepository(db, clock)

	// Act
	require.NoError(t, repo.Record(context.Background(), "engagement-1", sampleReports()))
	entries, err := repo.GetLogs(context.Background(), "engagement-1", 0, 0)

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 6)
	assert.Equal(t, "Laser Mk1 missed b!", entries[0].Message)
	assert.Equal(t, "NO_DAMAGE_NO_DENT", entries[0].Outcome)
	assert.Equal(t, "b is destroyed!", entries[5].Message)
	assert.Equal(t, 2, entries[5].Round)
	assert.Equal(t, "DESTROYED", entries[5].Outcome)
	assert.True(t, entries[0].Timestamp.Equal(clock.Now()))
}

func TestCombatLogRepository_Pagination(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCombatLogRepository(db, nil)
	require.NoError(t, repo.Record(context.Background(), "engagement-1", sampleReports()))
	require.NoError(t, repo.Record(context.Background(), "engagement-2", sampleReports()[:1]))

	page, err := repo.GetLogs(context.Background(), "engagement-1", 2, 1)

	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Attack hit causing 2 damage!", page[0].Message)
	assert.Equal(t, "Shield Mk1 damaged!", page[1].Message)

	other, err := repo.GetLogs(context.Background(), "engagement-2", 10, 0)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestCombatLogRepository_EmptyReports(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCombatLogRepository(db, nil)

	require.NoError(t, repo.Record(context.Background(), "quiet", nil))

	entries, err := repo.GetLogs(context.Background(), "quiet", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
