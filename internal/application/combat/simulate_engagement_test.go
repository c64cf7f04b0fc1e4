package combat_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	combatApp "github.com/andrescamacho/starship-engine/internal/application/combat"
	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/test/helpers"
)

func seed(v uint64) *uint64 {
	return &v
}

func newFleet(t *testing.T) *helpers.MockShipRepository {
	t.Helper()
	cat := catalog.Default()
	return helpers.NewMockShipRepository(
		helpers.NewFleetShip(t, cat, "red-cruiser", 1, "Cruiser Mk1",
			"Fusion source Mk1", "Laser Mk2", "Laser Mk2", "Photon torpedo Mk1", "Armor plating Mk2", "Shield Mk1"),
		helpers.NewFleetShip(t, cat, "blue-scout", 2, "Scout Mk1", "Laser Mk1"),
	)
}

func newHandler(shipRepo *helpers.MockShipRepository, logRepo *helpers.MockCombatLogRepository) *combatApp.SimulateEngagementHandler {
	clock := shared.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return combatApp.NewSimulateEngagementHandler(shipRepo, logRepo, clock, 10)
}

func TestSimulateEngagement_PersistsOutcome(t *testing.T) {
	// Arrange
	shipRepo := newFleet(t)
	logRepo := helpers.NewMockCombatLogRepository()
	handler := newHandler(shipRepo, logRepo)

	// Act
	resp, err := handler.Handle(context.Background(), &combatApp.SimulateEngagementCommand{
		EngagementID: "skirmish",
		ShipIDs:      []string{"red-cruiser", "blue-scout"},
		Seed:         seed(42),
	})

	// Assert
	require.NoError(t, err)
	result := resp.(*combatApp.SimulateEngagementResponse)
	assert.Equal(t, "skirmish", result.EngagementID)
	assert.LessOrEqual(t, result.Rounds, 10)
	assert.Len(t, append(result.Survivors, result.Destroyed...), 2)
	assert.Equal(t, 2, shipRepo.SaveCalls, "both ships are saved")

	lines := 0
	for _, report := range result.Reports {
		lines += len(report.Trace)
	}
	assert.Len(t, logRepo.Logs["skirmish"], lines)

	if len(result.Destroyed) == 1 {
		require.NotNil(t, result.Winner)
		destroyed := shipRepo.Ships[result.Destroyed[0]]
		assert.True(t, destroyed.Ship.IsDestroyed())
		assert.False(t, result.Winner.Equals(destroyed.Owner))
	}
}

func TestSimulateEngagement_SameSeedSameFight(t *testing.T) {
	run := func() *combatApp.SimulateEngagementResponse {
		handler := newHandler(newFleet(t), helpers.NewMockCombatLogRepository())
		resp, err := handler.Handle(context.Background(), &combatApp.SimulateEngagementCommand{
			ShipIDs: []string{"red-cruiser", "blue-scout"},
			Seed:    seed(7),
		})
		require.NoError(t, err)
		return resp.(*combatApp.SimulateEngagementResponse)
	}

	first, second := run(), run()

	assert.Equal(t, first.Rounds, second.Rounds)
	assert.Equal(t, first.Destroyed, second.Destroyed)
	assert.Equal(t, first.Reports, second.Reports)
	assert.NotEqual(t, first.EngagementID, second.EngagementID, "ids are generated per fight")
}

func TestSimulateEngagement_Errors(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		logErr  error
		wantErr string
	}{
		{"single ship", []string{"red-cruiser"}, nil, "at least two ships are required"},
		{"unknown ship", []string{"red-cruiser", "ghost"}, nil, "ship not found"},
		{"log failure", []string{"red-cruiser", "blue-scout"}, errors.New("log offline"), "log offline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logRepo := helpers.NewMockCombatLogRepository()
			logRepo.RecordErr = tt.logErr
			handler := newHandler(newFleet(t), logRepo)

			_, err := handler.Handle(context.Background(), &combatApp.SimulateEngagementCommand{ShipIDs: tt.ids, Seed: seed(1)})

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSimulateEngagement_FriendlyFleetDoesNotFight(t *testing.T) {
	cat := catalog.Default()
	shipRepo := helpers.NewMockShipRepository(
		helpers.NewFleetShip(t, cat, "a", 1, "Scout Mk1", "HE missile Mk1"),
		helpers.NewFleetShip(t, cat, "b", 1, "Scout Mk1", "HE missile Mk1"),
	)
	handler := newHandler(shipRepo, helpers.NewMockCombatLogRepository())

	resp, err := handler.Handle(context.Background(), &combatApp.SimulateEngagementCommand{ShipIDs: []string{"a", "b"}})

	require.NoError(t, err)
	result := resp.(*combatApp.SimulateEngagementResponse)
	assert.Zero(t, result.Rounds)
	assert.Empty(t, result.Destroyed)
	require.NotNil(t, result.Winner)
	assert.Equal(t, 1, result.Winner.Value())
}

func TestGetCombatLog_Pages(t *testing.T) {
	shipRepo := newFleet(t)
	logRepo := helpers.NewMockCombatLogRepository()
	_, err := newHandler(shipRepo, logRepo).Handle(context.Background(), &combatApp.SimulateEngagementCommand{
		EngagementID: "paged",
		ShipIDs:      []string{"red-cruiser", "blue-scout"},
		Seed:         seed(3),
	})
	require.NoError(t, err)
	total := len(logRepo.Logs["paged"])
	require.Positive(t, total)

	handler := combatApp.NewGetCombatLogHandler(logRepo)
	resp, err := handler.Handle(context.Background(), &combatApp.GetCombatLogQuery{EngagementID: "paged", Limit: 1, Offset: total - 1})

	require.NoError(t, err)
	entries := resp.(*combatApp.GetCombatLogResponse).Entries
	require.Len(t, entries, 1)
	assert.Equal(t, logRepo.Logs["paged"][total-1], entries[0])

	_, err = handler.Handle(context.Background(), &combatApp.GetCombatLogQuery{})
	assert.EqualError(t, err, "engagement_id is required")
}
