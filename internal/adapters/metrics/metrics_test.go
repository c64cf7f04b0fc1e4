package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starship-engine/internal/application/mediator"
	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/combat"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

func TestCombatMetrics_RecordEngagement(t *testing.T) {
	// Arrange
	collector := NewCombatMetricsCollector()
	winner := shared.MustNewPlayerID(1)
	result := combat.Result{
		Rounds: 3,
		Reports: []combat.AttackReport{
			{WeaponType: catalog.ComponentWeaponBeam, Hit: true, Outcome: ship.OutcomeDamaged},
			{WeaponType: catalog.ComponentWeaponBeam, Hit: false, Outcome: ship.OutcomeNoDamageNoDent},
			{WeaponType: catalog.ComponentWeaponRailgun, Hit: true, Outcome: ship.OutcomeDestroyed},
		},
		Destroyed: []*combat.Combatant{{ID: "victim"}},
		Winner:    &winner,
	}

	// Act
	collector.RecordEngagement(result, map[string]int{"victim": 2})

	// Assert
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.engagementsTotal.WithLabelValues("decided")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.attacksTotal.WithLabelValues("WEAPON_BEAM", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.attacksTotal.WithLabelValues("WEAPON_BEAM", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.damageOutcomes.WithLabelValues("WEAPON_RAILGUN", "DESTROYED")))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.damageOutcomes.WithLabelValues("WEAPON_BEAM", "NO_DAMAGE_NO_DENT")), "misses have no outcome")
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.shipsDestroyed.WithLabelValues("2")))
}

func TestFleetMetrics(t *testing.T) {
	collector := NewFleetMetricsCollector()

	collector.RecordShipCommissioned(1, "Scout Mk1")
	collector.RecordRepair(false, 1)
	collector.RecordRepair(true, 7)
	collector.RecordRepair(true, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.shipsCommissioned.WithLabelValues("1", "Scout Mk1")))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.repairsTotal.WithLabelValues("full")))
	assert.Equal(t, 8.0, testutil.ToFloat64(collector.hullPointsRepaired))
}

func TestRegister_NoopWithoutRegistry(t *testing.T) {
	Registry = nil

	assert.NoError(t, NewCombatMetricsCollector().Register())
	assert.NoError(t, NewFleetMetricsCollector().Register())
	assert.NoError(t, NewCommandMetricsCollector().Register())
	assert.False(t, IsEnabled())
}

func TestRegister_WithRegistry(t *testing.T) {
	InitRegistry()
	t.Cleanup(func() { Registry = nil })

	require.NoError(t, NewCombatMetricsCollector().Register())
	require.NoError(t, NewFleetMetricsCollector().Register())
	require.NoError(t, NewCommandMetricsCollector().Register())

	assert.True(t, IsEnabled())
	assert.Error(t, NewCombatMetricsCollector().Register(), "duplicate registration")
}

type nameQuery struct{}

func TestPrometheusMiddleware(t *testing.T) {
	// Arrange
	collector := NewCommandMetricsCollector()
	middleware := PrometheusMiddleware(collector)
	boom := errors.New("boom")

	// Act
	_, okErr := middleware(context.Background(), &nameQuery{}, func(ctx context.Context, r mediator.Request) (mediator.Response, error) {
		return "ok", nil
	})
	_, failErr := middleware(context.Background(), &nameQuery{}, func(ctx context.Context, r mediator.Request) (mediator.Response, error) {
		return nil, boom
	})

	// Assert
	assert.NoError(t, okErr)
	assert.ErrorIs(t, failErr, boom)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.commandsTotal.WithLabelValues("nameQuery", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.commandsTotal.WithLabelValues("nameQuery", "error")))
}

func TestExtractCommandName(t *testing.T) {
	assert.Equal(t, "nameQuery", extractCommandName(&nameQuery{}))
	assert.Equal(t, "nameQuery", extractCommandName(nameQuery{}))
	assert.Equal(t, "UnknownCommand", extractCommandName(nil))
}

func TestServer_RequiresRegistry(t *testing.T) {
	Registry = nil

	_, err := NewServer("localhost", 9090, "/metrics")

	assert.Error(t, err)
}

func TestServer_StopsOnCancel(t *testing.T) {
	InitRegistry()
	t.Cleanup(func() { Registry = nil })
	server, err := NewServer("127.0.0.1", 0, "/metrics")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, server.Run(ctx))
}
