package ship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

func freighter(t *testing.T, components ...*catalog.Component) *ship.Ship {
	t.Helper()
	return buildShip(t, newHull(catalog.HullSizeMedium, catalog.HullTypeFreighter, 6, 2), components...)
}

func TestFreeCargo(t *testing.T) {
	s := freighter(t, engine(1, 1, 1), engine(1, 1, 1))
	s.SetColonist(3)
	s.SetMetal(15)

	// 4 free slots - 1 (colonists/2) - 1 (metal/10) - 1 (odd colonist)
	assert.Equal(t, 10, s.FreeCargoMetal())
	assert.Equal(t, 4, s.FreeCargoColonists())

	warship := buildShip(t, newHull(catalog.HullSizeMedium, catalog.HullTypeNormal, 6, 2))
	assert.Equal(t, 0, warship.FreeCargoMetal())
	assert.Equal(t, 0, warship.FreeCargoColonists())
}

func TestCalculateTradeCredits(t *testing.T) {
	origin := shared.NewCoordinate(0, 0)
	fourFree := freighter(t, engine(1, 1, 1), engine(1, 1, 1))
	sixFree := freighter(t)

	tests := []struct {
		name  string
		s     *ship.Ship
		to    shared.Coordinate
		value int
	}{
		{"same spot", fourFree, shared.NewCoordinate(0, 0), 0},
		{"next door", fourFree, shared.NewCoordinate(1, 0), 0},
		{"short run pays minimum", fourFree, shared.NewCoordinate(2, 0), 4},
		{"medium run", fourFree, shared.NewCoordinate(30, 0), 12},
		{"per slot cap", fourFree, shared.NewCoordinate(100, 0), 20},
		{"total cap", sixFree, shared.NewCoordinate(100, 0), 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.value, tt.s.CalculateTradeCredits(origin, tt.to))
		})
	}
}

func TestDoTrade_RouteStateMachine(t *testing.T) {
	// Arrange
	me := shared.MustNewPlayerID(1)
	rival := shared.MustNewPlayerID(2)
	home := ship.TradePort{Coordinate: shared.NewCoordinate(0, 0), Owner: me}
	rivalWorld := ship.TradePort{Coordinate: shared.NewCoordinate(30, 0), Owner: rival}
	farRivalWorld := ship.TradePort{Coordinate: shared.NewCoordinate(60, 0), Owner: rival}
	s := freighter(t, engine(1, 1, 1), engine(1, 1, 1))

	// First visit records where the route starts
	assert.Equal(t, 0, s.DoTrade(home, me))
	assert.True(t, s.HasFlag(ship.FlagMerchantLeftHomeworld))
	require.NotNil(t, s.TradeCoordinate())
	assert.Equal(t, home.Coordinate, *s.TradeCoordinate())
	assert.Equal(t, ship.CargoTradeGoods, s.CargoType())

	// Coming back to the same port earns nothing
	assert.Equal(t, 0, s.DoTrade(home, me))

	// Crossing to an opponent pays and flips the route
	assert.Equal(t, 12, s.DoTrade(rivalWorld, me))
	assert.True(t, s.HasFlag(ship.FlagMerchantLeftOpponentWorld))
	assert.False(t, s.HasFlag(ship.FlagMerchantLeftHomeworld))
	assert.Equal(t, rivalWorld.Coordinate, *s.TradeCoordinate())

	// Another opponent world pays but keeps the route anchored
	assert.Equal(t, 12, s.DoTrade(farRivalWorld, me))
	assert.Equal(t, rivalWorld.Coordinate, *s.TradeCoordinate())

	// Back home pays and flips again
	assert.Equal(t, 12, s.DoTrade(home, me))
	assert.True(t, s.HasFlag(ship.FlagMerchantLeftHomeworld))
	assert.False(t, s.HasFlag(ship.FlagMerchantLeftOpponentWorld))
	assert.Equal(t, home.Coordinate, *s.TradeCoordinate())
}

func TestDoTrade_OnlyTradeShipsAtOwnedPorts(t *testing.T) {
	me := shared.MustNewPlayerID(1)
	colonyModule := &catalog.Component{Name: "Colony", Type: catalog.ComponentColonyModule}

	unowned := ship.TradePort{Coordinate: shared.NewCoordinate(5, 5)}
	trader := freighter(t)
	assert.Equal(t, 0, trader.DoTrade(unowned, me))
	assert.Nil(t, trader.TradeCoordinate())

	colony := freighter(t, colonyModule)
	assert.False(t, colony.IsTradeShip())
	assert.Equal(t, 0, colony.DoTrade(ship.TradePort{Coordinate: shared.NewCoordinate(1, 1), Owner: me}, me))
	assert.Nil(t, colony.TradeCoordinate())
}

func TestCargoType(t *testing.T) {
	invasion := &catalog.Component{Name: "Invasion", Type: catalog.ComponentPlanetaryInvasion, Damage: 10}

	empty := freighter(t)
	assert.Equal(t, ship.CargoNone, empty.CargoType())

	ore := freighter(t)
	ore.SetMetal(10)
	assert.Equal(t, ship.CargoMetal, ore.CargoType())

	settlers := freighter(t)
	settlers.SetColonist(2)
	settlers.SetMetal(10)
	assert.Equal(t, ship.CargoPopulation, settlers.CargoType())

	troops := freighter(t, invasion)
	troops.SetColonist(2)
	assert.Equal(t, ship.CargoTroops, troops.CargoType())
}

func TestSetFlag_MerchantFlagsAreExclusive(t *testing.T) {
	s := freighter(t)

	s.SetFlag(ship.FlagStarbaseDeployed, true)
	s.SetFlag(ship.FlagMerchantLeftHomeworld, true)
	s.SetFlag(ship.FlagMerchantLeftOpponentWorld, true)

	assert.True(t, s.HasFlag(ship.FlagStarbaseDeployed))
	assert.True(t, s.HasFlag(ship.FlagMerchantLeftOpponentWorld))
	assert.False(t, s.HasFlag(ship.FlagMerchantLeftHomeworld))

	s.SetFlag(ship.FlagStarbaseDeployed, false)
	assert.Equal(t, ship.FlagMerchantLeftOpponentWorld, s.Flags())
}
