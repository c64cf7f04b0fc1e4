package ship_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

var (
	humans     = catalog.Race{Index: 0, Name: "Humans", TrooperPower: 10}
	teuthidaes = catalog.Race{Index: 6, Name: "Teuthidaes", CloakBonus: 10, TrooperPower: 10}
)

func newHull(size catalog.HullSize, hullType catalog.HullType, maxSlot, slotHull int) *catalog.Hull {
	return &catalog.Hull{
		Name:     "Test " + string(size) + " " + string(hullType),
		Size:     size,
		Type:     hullType,
		MaxSlot:  maxSlot,
		SlotHull: slotHull,
		Race:     humans,
	}
}

func weapon(name string, t catalog.ComponentType, damage int) *catalog.Component {
	return &catalog.Component{Name: name, Type: t, Damage: damage, WeaponRange: 1, HitChance: 50}
}

func consumer(name string, requirement int) *catalog.Component {
	return &catalog.Component{Name: name, Type: catalog.ComponentScanner, ScannerRange: 1, EnergyRequirement: requirement}
}

func powerSource(resource int) *catalog.Component {
	return &catalog.Component{Name: "Reactor", Type: catalog.ComponentPowerSource, EnergyResource: resource}
}

func shieldComp(defense int) *catalog.Component {
	return &catalog.Component{Name: "Shield", Type: catalog.ComponentShield, DefenseValue: defense}
}

func armorComp(defense int) *catalog.Component {
	return &catalog.Component{Name: "Armor", Type: catalog.ComponentArmor, DefenseValue: defense}
}

func engine(speed, tactic, ftl int) *catalog.Component {
	return &catalog.Component{Name: "Drive", Type: catalog.ComponentEngine, Speed: speed, TacticSpeed: tactic, FtlSpeed: ftl}
}

// buildShip creates a fresh ship on the hull with the given slot layout
func buildShip(t *testing.T, hull *catalog.Hull, components ...*catalog.Component) *ship.Ship {
	t.Helper()
	design, err := ship.NewDesign("Test ship", hull, components, 10, 5)
	require.NoError(t, err)
	return ship.NewShip(design)
}

// withHullPoints overwrites slot hull points in order
func withHullPoints(s *ship.Ship, hp ...int) *ship.Ship {
	for i, v := range hp {
		s.SetHullPointsAt(i, v)
	}
	return s
}
