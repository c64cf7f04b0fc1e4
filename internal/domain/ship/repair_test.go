package ship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
)

func generator(defense int) *catalog.Component {
	return &catalog.Component{Name: "Generator", Type: catalog.ComponentShieldGenerator, DefenseValue: defense}
}

func TestFixShip_PartialRepairWorksSlotBySlot(t *testing.T) {
	// Arrange: hp 2/5 and 0/5
	hull := newHull(catalog.HullSizeSmall, catalog.HullTypeNormal, 3, 5)
	s := buildShip(t, hull, armorComp(2), shieldComp(3))
	withHullPoints(s, 2, 0)

	// Act & Assert
	for _, want := range []int{3, 4, 5} {
		s.FixShip(false)
		assert.Equal(t, want, s.HullPointsAt(0))
		assert.Equal(t, 0, s.HullPointsAt(1), "second slot waits for the first")
	}
	assert.Equal(t, 2, s.Armor())
	assert.Equal(t, 0, s.Shield(), "destroyed shield adds nothing")

	s.FixShip(false)
	assert.Equal(t, 5, s.HullPointsAt(0))
	assert.Equal(t, 1, s.HullPointsAt(1))
	assert.Equal(t, 3, s.Shield())
}

func TestFixShip_FullRepair(t *testing.T) {
	hull := newHull(catalog.HullSizeSmall, catalog.HullTypeNormal, 3, 5)
	s := buildShip(t, hull, armorComp(2), shieldComp(3), engine(1, 1, 1))
	withHullPoints(s, 1, 0, 4)
	s.SetShield(0)
	s.SetArmor(0)

	s.FixShip(true)

	assert.Equal(t, s.MaxHullPoints(), s.HullPoints())
	assert.Equal(t, 2, s.Armor())
	assert.Equal(t, 3, s.Shield())
}

func TestFixShip_IntactShipOnlyResetsPools(t *testing.T) {
	hull := newHull(catalog.HullSizeSmall, catalog.HullTypeNormal, 3, 5)
	s := buildShip(t, hull, armorComp(2))
	s.SetArmor(0)

	s.FixShip(false)

	assert.Equal(t, 5, s.HullPointsAt(0))
	assert.Equal(t, 2, s.Armor())
}

func TestRegenerateShield(t *testing.T) {
	hull := newHull(catalog.HullSizeSmall, catalog.HullTypeNormal, 4, 2)

	t.Run("one point per round up to max", func(t *testing.T) {
		s := buildShip(t, hull, shieldComp(3))
		s.SetShield(2)

		s.RegenerateShield()
		assert.Equal(t, 3, s.Shield())

		s.RegenerateShield()
		assert.Equal(t, 3, s.Shield())
	})

	t.Run("generator after shield must fit under max", func(t *testing.T) {
		s := buildShip(t, hull, shieldComp(3), generator(2))
		s.SetShield(1)

		s.RegenerateShield()

		assert.Equal(t, 2, s.Shield())
	})

	t.Run("generator before shield is applied first", func(t *testing.T) {
		s := buildShip(t, hull, generator(2), shieldComp(3))
		s.SetShield(1)

		s.RegenerateShield()

		assert.Equal(t, 3, s.Shield())
	})

	t.Run("generator alone cannot hold a shield", func(t *testing.T) {
		s := buildShip(t, hull, generator(2), shieldComp(3))
		s.SetShield(3)
		withHullPoints(s, 2, 0)

		s.RegenerateShield()

		assert.Equal(t, 0, s.Shield())
	})
}
