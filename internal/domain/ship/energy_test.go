package ship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
)

func TestEnergy_SlotOrderStarvesLastConsumer(t *testing.T) {
	// Arrange: three consumers of 2 ahead of a single 5-point source
	hull := newHull(catalog.HullSizeMedium, catalog.HullTypeNormal, 6, 2)
	s := buildShip(t, hull, consumer("A", 2), consumer("B", 2), consumer("C", 2), powerSource(5))

	// Act & Assert
	assert.Equal(t, 5, s.TotalEnergy())
	assert.True(t, s.IsWorking(0))
	assert.True(t, s.IsWorking(1))
	assert.False(t, s.IsWorking(2), "third consumer runs out of budget")
	assert.True(t, s.IsWorking(3), "sources need no energy")
	assert.Equal(t, -1, s.RemainingEnergy(2))
}

func TestEnergy_SourceAfterConsumersStillPowersThem(t *testing.T) {
	// The budget is the whole ship's supply; only demand accumulates by slot
	hull := newHull(catalog.HullSizeMedium, catalog.HullTypeNormal, 4, 2)
	s := buildShip(t, hull, consumer("A", 3), powerSource(4))

	assert.Equal(t, 1, s.RemainingEnergy(0))
	assert.True(t, s.IsWorking(0))
}

func TestEnergy_DestroyedConsumerReleasesBudget(t *testing.T) {
	hull := newHull(catalog.HullSizeMedium, catalog.HullTypeNormal, 6, 2)
	s := buildShip(t, hull, consumer("A", 2), consumer("B", 2), consumer("C", 2), powerSource(5))
	withHullPoints(s, 0)

	assert.False(t, s.IsWorking(0), "no hull points")
	assert.True(t, s.IsWorking(1))
	assert.True(t, s.IsWorking(2))
}

func TestEnergy_DestroyedSourceUnpowersConsumers(t *testing.T) {
	hull := newHull(catalog.HullSizeMedium, catalog.HullTypeNormal, 6, 2)
	s := buildShip(t, hull, consumer("A", 1), armorComp(2), powerSource(5))
	withHullPoints(s, 2, 2, 0)

	assert.Equal(t, 0, s.TotalEnergy())
	assert.False(t, s.IsWorking(0))
	assert.True(t, s.IsWorking(1), "armor draws no energy")
}

func TestEnergy_OutOfRangeIndicesAreNeutral(t *testing.T) {
	hull := newHull(catalog.HullSizeSmall, catalog.HullTypeNormal, 3, 1)
	s := buildShip(t, hull, armorComp(1))

	for _, index := range []int{-1, 1, 99} {
		assert.False(t, s.IsWorking(index))
		assert.Equal(t, 0, s.HullPointsAt(index))
		assert.Nil(t, s.ComponentAt(index))
		assert.Equal(t, 0, s.RemainingEnergy(index))
	}
}
