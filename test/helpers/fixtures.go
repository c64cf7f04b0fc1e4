package helpers

import (
	"testing"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

// NewFleetShip builds a ship from catalog archetypes for race 0
func NewFleetShip(t *testing.T, cat *catalog.Catalog, id string, owner int, hullName string, components ...string) *ship.FleetShip {
	t.Helper()

	hull, err := cat.HullByName(hullName, 0)
	if err != nil {
		t.Fatalf("unknown hull %s: %v", hullName, err)
	}
	comps, err := cat.ComponentsByName(components)
	if err != nil {
		t.Fatalf("unknown component: %v", err)
	}
	design, err := ship.NewDesign(id, hull, comps, 100, 20)
	if err != nil {
		t.Fatalf("invalid design %s: %v", id, err)
	}

	return &ship.FleetShip{
		ID:    id,
		Owner: shared.MustNewPlayerID(owner),
		Ship:  ship.NewShip(design),
	}
}
