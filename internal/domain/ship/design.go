package ship

import (
	"fmt"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
)

// Design is the blueprint ships are built from: a hull plus an ordered
// component list. Component order carries into every ship built from it.
type Design struct {
	name       string
	hull       *catalog.Hull
	components []*catalog.Component
	cost       int
	metalCost  int
}

// NewDesign creates a design, rejecting layouts that do not fit the hull
func NewDesign(name string, hull *catalog.Hull, components []*catalog.Component, cost, metalCost int) (*Design, error) {
	if name == "" {
		return nil, shared.NewInvalidDesignError(name, "name cannot be empty")
	}
	if hull == nil {
		return nil, shared.NewInvalidDesignError(name, "hull is required")
	}
	if len(components) > hull.MaxSlot {
		return nil, shared.NewInvalidDesignError(name,
			fmt.Sprintf("%d components do not fit %d slots of %s", len(components), hull.MaxSlot, hull.Name))
	}
	for i, comp := range components {
		if comp == nil {
			return nil, shared.NewInvalidDesignError(name, fmt.Sprintf("slot %d is empty", i))
		}
	}
	if cost < 0 || metalCost < 0 {
		return nil, shared.NewInvalidDesignError(name, "costs cannot be negative")
	}

	comps := make([]*catalog.Component, len(components))
	copy(comps, components)

	return &Design{
		name:       name,
		hull:       hull,
		components: comps,
		cost:       cost,
		metalCost:  metalCost,
	}, nil
}

func (d *Design) Name() string {
	return d.name
}

func (d *Design) Hull() *catalog.Hull {
	return d.hull
}

// Components returns a copy of the ordered component list
func (d *Design) Components() []*catalog.Component {
	comps := make([]*catalog.Component, len(d.components))
	copy(comps, d.components)
	return comps
}

func (d *Design) Cost() int {
	return d.cost
}

func (d *Design) MetalCost() int {
	return d.metalCost
}

// TotalShield is the shield pool a fresh ship of this design starts with
func (d *Design) TotalShield() int {
	return sumDefense(d.components, catalog.ComponentShield)
}

// TotalArmor is the armor pool a fresh ship of this design starts with
func (d *Design) TotalArmor() int {
	return sumDefense(d.components, catalog.ComponentArmor)
}

func sumDefense(components []*catalog.Component, t catalog.ComponentType) int {
	total := 0
	for _, comp := range components {
		if comp.Type == t && comp.DefenseValue > 0 {
			total += comp.DefenseValue
		}
	}
	return total
}
