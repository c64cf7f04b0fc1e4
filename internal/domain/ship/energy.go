package ship

import "github.com/andrescamacho/starship-engine/internal/domain/catalog"

// TotalEnergy is the energy produced by every slot with hull points left.
// Slot order does not matter here.
func (s *Ship) TotalEnergy() int {
	energy := 0
	for i, comp := range s.components {
		if s.hullPoints[i] > 0 && comp.EnergyResource > 0 {
			energy += comp.EnergyResource
		}
	}
	return energy
}

// RemainingEnergy is the budget left after powering every live consumer up to
// and including the given slot. Earlier slots have priority, so a consumer
// late in the list starves even when a different order would power it.
func (s *Ship) RemainingEnergy(index int) int {
	if !s.validIndex(index) {
		return 0
	}
	energy := s.TotalEnergy()
	for i := 0; i <= index; i++ {
		if s.hullPoints[i] > 0 && s.components[i].RequiresEnergy() {
			energy -= s.components[i].EnergyRequirement
		}
	}
	return energy
}

// HasEnergy reports whether a slot is powered, ignoring its hull points
func (s *Ship) HasEnergy(index int) bool {
	if !s.validIndex(index) {
		return false
	}
	return !s.components[index].RequiresEnergy() || s.RemainingEnergy(index) >= 0
}

// IsWorking reports whether a slot has hull points left and is powered.
// Out of range indices are never working.
func (s *Ship) IsWorking(index int) bool {
	return s.HullPointsAt(index) > 0 && s.HasEnergy(index)
}

// workingOf calls fn for every working slot holding a component of type t, in slot order
func (s *Ship) workingOf(t catalog.ComponentType, fn func(index int, comp *catalog.Component)) {
	for i, comp := range s.components {
		if comp.Type == t && s.IsWorking(i) {
			fn(i, comp)
		}
	}
}

// firstWorking returns the first working slot of type t, or -1
func (s *Ship) firstWorking(t catalog.ComponentType) int {
	for i, comp := range s.components {
		if comp.Type == t && s.IsWorking(i) {
			return i
		}
	}
	return -1
}
