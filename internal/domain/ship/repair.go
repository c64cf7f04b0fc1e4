package ship

import "github.com/andrescamacho/starship-engine/internal/domain/catalog"

// FixShip repairs hull points between engagements. A full fix restores every
// slot; otherwise the first damaged slot in component order gains one point.
// Shield and armor pools are re-initialized either way.
func (s *Ship) FixShip(full bool) {
	capacity := s.hull.SlotHull
	if full {
		for i := range s.hullPoints {
			s.hullPoints[i] = capacity
		}
	} else {
		for i, hp := range s.hullPoints {
			if hp < capacity {
				s.hullPoints[i] = hp + 1
				break
			}
		}
	}
	s.InitializeShieldAndArmor()
}

// InitializeShieldAndArmor resets both pools to the defense of the working
// shield and armor components. Call it before combat, after combat and after repairs.
func (s *Ship) InitializeShieldAndArmor() {
	shield, armor := 0, 0
	for i, comp := range s.components {
		if comp.DefenseValue <= 0 || !s.IsWorking(i) {
			continue
		}
		switch comp.Type {
		case catalog.ComponentArmor:
			armor += comp.DefenseValue
		case catalog.ComponentShield:
			shield += comp.DefenseValue
		}
	}
	s.SetArmor(armor)
	s.SetShield(shield)
}

// RegenerateShield runs once per combat round. Walking slots in order, the
// first working shield adds a point and the first working generator adds its
// full defense, neither going past TotalShield. Without a working shield
// component the pool collapses to 0.
func (s *Ship) RegenerateShield() {
	maxShield := s.TotalShield()
	shieldUp, generatorUp := false, false

	for i, comp := range s.components {
		switch {
		case comp.Type == catalog.ComponentShield && !shieldUp && s.IsWorking(i):
			shieldUp = true
			if s.shield < maxShield {
				s.shield++
			}
		case comp.Type == catalog.ComponentShieldGenerator && !generatorUp && s.IsWorking(i):
			generatorUp = true
			if s.shield+comp.DefenseValue <= maxShield {
				s.shield += comp.DefenseValue
			}
		}
	}

	if !shieldUp {
		s.shield = 0
	}
}
