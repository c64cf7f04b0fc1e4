package ship

import (
	"math"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
)

// UnlimitedWeaponRange is returned by MinWeaponRange when no weapon is fitted
const UnlimitedWeaponRange = 999

var initiativeByHullSize = map[catalog.HullSize]int{
	catalog.HullSizeSmall:  12,
	catalog.HullSizeMedium: 8,
	catalog.HullSizeLarge:  4,
	catalog.HullSizeHuge:   0,
}

var defenseByHullSize = map[catalog.HullSize]int{
	catalog.HullSizeSmall:  10,
	catalog.HullSizeMedium: 5,
	catalog.HullSizeLarge:  0,
	catalog.HullSizeHuge:   -5,
}

// emptySlotInitiative steps the initiative bonus by free slot count
func emptySlotInitiative(emptySlots int) int {
	switch {
	case emptySlots == 0 || emptySlots == 1:
		return 0
	case emptySlots == 2 || emptySlots == 3:
		return 1
	case emptySlots == 4:
		return 2
	case emptySlots == 5:
		return 3
	case emptySlots >= 6 && emptySlots <= 11:
		return 4
	default:
		return 0
	}
}

// Speed is the best map speed among working engines
func (s *Ship) Speed() int {
	speed := 0
	s.workingOf(catalog.ComponentEngine, func(_ int, comp *catalog.Component) {
		speed = max(speed, comp.Speed)
	})
	return speed
}

// TacticSpeed is the best combat speed among working engines, +1 when
// working thrusters are fitted and the engines move the ship at all
func (s *Ship) TacticSpeed() int {
	speed := 0
	s.workingOf(catalog.ComponentEngine, func(_ int, comp *catalog.Component) {
		speed = max(speed, comp.TacticSpeed)
	})
	if speed > 0 && s.firstWorking(catalog.ComponentThrusters) >= 0 {
		speed++
	}
	return speed
}

// FtlSpeed is the best FTL speed among working engines. Probe hulls get +1
// even without an engine.
func (s *Ship) FtlSpeed() int {
	speed := 0
	s.workingOf(catalog.ComponentEngine, func(_ int, comp *catalog.Component) {
		speed = max(speed, comp.FtlSpeed)
	})
	if s.hull.Type == catalog.HullTypeProbe {
		speed++
	}
	return speed
}

// Initiative decides combat turn order
func (s *Ship) Initiative() int {
	initiative := initiativeByHullSize[s.hull.Size]

	speed, tactic, boost := 0, 0, 0
	for i, comp := range s.components {
		if !s.IsWorking(i) {
			continue
		}
		if comp.Type == catalog.ComponentEngine {
			speed = max(speed, comp.Speed)
			tactic = max(tactic, comp.TacticSpeed)
		}
		if comp.InitiativeBoost > 0 {
			boost += comp.InitiativeBoost
		}
	}
	initiative += speed + tactic + boost

	return initiative + emptySlotInitiative(s.hull.MaxSlot-len(s.components))
}

// TotalMilitaryPower scores the combat strength of the ship. Ships without a
// working direct-fire weapon and undeployed starbases score 0.
func (s *Ship) TotalMilitaryPower() int {
	power := float64(s.hull.SlotHull * s.hull.MaxSlot)
	military := false

	for i, comp := range s.components {
		working := s.IsWorking(i)
		switch comp.Type {
		case catalog.ComponentWeaponBeam, catalog.ComponentWeaponRailgun,
			catalog.ComponentWeaponHEMissile, catalog.ComponentWeaponPhotonTorpedo,
			catalog.ComponentPlasmaBeam:
			if working {
				military = true
				power += float64(comp.Damage)
			}
		case catalog.ComponentWeaponECMTorpedo:
			if working {
				power += float64(comp.Damage) / 2.0
			}
		case catalog.ComponentArmor, catalog.ComponentShield:
			power += float64(comp.DefenseValue)
		case catalog.ComponentEngine:
			if working && !s.IsStarbase() {
				power += float64(comp.TacticSpeed - 1)
			}
		case catalog.ComponentTargetingComputer:
			if working {
				power += float64(comp.Damage) / 10.0
			}
		case catalog.ComponentJammer:
			if working {
				power += float64(comp.DefenseValue) / 10.0
			}
		case catalog.ComponentFighterBay:
			if working {
				power += float64(comp.BaySize)
			}
		}
	}

	if s.IsStarbase() && !s.HasFlag(FlagStarbaseDeployed) {
		return 0
	}
	if !military {
		return 0
	}
	return int(math.Floor(power + 0.5))
}

// DefenseValue is how hard the ship is to hit
func (s *Ship) DefenseValue() int {
	defense := defenseByHullSize[s.hull.Size]
	s.workingOf(catalog.ComponentJammer, func(_ int, comp *catalog.Component) {
		defense += comp.DefenseValue
	})
	if s.TacticSpeed() == 0 {
		defense -= 15
	}
	cloak := false
	s.workingOf(catalog.ComponentCloakingDevice, func(_ int, comp *catalog.Component) {
		if comp.Cloaking > 0 {
			cloak = true
		}
	})
	if cloak {
		defense += 5
	}
	if s.firstWorking(catalog.ComponentThrusters) >= 0 {
		defense += 5
	}
	return defense
}

// CloakingValue is the best working cloak plus the hull race's cloak bonus
func (s *Ship) CloakingValue() int {
	cloak := 0
	s.workingOf(catalog.ComponentCloakingDevice, func(_ int, comp *catalog.Component) {
		cloak = max(cloak, comp.Cloaking)
	})
	return cloak + s.hull.Race.CloakBonus
}

// ScannerLevel is the best working scanner range
func (s *Ship) ScannerLevel() int {
	level := 0
	s.workingOf(catalog.ComponentScanner, func(_ int, comp *catalog.Component) {
		level = max(level, comp.ScannerRange)
	})
	return level
}

// ScannerDetectionLevel is the best working cloak detection
func (s *Ship) ScannerDetectionLevel() int {
	level := 0
	s.workingOf(catalog.ComponentScanner, func(_ int, comp *catalog.Component) {
		level = max(level, comp.CloakDetection)
	})
	return level
}

// HitChance is the weapon's own accuracy improved by working targeting computers
func (s *Ship) HitChance(weapon *catalog.Component) int {
	accuracy := weapon.HitChance
	s.workingOf(catalog.ComponentTargetingComputer, func(_ int, comp *catalog.Component) {
		accuracy += comp.Damage
	})
	return accuracy
}

// FighterBaySize sums the bay size of working fighter bays
func (s *Ship) FighterBaySize() int {
	size := 0
	s.workingOf(catalog.ComponentFighterBay, func(_ int, comp *catalog.Component) {
		size += comp.BaySize
	})
	return size
}

// HasWeapons reports whether any direct-fire weapon is working
func (s *Ship) HasWeapons() bool {
	for i, comp := range s.components {
		if comp.IsWeapon() && s.IsWorking(i) {
			return true
		}
	}
	return false
}

// HasBombs reports whether any orbital bomb or nuke is working
func (s *Ship) HasBombs() bool {
	for i, comp := range s.components {
		if comp.IsBomb() && s.IsWorking(i) {
			return true
		}
	}
	return false
}

// WeaponRange is the range of a weapon fired from this ship. Starbases fire
// one step further once deployed and not at all before that.
func (s *Ship) WeaponRange(weapon *catalog.Component) int {
	if weapon == nil || !weapon.IsWeapon() {
		return 0
	}
	weaponRange := weapon.WeaponRange
	if s.IsStarbase() {
		if !s.HasFlag(FlagStarbaseDeployed) {
			return 0
		}
		weaponRange++
	}
	return weaponRange
}

// MinWeaponRange is the shortest range among fitted weapons, UnlimitedWeaponRange when none
func (s *Ship) MinWeaponRange() int {
	shortest := UnlimitedWeaponRange
	for _, comp := range s.components {
		if comp.IsWeapon() {
			shortest = min(shortest, s.WeaponRange(comp))
		}
	}
	return shortest
}

// MaxWeaponRange is the longest range among fitted weapons
func (s *Ship) MaxWeaponRange() int {
	longest := 0
	for _, comp := range s.components {
		longest = max(longest, s.WeaponRange(comp))
	}
	return longest
}

// TotalShield is the maximum shield pool: the defense of every shield
// component, working or not
func (s *Ship) TotalShield() int {
	return sumDefense(s.components, catalog.ComponentShield)
}

// TotalArmor is the maximum armor pool: the defense of every armor
// component, working or not
func (s *Ship) TotalArmor() int {
	return sumDefense(s.components, catalog.ComponentArmor)
}

// TroopPower is the invasion strength of the carried colonists. It is 0
// unless a working invasion module is fitted.
func (s *Ship) TroopPower() int {
	if s.colonist <= 0 {
		return 0
	}
	multiply := 100
	found := false
	s.workingOf(catalog.ComponentPlanetaryInvasion, func(_ int, comp *catalog.Component) {
		if comp.Damage > 0 {
			multiply += comp.Damage
			found = true
		}
	})
	if !found {
		return 0
	}
	return s.colonist * s.hull.Race.TrooperPower * multiply / 100
}

// EspionageBonus comes from the first working espionage module only
func (s *Ship) EspionageBonus() int {
	if i := s.firstWorking(catalog.ComponentEspionageModule); i >= 0 {
		return s.components[i].EspionageBonus
	}
	return 0
}

// IsSpyShip reports whether the ship is an unarmed espionage platform on a
// spy-capable hull
func (s *Ship) IsSpyShip() bool {
	return s.hull.SpyCapable && s.EspionageBonus() > 0 && s.TotalMilitaryPower() == 0
}

// IsColonyShip reports whether a colony module is working
func (s *Ship) IsColonyShip() bool {
	return s.firstWorking(catalog.ComponentColonyModule) >= 0
}

// IsTrooperShip reports whether troops are aboard and an invasion module is working
func (s *Ship) IsTrooperShip() bool {
	return s.colonist > 0 && s.firstWorking(catalog.ComponentPlanetaryInvasion) >= 0
}

// TotalResearchBonus sums working starbase research modules. Deployment is not checked.
func (s *Ship) TotalResearchBonus() int {
	total := 0
	s.workingOf(catalog.ComponentStarbaseComponent, func(_ int, comp *catalog.Component) {
		total += comp.ResearchBonus
	})
	return total
}

// TotalCreditBonus sums working starbase credit modules. Deployment is not checked.
func (s *Ship) TotalCreditBonus() int {
	total := 0
	s.workingOf(catalog.ComponentStarbaseComponent, func(_ int, comp *catalog.Component) {
		total += comp.CreditBonus
	})
	return total
}

// TotalCultureBonus sums working starbase culture modules. Deployment is not checked.
func (s *Ship) TotalCultureBonus() int {
	total := 0
	s.workingOf(catalog.ComponentStarbaseComponent, func(_ int, comp *catalog.Component) {
		total += comp.CultureBonus
	})
	return total
}
