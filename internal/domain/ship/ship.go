package ship

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
)

// Flag is one bit of the ship's special flags
type Flag int

const (
	FlagStarbaseDeployed          Flag = 0x01
	FlagMerchantLeftHomeworld     Flag = 0x02
	FlagMerchantLeftOpponentWorld Flag = 0x04
)

// DamageLevel summarizes the worst slot damage on a ship
type DamageLevel string

const (
	DamageLevelIntact   DamageLevel = "INTACT"
	DamageLevelDamaged  DamageLevel = "DAMAGED"
	DamageLevelCritical DamageLevel = "CRITICAL"
)

// Ship is the mutable combat aggregate built on a hull.
//
// Invariants:
// - hullPoints is index-aligned with components
// - every hull point value is within [0, hull.SlotHull]
// - shield, armor and cargo counters are never negative
// - at most one merchant location flag is set
//
// Nothing derived is cached: every statistic is recomputed from the current
// components, hull points and energy state. A Ship is not safe for
// concurrent use; the combat coordinator serializes mutations.
type Ship struct {
	name            string
	hull            *catalog.Hull
	components      []*catalog.Component
	hullPoints      []int
	shield          int
	armor           int
	colonist        int
	metal           int
	experience      int
	culture         int
	specialFlags    Flag
	tradeCoordinate *shared.Coordinate
	productionCost  int
	metalCost       int
}

// NewShip builds a fresh ship from a design with every slot at full hull
// points and shield/armor pools at the design totals
func NewShip(design *Design) *Ship {
	comps := design.Components()
	hullPoints := make([]int, len(comps))
	for i := range hullPoints {
		hullPoints[i] = design.Hull().SlotHull
	}

	s := &Ship{
		name:           design.Name(),
		hull:           design.Hull(),
		components:     comps,
		hullPoints:     hullPoints,
		productionCost: design.Cost(),
		metalCost:      design.MetalCost(),
	}
	s.SetShield(design.TotalShield())
	s.SetArmor(design.TotalArmor())
	return s
}

func (s *Ship) Name() string {
	return s.name
}

func (s *Ship) SetName(name string) {
	s.name = name
}

func (s *Ship) Hull() *catalog.Hull {
	return s.hull
}

func (s *Ship) ProductionCost() int {
	return s.productionCost
}

func (s *Ship) MetalCost() int {
	return s.metalCost
}

// NumberOfComponents returns how many slots are filled
func (s *Ship) NumberOfComponents() int {
	return len(s.components)
}

// ComponentAt returns the component in a slot, or nil when the index is out of range
func (s *Ship) ComponentAt(index int) *catalog.Component {
	if !s.validIndex(index) {
		return nil
	}
	return s.components[index]
}

// Components returns a copy of the ordered component list
func (s *Ship) Components() []*catalog.Component {
	comps := make([]*catalog.Component, len(s.components))
	copy(comps, s.components)
	return comps
}

// HullPointsAt returns the hull points of a slot, or 0 when the index is out of range
func (s *Ship) HullPointsAt(index int) int {
	if !s.validIndex(index) {
		return 0
	}
	return s.hullPoints[index]
}

// SetHullPointsAt overwrites the hull points of a slot, clamped to [0, SlotHull].
// Out of range indices are ignored.
func (s *Ship) SetHullPointsAt(index, hp int) {
	if !s.validIndex(index) {
		return
	}
	s.hullPoints[index] = clamp(hp, 0, s.hull.SlotHull)
}

// HullPoints is the current structural total over all slots
func (s *Ship) HullPoints() int {
	total := 0
	for _, hp := range s.hullPoints {
		total += hp
	}
	return total
}

// MaxHullPoints is the structural total of the fitted slots when fully repaired
func (s *Ship) MaxHullPoints() int {
	return s.hull.SlotHull * len(s.hullPoints)
}

// IsDestroyed reports whether no slot has hull points left
func (s *Ship) IsDestroyed() bool {
	return s.HullPoints() == 0
}

func (s *Ship) Shield() int {
	return s.shield
}

// SetShield sets the shield pool; negative values become 0
func (s *Ship) SetShield(shield int) {
	s.shield = max(shield, 0)
}

func (s *Ship) Armor() int {
	return s.armor
}

// SetArmor sets the armor pool; negative values become 0
func (s *Ship) SetArmor(armor int) {
	s.armor = max(armor, 0)
}

func (s *Ship) Colonist() int {
	return s.colonist
}

func (s *Ship) SetColonist(colonist int) {
	s.colonist = max(colonist, 0)
}

func (s *Ship) Metal() int {
	return s.metal
}

func (s *Ship) SetMetal(metal int) {
	s.metal = max(metal, 0)
}

func (s *Ship) Experience() int {
	return s.experience
}

func (s *Ship) SetExperience(experience int) {
	s.experience = max(experience, 0)
}

func (s *Ship) Culture() int {
	return s.culture
}

func (s *Ship) SetCulture(culture int) {
	s.culture = max(culture, 0)
}

// Flags returns the raw special flag bits
func (s *Ship) Flags() Flag {
	return s.specialFlags
}

// HasFlag reports whether a special flag is set
func (s *Ship) HasFlag(flag Flag) bool {
	return s.specialFlags&flag != 0
}

// SetFlag sets or clears a special flag. Setting one merchant location flag
// clears the other.
func (s *Ship) SetFlag(flag Flag, value bool) {
	if !value {
		s.specialFlags &^= flag
		return
	}
	switch flag {
	case FlagMerchantLeftHomeworld:
		s.specialFlags &^= FlagMerchantLeftOpponentWorld
	case FlagMerchantLeftOpponentWorld:
		s.specialFlags &^= FlagMerchantLeftHomeworld
	}
	s.specialFlags |= flag
}

// TradeCoordinate returns the last trade endpoint, or nil when unset
func (s *Ship) TradeCoordinate() *shared.Coordinate {
	if s.tradeCoordinate == nil {
		return nil
	}
	c := *s.tradeCoordinate
	return &c
}

// SetTradeCoordinate sets the trade endpoint; nil clears it
func (s *Ship) SetTradeCoordinate(coordinate *shared.Coordinate) {
	if coordinate == nil {
		s.tradeCoordinate = nil
		return
	}
	c := *coordinate
	s.tradeCoordinate = &c
}

// IsStarbase reports whether the ship is built on a starbase hull
func (s *Ship) IsStarbase() bool {
	return s.hull.Type == catalog.HullTypeStarbase
}

// IsPrivateer reports whether the ship is built on a privateer hull
func (s *Ship) IsPrivateer() bool {
	return s.hull.Type == catalog.HullTypePrivateer
}

// IsColonyModule reports whether a colony module is installed, working or not
func (s *Ship) IsColonyModule() bool {
	return s.hasComponentType(catalog.ComponentColonyModule)
}

// IsTrooperModule reports whether a planetary invasion module is installed, working or not
func (s *Ship) IsTrooperModule() bool {
	return s.hasComponentType(catalog.ComponentPlanetaryInvasion)
}

// DamageLevel is CRITICAL when any slot is destroyed, DAMAGED when any slot
// is below capacity, INTACT otherwise
func (s *Ship) DamageLevel() DamageLevel {
	level := DamageLevelIntact
	for _, hp := range s.hullPoints {
		if hp == 0 {
			return DamageLevelCritical
		}
		if hp < s.hull.SlotHull {
			level = DamageLevelDamaged
		}
	}
	return level
}

// Description renders a multi-line summary of the ship
func (s *Ship) Description() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - %s\n", s.name, s.hull.Type)
	fmt.Fprintf(&sb, "Energy: %d Init.: %d\n", s.TotalEnergy(), s.Initiative())
	fmt.Fprintf(&sb, "Cost: %d Metal: %d\n", s.productionCost, s.metalCost)
	fmt.Fprintf(&sb, "Speed: %d FTL: %d Tactic: %d\n", s.Speed(), s.FtlSpeed(), s.TacticSpeed())
	fmt.Fprintf(&sb, "Shield: %d/%d Armor: %d/%d Hull Points: %d",
		s.shield, s.TotalShield(), s.armor, s.TotalArmor(), s.MaxHullPoints())
	if power := s.TotalMilitaryPower(); power > 0 {
		fmt.Fprintf(&sb, "\nMilitary power: %d", power)
		if s.experience > 0 {
			fmt.Fprintf(&sb, " Exp: %d", s.experience)
		}
	}
	fmt.Fprintf(&sb, "\nSlots: %d/%d", len(s.components), s.hull.MaxSlot)
	if s.hull.Type == catalog.HullTypeFreighter {
		fmt.Fprintf(&sb, "\nCargo: %d Units: %d", s.metal, s.colonist)
	}
	if s.IsTrooperShip() {
		fmt.Fprintf(&sb, "\nTroops power %d", s.TroopPower())
	}
	if bay := s.FighterBaySize(); bay > 0 {
		fmt.Fprintf(&sb, "\nFighter bays: %d", bay)
	}
	return sb.String()
}

func (s *Ship) validIndex(index int) bool {
	return index >= 0 && index < len(s.hullPoints)
}

func (s *Ship) hasComponentType(t catalog.ComponentType) bool {
	for _, comp := range s.components {
		if comp.Type == t {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
