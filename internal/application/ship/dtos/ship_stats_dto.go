package dtos

import (
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

// SlotDTO is one installed component with its current state
type SlotDTO struct {
	Component  string
	Type       string
	HullPoints int
	Working    bool
}

// ShipStatsDTO is a read-only snapshot of a ship's derived statistics.
// Used by queries and CLI output; never fed back into the domain.
type ShipStatsDTO struct {
	ID             string
	Owner          int
	Name           string
	Hull           string
	Race           string
	DamageLevel    string
	Slots          []SlotDTO
	HullPoints     int
	MaxHullPoints  int
	Shield         int
	Armor          int
	Speed          int
	TacticSpeed    int
	FtlSpeed       int
	Initiative     int
	MilitaryPower  int
	DefenseValue   int
	CloakingValue  int
	ScannerLevel   int
	ScannerDetect  int
	MinWeaponRange int
	MaxWeaponRange int
	TotalEnergy    int
	TroopPower     int
	EspionageBonus int
	FreeCargoMetal int
	FreeColonists  int
	CargoType      string
	IsSpyShip      bool
	IsColonyShip   bool
	IsTradeShip    bool
	ResearchBonus  int
	CreditBonus    int
	CultureBonus   int
	ProductionCost int
	MetalCost      int
}

// ToShipStatsDTO snapshots a stored ship
func ToShipStatsDTO(fs *ship.FleetShip) *ShipStatsDTO {
	dto := ToShipStatsDTOFromShip(fs.Ship)
	dto.ID = fs.ID
	dto.Owner = fs.Owner.Value()
	return dto
}

// ToShipStatsDTOFromShip snapshots a ship that is not stored anywhere
func ToShipStatsDTOFromShip(s *ship.Ship) *ShipStatsDTO {
	slots := make([]SlotDTO, s.NumberOfComponents())
	for i := range slots {
		comp := s.ComponentAt(i)
		slots[i] = SlotDTO{
			Component:  comp.Name,
			Type:       string(comp.Type),
			HullPoints: s.HullPointsAt(i),
			Working:    s.IsWorking(i),
		}
	}

	return &ShipStatsDTO{
		Name:           s.Name(),
		Hull:           s.Hull().Name,
		Race:           s.Hull().Race.Name,
		DamageLevel:    string(s.DamageLevel()),
		Slots:          slots,
		HullPoints:     s.HullPoints(),
		MaxHullPoints:  s.MaxHullPoints(),
		Shield:         s.Shield(),
		Armor:          s.Armor(),
		Speed:          s.Speed(),
		TacticSpeed:    s.TacticSpeed(),
		FtlSpeed:       s.FtlSpeed(),
		Initiative:     s.Initiative(),
		MilitaryPower:  s.TotalMilitaryPower(),
		DefenseValue:   s.DefenseValue(),
		CloakingValue:  s.CloakingValue(),
		ScannerLevel:   s.ScannerLevel(),
		ScannerDetect:  s.ScannerDetectionLevel(),
		MinWeaponRange: s.MinWeaponRange(),
		MaxWeaponRange: s.MaxWeaponRange(),
		TotalEnergy:    s.TotalEnergy(),
		TroopPower:     s.TroopPower(),
		EspionageBonus: s.EspionageBonus(),
		FreeCargoMetal: s.FreeCargoMetal(),
		FreeColonists:  s.FreeCargoColonists(),
		CargoType:      string(s.CargoType()),
		IsSpyShip:      s.IsSpyShip(),
		IsColonyShip:   s.IsColonyShip(),
		IsTradeShip:    s.IsTradeShip(),
		ResearchBonus:  s.TotalResearchBonus(),
		CreditBonus:    s.TotalCreditBonus(),
		CultureBonus:   s.TotalCultureBonus(),
		ProductionCost: s.ProductionCost(),
		MetalCost:      s.MetalCost(),
	}
}
