package ship

import (
	"math"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
)

// CargoType is what a ship is carrying, for display and planet interactions
type CargoType string

const (
	CargoNone       CargoType = "NONE"
	CargoTradeGoods CargoType = "TRADE_GOODS"
	CargoPopulation CargoType = "POPULATION"
	CargoMetal      CargoType = "METAL"
	CargoTroops     CargoType = "TROOPS"
)

const (
	maxTradeCreditPerSlot = 5
	maxTradeCredits       = 25
)

// TradePort is the planet side of a trade: where it is and who owns it.
// A zero Owner means the planet is unowned.
type TradePort struct {
	Coordinate shared.Coordinate
	Owner      shared.PlayerID
}

func (s *Ship) freeSlots() int {
	return s.hull.MaxSlot - len(s.components)
}

// FreeCargoMetal is the metal room left in a freighter's empty slots.
// Non-freighters carry nothing.
func (s *Ship) FreeCargoMetal() int {
	if s.hull.Type != catalog.HullTypeFreighter {
		return 0
	}
	free := s.freeSlots() - s.colonist/2 - s.metal/10 - s.colonist%2
	return free * 10
}

// FreeCargoColonists is the colonist room left in a freighter's empty slots.
// Non-freighters carry nothing.
func (s *Ship) FreeCargoColonists() int {
	if s.hull.Type != catalog.HullTypeFreighter {
		return 0
	}
	free := s.freeSlots() - s.colonist/2 - s.metal/10
	return free * 2
}

// IsTradeShip reports whether the ship is a freighter without colony or invasion modules
func (s *Ship) IsTradeShip() bool {
	return s.hull.Type == catalog.HullTypeFreighter && !s.IsColonyModule() && !s.IsTrooperModule()
}

// CargoType classifies the current load. Troops win over trade goods, trade
// goods over population, population over metal.
func (s *Ship) CargoType() CargoType {
	if s.colonist > 0 && s.IsTrooperModule() {
		return CargoTroops
	}
	if s.IsTradeShip() && (s.HasFlag(FlagMerchantLeftHomeworld) || s.HasFlag(FlagMerchantLeftOpponentWorld)) {
		return CargoTradeGoods
	}
	if s.colonist > 0 {
		return CargoPopulation
	}
	if s.metal > 0 {
		return CargoMetal
	}
	return CargoNone
}

// CalculateTradeCredits prices a trade run between two coordinates. Longer
// runs pay more per free slot, up to a fixed ceiling. No sanity checks are made.
func (s *Ship) CalculateTradeCredits(from, to shared.Coordinate) int {
	distance := int(math.Floor(from.DistanceTo(to) + 0.5))
	credit := distance / 10
	if credit < 1 && distance > 1 {
		credit = 1
	}
	credit = min(credit, maxTradeCreditPerSlot)
	return min(credit*s.freeSlots(), maxTradeCredits)
}

// DoTrade runs the merchant route state machine when a trade ship visits a
// port and returns the credits earned.
//
// The first visit only records the port and which side of the route the
// ship left from. A later visit to a different port pays for the run; when
// the ship crossed from its own world to an opponent's or back, the route
// flips direction and restarts from this port.
func (s *Ship) DoTrade(port TradePort, trader shared.PlayerID) int {
	if !s.IsTradeShip() || port.Owner.IsZero() {
		return 0
	}

	ownPort := port.Owner.Equals(trader)

	if s.tradeCoordinate == nil || s.tradeCoordinate.SameAs(port.Coordinate) {
		s.SetTradeCoordinate(&port.Coordinate)
		if ownPort {
			s.SetFlag(FlagMerchantLeftHomeworld, true)
		} else {
			s.SetFlag(FlagMerchantLeftOpponentWorld, true)
		}
		return 0
	}

	credit := s.CalculateTradeCredits(*s.tradeCoordinate, port.Coordinate)
	switch {
	case s.HasFlag(FlagMerchantLeftHomeworld) && !ownPort:
		s.SetFlag(FlagMerchantLeftOpponentWorld, true)
		s.SetTradeCoordinate(&port.Coordinate)
	case s.HasFlag(FlagMerchantLeftOpponentWorld) && ownPort:
		s.SetFlag(FlagMerchantLeftHomeworld, true)
		s.SetTradeCoordinate(&port.Coordinate)
	}
	return credit
}
