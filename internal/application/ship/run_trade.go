package ship

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starship-engine/internal/application/common"
	"github.com/andrescamacho/starship-engine/internal/application/mediator"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

// RunTradeCommand docks a trade ship at a planet and collects the route credits
type RunTradeCommand struct {
	ShipID    string
	PortX     int
	PortY     int
	PortOwner int // 0 for an unowned planet
}

// RunTradeResponse reports the credits earned and the route anchor after the visit
type RunTradeResponse struct {
	ShipID          string
	Credits         int
	TradeCoordinate *shared.Coordinate
	LeftHomeworld   bool
}

// RunTradeHandler handles the RunTrade command
type RunTradeHandler struct {
	shipRepo ship.Repository
}

// NewRunTradeHandler creates a new RunTradeHandler
func NewRunTradeHandler(shipRepo ship.Repository) *RunTradeHandler {
	return &RunTradeHandler{shipRepo: shipRepo}
}

// Handle executes the RunTrade command
func (h *RunTradeHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RunTradeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RunTradeCommand")
	}

	fs, err := h.shipRepo.FindByID(ctx, cmd.ShipID)
	if err != nil {
		return nil, fmt.Errorf("ship not found: %w", err)
	}

	port := ship.TradePort{Coordinate: shared.NewCoordinate(cmd.PortX, cmd.PortY)}
	if cmd.PortOwner != 0 {
		portOwner, err := shared.NewPlayerID(cmd.PortOwner)
		if err != nil {
			return nil, fmt.Errorf("invalid port owner: %w", err)
		}
		port.Owner = portOwner
	}

	credits := fs.Ship.DoTrade(port, fs.Owner)
	if err := h.shipRepo.Save(ctx, fs); err != nil {
		return nil, fmt.Errorf("failed to save ship: %w", err)
	}

	if credits > 0 {
		common.LoggerFromContext(ctx).Log("INFO", fmt.Sprintf("[Trade] %s earned %d credits at %s", fs.ID, credits, port.Coordinate), nil)
	}

	return &RunTradeResponse{
		ShipID:          fs.ID,
		Credits:         credits,
		TradeCoordinate: fs.Ship.TradeCoordinate(),
		LeftHomeworld:   fs.Ship.HasFlag(ship.FlagMerchantLeftHomeworld),
	}, nil
}
