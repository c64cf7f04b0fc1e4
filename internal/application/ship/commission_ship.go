package ship

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starship-engine/internal/adapters/metrics"
	"github.com/andrescamacho/starship-engine/internal/application/common"
	"github.com/andrescamacho/starship-engine/internal/application/mediator"
	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
	"github.com/andrescamacho/starship-engine/pkg/utils"
)

// CommissionShipCommand builds a new ship from catalog archetypes
type CommissionShipCommand struct {
	Owner          int      // Required: owning player
	Name           string   // Required: design name shown in reports
	HullName       string   // Required: hull template
	RaceIndex      int      // Race whose hull variant is used
	Components     []string // Component archetypes in slot order
	ProductionCost int
	MetalCost      int
}

// CommissionShipResponse carries the stored ship
type CommissionShipResponse struct {
	ShipID string
	Ship   *ship.FleetShip
}

// CommissionShipHandler handles the CommissionShip command
type CommissionShipHandler struct {
	shipRepo ship.Repository
	catalog  *catalog.Catalog
}

// NewCommissionShipHandler creates a new CommissionShipHandler
func NewCommissionShipHandler(shipRepo ship.Repository, cat *catalog.Catalog) *CommissionShipHandler {
	return &CommissionShipHandler{
		shipRepo: shipRepo,
		catalog:  cat,
	}
}

// Handle executes the CommissionShip command
func (h *CommissionShipHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*CommissionShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CommissionShipCommand")
	}

	owner, err := shared.NewPlayerID(cmd.Owner)
	if err != nil {
		return nil, fmt.Errorf("invalid owner: %w", err)
	}

	hull, err := h.catalog.HullByName(cmd.HullName, cmd.RaceIndex)
	if err != nil {
		return nil, err
	}
	components, err := h.catalog.ComponentsByName(cmd.Components)
	if err != nil {
		return nil, err
	}

	design, err := ship.NewDesign(cmd.Name, hull, components, cmd.ProductionCost, cmd.MetalCost)
	if err != nil {
		return nil, err
	}

	fs := &ship.FleetShip{
		ID:    utils.GenerateShipID(hull.Name),
		Owner: owner,
		Ship:  ship.NewShip(design),
	}
	if err := h.shipRepo.Save(ctx, fs); err != nil {
		return nil, fmt.Errorf("failed to save ship: %w", err)
	}

	metrics.RecordShipCommissioned(owner.Value(), hull.Name)
	common.LoggerFromContext(ctx).Log("INFO", fmt.Sprintf("[Shipyard] Commissioned %s (%s) for player %d", fs.ID, hull.Name, owner.Value()), map[string]interface{}{
		"ship_id":    fs.ID,
		"components": len(components),
		"race":       hull.Race.Name,
	})

	return &CommissionShipResponse{ShipID: fs.ID, Ship: fs}, nil
}
