package ship

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starship-engine/internal/adapters/metrics"
	"github.com/andrescamacho/starship-engine/internal/application/common"
	"github.com/andrescamacho/starship-engine/internal/application/mediator"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

// RepairShipCommand repairs a stored ship by one step, or completely when Full is set
type RepairShipCommand struct {
	ShipID string
	Full   bool
}

// RepairShipResponse reports the hull points before and after the repair
type RepairShipResponse struct {
	ShipID        string
	HullPoints    int
	MaxHullPoints int
	Restored      int
	Shield        int
	Armor         int
}

// RepairShipHandler handles the RepairShip command
type RepairShipHandler struct {
	shipRepo ship.Repository
}

// NewRepairShipHandler creates a new RepairShipHandler
func NewRepairShipHandler(shipRepo ship.Repository) *RepairShipHandler {
	return &RepairShipHandler{shipRepo: shipRepo}
}

// Handle executes the RepairShip command
func (h *RepairShipHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RepairShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RepairShipCommand")
	}

	fs, err := h.shipRepo.FindByID(ctx, cmd.ShipID)
	if err != nil {
		return nil, fmt.Errorf("ship not found: %w", err)
	}

	before := fs.Ship.HullPoints()
	fs.Ship.FixShip(cmd.Full)
	restored := fs.Ship.HullPoints() - before

	if err := h.shipRepo.Save(ctx, fs); err != nil {
		return nil, fmt.Errorf("failed to save ship: %w", err)
	}

	metrics.RecordRepair(cmd.Full, restored)
	common.LoggerFromContext(ctx).Log("INFO", fmt.Sprintf("[Repair] %s restored %d hull points", fs.ID, restored), map[string]interface{}{
		"ship_id": fs.ID,
		"full":    cmd.Full,
	})

	return &RepairShipResponse{
		ShipID:        fs.ID,
		HullPoints:    fs.Ship.HullPoints(),
		MaxHullPoints: fs.Ship.MaxHullPoints(),
		Restored:      restored,
		Shield:        fs.Ship.Shield(),
		Armor:         fs.Ship.Armor(),
	}, nil
}
