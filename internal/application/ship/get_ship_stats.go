package ship

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starship-engine/internal/application/mediator"
	"github.com/andrescamacho/starship-engine/internal/application/ship/dtos"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

// GetShipStatsQuery represents a query for a stored ship's derived statistics
type GetShipStatsQuery struct {
	ShipID string // Required
}

// GetShipStatsHandler handles the GetShipStats query
type GetShipStatsHandler struct {
	shipRepo ship.Repository
}

// NewGetShipStatsHandler creates a new GetShipStatsHandler
func NewGetShipStatsHandler(shipRepo ship.Repository) *GetShipStatsHandler {
	return &GetShipStatsHandler{shipRepo: shipRepo}
}

// Handle executes the GetShipStats query
func (h *GetShipStatsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetShipStatsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetShipStatsQuery")
	}

	if query.ShipID == "" {
		return nil, fmt.Errorf("ship_id is required")
	}

	fs, err := h.shipRepo.FindByID(ctx, query.ShipID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ship: %w", err)
	}

	return dtos.ToShipStatsDTO(fs), nil
}
