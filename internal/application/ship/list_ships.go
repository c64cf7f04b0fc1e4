package ship

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starship-engine/internal/application/mediator"
	"github.com/andrescamacho/starship-engine/internal/application/ship/dtos"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

// ListShipsQuery lists every ship of a player
type ListShipsQuery struct {
	Owner            int
	IncludeDestroyed bool
}

// ListShipsResponse holds one stats snapshot per ship
type ListShipsResponse struct {
	Ships []*dtos.ShipStatsDTO
}

// ListShipsHandler handles the ListShips query
type ListShipsHandler struct {
	shipRepo ship.Repository
}

// NewListShipsHandler creates a new ListShipsHandler
func NewListShipsHandler(shipRepo ship.Repository) *ListShipsHandler {
	return &ListShipsHandler{shipRepo: shipRepo}
}

// Handle executes the ListShips query
func (h *ListShipsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ListShipsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListShipsQuery")
	}

	owner, err := shared.NewPlayerID(query.Owner)
	if err != nil {
		return nil, fmt.Errorf("invalid owner: %w", err)
	}

	fleet, err := h.shipRepo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list ships: %w", err)
	}

	response := &ListShipsResponse{Ships: make([]*dtos.ShipStatsDTO, 0, len(fleet))}
	for _, fs := range fleet {
		if fs.Ship.IsDestroyed() && !query.IncludeDestroyed {
			continue
		}
		response.Ships = append(response.Ships, dtos.ToShipStatsDTO(fs))
	}
	return response, nil
}
