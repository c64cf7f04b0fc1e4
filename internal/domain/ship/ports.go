package ship

import (
	"context"

	"github.com/andrescamacho/starship-engine/internal/domain/shared"
)

// FleetShip is a ship with its persistent identity and owner
type FleetShip struct {
	ID    string
	Owner shared.PlayerID
	Ship  *Ship
}

// Repository defines ship persistence operations
type Repository interface {
	// Save creates or replaces the stored ship
	Save(ctx context.Context, ship *FleetShip) error

	// FindByID retrieves a ship; the catalog resolves its archetypes
	FindByID(ctx context.Context, id string) (*FleetShip, error)

	// FindByOwner retrieves every ship a player owns, destroyed ones included
	FindByOwner(ctx context.Context, owner shared.PlayerID) ([]*FleetShip, error)

	// Delete removes a ship
	Delete(ctx context.Context, id string) error
}
