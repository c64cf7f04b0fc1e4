package helpers

import (
	"context"
	"fmt"
	"sort"

	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

// MockShipRepository is an in-memory implementation of ship.Repository for testing
type MockShipRepository struct {
	Ships     map[string]*ship.FleetShip // key: ship id
	SaveCalls int
	SaveErr   error
}

// NewMockShipRepository creates a new mock ship repository
func NewMockShipRepository(ships ...*ship.FleetShip) *MockShipRepository {
	m := &MockShipRepository{Ships: make(map[string]*ship.FleetShip)}
	for _, fs := range ships {
		m.Ships[fs.ID] = fs
	}
	return m
}

// Save stores the ship
func (m *MockShipRepository) Save(ctx context.Context, fs *ship.FleetShip) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Ships[fs.ID] = fs
	return nil
}

// FindByID retrieves a ship by id
func (m *MockShipRepository) FindByID(ctx context.Context, id string) (*ship.FleetShip, error) {
	fs, exists := m.Ships[id]
	if !exists {
		return nil, fmt.Errorf("ship not found: %s", id)
	}
	return fs, nil
}

// FindByOwner retrieves a player's ships ordered by id
func (m *MockShipRepository) FindByOwner(ctx context.Context, owner shared.PlayerID) ([]*ship.FleetShip, error) {
	var owned []*ship.FleetShip
	for _, fs := range m.Ships {
		if fs.Owner.Equals(owner) {
			owned = append(owned, fs)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })
	return owned, nil
}

// Delete removes a ship
func (m *MockShipRepository) Delete(ctx context.Context, id string) error {
	delete(m.Ships, id)
	return nil
}
