package persistence

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

// GormShipRepository implements ship.Repository using GORM.
// Ships are stored in the save-file encoding and decoded against the catalog.
type GormShipRepository struct {
	db      *gorm.DB
	catalog *catalog.Catalog
	clock   shared.Clock
}

// NewGormShipRepository creates a new GORM ship repository
// If clock is nil, uses RealClock (production behavior)
func NewGormShipRepository(db *gorm.DB, cat *catalog.Catalog, clock shared.Clock) *GormShipRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormShipRepository{db: db, catalog: cat, clock: clock}
}

// Save creates or replaces a ship
func (r *GormShipRepository) Save(ctx context.Context, fs *ship.FleetShip) error {
	model, err := r.shipToModel(fs)
	if err != nil {
		return fmt.Errorf("failed to convert ship to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save ship: %w", err)
	}
	return nil
}

// FindByID retrieves a ship by ID
func (r *GormShipRepository) FindByID(ctx context.Context, id string) (*ship.FleetShip, error) {
	var model ShipModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ship not found: %s", id)
		}
		return nil, fmt.Errorf("failed to find ship: %w", result.Error)
	}

	return r.modelToShip(&model)
}

// FindByOwner retrieves every ship of a player ordered by ID
func (r *GormShipRepository) FindByOwner(ctx context.Context, owner shared.PlayerID) ([]*ship.FleetShip, error) {
	var models []ShipModel
	result := r.db.WithContext(ctx).
		Where("player_id = ?", owner.Value()).
		Order("id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list ships: %w", result.Error)
	}

	ships := make([]*ship.FleetShip, 0, len(models))
	for i := range models {
		fs, err := r.modelToShip(&models[i])
		if err != nil {
			return nil, err
		}
		ships = append(ships, fs)
	}
	return ships, nil
}

// Delete removes a ship; deleting a missing ship is not an error
func (r *GormShipRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ShipModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ship: %w", err)
	}
	return nil
}

func (r *GormShipRepository) shipToModel(fs *ship.FleetShip) (*ShipModel, error) {
	if fs == nil || fs.Ship == nil {
		return nil, fmt.Errorf("ship is required")
	}
	if fs.ID == "" {
		return nil, fmt.Errorf("ship id is required")
	}

	var payload bytes.Buffer
	if err := fs.Ship.Encode(&payload); err != nil {
		return nil, err
	}

	return &ShipModel{
		ID:            fs.ID,
		PlayerID:      fs.Owner.Value(),
		Name:          fs.Ship.Name(),
		HullName:      fs.Ship.Hull().Name,
		Payload:       payload.Bytes(),
		MilitaryPower: fs.Ship.TotalMilitaryPower(),
		HullPoints:    fs.Ship.HullPoints(),
		Destroyed:     fs.Ship.IsDestroyed(),
		UpdatedAt:     r.clock.Now(),
	}, nil
}

func (r *GormShipRepository) modelToShip(model *ShipModel) (*ship.FleetShip, error) {
	s, err := ship.Decode(bytes.NewReader(model.Payload), r.catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ship %s: %w", model.ID, err)
	}

	owner, err := shared.NewPlayerID(model.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("ship %s: %w", model.ID, err)
	}

	return &ship.FleetShip{ID: model.ID, Owner: owner, Ship: s}, nil
}
