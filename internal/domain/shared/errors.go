package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Ship-related errors

type ShipError struct {
	*DomainError
}

func NewShipError(message string) *ShipError {
	return &ShipError{DomainError: &DomainError{Message: message}}
}

type InvalidShipDataError struct {
	*ShipError
}

func NewInvalidShipDataError(message string) *InvalidShipDataError {
	return &InvalidShipDataError{ShipError: NewShipError(message)}
}

// InvalidDesignError is returned when a design does not fit its hull
type InvalidDesignError struct {
	*ShipError
	DesignName string
}

func NewInvalidDesignError(designName, message string) *InvalidDesignError {
	return &InvalidDesignError{
		ShipError:  NewShipError(fmt.Sprintf("invalid design %s: %s", designName, message)),
		DesignName: designName,
	}
}

// WeaponNotReadyError is returned when a combatant tries to fire a slot that is
// not a working weapon
type WeaponNotReadyError struct {
	*ShipError
	ShipName  string
	SlotIndex int
}

func NewWeaponNotReadyError(shipName string, slotIndex int) *WeaponNotReadyError {
	return &WeaponNotReadyError{
		ShipError: NewShipError(fmt.Sprintf("slot %d of %s is not a working weapon", slotIndex, shipName)),
		ShipName:  shipName,
		SlotIndex: slotIndex,
	}
}

// Catalog errors

// UnknownArchetypeError is returned when a hull, component or race lookup misses
type UnknownArchetypeError struct {
	*DomainError
	Kind string
	Name string
}

func NewUnknownArchetypeError(kind, name string) *UnknownArchetypeError {
	return &UnknownArchetypeError{
		DomainError: NewDomainError(fmt.Sprintf("unknown %s: %s", kind, name)),
		Kind:        kind,
		Name:        name,
	}
}

// Save data errors

// CorruptSaveDataError aborts a load. Nothing is substituted for the missing data.
type CorruptSaveDataError struct {
	*DomainError
	Err error
}

func NewCorruptSaveDataError(reason string, err error) *CorruptSaveDataError {
	message := "corrupt save data: " + reason
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	return &CorruptSaveDataError{
		DomainError: NewDomainError(message),
		Err:         err,
	}
}

func (e *CorruptSaveDataError) Unwrap() error {
	return e.Err
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
