package shared

import (
	"fmt"
	"strconv"
)

// PlayerID identifies the owner of a ship or a planet.
// The zero value means "nobody owns it".
type PlayerID struct {
	value int
}

// NewPlayerID creates a new PlayerID value object
func NewPlayerID(id int) (PlayerID, error) {
	if id <= 0 {
		return PlayerID{}, fmt.Errorf("player_id must be positive")
	}
	return PlayerID{value: id}, nil
}

// MustNewPlayerID creates a new PlayerID value object, panicking if invalid.
// Only for ids coming from trusted storage or tests.
func MustNewPlayerID(id int) PlayerID {
	playerID, err := NewPlayerID(id)
	if err != nil {
		panic(err)
	}
	return playerID
}

// ParsePlayerID parses a decimal player id (CLI flags, env vars)
func ParsePlayerID(raw string) (PlayerID, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return PlayerID{}, NewValidationError("player_id", fmt.Sprintf("not a number: %q", raw))
	}
	return NewPlayerID(id)
}

func (p PlayerID) Value() int {
	return p.value
}

func (p PlayerID) String() string {
	return strconv.Itoa(p.value)
}

// Equals reports whether both ids name the same owner
func (p PlayerID) Equals(other PlayerID) bool {
	return p.value == other.value
}

// IsZero reports whether the id is unset
func (p PlayerID) IsZero() bool {
	return p.value == 0
}
