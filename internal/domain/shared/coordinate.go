package shared

import (
	"fmt"
	"math"
)

// Coordinate is an immutable star map position
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewCoordinate creates a coordinate value object
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// DistanceTo calculates Euclidean distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	dx := float64(other.X - c.X)
	dy := float64(other.Y - c.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// SameAs checks whether both coordinates point at the same sector
func (c Coordinate) SameAs(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
