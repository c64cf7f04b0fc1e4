package shared

import (
	"fmt"
	"math/rand/v2"
)

// Dice is the only source of randomness in combat resolution.
// Intn returns a value in [0, n); n must be positive.
type Dice interface {
	Intn(n int) int
}

// SeededDice is a reproducible Dice backed by a PCG generator
type SeededDice struct {
	rng *rand.Rand
}

// NewSeededDice creates dice that replay the same rolls for the same seed
func NewSeededDice(seed uint64) *SeededDice {
	return &SeededDice{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (d *SeededDice) Intn(n int) int {
	return d.rng.IntN(n)
}

// MockDice replays a scripted sequence of rolls. Each scripted value is
// reduced modulo n so a script stays valid whatever range is asked for.
type MockDice struct {
	rolls []int
	next  int
	Calls int
}

// NewMockDice creates dice returning the given rolls in order, cycling at the end
func NewMockDice(rolls ...int) *MockDice {
	return &MockDice{rolls: rolls}
}

func (d *MockDice) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("dice: invalid range %d", n))
	}
	d.Calls++
	if len(d.rolls) == 0 {
		return 0
	}
	roll := d.rolls[d.next%len(d.rolls)]
	d.next++
	if roll < 0 {
		roll = -roll
	}
	return roll % n
}
