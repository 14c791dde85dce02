package generation

import (
	"math/rand"

	"floormaker/components"
)

// Direction is one of the four cardinal facings
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Delta returns the grid offset of one step in this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// randomDirection picks one of the four directions
func randomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(4))
}

// Step proposes a walker's next cell. With turnProb percent chance the facing
// changes to one of the three directions that are not a reversal of facing;
// the returned position is one cell ahead in the resulting facing.
func Step(current components.Point, facing Direction, turnProb int, rng *rand.Rand) (components.Point, Direction) {
	if rng.Intn(100) < turnProb {
		// Offsets 3, 0 and 1 from facing skip facing+2, the reversal
		facing = (facing + Direction(3+rng.Intn(3))) % 4
	}
	dx, dy := facing.Delta()
	return current.Add(dx, dy), facing
}

// FloorMaker is a walker carving floor as it moves
type FloorMaker struct {
	Position  components.Point
	Direction Direction
	Alive     bool
}

// NewFloorMaker creates a live walker
func NewFloorMaker(position components.Point, direction Direction) FloorMaker {
	return FloorMaker{
		Position:  position,
		Direction: direction,
		Alive:     true,
	}
}

// Advance steps a live walker; dead walkers stay where they are
func (f *FloorMaker) Advance(turnProb int, rng *rand.Rand) {
	if !f.Alive {
		return
	}
	f.Position, f.Direction = Step(f.Position, f.Direction, turnProb, rng)
}

// Kill marks the walker dead. Dead walkers are never revived.
func (f *FloorMaker) Kill() {
	f.Alive = false
}
