package generation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned before any grid is allocated when a configuration value is out of range
	ErrInvalidConfig = errors.New("invalid generation config")
	// ErrDegenerateMap is reported when spawn and exit coincide because at most one cell was carved
	ErrDegenerateMap = errors.New("degenerate map: spawn and exit coincide")
)

// Size is a width and height in cells
type Size struct {
	Width, Height int
}

// Cells returns Width * Height
func (s Size) Cells() int {
	return s.Width * s.Height
}

// Configuration holds every tunable of a generation run. It is copied into the
// generator and never changes while a run is in progress.
//
// Probabilities are whole percentages in [0, 100].
type Configuration struct {
	GridSize                   Size // Grid dimensions, both at least 1
	MaxFloorCount              int  // Target number of carved cells
	TurnProbability            int  // Chance a walker changes facing on a step
	FloorMakerSpawnProbability int  // Chance a step spawns a new walker
	MaxFloorMakerCount         int  // Upper bound on live walkers
	RoomProbability            int  // Chance a step stamps a room instead of a single cell
	RoomMinSize                Size // Inclusive lower bound on room dimensions
	RoomMaxSize                Size // Inclusive upper bound on room dimensions
}

// DefaultConfiguration returns the stock tuning for a grid of the given size.
// The floor target is capped at the number of grid cells.
func DefaultConfiguration(width, height int) Configuration {
	return Configuration{
		GridSize:                   Size{Width: width, Height: height},
		MaxFloorCount:              min(110, max(1, width*height)),
		TurnProbability:            20,
		FloorMakerSpawnProbability: 25,
		MaxFloorMakerCount:         5,
		RoomProbability:            20,
		RoomMinSize:                Size{Width: 2, Height: 2},
		RoomMaxSize:                Size{Width: 6, Height: 6},
	}
}

// Validate checks every field against its documented range
func (c Configuration) Validate() error {
	if c.GridSize.Width < 1 || c.GridSize.Height < 1 {
		return fmt.Errorf("%w: grid size %dx%d must be at least 1x1", ErrInvalidConfig, c.GridSize.Width, c.GridSize.Height)
	}
	if c.MaxFloorCount < 1 {
		return fmt.Errorf("%w: max floor count %d must be positive", ErrInvalidConfig, c.MaxFloorCount)
	}
	if c.MaxFloorMakerCount < 1 {
		return fmt.Errorf("%w: max floor maker count %d must be positive", ErrInvalidConfig, c.MaxFloorMakerCount)
	}

	probabilities := []struct {
		name  string
		value int
	}{
		{"turn probability", c.TurnProbability},
		{"floor maker spawn probability", c.FloorMakerSpawnProbability},
		{"room probability", c.RoomProbability},
	}
	for _, p := range probabilities {
		if p.value < 0 || p.value > 100 {
			return fmt.Errorf("%w: %s %d outside [0, 100]", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.RoomMinSize.Width < 1 || c.RoomMinSize.Height < 1 {
		return fmt.Errorf("%w: room min size %dx%d must be at least 1x1", ErrInvalidConfig, c.RoomMinSize.Width, c.RoomMinSize.Height)
	}
	if c.RoomMinSize.Width > c.RoomMaxSize.Width || c.RoomMinSize.Height > c.RoomMaxSize.Height {
		return fmt.Errorf("%w: room min size %dx%d exceeds max size %dx%d", ErrInvalidConfig,
			c.RoomMinSize.Width, c.RoomMinSize.Height, c.RoomMaxSize.Width, c.RoomMaxSize.Height)
	}
	return nil
}
