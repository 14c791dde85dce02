package generation

import (
	"floormaker/components"
)

// MapStatus describes how a generation run ended
type MapStatus int

const (
	// MapComplete means the floor target was reached
	MapComplete MapStatus = iota
	// MapStalled means every walker died (or progress stopped) before the target was reached
	MapStalled
	// MapDegenerate means at most one cell was carved, so spawn and exit coincide
	MapDegenerate
)

func (s MapStatus) String() string {
	switch s {
	case MapComplete:
		return "complete"
	case MapStalled:
		return "stalled"
	case MapDegenerate:
		return "degenerate"
	}
	return "unknown"
}

// Map is the finished result of a generation run. It is read-only once returned.
type Map struct {
	grid            *components.MapComponent
	gridSize        Size
	spawnPoint      components.Point
	exitPoint       components.Point
	floorCount      int
	maxFloorCount   int
	rooms           []Room
	peakFloorMakers int
	passes          int
	status          MapStatus
}

// Width returns the grid width in cells
func (m *Map) Width() int { return m.gridSize.Width }

// Height returns the grid height in cells
func (m *Map) Height() int { return m.gridSize.Height }

// GridSize returns the grid dimensions
func (m *Map) GridSize() Size { return m.gridSize }

// TileAt returns the tile at (x, y); ok is false outside the grid
func (m *Map) TileAt(x, y int) (tile components.Tile, ok bool) {
	if !m.grid.InBounds(x, y) {
		return components.TileEmpty, false
	}
	return m.grid.Tiles[y][x], true
}

// SpawnPoint returns the initial walker's starting cell
func (m *Map) SpawnPoint() components.Point { return m.spawnPoint }

// ExitPoint returns the carved cell farthest from the spawn point
func (m *Map) ExitPoint() components.Point { return m.exitPoint }

// FloorCount returns the number of cells actually carved
func (m *Map) FloorCount() int { return m.floorCount }

// MaxFloorCount returns the floor target the map was generated with
func (m *Map) MaxFloorCount() int { return m.maxFloorCount }

// Rooms returns the rooms stamped during generation, in stamp order.
// When the floor budget runs out during a stamp, the last room is only
// partly carved: its cells nearest the walker are Room and the rest stay
// Empty. Every earlier room is fully walkable.
func (m *Map) Rooms() []Room {
	rooms := make([]Room, len(m.rooms))
	copy(rooms, m.rooms)
	return rooms
}

// PeakFloorMakers returns the largest number of simultaneously live walkers
func (m *Map) PeakFloorMakers() int { return m.peakFloorMakers }

// Passes returns how many passes over the walkers the run took
func (m *Map) Passes() int { return m.passes }

// Status reports how the run ended
func (m *Map) Status() MapStatus { return m.status }

// Degenerate reports whether spawn and exit coincide
func (m *Map) Degenerate() bool { return m.status == MapDegenerate }

// Stalled reports whether the floor target was missed
func (m *Map) Stalled() bool { return m.floorCount < m.maxFloorCount }

// Err returns ErrDegenerateMap for degenerate maps and nil otherwise
func (m *Map) Err() error {
	if m.Degenerate() {
		return ErrDegenerateMap
	}
	return nil
}

// Grid returns a copy of the tile grid
func (m *Map) Grid() *components.MapComponent {
	return m.grid.Clone()
}
