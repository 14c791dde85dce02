package generation

import (
	"math/rand"
	"sort"

	"floormaker/components"
)

// Room represents a rectangle stamped by a walker
type Room struct {
	X, Y, Width, Height int
}

// Contains reports whether p lies inside the room
func (r Room) Contains(p components.Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// rollRoomSize picks a width and height uniformly within the configured bounds
func rollRoomSize(cfg Configuration, rng *rand.Rand) (int, int) {
	width := cfg.RoomMinSize.Width + rng.Intn(cfg.RoomMaxSize.Width-cfg.RoomMinSize.Width+1)
	height := cfg.RoomMinSize.Height + rng.Intn(cfg.RoomMaxSize.Height-cfg.RoomMinSize.Height+1)
	return width, height
}

// placeRoom anchors a width x height room with its top-left corner on the
// walker cell. A room that would overflow the grid is shifted up and left so
// it still covers the walker cell; dimensions are only clipped when the grid
// itself is smaller than the room.
func placeRoom(at components.Point, width, height int, grid Size) Room {
	width = min(width, grid.Width)
	height = min(height, grid.Height)

	x := at.X
	if x+width > grid.Width {
		x = grid.Width - width
	}
	y := at.Y
	if y+height > grid.Height {
		y = grid.Height - height
	}

	return Room{X: x, Y: y, Width: width, Height: height}
}

// stampRoom marks every room cell as Room, claiming at most budget previously
// empty cells. Cells are visited nearest-first from the walker cell so a
// partially claimed room stays connected to it. Returns the number of cells
// claimed.
func stampRoom(mapComp *components.MapComponent, room Room, from components.Point, budget int) int {
	cells := make([]components.Point, 0, room.Width*room.Height)
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			cells = append(cells, components.Point{X: x, Y: y})
		}
	}
	// Stable sort keeps row-major order among cells at equal distance
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].ManhattanDistance(from) < cells[j].ManhattanDistance(from)
	})

	claimed := 0
	for _, c := range cells {
		if mapComp.GetTile(c.X, c.Y).Walkable() {
			mapComp.SetTile(c.X, c.Y, components.TileRoom)
			continue
		}
		if claimed >= budget {
			continue
		}
		mapComp.SetTile(c.X, c.Y, components.TileRoom)
		claimed++
	}
	return claimed
}
