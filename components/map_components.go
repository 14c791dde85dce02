package components

import (
	"image/color"
)

// Tile is the state of a single grid cell
type Tile int8

// Tile states
const (
	TileEmpty Tile = iota
	TileFloor
	TileRoom
	TileSpawn
	TileExit
)

// Walkable reports whether the tile has been carved
func (t Tile) Walkable() bool {
	return t != TileEmpty
}

// Glyph returns the ASCII character used when printing a map
func (t Tile) Glyph() rune {
	switch t {
	case TileEmpty:
		return '#'
	case TileFloor:
		return '.'
	case TileRoom:
		return ','
	case TileSpawn:
		return '<'
	case TileExit:
		return '>'
	}
	return '?'
}

// ParseTile returns the tile for an ASCII glyph produced by Glyph
func ParseTile(glyph rune) (Tile, bool) {
	switch glyph {
	case '#':
		return TileEmpty, true
	case '.':
		return TileFloor, true
	case ',':
		return TileRoom, true
	case '<':
		return TileSpawn, true
	case '>':
		return TileExit, true
	}
	return TileEmpty, false
}

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileFloor:
		return "floor"
	case TileRoom:
		return "room"
	case TileSpawn:
		return "spawn"
	case TileExit:
		return "exit"
	}
	return "UNDEFINED"
}

// MapComponent stores the tile grid
type MapComponent struct {
	Width  int
	Height int
	Tiles  [][]Tile // indexed [y][x]
}

// NewMapComponent creates a new map with the given dimensions, every cell empty
func NewMapComponent(width, height int) *MapComponent {
	m := &MapComponent{
		Width:  width,
		Height: height,
		Tiles:  make([][]Tile, height),
	}
	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]Tile, width)
	}
	return m
}

// InBounds reports whether (x, y) addresses a cell of the map
func (m *MapComponent) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// GetTile returns the tile at (x, y); out of bounds reads as empty
func (m *MapComponent) GetTile(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileEmpty
	}
	return m.Tiles[y][x]
}

// SetTile sets the tile at the given position
func (m *MapComponent) SetTile(x, y int, tile Tile) {
	if m.InBounds(x, y) {
		m.Tiles[y][x] = tile
	}
}

// CountWalkable returns the number of carved cells
func (m *MapComponent) CountWalkable() int {
	count := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x].Walkable() {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the map
func (m *MapComponent) Clone() *MapComponent {
	c := NewMapComponent(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		copy(c.Tiles[y], m.Tiles[y])
	}
	return c
}

// TileDefinition describes the visual appearance of a tile type
type TileDefinition struct {
	Glyph rune
	FG    color.Color
	BG    color.Color
}

// NewTileDefinition creates a tile definition from a glyph and colours
func NewTileDefinition(glyph rune, fg, bg color.Color) TileDefinition {
	return TileDefinition{
		Glyph: glyph,
		FG:    fg,
		BG:    bg,
	}
}

// TileMappingComponent maps tile types to their visual representation
type TileMappingComponent struct {
	Definitions map[Tile]TileDefinition
}

// NewTileMappingComponent creates the default tile mapping
func NewTileMappingComponent() *TileMappingComponent {
	mapping := &TileMappingComponent{
		Definitions: make(map[Tile]TileDefinition),
	}
	black := color.RGBA{0, 0, 0, 255}
	mapping.Definitions[TileEmpty] = NewTileDefinition(TileEmpty.Glyph(), color.RGBA{40, 40, 40, 255}, black)
	mapping.Definitions[TileFloor] = NewTileDefinition(TileFloor.Glyph(), color.RGBA{200, 200, 200, 255}, color.RGBA{96, 96, 96, 255})
	mapping.Definitions[TileRoom] = NewTileDefinition(TileRoom.Glyph(), color.RGBA{218, 165, 32, 255}, color.RGBA{120, 100, 70, 255}) // Gold
	mapping.Definitions[TileSpawn] = NewTileDefinition(TileSpawn.Glyph(), color.RGBA{255, 255, 255, 255}, color.RGBA{0, 160, 0, 255})
	mapping.Definitions[TileExit] = NewTileDefinition(TileExit.Glyph(), color.RGBA{255, 255, 255, 255}, color.RGBA{200, 0, 0, 255})
	return mapping
}

// GetTileDefinition returns the visual definition for a given tile type
func (t *TileMappingComponent) GetTileDefinition(tile Tile) TileDefinition {
	if def, exists := t.Definitions[tile]; exists {
		return def
	}

	// Magenta for undefined tiles
	return TileDefinition{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255},
		BG:    color.RGBA{0, 0, 0, 255},
	}
}
