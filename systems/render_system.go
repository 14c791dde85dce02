package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"floormaker/components"
	"floormaker/config"
	"floormaker/generation"
)

// MapRenderer draws a generated map and its overlays
type MapRenderer struct {
	tileMapping *components.TileMappingComponent
	tileSize    int
	showGlyphs  bool
}

// NewMapRenderer creates a renderer drawing tiles of tileSize pixels
func NewMapRenderer(tileMapping *components.TileMappingComponent, tileSize int) *MapRenderer {
	return &MapRenderer{
		tileMapping: tileMapping,
		tileSize:    tileSize,
	}
}

// ToggleGlyphs switches ASCII glyph overlays on and off
func (s *MapRenderer) ToggleGlyphs() {
	s.showGlyphs = !s.showGlyphs
}

// Draw renders the visible part of the map through the camera
func (s *MapRenderer) Draw(screen *ebiten.Image, m *generation.Map, camera *Camera) {
	// Clear the screen
	screen.Fill(color.RGBA{0, 0, 0, 255})

	if m == nil {
		return
	}

	size := float32(s.tileSize)
	for y := 0; y < camera.ViewportHeight; y++ {
		for x := 0; x < camera.ViewportWidth; x++ {
			// Convert screen position to map position
			cell := camera.ScreenToMap(x, y)
			tile, ok := m.TileAt(cell.X, cell.Y)
			if !ok {
				continue
			}

			tileDef := s.tileMapping.GetTileDefinition(tile)
			px, py := float32(x*s.tileSize), float32(y*s.tileSize)
			vector.DrawFilledRect(screen, px, py, size, size, tileDef.BG, false)

			if s.showGlyphs && tile != components.TileEmpty {
				ebitenutil.DebugPrintAt(screen, string(tileDef.Glyph), int(px)+s.tileSize/4, int(py))
			}
		}
	}
}

// DrawStatus prints the map summary along the top edge
func (s *MapRenderer) DrawStatus(screen *ebiten.Image, m *generation.Map, seed int64) {
	if m == nil {
		return
	}
	spawn, exit := m.SpawnPoint(), m.ExitPoint()
	status := fmt.Sprintf("seed %d  %dx%d  floor %d/%d  rooms %d  spawn (%d,%d)  exit (%d,%d)  %s",
		seed, m.Width(), m.Height(), m.FloorCount(), m.MaxFloorCount(), len(m.Rooms()),
		spawn.X, spawn.Y, exit.X, exit.Y, m.Status())
	ebitenutil.DebugPrintAt(screen, status, 4, 2)
}

// DrawMessages prints the most recent messages above the bottom edge, as
// many as fit in height pixels.
// DebugPrint has no colour support, so the message colour is drawn as a marker.
func (s *MapRenderer) DrawMessages(screen *ebiten.Image, log *MessageLog, height int) {
	bottom := screen.Bounds().Dy()
	for i, msg := range log.RecentMessages(MessageLinesFor(height)) {
		y := bottom - (i+1)*config.MessageLineHeight
		vector.DrawFilledRect(screen, 4, float32(y+4), 8, 8, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, 16, y)
	}
}

// MessageLinesFor returns how many debug-font message lines fit in height pixels
func MessageLinesFor(height int) int {
	return max(0, height/config.MessageLineHeight)
}
