package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 12

	// Window dimensions in tiles
	ScreenWidth  = 80
	ScreenHeight = 60

	// Rows reserved for the status line and message log
	StatusRows  = 2
	MessageRows = 7

	// Debug font line height in pixels
	MessageLineHeight = 16

	// Map viewport in tiles
	ViewportWidth  = ScreenWidth
	ViewportHeight = ScreenHeight - StatusRows - MessageRows

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = ScreenWidth * TileSize
	WindowHeight = ScreenHeight * TileSize
)

// Generation defaults
const (
	// PresetDirectory holds the JSON generation presets
	PresetDirectory = "data/presets"

	DefaultGridWidth  = 64
	DefaultGridHeight = 48
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}
