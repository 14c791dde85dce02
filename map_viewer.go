package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"floormaker/components"
	"floormaker/config"
	"floormaker/generation"
	"floormaker/systems"
)

// MapViewer implements ebiten.Game for browsing generated maps
type MapViewer struct {
	generator *generation.FloorGenerator
	renderer  *systems.MapRenderer
	camera    *systems.Camera
	messages  *systems.MessageLog
	current   *generation.Map
	seed      int64
	mapLayer  *ebiten.Image
}

// NewMapViewer creates a viewer and generates the first map
func NewMapViewer(cfg generation.Configuration, seed int64) (*MapViewer, error) {
	messages := systems.GetMessageLog()
	generator, err := generation.NewFloorGenerator(cfg, messages.AddSystem)
	if err != nil {
		return nil, err
	}

	v := &MapViewer{
		generator: generator,
		renderer:  systems.NewMapRenderer(components.NewTileMappingComponent(), config.TileSize),
		camera:    systems.NewCamera(config.ViewportWidth, config.ViewportHeight),
		messages:  messages,
		seed:      seed,
		mapLayer:  ebiten.NewImage(config.ViewportWidth*config.TileSize, config.ViewportHeight*config.TileSize),
	}
	v.regenerate()

	messages.Add("Arrows: scroll | R: new map | C: centre on spawn | G: glyphs | F: fullscreen")
	return v, nil
}

// regenerate builds the map for the current seed
func (v *MapViewer) regenerate() {
	v.messages.Addf(systems.MessageTypeAlert, "Generating map for seed %d", v.seed)
	v.current = v.generator.Generate(v.seed)
	if err := v.current.Err(); err != nil {
		v.messages.Addf(systems.MessageTypeAlert, "Warning: %v", err)
	}

	v.camera.SetMapSize(v.current.Width(), v.current.Height())
	v.camera.CenterOn(v.current.SpawnPoint())
}

// Update handles input
func (v *MapViewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.camera.Move(0, -1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.camera.Move(0, 1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.camera.Move(-1, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.camera.Move(1, 0)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.seed++
		v.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.camera.CenterOn(v.current.SpawnPoint())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		v.renderer.ToggleGlyphs()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

// Draw draws the map between the status line and the message log
func (v *MapViewer) Draw(screen *ebiten.Image) {
	v.renderer.Draw(v.mapLayer, v.current, v.camera)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(config.StatusRows*config.TileSize))
	screen.DrawImage(v.mapLayer, op)

	v.renderer.DrawStatus(screen, v.current, v.seed)
	v.renderer.DrawMessages(screen, v.messages, config.MessageRows*config.TileSize)
}

// Layout implements ebiten.Game's Layout
func (v *MapViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
