package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"floormaker/config"
	"floormaker/generation"
	"floormaker/server"
)

func main() {
	ascii := flag.Bool("ascii", false, "print a generated map to stdout and exit")
	serve := flag.Bool("serve", false, "serve maps over WebSocket at /ws")
	addr := flag.String("addr", "", "listen address for -serve (default :$PORT or :8080)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "generation seed")
	presetID := flag.String("preset", "", "preset ID from the preset directory")
	presetDir := flag.String("presets", config.PresetDirectory, "directory of JSON presets")
	flag.Parse()

	presets := generation.NewPresetManager()
	if err := presets.LoadPresetsFromDirectory(*presetDir); err != nil {
		log.Printf("Warning: failed to load presets: %v", err)
	}

	cfg := generation.DefaultConfiguration(config.DefaultGridWidth, config.DefaultGridHeight)
	if *presetID != "" {
		preset, err := presets.GetPreset(*presetID)
		if err != nil {
			log.Fatal(err)
		}
		cfg = preset.Configuration()
	}

	switch {
	case *ascii:
		runASCII(cfg, *seed)
	case *serve:
		runServer(presets, cfg, *addr)
	default:
		runViewer(cfg, *seed)
	}
}

// runASCII prints one map and a summary line
func runASCII(cfg generation.Configuration, seed int64) {
	g, err := generation.NewFloorGenerator(cfg, func(msg string) { log.Println(msg) })
	if err != nil {
		log.Fatal(err)
	}

	m := g.Generate(seed)
	if err := m.WriteASCII(os.Stdout); err != nil {
		log.Fatal(err)
	}
	if err := m.Err(); err != nil {
		log.Printf("Warning: %v", err)
	}
	log.Printf("seed=%d floor=%d/%d spawn=%v exit=%v status=%s",
		seed, m.FloorCount(), m.MaxFloorCount(), m.SpawnPoint(), m.ExitPoint(), m.Status())
}

func runServer(presets *generation.PresetManager, cfg generation.Configuration, addr string) {
	if addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		addr = ":" + port
	}

	http.Handle("/ws", server.NewMapServer(presets, cfg))

	log.Printf("Map server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

func runViewer(cfg generation.Configuration, seed int64) {
	viewer, err := NewMapViewer(cfg, seed)
	if err != nil {
		log.Fatal(err)
	}

	windowWidth, windowHeight := config.GetScreenDimensions()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Floor Maker")
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
