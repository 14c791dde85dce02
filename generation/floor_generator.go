package generation

import (
	"fmt"
	"math/rand"

	"floormaker/components"
)

// stallPassesPerCell bounds how many passes may go by without a new cell
// being carved, as a multiple of the grid's cell count
const stallPassesPerCell = 4

// FloorGenerator carves maps with a population of floor makers
type FloorGenerator struct {
	config     Configuration
	logMessage func(string) // Function for logging messages
}

// NewFloorGenerator validates cfg and returns a generator bound to it.
// logFunc may be nil.
func NewFloorGenerator(cfg Configuration, logFunc func(string)) (*FloorGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &FloorGenerator{
		config:     cfg,
		logMessage: logFunc,
	}, nil
}

// Generate validates cfg and runs one generation with the given seed
func Generate(cfg Configuration, seed int64) (*Map, error) {
	g, err := NewFloorGenerator(cfg, nil)
	if err != nil {
		return nil, err
	}
	return g.Generate(seed), nil
}

// Configuration returns the generator's configuration
func (g *FloorGenerator) Configuration() Configuration {
	return g.config
}

func (g *FloorGenerator) logf(format string, args ...interface{}) {
	if g.logMessage != nil {
		g.logMessage(fmt.Sprintf(format, args...))
	}
}

// run holds the state of a single generation
type run struct {
	cfg        Configuration
	rng        *rand.Rand
	mapComp    *components.MapComponent
	makers     []FloorMaker
	live       int
	peak       int
	floorCount int
	rooms      []Room
}

// newRun carves the centre cell and places the first walker on it
func newRun(cfg Configuration, seed int64) (*run, components.Point) {
	r := &run{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		mapComp: components.NewMapComponent(cfg.GridSize.Width, cfg.GridSize.Height),
	}

	start := components.Point{X: cfg.GridSize.Width / 2, Y: cfg.GridSize.Height / 2}
	r.addFloorMaker(start, randomDirection(r.rng))
	r.mapComp.SetTile(start.X, start.Y, components.TileFloor)
	r.floorCount = 1
	return r, start
}

// Generate runs the algorithm. The same seed always yields the same map.
func (g *FloorGenerator) Generate(seed int64) *Map {
	cfg := g.config
	r, start := newRun(cfg, seed)

	stallLimit := stallPassesPerCell * cfg.GridSize.Cells()
	passes, idle := 0, 0
	for r.floorCount < cfg.MaxFloorCount && r.live > 0 {
		before := r.floorCount
		r.pass()
		passes++

		if r.floorCount > before {
			idle = 0
			continue
		}
		idle++
		if idle >= stallLimit {
			g.logf("Generation stopped after %d passes without progress", idle)
			break
		}
	}

	m := &Map{
		grid:            r.mapComp,
		gridSize:        cfg.GridSize,
		spawnPoint:      start,
		floorCount:      r.floorCount,
		maxFloorCount:   cfg.MaxFloorCount,
		rooms:           r.rooms,
		peakFloorMakers: r.peak,
		passes:          passes,
	}
	g.finalize(m)

	g.logf("Carved %d/%d cells in %d passes (%d rooms, peak %d floor makers): %s",
		m.floorCount, m.maxFloorCount, passes, len(m.rooms), m.peakFloorMakers, m.status)
	return m
}

// pass steps every walker that was alive when the pass began, in spawn order.
// Dead walkers are dropped afterwards so a pass never visits more than
// MaxFloorMakerCount walkers.
func (r *run) pass() {
	n := len(r.makers)
	for i := 0; i < n; i++ {
		r.stepFloorMaker(i)
		if r.floorCount >= r.cfg.MaxFloorCount {
			break
		}
	}
	r.compact()
}

// compact removes dead walkers, keeping spawn order
func (r *run) compact() {
	alive := r.makers[:0]
	for _, maker := range r.makers {
		if maker.Alive {
			alive = append(alive, maker)
		}
	}
	r.makers = alive
}

func (r *run) stepFloorMaker(i int) {
	maker := &r.makers[i]
	maker.Advance(r.cfg.TurnProbability, r.rng)

	pos := maker.Position
	if !r.mapComp.InBounds(pos.X, pos.Y) {
		maker.Kill()
		r.live--
		return
	}

	budget := r.cfg.MaxFloorCount - r.floorCount
	if r.rng.Intn(100) < r.cfg.RoomProbability {
		width, height := rollRoomSize(r.cfg, r.rng)
		room := placeRoom(pos, width, height, r.cfg.GridSize)
		r.floorCount += stampRoom(r.mapComp, room, pos, budget)
		r.rooms = append(r.rooms, room)
	} else if r.mapComp.GetTile(pos.X, pos.Y) == components.TileEmpty {
		r.mapComp.SetTile(pos.X, pos.Y, components.TileFloor)
		r.floorCount++
	}

	if r.rng.Intn(100) < r.cfg.FloorMakerSpawnProbability && r.live < r.cfg.MaxFloorMakerCount {
		// maker may dangle after append, so read pos from the copy above
		r.addFloorMaker(pos, randomDirection(r.rng))
	}
}

func (r *run) addFloorMaker(at components.Point, direction Direction) {
	r.makers = append(r.makers, NewFloorMaker(at, direction))
	r.live++
	r.peak = max(r.peak, r.live)
}

// finalize picks the exit, marks spawn and exit tiles and sets the status
func (g *FloorGenerator) finalize(m *Map) {
	exit, distance := FarthestTile(m.grid, m.spawnPoint)
	m.exitPoint = exit

	switch {
	case m.floorCount <= 1:
		m.status = MapDegenerate
		g.logf("Warning: degenerate map, spawn and exit share %v", m.spawnPoint)
	case m.floorCount < m.maxFloorCount:
		m.status = MapStalled
	default:
		m.status = MapComplete
	}

	m.grid.SetTile(exit.X, exit.Y, components.TileExit)
	m.grid.SetTile(m.spawnPoint.X, m.spawnPoint.Y, components.TileSpawn)

	if m.status != MapDegenerate {
		g.logf("Exit placed at (%d, %d), %d steps from spawn", exit.X, exit.Y, distance)
	}
}
