package generation

import (
	"floormaker/components"
)

// Unreached marks cells a distance field could not reach
const Unreached = -1

var cardinalDirections = [4]Direction{North, East, South, West}

// DistanceField returns the breadth-first path length from `from` to every
// walkable cell, using 4-connectivity. Walls and unreachable cells hold Unreached.
// Indexed [y][x].
func DistanceField(mapComp *components.MapComponent, from components.Point) [][]int {
	dist := make([][]int, mapComp.Height)
	for y := range dist {
		dist[y] = make([]int, mapComp.Width)
		for x := range dist[y] {
			dist[y][x] = Unreached
		}
	}

	if !mapComp.GetTile(from.X, from.Y).Walkable() {
		return dist
	}

	dist[from.Y][from.X] = 0
	queue := []components.Point{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range cardinalDirections {
			dx, dy := d.Delta()
			next := current.Add(dx, dy)
			if !mapComp.GetTile(next.X, next.Y).Walkable() || dist[next.Y][next.X] != Unreached {
				continue
			}
			dist[next.Y][next.X] = dist[current.Y][current.X] + 1
			queue = append(queue, next)
		}
	}

	return dist
}

// FarthestTile returns the walkable cell with the greatest path distance from
// `from` and that distance. Ties go to the first cell in row-major order.
func FarthestTile(mapComp *components.MapComponent, from components.Point) (components.Point, int) {
	dist := DistanceField(mapComp, from)

	best, bestDist := from, 0
	for y := 0; y < mapComp.Height; y++ {
		for x := 0; x < mapComp.Width; x++ {
			if dist[y][x] > bestDist {
				best = components.Point{X: x, Y: y}
				bestDist = dist[y][x]
			}
		}
	}
	return best, bestDist
}

// UnreachableTiles lists, in row-major order, the walkable cells that cannot be
// reached from `from`. An empty result means the carved area is connected.
func UnreachableTiles(mapComp *components.MapComponent, from components.Point) []components.Point {
	dist := DistanceField(mapComp, from)

	var orphans []components.Point
	for y := 0; y < mapComp.Height; y++ {
		for x := 0; x < mapComp.Width; x++ {
			if mapComp.Tiles[y][x].Walkable() && dist[y][x] == Unreached {
				orphans = append(orphans, components.Point{X: x, Y: y})
			}
		}
	}
	return orphans
}
