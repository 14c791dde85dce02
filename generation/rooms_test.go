package generation

import (
	"testing"

	"floormaker/components"
)

func TestPlaceRoom(t *testing.T) {
	grid := Size{Width: 10, Height: 8}
	tests := []struct {
		name          string
		at            components.Point
		width, height int
		want          Room
	}{
		{"top-left anchor", components.Point{X: 2, Y: 3}, 4, 3, Room{X: 2, Y: 3, Width: 4, Height: 3}},
		{"shifted left", components.Point{X: 8, Y: 1}, 4, 3, Room{X: 6, Y: 1, Width: 4, Height: 3}},
		{"shifted up", components.Point{X: 1, Y: 7}, 2, 5, Room{X: 1, Y: 3, Width: 2, Height: 5}},
		{"clipped to grid", components.Point{X: 4, Y: 4}, 12, 9, Room{X: 0, Y: 0, Width: 10, Height: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := placeRoom(tt.at, tt.width, tt.height, grid)
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
			if !got.Contains(tt.at) {
				t.Fatalf("expected room %+v to cover %v", got, tt.at)
			}
		})
	}
}

func TestStampRoomRespectsBudget(t *testing.T) {
	mapComp := components.NewMapComponent(10, 10)
	from := components.Point{X: 4, Y: 4}
	mapComp.SetTile(3, 4, components.TileFloor)

	room := Room{X: 3, Y: 3, Width: 4, Height: 4}
	claimed := stampRoom(mapComp, room, from, 5)
	if claimed != 5 {
		t.Fatalf("expected 5 claimed cells, got %d", claimed)
	}
	if got := mapComp.CountWalkable(); got != 6 {
		t.Fatalf("expected 6 walkable cells, got %d", got)
	}
	if mapComp.GetTile(3, 4) != components.TileRoom {
		t.Fatalf("expected existing floor inside the room to become room")
	}
	if orphans := UnreachableTiles(mapComp, from); len(orphans) != 0 {
		t.Fatalf("expected partial room to stay connected, orphans %v", orphans)
	}
}

func TestStampRoomCountsOnlyEmptyCells(t *testing.T) {
	mapComp := components.NewMapComponent(6, 6)
	room := Room{X: 1, Y: 1, Width: 3, Height: 3}
	from := components.Point{X: 1, Y: 1}

	if claimed := stampRoom(mapComp, room, from, 100); claimed != 9 {
		t.Fatalf("expected 9 claimed cells, got %d", claimed)
	}
	if claimed := stampRoom(mapComp, room, from, 100); claimed != 0 {
		t.Fatalf("expected restamp to claim nothing, got %d", claimed)
	}
}

func TestFarthestTileBreaksTiesRowMajor(t *testing.T) {
	mapComp := components.NewMapComponent(5, 5)
	// A plus sign centred on (2,2): four arm ends all at distance 2
	for i := 0; i < 5; i++ {
		mapComp.SetTile(2, i, components.TileFloor)
		mapComp.SetTile(i, 2, components.TileFloor)
	}

	got, dist := FarthestTile(mapComp, components.Point{X: 2, Y: 2})
	if dist != 2 {
		t.Fatalf("expected distance 2, got %d", dist)
	}
	if got != (components.Point{X: 2, Y: 0}) {
		t.Fatalf("expected first row-major tie (2,0), got %v", got)
	}
}

func TestUnreachableTiles(t *testing.T) {
	mapComp := components.NewMapComponent(5, 1)
	mapComp.SetTile(0, 0, components.TileFloor)
	mapComp.SetTile(1, 0, components.TileFloor)
	mapComp.SetTile(3, 0, components.TileRoom)

	orphans := UnreachableTiles(mapComp, components.Point{X: 0, Y: 0})
	if len(orphans) != 1 || orphans[0] != (components.Point{X: 3, Y: 0}) {
		t.Fatalf("expected (3,0) unreachable, got %v", orphans)
	}
}
