package components

import "testing"

func TestParseTileInvertsGlyph(t *testing.T) {
	for _, tile := range []Tile{TileEmpty, TileFloor, TileRoom, TileSpawn, TileExit} {
		got, ok := ParseTile(tile.Glyph())
		if !ok {
			t.Fatalf("expected glyph %q of %v to parse", tile.Glyph(), tile)
		}
		if got != tile {
			t.Fatalf("expected %v from glyph %q, got %v", tile, tile.Glyph(), got)
		}
	}

	if _, ok := ParseTile('x'); ok {
		t.Fatalf("expected unknown glyph to be rejected")
	}
}
