package generation

import (
	"math/rand"
	"testing"

	"floormaker/components"
)

func TestStepWithoutTurnKeepsFacing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	start := components.Point{X: 5, Y: 5}

	expected := map[Direction]components.Point{
		North: {X: 5, Y: 4},
		East:  {X: 6, Y: 5},
		South: {X: 5, Y: 6},
		West:  {X: 4, Y: 5},
	}
	for facing, want := range expected {
		for i := 0; i < 50; i++ {
			next, nextFacing := Step(start, facing, 0, rng)
			if nextFacing != facing {
				t.Fatalf("expected facing %v to be kept, got %v", facing, nextFacing)
			}
			if next != want {
				t.Fatalf("expected %v stepping %v, got %v", want, facing, next)
			}
		}
	}
}

func TestStepNeverReverses(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	start := components.Point{X: 0, Y: 0}

	for _, facing := range cardinalDirections {
		seen := make(map[Direction]bool)
		for i := 0; i < 500; i++ {
			next, nextFacing := Step(start, facing, 100, rng)
			if nextFacing == facing.Reverse() {
				t.Fatalf("walker facing %v reversed to %v", facing, nextFacing)
			}
			dx, dy := nextFacing.Delta()
			if next != start.Add(dx, dy) {
				t.Fatalf("expected step to follow new facing %v, got %v", nextFacing, next)
			}
			seen[nextFacing] = true
		}
		if len(seen) != 3 {
			t.Fatalf("expected all 3 non-reverse facings from %v, got %v", facing, seen)
		}
	}
}

func TestDirectionReverse(t *testing.T) {
	tests := []struct {
		in, want Direction
	}{
		{North, South},
		{East, West},
		{South, North},
		{West, East},
	}
	for _, tt := range tests {
		if got := tt.in.Reverse(); got != tt.want {
			t.Fatalf("expected reverse of %v to be %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestDeadFloorMakerDoesNotMove(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	maker := NewFloorMaker(components.Point{X: 2, Y: 2}, East)
	maker.Advance(0, rng)
	if maker.Position != (components.Point{X: 3, Y: 2}) {
		t.Fatalf("expected live walker at (3,2), got %v", maker.Position)
	}

	maker.Kill()
	maker.Advance(0, rng)
	if maker.Alive {
		t.Fatalf("expected walker to stay dead")
	}
	if maker.Position != (components.Point{X: 3, Y: 2}) {
		t.Fatalf("expected dead walker to stay at (3,2), got %v", maker.Position)
	}
}
