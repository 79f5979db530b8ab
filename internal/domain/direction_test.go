package domain

import "testing"

var allDirections = []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range allDirections {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, got)
		}
		if d.Opposite() == d {
			t.Errorf("%v is its own opposite", d)
		}
		if !d.IsOpposite(d.Opposite()) {
			t.Errorf("%v.IsOpposite(%v) = false", d, d.Opposite())
		}
	}
}

func TestDeltaIsUnitStep(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Coord
	}{
		{DirectionUp, Coord{0, -1}},
		{DirectionDown, Coord{0, 1}},
		{DirectionLeft, Coord{-1, 0}},
		{DirectionRight, Coord{1, 0}},
	}

	for _, tt := range tests {
		if got := tt.dir.Delta(); got != tt.want {
			t.Errorf("%v.Delta() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestZeroDirection(t *testing.T) {
	var d Direction
	if d.Valid() {
		t.Error("zero direction reported valid")
	}
	if d.IsOpposite(d.Opposite()) {
		t.Error("zero direction has an opposite")
	}
	if d.Delta() != (Coord{}) {
		t.Errorf("zero direction delta = %v", d.Delta())
	}
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key  Key
		want Direction
		ok   bool
	}{
		{KeyUp, DirectionUp, true},
		{KeyDown, DirectionDown, true},
		{KeyLeft, DirectionLeft, true},
		{KeyRight, DirectionRight, true},
		{KeyOther, 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.key.Direction()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Key(%d).Direction() = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}
