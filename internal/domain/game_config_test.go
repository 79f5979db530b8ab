package domain

import (
	"errors"
	"testing"
)

func TestDefaultGameConfigValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestGameConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"tiny field", func(c *GameConfig) { c.Width = 2 }},
		{"zero cell size", func(c *GameConfig) { c.CellSize = 0 }},
		{"start outside", func(c *GameConfig) { c.Start = Coord{30, 0} }},
		{"no direction", func(c *GameConfig) { c.StartDirection = 0 }},
		{"food on border", func(c *GameConfig) { c.StartFood = Coord{0, 4} }},
		{"food on start", func(c *GameConfig) { c.StartFood = c.Start }},
		{"zero step delay", func(c *GameConfig) { c.StepDelay = 0 }},
		{"zero attempts", func(c *GameConfig) { c.FoodAttempts = 0 }},
		{"bad input mode", func(c *GameConfig) { c.InputMode = 7 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGameConfigCopy(t *testing.T) {
	cfg := DefaultGameConfig()
	cp := cfg.Copy()
	cp.Width = 99

	if cfg.Width != DefaultWidth {
		t.Errorf("Copy shares state: width = %d", cfg.Width)
	}
}

func TestFieldBounds(t *testing.T) {
	f := NewField(30, 20)

	for _, c := range []Coord{{0, 0}, {29, 19}, {15, 10}} {
		if !f.Contains(c) {
			t.Errorf("Contains(%v) = false", c)
		}
	}
	for _, c := range []Coord{{-1, 0}, {30, 0}, {0, -1}, {0, 20}} {
		if f.Contains(c) {
			t.Errorf("Contains(%v) = true", c)
		}
	}
	for _, c := range []Coord{{0, 5}, {29, 5}, {5, 0}, {5, 19}} {
		if f.Interior(c) {
			t.Errorf("Interior(%v) = true for border cell", c)
		}
	}
	if !f.Interior(Coord{1, 1}) || !f.Interior(Coord{28, 18}) {
		t.Error("interior corners rejected")
	}
}

func TestFieldMove(t *testing.T) {
	f := NewField(30, 20)

	tests := []struct {
		from Coord
		dir  Direction
		want Coord
		in   bool
	}{
		{Coord{5, 5}, DirectionRight, Coord{6, 5}, true},
		{Coord{0, 5}, DirectionLeft, Coord{-1, 5}, false},
		{Coord{5, 19}, DirectionDown, Coord{5, 20}, false},
		{Coord{5, 1}, DirectionUp, Coord{5, 0}, true},
	}
	for _, tt := range tests {
		got := f.Move(tt.from, tt.dir)
		if got != tt.want {
			t.Errorf("Move(%v, %v) = %v, want %v", tt.from, tt.dir, got, tt.want)
		}
		if f.Contains(got) != tt.in {
			t.Errorf("Contains(%v) = %v, want %v", got, !tt.in, tt.in)
		}
	}
}
