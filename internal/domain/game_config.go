package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid game config")

// InputMode selects how key presses turn into moves.
type InputMode int

const (
	// InputImmediate moves the snake one step on every accepted key
	// press, in addition to the regular tick.
	InputImmediate InputMode = iota
	// InputBuffered stores the last accepted key press and applies it
	// on the next tick, so the snake moves exactly once per tick.
	InputBuffered
)

func (m InputMode) String() string {
	switch m {
	case InputImmediate:
		return "immediate"
	case InputBuffered:
		return "buffered"
	}
	return fmt.Sprintf("InputMode(%d)", int(m))
}

const (
	DefaultWidth        = 30
	DefaultHeight       = 20
	DefaultCellSize     = 20
	DefaultStepDelay    = 120 * time.Millisecond
	DefaultFoodAttempts = 64
)

var (
	DefaultStart = Coord{X: 2, Y: 2}
	DefaultFood  = Coord{X: 6, Y: 4}
)

type GameConfig struct {
	Width    int
	Height   int
	CellSize int

	Start          Coord
	StartDirection Direction
	StartFood      Coord

	StepDelay    time.Duration
	FoodAttempts int
	InputMode    InputMode
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		CellSize:       DefaultCellSize,
		Start:          DefaultStart,
		StartDirection: DirectionRight,
		StartFood:      DefaultFood,
		StepDelay:      DefaultStepDelay,
		FoodAttempts:   DefaultFoodAttempts,
		InputMode:      InputImmediate,
	}
}

func (c *GameConfig) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("%w: field %dx%d must be at least 3x3", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	field := NewField(c.Width, c.Height)
	if !field.Contains(c.Start) {
		return fmt.Errorf("%w: start %v outside field", ErrInvalidConfig, c.Start)
	}
	if !c.StartDirection.Valid() {
		return fmt.Errorf("%w: start direction %v", ErrInvalidConfig, c.StartDirection)
	}
	if !field.Interior(c.StartFood) {
		return fmt.Errorf("%w: food %v outside interior", ErrInvalidConfig, c.StartFood)
	}
	if c.StartFood.Equals(c.Start) {
		return fmt.Errorf("%w: food %v on start cell", ErrInvalidConfig, c.StartFood)
	}
	if c.StepDelay <= 0 {
		return fmt.Errorf("%w: step delay %v", ErrInvalidConfig, c.StepDelay)
	}
	if c.FoodAttempts <= 0 {
		return fmt.Errorf("%w: food attempts %d", ErrInvalidConfig, c.FoodAttempts)
	}
	if c.InputMode != InputImmediate && c.InputMode != InputBuffered {
		return fmt.Errorf("%w: input mode %v", ErrInvalidConfig, c.InputMode)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}
