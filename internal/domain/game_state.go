package domain

import "fmt"

type GameStatus int

const (
	StatusRunning GameStatus = iota
	StatusGameOver
)

func (s GameStatus) String() string {
	if s == StatusGameOver {
		return "game over"
	}
	return "running"
}

// Game owns the snake, the food cell and the terminal flag. It is not
// safe for concurrent use; a single goroutine drives it.
type Game struct {
	config *GameConfig
	field  *Field
	rng    Rand

	snake    *Snake
	food     Coord
	gameOver bool
	pending  Direction
	moves    uint64
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Field     Field
	Body      []Coord
	Food      Coord
	Direction Direction
	GameOver  bool
	Moves     uint64
}

func (s Snapshot) Head() Coord {
	if len(s.Body) == 0 {
		return Coord{}
	}
	return s.Body[0]
}

func (s Snapshot) Length() int {
	return len(s.Body)
}

func NewGame(config *GameConfig, rng Rand) (*Game, error) {
	if config == nil {
		config = DefaultGameConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	g := &Game{
		config: config.Copy(),
		field:  NewField(config.Width, config.Height),
		rng:    rng,
	}
	g.Restart()
	return g, nil
}

// Restart puts the game back into its initial conditions.
func (g *Game) Restart() {
	g.snake = NewSnake(g.config.Start, g.config.StartDirection)
	g.food = g.config.StartFood
	g.gameOver = false
	g.pending = 0
	g.moves = 0
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Field:     *g.field,
		Body:      g.snake.Body(),
		Food:      g.food,
		Direction: g.snake.HeadDirection(),
		GameOver:  g.gameOver,
		Moves:     g.moves,
	}
}

func (g *Game) Config() *GameConfig {
	return g.config.Copy()
}

func (g *Game) Field() Field {
	return *g.field
}

func (g *Game) Food() Coord {
	return g.food
}

func (g *Game) IsGameOver() bool {
	return g.gameOver
}

func (g *Game) State() GameStatus {
	if g.gameOver {
		return StatusGameOver
	}
	return StatusRunning
}

func (g *Game) SnakeLen() int {
	return g.snake.Len()
}

func (g *Game) HeadDirection() Direction {
	return g.snake.HeadDirection()
}
