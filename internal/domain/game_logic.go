package domain

// StepResult describes what a single move did.
type StepResult struct {
	Moved    bool
	Ate      bool
	GameOver bool
	Head     Coord
	Food     Coord
}

// HandleKeyEvent applies a key press. Reversals are discarded. In
// InputImmediate mode an accepted press moves the snake right away;
// in InputBuffered mode it is held for the next UpdateSnake.
func (g *Game) HandleKeyEvent(key Key) StepResult {
	if g.gameOver {
		return StepResult{GameOver: true}
	}

	dir, ok := key.Direction()
	if !ok {
		dir = g.snake.HeadDirection()
	}
	if dir.IsOpposite(g.snake.HeadDirection()) {
		return StepResult{}
	}

	if g.config.InputMode == InputBuffered {
		if ok {
			g.pending = dir
		}
		return StepResult{}
	}

	g.snake.SetDirection(dir)
	return g.step()
}

// UpdateSnake advances the simulation by one tick.
func (g *Game) UpdateSnake() StepResult {
	if g.gameOver {
		return StepResult{GameOver: true}
	}
	if g.pending != 0 {
		g.snake.SetDirection(g.pending)
		g.pending = 0
	}
	return g.step()
}

func (g *Game) step() StepResult {
	if !g.checkIfSnakeAlive() {
		g.gameOver = true
		return StepResult{GameOver: true, Head: g.snake.Head(), Food: g.food}
	}

	g.snake.MoveForward(0)
	g.moves++

	result := StepResult{Moved: true, Head: g.snake.Head()}
	result.Ate = g.checkEating()
	result.Food = g.food
	result.GameOver = g.gameOver
	return result
}

func (g *Game) checkIfSnakeAlive() bool {
	next := g.field.Move(g.snake.Head(), g.snake.HeadDirection())
	return g.field.Contains(next) && !g.snake.OverlapTail(next.X, next.Y)
}

// checkEating keeps the grown body when the head lands on food and
// trims the tail otherwise.
func (g *Game) checkEating() bool {
	if !g.snake.Head().Equals(g.food) {
		g.snake.TrimTail()
		return false
	}
	g.AddFood()
	return true
}

// AddFood moves the food to a random interior cell not covered by the
// snake. Rejection sampling is bounded by FoodAttempts; after that a
// uniform choice is made over the free interior cells. If none is free
// the board is full and the game ends.
func (g *Game) AddFood() (Coord, bool) {
	w, h := g.field.InteriorSize()

	for attempt := 0; attempt < g.config.FoodAttempts; attempt++ {
		x := 1 + g.rng.Intn(w)
		y := 1 + g.rng.Intn(h)
		if !g.snake.OverlapTail(x, y) {
			g.food = Coord{X: x, Y: y}
			return g.food, true
		}
	}

	var chosen Coord
	free := 0
	for y := 1; y <= h; y++ {
		for x := 1; x <= w; x++ {
			if g.snake.OverlapTail(x, y) {
				continue
			}
			free++
			if g.rng.Intn(free) == 0 {
				chosen = Coord{X: x, Y: y}
			}
		}
	}

	if free == 0 {
		g.gameOver = true
		return g.food, false
	}
	g.food = chosen
	return chosen, true
}
