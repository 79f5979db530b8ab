package app

import (
	"fmt"
	"log"
	"time"

	"snake/internal/domain"

	"github.com/google/uuid"
)

// maxCatchUpSteps bounds how many overdue ticks one Update may run
// after the frame loop stalls.
const maxCatchUpSteps = 5

// App drives a single game on a fixed-step clock. All methods must be
// called from the adapter's frame loop goroutine.
type App struct {
	id     string
	config *domain.GameConfig
	game   *domain.Game

	lastStep time.Time
	armed    bool
	ended    bool

	eventCh chan AppEvent
}

func NewApp(config *domain.GameConfig, rng domain.Rand) (*App, error) {
	if config == nil {
		config = domain.DefaultGameConfig()
	}

	game, err := domain.NewGame(config, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	a := &App{
		id:      uuid.New().String(),
		config:  config.Copy(),
		game:    game,
		eventCh: make(chan AppEvent, 100),
	}

	log.Printf("Session %s: %dx%d field, step %v, %v input",
		a.id, config.Width, config.Height, config.StepDelay, config.InputMode)

	return a, nil
}

func (a *App) ID() string {
	return a.id
}

func (a *App) Config() *domain.GameConfig {
	return a.config.Copy()
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) Snapshot() domain.Snapshot {
	return a.game.Snapshot()
}

// Update runs every simulation tick that has come due by now and
// returns how many ran. The first call only starts the clock.
func (a *App) Update(now time.Time) int {
	if !a.armed {
		a.lastStep = now
		a.armed = true
		return 0
	}
	if a.game.IsGameOver() {
		a.lastStep = now
		return 0
	}

	steps := 0
	for now.Sub(a.lastStep) >= a.config.StepDelay {
		if steps == maxCatchUpSteps {
			a.lastStep = now
			break
		}
		a.lastStep = a.lastStep.Add(a.config.StepDelay)
		a.report(a.game.UpdateSnake())
		steps++

		if a.game.IsGameOver() {
			break
		}
	}
	return steps
}

func (a *App) HandleKey(key domain.Key) {
	a.report(a.game.HandleKeyEvent(key))
}

func (a *App) Restart() {
	a.game.Restart()
	a.armed = false
	a.ended = false

	log.Printf("Session %s: restarted", a.id)
	a.emit(AppEvent{Type: AppEventRestarted})
}

func (a *App) report(result domain.StepResult) {
	if result.Ate {
		length := a.game.SnakeLen()
		log.Printf("Session %s: food eaten, length %d, next food %v", a.id, length, result.Food)
		a.emit(AppEvent{
			Type:    AppEventFoodEaten,
			Payload: FoodEatenPayload{Length: length, NewFood: result.Food},
		})
	}

	if result.GameOver && !a.ended {
		a.ended = true
		snap := a.game.Snapshot()
		log.Printf("Session %s: game over at %v, length %d after %d moves",
			a.id, snap.Head(), snap.Length(), snap.Moves)
		a.emit(AppEvent{
			Type: AppEventGameOver,
			Payload: GameOverPayload{
				Length: snap.Length(),
				Head:   snap.Head(),
				Moves:  snap.Moves,
			},
		})
	}
}

func (a *App) emit(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		log.Printf("Session %s: event channel full, dropping %v", a.id, event.Type)
	}
}
