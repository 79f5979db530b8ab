package graphics

import (
	"fmt"
	"log"
	"time"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type Engine struct {
	width  int
	height int

	app    *app.App
	screen types.Screen

	now func() time.Time
}

func NewEngine(a *app.App) *Engine {
	cfg := a.Config()

	return &Engine{
		width:  cfg.Width * cfg.CellSize,
		height: cfg.Height * cfg.CellSize,
		app:    a,
		now:    time.Now,
	}
}

func (e *Engine) RegisterScreen(screen types.Screen) {
	if e.screen != nil {
		e.screen.OnExit()
	}
	e.screen = screen
	e.screen.OnEnter()
}

func (e *Engine) Run() error {
	if e.screen == nil {
		return fmt.Errorf("no screen registered")
	}

	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("failed to run game loop: %w", err)
	}
	return nil
}

func (e *Engine) Update() error {
	for _, event := range e.screen.Update() {
		if quit := e.handleEvent(event); quit {
			log.Printf("Session %s: quit requested", e.app.ID())
			return ebiten.Termination
		}
	}

	e.app.Update(e.now())
	e.handleAppEvents()

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	e.screen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Snapshot() domain.Snapshot {
	return e.app.Snapshot()
}

func (e *Engine) handleEvent(event types.UIEvent) bool {
	switch event.Type {
	case types.UIEventSteer:
		data := event.Payload.(types.SteerData)
		e.app.HandleKey(data.Key)

	case types.UIEventRestart:
		e.app.Restart()

	case types.UIEventQuit:
		return true
	}
	return false
}

func (e *Engine) handleAppEvents() {
	for {
		select {
		case event := <-e.app.Events():
			e.setMessage(describe(event))
		default:
			return
		}
	}
}

func (e *Engine) setMessage(msg string) {
	if s, ok := e.screen.(MessageSetter); ok {
		s.SetMessage(msg)
	}
}

func describe(event app.AppEvent) string {
	switch event.Type {
	case app.AppEventFoodEaten:
		if p, ok := event.Payload.(app.FoodEatenPayload); ok {
			return fmt.Sprintf("Yum! length %d", p.Length)
		}
	case app.AppEventGameOver:
		return "Game over"
	}
	return ""
}

type MessageSetter interface {
	SetMessage(msg string)
}
