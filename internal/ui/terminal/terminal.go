package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"snake/internal/app"
	"snake/internal/domain"

	"github.com/gdamore/tcell/v2"
)

// frameInterval paces redraws; simulation ticks still follow the
// session's step delay.
const frameInterval = 16 * time.Millisecond

// Every grid cell is two columns wide so squares look square.
const cellColumns = 2

// Terminal renders a session with tcell. Only the Run goroutine touches
// the session; the poll goroutine just forwards events.
type Terminal struct {
	screen tcell.Screen
	app    *app.App

	message string
	now     func() time.Time
}

func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return screen, nil
}

func New(screen tcell.Screen, a *app.App) *Terminal {
	screen.SetStyle(styleBackground)
	screen.HideCursor()

	return &Terminal{
		screen: screen,
		app:    a,
		now:    time.Now,
	}
}

// Run drives the frame loop until the player quits or ctx is done. The
// screen is finalized before Run returns.
func (t *Terminal) Run(ctx context.Context) error {
	defer t.screen.Fini()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventCh := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	}()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventCh:
			if !t.HandleEvent(ev) {
				log.Printf("Session %s: quit requested", t.app.ID())
				return nil
			}

		case <-ticker.C:
			t.Step()
		}
	}
}

// Step advances the session clock, collects its events and redraws.
func (t *Terminal) Step() {
	t.app.Update(t.now())
	t.drainEvents()
	t.Draw()
}

// HandleEvent returns false when the event asks to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.HandleKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		t.screen.Sync()
		t.Draw()
	}
	return true
}

func (t *Terminal) HandleKey(key tcell.Key, ch rune) bool {
	switch act, gameKey := translate(key, ch); act {
	case actionQuit:
		return false
	case actionRestart:
		t.app.Restart()
	case actionSteer:
		t.app.HandleKey(gameKey)
	}
	t.drainEvents()
	t.Draw()
	return true
}

func (t *Terminal) drainEvents() {
	for {
		select {
		case event := <-t.app.Events():
			switch event.Type {
			case app.AppEventFoodEaten:
				if p, ok := event.Payload.(app.FoodEatenPayload); ok {
					t.message = fmt.Sprintf("Yum! length %d", p.Length)
				}
			case app.AppEventGameOver:
				t.message = "Game over"
			case app.AppEventRestarted:
				t.message = ""
			}
		default:
			return
		}
	}
}

type action int

const (
	actionSteer action = iota
	actionRestart
	actionQuit
)

func translate(key tcell.Key, ch rune) (action, domain.Key) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, domain.KeyOther
	case tcell.KeyUp:
		return actionSteer, domain.KeyUp
	case tcell.KeyDown:
		return actionSteer, domain.KeyDown
	case tcell.KeyLeft:
		return actionSteer, domain.KeyLeft
	case tcell.KeyRight:
		return actionSteer, domain.KeyRight
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return actionQuit, domain.KeyOther
		case 'r', 'R':
			return actionRestart, domain.KeyOther
		case 'w', 'W':
			return actionSteer, domain.KeyUp
		case 's', 'S':
			return actionSteer, domain.KeyDown
		case 'a', 'A':
			return actionSteer, domain.KeyLeft
		case 'd', 'D':
			return actionSteer, domain.KeyRight
		}
	}
	return actionSteer, domain.KeyOther
}
