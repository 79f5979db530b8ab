package screens

import (
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreboard    *components.Scoreboard
	keyboard      *input.KeyboardHandler

	message string
}

func NewGameScreen(ctx types.ScreenContext, cellSize int) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(cellSize),
		scoreboard:    components.NewScoreboard(4, 4),
		keyboard:      input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) Update() []types.UIEvent {
	if input.IsEscapePressed() {
		return []types.UIEvent{{Type: types.UIEventQuit}}
	}

	var events []types.UIEvent
	if input.IsRestartPressed() {
		events = append(events, types.UIEvent{Type: types.UIEventRestart})
	}
	for _, key := range s.keyboard.Update() {
		events = append(events, types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Key: key},
		})
	}
	return events
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	snap := s.ctx.Snapshot()
	s.fieldRenderer.DrawField(screen, snap.Field)

	if snap.GameOver {
		components.DrawGameOver(screen, snap)
	} else {
		s.fieldRenderer.DrawFood(screen, snap.Food)
		s.fieldRenderer.DrawSnake(screen, snap.Body)
		s.scoreboard.Draw(screen, snap)
	}

	s.drawFooter(screen)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image) {
	if s.message == "" {
		return
	}
	w, h := s.ctx.Size()
	text.Draw(screen, s.message, types.Face, w-types.TextWidth(s.message)-6, h-6, types.ColorTextHighlight)
}

func (s *GameScreen) OnEnter() {
	s.message = ""
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetMessage(msg string) {
	s.message = msg
}
