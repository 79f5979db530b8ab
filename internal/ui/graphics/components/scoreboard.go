package components

import (
	"fmt"

	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scoreboard is the translucent strip in the top-left corner showing the
// current length and move count.
type Scoreboard struct {
	X, Y    int
	Padding int
}

func NewScoreboard(x, y int) *Scoreboard {
	return &Scoreboard{
		X:       x,
		Y:       y,
		Padding: 4,
	}
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, snap domain.Snapshot) {
	line := fmt.Sprintf("Length: %d  Moves: %d", snap.Length(), snap.Moves)

	w := types.TextWidth(line) + sb.Padding*2
	h := types.LineHeight() + sb.Padding*2

	vector.DrawFilledRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(w), float32(h),
		types.ColorOverlay, false)

	text.Draw(screen, line, types.Face, sb.X+sb.Padding, sb.Y+sb.Padding+types.Face.Metrics().Ascent.Ceil(), types.ColorText)
}

// DrawGameOver dims the whole field and centers the restart hint.
func DrawGameOver(screen *ebiten.Image, snap domain.Snapshot) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), types.ColorOverlay, false)

	title := "GAME OVER"
	hint := fmt.Sprintf("length %d  |  R to restart  |  ESC to quit", snap.Length())
	lh := types.LineHeight()

	text.Draw(screen, title, types.Face, (w-types.TextWidth(title))/2, h/2-lh, types.ColorError)
	text.Draw(screen, hint, types.Face, (w-types.TextWidth(hint))/2, h/2+lh, types.ColorTextDim)
}
