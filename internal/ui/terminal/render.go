package terminal

import (
	"fmt"

	"snake/internal/domain"

	"github.com/gdamore/tcell/v2"
)

var (
	styleBackground = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleField      = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 24))
	styleSnake      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(204, 0, 0)).Background(tcell.NewRGBColor(20, 20, 24))
	styleSnakeHead  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(143, 0, 0)).Background(tcell.NewRGBColor(20, 20, 24))
	styleFood       = styleSnake
	styleText       = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	styleGameOver   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true)
)

const (
	blockRune = '█'
	// fieldTop leaves the first row for the status line.
	fieldTop = 1
)

// CellOrigin returns the terminal column and row of a grid cell's
// left half.
func CellOrigin(c domain.Coord) (int, int) {
	return c.X * cellColumns, c.Y + fieldTop
}

func (t *Terminal) Draw() {
	snap := t.app.Snapshot()

	t.screen.Clear()
	t.drawField(snap.Field)

	if snap.GameOver {
		t.drawGameOver(snap)
	} else {
		t.drawCell(snap.Food, styleFood)
		for i := len(snap.Body) - 1; i >= 0; i-- {
			style := styleSnake
			if i == 0 {
				style = styleSnakeHead
			}
			t.drawCell(snap.Body[i], style)
		}
	}

	status := fmt.Sprintf("Length: %d  Moves: %d", snap.Length(), snap.Moves)
	if t.message != "" {
		status += "  |  " + t.message
	}
	t.drawText(0, 0, status, styleText)

	t.screen.Show()
}

func (t *Terminal) drawField(field domain.Field) {
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width*cellColumns; x++ {
			t.screen.SetContent(x, y+fieldTop, ' ', nil, styleField)
		}
	}
}

func (t *Terminal) drawCell(c domain.Coord, style tcell.Style) {
	col, row := CellOrigin(c)
	for i := 0; i < cellColumns; i++ {
		t.screen.SetContent(col+i, row, blockRune, nil, style)
	}
}

func (t *Terminal) drawGameOver(snap domain.Snapshot) {
	title := "GAME OVER"
	hint := "R to restart, ESC to quit"

	w := snap.Field.Width * cellColumns
	mid := fieldTop + snap.Field.Height/2

	t.drawText((w-len(title))/2, mid-1, title, styleGameOver)
	t.drawText((w-len(hint))/2, mid+1, hint, styleText)
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
