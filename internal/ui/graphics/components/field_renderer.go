package components

import (
	"image/color"

	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer maps grid cells to squares at (x*CellSize, y*CellSize).
type FieldRenderer struct {
	CellSize int
}

func NewFieldRenderer(cellSize int) *FieldRenderer {
	return &FieldRenderer{
		CellSize: cellSize,
	}
}

func (fr *FieldRenderer) Size(field domain.Field) (int, int) {
	return field.Width * fr.CellSize, field.Height * fr.CellSize
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, field domain.Field) {
	w, h := fr.Size(field)

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), types.ColorFieldBg, false)

	for x := 0; x <= field.Width; x++ {
		x1 := float32(x * fr.CellSize)
		vector.StrokeLine(screen, x1, 0, x1, float32(h), 1, types.ColorGrid, false)
	}
	for y := 0; y <= field.Height; y++ {
		y1 := float32(y * fr.CellSize)
		vector.StrokeLine(screen, 0, y1, float32(w), y1, 1, types.ColorGrid, false)
	}
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, food domain.Coord) {
	fr.drawCell(screen, food, types.ColorFood)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, body []domain.Coord) {
	for i := len(body) - 1; i >= 0; i-- {
		cellColor := types.ColorSnake
		if i == 0 {
			cellColor = types.SnakeHeadColor
		}
		fr.drawCell(screen, body[i], cellColor)
	}
}

func (fr *FieldRenderer) drawCell(screen *ebiten.Image, c domain.Coord, clr color.Color) {
	x := float32(c.X * fr.CellSize)
	y := float32(c.Y * fr.CellSize)
	size := float32(fr.CellSize)

	vector.DrawFilledRect(screen, x, y, size, size, clr, false)
}
