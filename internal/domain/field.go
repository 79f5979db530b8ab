package domain

// Field is the bounded playing grid. Unlike a wrapping board, cells
// outside it are walls.
type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

// Interior reports whether c lies inside the outermost border ring.
// Food is only ever placed on interior cells.
func (f *Field) Interior(c Coord) bool {
	return c.X >= 1 && c.X < f.Width-1 && c.Y >= 1 && c.Y < f.Height-1
}

// InteriorSize returns the dimensions of the interior rectangle.
func (f *Field) InteriorSize() (int, int) {
	return f.Width - 2, f.Height - 2
}

func (f *Field) Move(c Coord, d Direction) Coord {
	return c.Add(d.Delta())
}
