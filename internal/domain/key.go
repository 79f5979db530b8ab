package domain

// Key is a key press as seen by the game. Adapters translate their
// toolkit's key codes into these before forwarding.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Direction maps an arrow key to its heading. KeyOther reports false,
// which the game treats as "keep the current direction".
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return DirectionUp, true
	case KeyDown:
		return DirectionDown, true
	case KeyLeft:
		return DirectionLeft, true
	case KeyRight:
		return DirectionRight, true
	}
	return 0, false
}
