package input

import (
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardHandler collects the keys pressed this frame and translates
// them for the game. Escape and R are adapter keys and never reach the
// game.
type KeyboardHandler struct {
	pressed []ebiten.Key
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

func (kh *KeyboardHandler) Update() []domain.Key {
	kh.pressed = inpututil.AppendJustPressedKeys(kh.pressed[:0])

	var keys []domain.Key
	for _, k := range kh.pressed {
		if k == ebiten.KeyEscape || k == ebiten.KeyR {
			continue
		}
		keys = append(keys, TranslateKey(k))
	}
	return keys
}

func TranslateKey(k ebiten.Key) domain.Key {
	switch k {
	case ebiten.KeyW, ebiten.KeyUp:
		return domain.KeyUp
	case ebiten.KeyS, ebiten.KeyDown:
		return domain.KeyDown
	case ebiten.KeyA, ebiten.KeyLeft:
		return domain.KeyLeft
	case ebiten.KeyD, ebiten.KeyRight:
		return domain.KeyRight
	}
	return domain.KeyOther
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsRestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
