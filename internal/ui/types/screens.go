package types

import (
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
)

type Screen interface {
	Update() []UIEvent
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}

type ScreenContext interface {
	Size() (int, int)
	Snapshot() domain.Snapshot
}
