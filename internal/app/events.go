package app

import "snake/internal/domain"

type AppEventType int

const (
	AppEventFoodEaten AppEventType = iota
	AppEventGameOver
	AppEventRestarted
)

func (t AppEventType) String() string {
	switch t {
	case AppEventFoodEaten:
		return "food-eaten"
	case AppEventGameOver:
		return "game-over"
	case AppEventRestarted:
		return "restarted"
	}
	return "unknown"
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type FoodEatenPayload struct {
	Length  int
	NewFood domain.Coord
}

type GameOverPayload struct {
	Length int
	Head   domain.Coord
	Moves  uint64
}
