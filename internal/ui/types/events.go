package types

import (
	"snake/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventSteer UIEventType = iota
	UIEventRestart
	UIEventQuit
)

type SteerData struct {
	Key domain.Key
}
