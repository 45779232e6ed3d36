package apperrors

import (
	"errors"

	"github.com/palemoky/tower-race/internal/game/engine"
	"github.com/palemoky/tower-race/internal/protocol"
)

// GameError 游戏错误（房间和结算引擎共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound    = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrRoomFull        = &GameError{Code: protocol.ErrCodeRoomFull, Message: "房间已满"}
	ErrNotInRoom       = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "您不在房间中"}
	ErrGameNotStart    = &GameError{Code: protocol.ErrCodeGameNotStart, Message: "游戏尚未开始"}
	ErrGameFinished    = &GameError{Code: protocol.ErrCodeGameFinished, Message: "游戏已结束"}
	ErrGameNotFinished = &GameError{Code: protocol.ErrCodeGameNotFinished, Message: "游戏尚未结束"}
	ErrActionLocked    = &GameError{Code: protocol.ErrCodeActionLocked, Message: "您被锁定在修建远塔中"}
	ErrInvalidAction   = &GameError{Code: protocol.ErrCodeInvalidAction, Message: "无效的行动"}
)

// FromEngine 将结算引擎的错误映射为带错误码的 GameError
func FromEngine(err error) *GameError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, engine.ErrGameNotStarted):
		return ErrGameNotStart
	case errors.Is(err, engine.ErrGameFinished):
		return ErrGameFinished
	case errors.Is(err, engine.ErrGameNotFinished):
		return ErrGameNotFinished
	case errors.Is(err, engine.ErrActionLocked):
		return ErrActionLocked
	default:
		return &GameError{Code: protocol.ErrCodeUnknown, Message: err.Error()}
	}
}
