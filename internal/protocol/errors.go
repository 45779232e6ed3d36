package protocol

// 错误码
const (
	ErrCodeUnknown         = 1000
	ErrCodeInvalidMsg      = 1001
	ErrCodeRateLimit       = 1002 // 速率限制
	ErrCodeRoomNotFound    = 2001
	ErrCodeRoomFull        = 2002
	ErrCodeNotInRoom       = 2003
	ErrCodeGameNotStart    = 3001
	ErrCodeGameFinished    = 3002
	ErrCodeActionLocked    = 3003 // 被锁定在修建远塔中
	ErrCodeInvalidAction   = 3004
	ErrCodeGameNotFinished = 3005
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:         "未知错误",
	ErrCodeInvalidMsg:      "无效的消息格式",
	ErrCodeRateLimit:       "请求过于频繁",
	ErrCodeRoomNotFound:    "房间不存在",
	ErrCodeRoomFull:        "房间已满",
	ErrCodeNotInRoom:       "您不在房间中",
	ErrCodeGameNotStart:    "游戏尚未开始",
	ErrCodeGameFinished:    "游戏已结束",
	ErrCodeActionLocked:    "您被锁定在修建远塔中",
	ErrCodeInvalidAction:   "无效的行动",
	ErrCodeGameNotFinished: "游戏尚未结束",
}
