package handler

import (
	"errors"
	"log"

	"github.com/palemoky/tower-race/internal/apperrors"
	"github.com/palemoky/tower-race/internal/game/room"
	"github.com/palemoky/tower-race/internal/protocol"
	"github.com/palemoky/tower-race/internal/server/storage"
	"github.com/palemoky/tower-race/internal/types"
)

// handlerFunc 消息处理函数
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// HandlerDeps 处理器依赖
type HandlerDeps struct {
	RoomManager *room.Manager
	ChatLimiter types.ChatLimiter
	Leaderboard *storage.LeaderboardManager
}

// Handler 消息路由器
type Handler struct {
	deps     HandlerDeps
	handlers map[protocol.MessageType]handlerFunc
}

// NewHandler 创建消息处理器
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{deps: deps}

	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接
		protocol.MsgPing: h.handlePing,

		// 房间
		protocol.MsgCreateRoom: h.handleCreateRoom,
		protocol.MsgJoinRoom:   h.handleJoinRoom,
		protocol.MsgReady:      h.handleReady,

		// 游戏
		protocol.MsgSubmitAction:   h.handleSubmitAction,
		protocol.MsgRequestRematch: h.handleRequestRematch,

		// 信息查询
		protocol.MsgGetStats:       h.handleGetStats,
		protocol.MsgGetLeaderboard: h.handleGetLeaderboard,
		protocol.MsgChat:           h.handleChat,
	}

	return h
}

// Handle 路由消息到对应处理函数
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	fn, ok := h.handlers[msg.Type]
	if !ok {
		log.Printf("🚫 未知消息类型: %s", msg.Type)
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeInvalidMsg, "未知消息类型"))
		return
	}

	fn(client, msg)
}

// sendGameError 将带错误码的错误发给客户端
func sendGameError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
