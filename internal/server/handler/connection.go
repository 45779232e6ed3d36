package handler

import (
	"time"

	"github.com/palemoky/tower-race/internal/protocol"
	"github.com/palemoky/tower-race/internal/types"
)

// handlePing 处理心跳
func (h *Handler) handlePing(client types.ClientInterface, msg *protocol.Message) {
	var clientTS int64
	if payload, err := protocol.ParsePayload[protocol.PingPayload](msg); err == nil {
		clientTS = payload.Timestamp
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		ClientTimestamp: clientTS,
		ServerTimestamp: time.Now().UnixMilli(),
	}))
}
