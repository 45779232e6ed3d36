package handler

import (
	"strings"

	"github.com/palemoky/tower-race/internal/protocol"
	"github.com/palemoky/tower-race/internal/types"
)

const maxChatLength = 200

// handleChat 处理聊天消息
func (h *Handler) handleChat(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ChatPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	content := strings.TrimSpace(payload.Content)
	if content == "" {
		return
	}
	if len([]rune(content)) > maxChatLength {
		content = string([]rune(content)[:maxChatLength])
	}

	if h.deps.ChatLimiter != nil {
		if allowed, reason := h.deps.ChatLimiter.AllowChat(client.GetID()); !allowed {
			client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeRateLimit, reason))
			return
		}
	}

	if err := h.deps.RoomManager.Chat(client, content); err != nil {
		sendGameError(client, err)
	}
}
