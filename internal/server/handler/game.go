package handler

import (
	"github.com/palemoky/tower-race/internal/game/engine"
	"github.com/palemoky/tower-race/internal/protocol"
	"github.com/palemoky/tower-race/internal/types"
)

// handleSubmitAction 处理提交行动请求
func (h *Handler) handleSubmitAction(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SubmitActionPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	action, err := engine.ParseAction(payload.Action)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidAction))
		return
	}

	if err := h.deps.RoomManager.SubmitAction(client, action); err != nil {
		sendGameError(client, err)
	}
}

// handleRequestRematch 处理再来一局请求
func (h *Handler) handleRequestRematch(client types.ClientInterface, msg *protocol.Message) {
	if err := h.deps.RoomManager.RequestRematch(client); err != nil {
		sendGameError(client, err)
	}
}
