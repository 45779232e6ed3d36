package handler

import (
	"strings"

	"github.com/palemoky/tower-race/internal/game/engine"
	"github.com/palemoky/tower-race/internal/protocol"
	"github.com/palemoky/tower-race/internal/types"
)

const maxPlayerNameLength = 20

// normalizePlayerName 清理玩家昵称，空昵称回退为"玩家"
func normalizePlayerName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "玩家"
	}
	if len([]rune(name)) > maxPlayerNameLength {
		name = string([]rune(name)[:maxPlayerNameLength])
	}
	return name
}

// handleCreateRoom 处理创建房间请求
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	room, err := h.deps.RoomManager.CreateRoom(client, normalizePlayerName(payload.PlayerName))
	if err != nil {
		sendGameError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		RoomCode: room.Code,
		Team:     engine.TeamWest,
	}))
}

// handleJoinRoom 处理加入房间请求
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	code := strings.ToUpper(strings.TrimSpace(payload.RoomCode))
	room, err := h.deps.RoomManager.JoinRoom(client, code, normalizePlayerName(payload.PlayerName))
	if err != nil {
		sendGameError(client, err)
		return
	}

	var opponentName string
	if p := room.State.Player(engine.TeamWest); p != nil {
		opponentName = p.Name
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		RoomCode:     room.Code,
		Team:         engine.TeamEast,
		OpponentName: opponentName,
	}))
}

// handleReady 处理准备就绪请求
func (h *Handler) handleReady(client types.ClientInterface, msg *protocol.Message) {
	if err := h.deps.RoomManager.SetReady(client); err != nil {
		sendGameError(client, err)
	}
}
