package room

import (
	"log"
	"time"

	"github.com/palemoky/tower-race/internal/apperrors"
	"github.com/palemoky/tower-race/internal/game/engine"
	"github.com/palemoky/tower-race/internal/protocol"
	"github.com/palemoky/tower-race/internal/types"
)

// SubmitAction 提交本回合行动。
// 提交即返回，不等待对方；对方收到 action_submitted 通知（仅含队伍）。
// 双方都已提交时立即原子结算，并按视角分别推送结果。
func (m *Manager) SubmitAction(client types.ClientInterface, action engine.Action) error {
	room, err := m.roomOf(client)
	if err != nil {
		return err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	team, ok := room.teamOf(client.GetID())
	if !ok {
		return apperrors.ErrNotInRoom
	}

	bothPending, err := room.State.Submit(team, action)
	if err != nil {
		return apperrors.FromEngine(err)
	}

	room.send(team.Opponent(), protocol.MustNewMessage(protocol.MsgActionSubmitted, protocol.ActionSubmittedPayload{
		Team: team,
	}))

	log.Printf("⚔️ 房间 %s: %s 队提交了行动", room.Code, team)

	if !bothPending {
		return nil
	}

	room.State.Resolve()

	if winner := room.State.Winner; winner != nil {
		for _, t := range []engine.Team{engine.TeamWest, engine.TeamEast} {
			room.send(t, protocol.MustNewMessage(protocol.MsgGameOver, protocol.GameOverPayload{
				Winner:    *winner,
				GameState: room.projectionFor(t),
			}))
		}
		m.recordResult(room, *winner)
		log.Printf("🏆 房间 %s: %s 队获胜（回合 %d）", room.Code, *winner, room.State.Turn)
	} else {
		room.sendProjections(protocol.MsgTurnResolved)
		log.Printf("⏱️ 房间 %s: 回合 %d 结算完毕", room.Code, room.State.Turn)
	}

	m.mirrorRoom(room)

	return nil
}

// RequestRematch 请求再来一局，双方都请求后重置对局
func (m *Manager) RequestRematch(client types.ClientInterface) error {
	room, err := m.roomOf(client)
	if err != nil {
		return err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	team, ok := room.teamOf(client.GetID())
	if !ok {
		return apperrors.ErrNotInRoom
	}

	both, err := room.State.RequestRematch(team)
	if err != nil {
		return apperrors.FromEngine(err)
	}

	room.send(team.Opponent(), protocol.MustNewMessage(protocol.MsgRematchRequested, protocol.RematchRequestedPayload{
		Team: team,
	}))

	if both {
		room.State.ResetForRematch()
		room.sendProjections(protocol.MsgRematchStart)
		m.mirrorRoom(room)
		log.Printf("🔄 房间 %s 再来一局", room.Code)
	}

	return nil
}

// Chat 在房间内转发聊天消息
func (m *Manager) Chat(client types.ClientInterface, content string) error {
	room, err := m.roomOf(client)
	if err != nil {
		return err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if _, ok := room.teamOf(client.GetID()); !ok {
		return apperrors.ErrNotInRoom
	}

	room.broadcast(protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
		SenderName: client.GetName(),
		Content:    content,
		Time:       time.Now().UnixMilli(),
	}))

	return nil
}
