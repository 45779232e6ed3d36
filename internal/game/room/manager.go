package room

import (
	"log"
	"math/rand"
	"time"

	"github.com/palemoky/tower-race/internal/apperrors"
	"github.com/palemoky/tower-race/internal/game/engine"
	"github.com/palemoky/tower-race/internal/protocol"
	"github.com/palemoky/tower-race/internal/types"
)

// CreateRoom 创建房间，房主绑定到西队，房间进入 lobby 阶段
func (m *Manager) CreateRoom(client types.ClientInterface, playerName string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	code := m.generateRoomCode()

	room := &Room{
		Code:      code,
		CreatedAt: time.Now(),
		State:     engine.NewState(m.rules),
		Clients:   make(map[engine.Team]types.ClientInterface),
	}
	room.State.Bind(engine.TeamWest, playerName)
	room.Clients[engine.TeamWest] = client

	client.SetName(playerName)
	client.SetRoom(code)
	m.rooms[code] = room

	m.mirrorRoom(room)

	log.Printf("🏠 房间 %s 已创建，房主 %s", code, playerName)

	return room, nil
}

// JoinRoom 加入房间，绑定到东队，房间进入 waiting 阶段。
// 整个加入过程持有注册表写锁，与开局前的房间解散互斥，
// 避免把玩家绑定进一个刚被删除的房间。
func (m *Manager) JoinRoom(client types.ClientInterface, code, playerName string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, exists := m.rooms[code]
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.State.Player(engine.TeamEast) != nil {
		return nil, apperrors.ErrRoomFull
	}

	room.State.Bind(engine.TeamEast, playerName)
	room.Clients[engine.TeamEast] = client

	client.SetName(playerName)
	client.SetRoom(code)

	log.Printf("👤 玩家 %s 加入房间 %s", playerName, code)

	// 通知房主
	room.send(engine.TeamWest, protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		OpponentName: playerName,
	}))

	m.mirrorRoom(room)

	return room, nil
}

// SetReady 标记玩家已准备，双方都准备后开始对局
func (m *Manager) SetReady(client types.ClientInterface) error {
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

	bothReady := room.State.SetReady(team)

	room.broadcast(protocol.MustNewMessage(protocol.MsgPlayerReady, protocol.PlayerReadyPayload{
		Team: team,
	}))

	if bothReady && room.State.Phase == engine.PhaseWaiting {
		room.State.Start()
		room.sendProjections(protocol.MsgGameStart)
		m.mirrorRoom(room)
		log.Printf("🎮 房间 %s 对局开始", room.Code)
	}

	return nil
}

// HandleDisconnect 处理连接断开。
// lobby/waiting 阶段的房间直接解散（房间号可复用）；
// playing/finished 阶段的房间保留以便再来一局，仅通知留守方。
func (m *Manager) HandleDisconnect(client types.ClientInterface) {
	code := client.GetRoom()
	if code == "" {
		return
	}

	// 与 JoinRoom 相同的锁序（注册表锁 → 房间锁）：
	// 查找、阶段判断和删除在同一临界区内完成，加入中的玩家
	// 要么在删除前已绑定（会收到掉线通知），要么查不到房间。
	m.mu.Lock()
	defer m.mu.Unlock()

	room, exists := m.rooms[code]
	if !exists {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	team, ok := room.teamOf(client.GetID())
	if !ok {
		return
	}

	room.Clients[team] = nil
	client.SetRoom("")

	room.send(team.Opponent(), protocol.MustNewMessage(protocol.MsgPlayerDisconnected, nil))

	switch room.State.Phase {
	case engine.PhaseLobby, engine.PhaseWaiting:
		delete(m.rooms, code)
		m.deleteMirror(code)
		log.Printf("🏠 房间 %s 已解散（对局未开始）", code)
	default:
		m.mirrorRoom(room)
		log.Printf("📴 玩家 %s 离开房间 %s，房间保留", client.GetName(), code)
	}
}

// GetRoom 按房间号获取房间
func (m *Manager) GetRoom(code string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rooms[code]
}

// RoomCount 当前活跃房间数
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// roomOf 按客户端所在房间号查找房间
func (m *Manager) roomOf(client types.ClientInterface) (*Room, error) {
	code := client.GetRoom()
	if code == "" {
		return nil, apperrors.ErrNotInRoom
	}

	m.mu.RLock()
	room, exists := m.rooms[code]
	m.mu.RUnlock()
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}
	return room, nil
}

// generateRoomCode 生成未被占用的房间号，碰撞时重新生成。
// 调用方需持有 m.mu。
func (m *Manager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.Intn(len(roomCodeChars))]
		}
		codeStr := string(code)
		if _, exists := m.rooms[codeStr]; !exists {
			return codeStr
		}
	}
}
