package room

import (
	"context"

	"github.com/palemoky/tower-race/internal/game/engine"
	"github.com/palemoky/tower-race/internal/logger"
	"github.com/palemoky/tower-race/internal/server/storage"
)

// toRoomData 将房间转换为可序列化的快照。
// 调用方需独占房间（持有 room.mu 或房间尚未发布）。
func (r *Room) toRoomData() *storage.RoomData {
	data := &storage.RoomData{
		Code:      r.Code,
		Phase:     string(r.State.Phase),
		Turn:      r.State.Turn,
		Towers:    r.State.Towers,
		CreatedAt: r.CreatedAt.Unix(),
	}

	if winner := r.State.Winner; winner != nil {
		data.Winner = string(*winner)
	}

	for _, team := range []engine.Team{engine.TeamWest, engine.TeamEast} {
		p := r.State.Player(team)
		if p == nil {
			continue
		}
		data.Players = append(data.Players, storage.PlayerData{
			Team:              string(team),
			Name:              p.Name,
			Ready:             p.Ready,
			Wheelbarrows:      p.Wheelbarrows,
			Bricks:            p.Bricks,
			FarTowerLockTurns: p.FarTowerLockTurns,
			Online:            r.Clients[team] != nil,
		})
	}

	return data
}

// mirrorRoom 把房间快照异步镜像到 Redis（仅用于运维可见性，不做恢复）
func (m *Manager) mirrorRoom(room *Room) {
	if m.redisStore == nil {
		return
	}
	data := room.toRoomData()
	go func() {
		if err := m.redisStore.SaveRoom(context.Background(), data.Code, data); err != nil {
			logger.LogError("镜像房间 %s 失败: %v", data.Code, err)
		}
	}()
}

// deleteMirror 删除 Redis 中的房间镜像
func (m *Manager) deleteMirror(code string) {
	if m.redisStore == nil {
		return
	}
	go func() {
		if err := m.redisStore.DeleteRoom(context.Background(), code); err != nil {
			logger.LogError("删除房间镜像 %s 失败: %v", code, err)
		}
	}()
}

// recordResult 将胜负结果异步写入排行榜。
// 调用方需持有 room.mu；已断开的槽位不计入。
func (m *Manager) recordResult(room *Room, winner engine.Team) {
	if m.leaderboard == nil {
		return
	}

	// 排行榜以昵称为主键，断线重连后仍能累计
	type entry struct {
		name string
		won  bool
	}
	var entries []entry
	for _, team := range []engine.Team{engine.TeamWest, engine.TeamEast} {
		c := room.Clients[team]
		p := room.State.Player(team)
		if c == nil || p == nil {
			continue
		}
		entries = append(entries, entry{name: p.Name, won: team == winner})
	}

	go func() {
		ctx := context.Background()
		for _, e := range entries {
			if err := m.leaderboard.RecordResult(ctx, e.name, e.name, e.won); err != nil {
				logger.LogError("记录玩家 %s 的比赛结果失败: %v", e.name, err)
			}
		}
	}()
}
