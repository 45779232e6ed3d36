package room

import (
	"sync"
	"time"

	"github.com/palemoky/tower-race/internal/game/engine"
	"github.com/palemoky/tower-race/internal/protocol"
	"github.com/palemoky/tower-race/internal/server/storage"
	"github.com/palemoky/tower-race/internal/types"
)

const (
	roomCodeLength = 6                                      // 房间号长度
	roomCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" // 房间号字符集
)

// Room 一局比赛的房间。
// 所有对 State 的修改（提交、准备、再来一局、掉线）都必须
// 持有 mu 串行执行，双方并发提交不会交错出撕裂的结算。
type Room struct {
	Code      string
	CreatedAt time.Time
	State     *engine.State
	Clients   map[engine.Team]types.ClientInterface

	mu sync.Mutex
}

// Manager 房间注册表：短房间号 → 唯一房间
type Manager struct {
	rules       engine.Rules
	redisStore  *storage.RedisStore
	leaderboard *storage.LeaderboardManager
	rooms       map[string]*Room
	mu          sync.RWMutex
}

// NewManager 创建房间注册表。redisStore 和 leaderboard 可为 nil（测试场景）。
func NewManager(rules engine.Rules, rs *storage.RedisStore, lb *storage.LeaderboardManager) *Manager {
	return &Manager{
		rules:       rules,
		redisStore:  rs,
		leaderboard: lb,
		rooms:       make(map[string]*Room),
	}
}

// teamOf 返回客户端在房间中的队伍，不在房间中时第二个返回值为 false。
// 调用方需持有 r.mu。
func (r *Room) teamOf(clientID string) (engine.Team, bool) {
	for team, c := range r.Clients {
		if c != nil && c.GetID() == clientID {
			return team, true
		}
	}
	return "", false
}

// send 向某队的连接发送消息，槽位已断开时静默跳过
func (r *Room) send(team engine.Team, msg *protocol.Message) {
	if c := r.Clients[team]; c != nil {
		c.SendMessage(msg)
	}
}

// broadcast 向双方连接发送同一条消息
func (r *Room) broadcast(msg *protocol.Message) {
	r.send(engine.TeamWest, msg)
	r.send(engine.TeamEast, msg)
}

// projectionFor 派生某队的投影并填充房间号
func (r *Room) projectionFor(team engine.Team) engine.Projection {
	proj := r.State.Project(team)
	proj.RoomCode = r.Code
	return proj
}

// sendProjections 向双方各自发送独立派生的投影
func (r *Room) sendProjections(msgType protocol.MessageType) {
	for _, team := range []engine.Team{engine.TeamWest, engine.TeamEast} {
		r.send(team, protocol.MustNewMessage(msgType, protocol.GameStatePayload{
			GameState: r.projectionFor(team),
		}))
	}
}
