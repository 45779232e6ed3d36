package protocol

import (
	"github.com/palemoky/tower-race/internal/game/engine"
)

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	PlayerName string `json:"player_name"`
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name"`
}

// SubmitActionPayload 提交行动请求
type SubmitActionPayload struct {
	Action string `json:"action"` // wheelbarrow/bricks/build_near/build_far/observe
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Offset int `json:"offset"` // 偏移量
	Limit  int `json:"limit"`  // 数量
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID string `json:"player_id"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"` // 客户端发送的时间戳
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	RoomCode string      `json:"room_code"`
	Team     engine.Team `json:"team"`
}

// RoomJoinedPayload 加入房间成功响应
type RoomJoinedPayload struct {
	RoomCode     string      `json:"room_code"`
	Team         engine.Team `json:"team"`
	OpponentName string      `json:"opponent_name"`
}

// PlayerJoinedPayload 对手加入通知（发给房主）
type PlayerJoinedPayload struct {
	OpponentName string `json:"opponent_name"`
}

// PlayerReadyPayload 玩家准备通知
type PlayerReadyPayload struct {
	Team engine.Team `json:"team"`
}

// GameStatePayload 携带单队视角投影的通知
// （game_start / turn_resolved / rematch_start 共用）
type GameStatePayload struct {
	GameState engine.Projection `json:"game_state"`
}

// ActionSubmittedPayload 对手已提交行动通知，只含队伍不含内容
type ActionSubmittedPayload struct {
	Team engine.Team `json:"team"`
}

// GameOverPayload 游戏结束通知
type GameOverPayload struct {
	Winner    engine.Team       `json:"winner"`
	GameState engine.Projection `json:"game_state"`
}

// RematchRequestedPayload 对手请求再来一局通知
type RematchRequestedPayload struct {
	Team engine.Team `json:"team"`
}

// ChatPayload 聊天消息
type ChatPayload struct {
	SenderName string `json:"sender_name,omitempty"` // 发送者昵称（服务端填充）
	Content    string `json:"content"`               // 消息内容
	Time       int64  `json:"time,omitempty"`        // 发送时间（服务端填充）
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatsResultPayload 个人统计结果
type StatsResultPayload struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	TotalGames int     `json:"total_games"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinRate    float64 `json:"win_rate"`
	Score      int     `json:"score"`
	Rank       int     `json:"rank"`
}

// LeaderboardResultPayload 排行榜结果
type LeaderboardResultPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Score      int     `json:"score"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"win_rate"`
}
