package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom MessageType = "create_room" // 创建房间
	MsgJoinRoom   MessageType = "join_room"   // 加入房间
	MsgReady      MessageType = "ready"       // 准备就绪

	// 游戏操作
	MsgSubmitAction   MessageType = "submit_action"   // 提交本回合行动
	MsgRequestRematch MessageType = "request_rematch" // 请求再来一局

	// 信息查询
	MsgGetStats       MessageType = "get_stats"       // 获取个人统计
	MsgGetLeaderboard MessageType = "get_leaderboard" // 获取排行榜
	MsgChat           MessageType = "chat"            // 聊天消息
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected          MessageType = "connected"           // 连接成功
	MsgPong               MessageType = "pong"                // 心跳 pong
	MsgPlayerDisconnected MessageType = "player_disconnected" // 对手掉线通知

	// 房间相关
	MsgRoomCreated  MessageType = "room_created"  // 房间创建成功
	MsgRoomJoined   MessageType = "room_joined"   // 加入房间成功
	MsgPlayerJoined MessageType = "player_joined" // 对手加入
	MsgPlayerReady  MessageType = "player_ready"  // 玩家准备

	// 游戏流程
	MsgGameStart        MessageType = "game_start"        // 游戏开始
	MsgActionSubmitted  MessageType = "action_submitted"  // 对手已提交行动（不含内容）
	MsgTurnResolved     MessageType = "turn_resolved"     // 回合结算完毕
	MsgGameOver         MessageType = "game_over"         // 游戏结束
	MsgRematchRequested MessageType = "rematch_requested" // 对手请求再来一局
	MsgRematchStart     MessageType = "rematch_start"     // 再来一局开始

	// 信息查询
	MsgStatsResult       MessageType = "stats_result"       // 个人统计结果
	MsgLeaderboardResult MessageType = "leaderboard_result" // 排行榜结果

	// 错误
	MsgError MessageType = "error" // 错误消息
)
