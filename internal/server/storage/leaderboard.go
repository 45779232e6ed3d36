package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	playerStatsKey = "player:stats:"
	leaderboardKey = "leaderboard:score"
)

// 积分规则
const (
	ScoreWin  = 20  // 获胜
	ScoreLoss = -10 // 失败

	// 连胜加成
	StreakBonus3  = 5  // 3 连胜加成
	StreakBonus5  = 10 // 5 连胜加成
	StreakBonus10 = 20 // 10 连胜加成
)

// PlayerStats 玩家统计数据
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	TotalGames int `json:"total_games"` // 总场次
	Wins       int `json:"wins"`        // 胜场
	Losses     int `json:"losses"`      // 败场

	Score int `json:"score"` // 当前积分

	CurrentStreak int `json:"current_streak"` // 正数为连胜，负数为连败
	MaxWinStreak  int `json:"max_win_streak"` // 最大连胜

	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64 `json:"created_at"`     // 首次游戏时间
}

// WinRate 胜率
func (s *PlayerStats) WinRate() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.TotalGames)
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

// LeaderboardManager 排行榜管理器
type LeaderboardManager struct {
	redis *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{redis: client}
}

// GetPlayerStats 获取玩家统计，不存在时返回 (nil, nil)
func (lm *LeaderboardManager) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	key := playerStatsKey + playerID
	data, err := lm.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SavePlayerStats 保存玩家统计
func (lm *LeaderboardManager) SavePlayerStats(ctx context.Context, stats *PlayerStats) error {
	key := playerStatsKey + stats.PlayerID
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return lm.redis.Set(ctx, key, data, 0).Err()
}

// RecordResult 记录一场比赛结果并更新积分榜
func (lm *LeaderboardManager) RecordResult(ctx context.Context, playerID, playerName string, won bool) error {
	stats, err := lm.GetPlayerStats(ctx, playerID)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = &PlayerStats{
			PlayerID:  playerID,
			CreatedAt: time.Now().Unix(),
		}
	}
	stats.PlayerName = playerName

	stats.TotalGames++
	stats.LastPlayedAt = time.Now().Unix()

	delta := 0
	if won {
		stats.Wins++
		stats.CurrentStreak = max(1, stats.CurrentStreak+1)
		stats.MaxWinStreak = max(stats.MaxWinStreak, stats.CurrentStreak)
		delta = ScoreWin + streakBonus(stats.CurrentStreak)
	} else {
		stats.Losses++
		stats.CurrentStreak = min(-1, stats.CurrentStreak-1)
		delta = ScoreLoss
	}

	stats.Score += delta
	if stats.Score < 0 {
		stats.Score = 0
	}

	if err := lm.SavePlayerStats(ctx, stats); err != nil {
		return err
	}

	return lm.redis.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(stats.Score),
		Member: playerID,
	}).Err()
}

// streakBonus 连胜额外积分
func streakBonus(streak int) int {
	switch {
	case streak >= 10:
		return StreakBonus10
	case streak >= 5:
		return StreakBonus5
	case streak >= 3:
		return StreakBonus3
	default:
		return 0
	}
}

// GetPlayerRank 获取玩家排名（从 1 开始），未上榜返回 0
func (lm *LeaderboardManager) GetPlayerRank(ctx context.Context, playerID string) (int, error) {
	rank, err := lm.redis.ZRevRank(ctx, leaderboardKey, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return int(rank) + 1, nil
}

// GetLeaderboard 按积分从高到低获取排行榜分页
func (lm *LeaderboardManager) GetLeaderboard(ctx context.Context, offset, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	ids, err := lm.redis.ZRevRange(ctx, leaderboardKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(ids))
	for i, id := range ids {
		stats, err := lm.GetPlayerStats(ctx, id)
		if err != nil || stats == nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Rank:       offset + i + 1,
			PlayerID:   stats.PlayerID,
			PlayerName: stats.PlayerName,
			Score:      stats.Score,
			Wins:       stats.Wins,
			WinRate:    stats.WinRate(),
		})
	}

	return entries, nil
}
