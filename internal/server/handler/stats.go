package handler

import (
	"context"
	"log"
	"time"

	"github.com/palemoky/tower-race/internal/protocol"
	"github.com/palemoky/tower-race/internal/types"
)

const statsQueryTimeout = 3 * time.Second

// handleGetStats 处理个人统计查询
func (h *Handler) handleGetStats(client types.ClientInterface, msg *protocol.Message) {
	if h.deps.Leaderboard == nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "统计服务不可用"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), statsQueryTimeout)
	defer cancel()

	playerID := client.GetName()
	stats, err := h.deps.Leaderboard.GetPlayerStats(ctx, playerID)
	if err != nil {
		log.Printf("查询玩家统计失败: %v", err)
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "查询统计失败"))
		return
	}

	result := protocol.StatsResultPayload{
		PlayerID:   playerID,
		PlayerName: client.GetName(),
	}
	if stats != nil {
		rank, _ := h.deps.Leaderboard.GetPlayerRank(ctx, playerID)
		result.PlayerName = stats.PlayerName
		result.TotalGames = stats.TotalGames
		result.Wins = stats.Wins
		result.Losses = stats.Losses
		result.WinRate = stats.WinRate()
		result.Score = stats.Score
		result.Rank = rank
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, result))
}

// handleGetLeaderboard 处理排行榜查询
func (h *Handler) handleGetLeaderboard(client types.ClientInterface, msg *protocol.Message) {
	if h.deps.Leaderboard == nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "排行榜服务不可用"))
		return
	}

	payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		payload = &protocol.GetLeaderboardPayload{Limit: 10}
	}

	ctx, cancel := context.WithTimeout(context.Background(), statsQueryTimeout)
	defer cancel()

	entries, err := h.deps.Leaderboard.GetLeaderboard(ctx, payload.Offset, payload.Limit)
	if err != nil {
		log.Printf("查询排行榜失败: %v", err)
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "查询排行榜失败"))
		return
	}

	result := protocol.LeaderboardResultPayload{
		Entries: make([]protocol.LeaderboardEntry, 0, len(entries)),
	}
	for _, e := range entries {
		result.Entries = append(result.Entries, protocol.LeaderboardEntry{
			Rank:       e.Rank,
			PlayerID:   e.PlayerID,
			PlayerName: e.PlayerName,
			Score:      e.Score,
			Wins:       e.Wins,
			WinRate:    e.WinRate,
		})
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboardResult, result))
}
