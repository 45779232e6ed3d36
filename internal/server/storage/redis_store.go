package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/tower-race/internal/game/engine"
)

const (
	// Redis key 前缀
	roomKeyPrefix = "room:"

	// 房间镜像过期时间
	roomExpiration = 2 * time.Hour
)

// RoomData 房间快照（用于 Redis 序列化，仅供运维可见性，不用于恢复）
type RoomData struct {
	Code      string        `json:"code"`
	Phase     string        `json:"phase"`
	Turn      int           `json:"turn"`
	Towers    engine.Towers `json:"towers"`
	Players   []PlayerData  `json:"players"`
	Winner    string        `json:"winner,omitempty"`
	CreatedAt int64         `json:"created_at"`
}

// PlayerData 玩家快照
type PlayerData struct {
	Team              string `json:"team"`
	Name              string `json:"name"`
	Ready             bool   `json:"ready"`
	Wheelbarrows      int    `json:"wheelbarrows"`
	Bricks            int    `json:"bricks"`
	FarTowerLockTurns int    `json:"far_tower_lock_turns"`
	Online            bool   `json:"online"`
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveRoom 保存房间快照到 Redis
func (rs *RedisStore) SaveRoom(ctx context.Context, code string, data *RoomData) error {
	if data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化房间数据失败: %w", err)
	}

	key := roomKeyPrefix + code
	return rs.client.Set(ctx, key, jsonData, roomExpiration).Err()
}

// LoadRoom 从 Redis 加载房间快照，不存在时返回 (nil, nil)
func (rs *RedisStore) LoadRoom(ctx context.Context, code string) (*RoomData, error) {
	key := roomKeyPrefix + code
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 房间不存在
		}
		return nil, err
	}

	var roomData RoomData
	if err := json.Unmarshal(data, &roomData); err != nil {
		return nil, fmt.Errorf("反序列化房间数据失败: %w", err)
	}

	return &roomData, nil
}

// DeleteRoom 从 Redis 删除房间快照
func (rs *RedisStore) DeleteRoom(ctx context.Context, code string) error {
	key := roomKeyPrefix + code
	return rs.client.Del(ctx, key).Err()
}

// GetAllRoomCodes 获取所有已镜像的房间号
func (rs *RedisStore) GetAllRoomCodes(ctx context.Context) ([]string, error) {
	keys, err := rs.client.Keys(ctx, roomKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(keys))
	for i, key := range keys {
		codes[i] = key[len(roomKeyPrefix):]
	}
	return codes, nil
}
