// File: database/repository/dialog/dialog_redis.go
package dialog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"roombot/models"

	"github.com/go-redis/redis/v8"
)

// RedisDialogRepo stores dialog state as JSON keyed by chat ID, with a TTL
// so abandoned dialogs expire on their own.
type RedisDialogRepo struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDialogRepo(client *redis.Client, ttl time.Duration) *RedisDialogRepo {
	return &RedisDialogRepo{Client: client, TTL: ttl}
}

func dialogKey(chatID int64) string {
	return fmt.Sprintf("dialog:%d", chatID)
}

func (r *RedisDialogRepo) Get(ctx context.Context, chatID int64) (*models.DialogState, error) {
	data, err := r.Client.Get(ctx, dialogKey(chatID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dialog state: %w", err)
	}

	var state models.DialogState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to parse dialog state: %w", err)
	}
	return &state, nil
}

func (r *RedisDialogRepo) Save(ctx context.Context, state *models.DialogState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal dialog state: %w", err)
	}
	if err := r.Client.Set(ctx, dialogKey(state.ChatID), data, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store dialog state: %w", err)
	}
	return nil
}

func (r *RedisDialogRepo) Delete(ctx context.Context, chatID int64) error {
	if err := r.Client.Del(ctx, dialogKey(chatID)).Err(); err != nil {
		return fmt.Errorf("failed to delete dialog state: %w", err)
	}
	return nil
}
