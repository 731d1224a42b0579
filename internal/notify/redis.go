package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"socialchat/internal/config"
	"socialchat/internal/dbmongo"
)

// RedisNotifier publishes appended messages to a per-room channel.
// The real-time layer owns the subscriber side.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

func roomChannel(roomID string) string {
	return "chat:room:" + roomID
}

func (n *RedisNotifier) Notify(ctx context.Context, roomID string, msg *dbmongo.ChatMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding message %s: %w", msg.ID.Hex(), err)
	}

	if err := n.client.Publish(ctx, roomChannel(roomID), payload).Err(); err != nil {
		return fmt.Errorf("publishing to %s: %w", roomChannel(roomID), err)
	}
	return nil
}
