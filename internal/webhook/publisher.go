package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/napmap/internal/models"
)

const (
	drawQueueKey = "napmap:draw_batches"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

// DrawPublisher - интерфейс для публикации пакетов команд отрисовки
type DrawPublisher interface {
	Publish(ctx context.Context, batch models.DrawBatch) error
}

// RedisDrawPublisher - реализация DrawPublisher, использующая список Redis как очередь
type RedisDrawPublisher struct {
	redisClient *redis.Client
}

// NewRedisDrawPublisher создает новый RedisDrawPublisher
func NewRedisDrawPublisher(client *redis.Client) *RedisDrawPublisher {
	return &RedisDrawPublisher{
		redisClient: client,
	}
}

// Publish кладет пакет команд в очередь Redis
func (p *RedisDrawPublisher) Publish(ctx context.Context, batch models.DrawBatch) error {
	payload, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal draw batch: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, drawQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish draw batch to Redis: %w", err)
	}
	return nil
}

// NoopPublisher используется, когда Redis не настроен
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, models.DrawBatch) error {
	return nil
}
