package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	artworkModel "artichoke-backend/internal/domains/artwork/model"
)

// Enqueuer is what services see; keeps asynq out of domain code and
// lets tests substitute a no-op.
type Enqueuer interface {
	EnqueueProcessImage(ctx context.Context, artworkID uuid.UUID) error
	Close() error
}

// Client wraps asynq.Client for task enqueueing from the API process.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
	}
}

func (c *Client) EnqueueProcessImage(ctx context.Context, artworkID uuid.UUID) error {
	payload, err := json.Marshal(artworkModel.ProcessImagePayload{ArtworkID: artworkID})
	if err != nil {
		return fmt.Errorf("marshal process image payload: %w", err)
	}

	task := asynq.NewTask(artworkModel.TaskProcessImage, payload)
	if _, err := c.client.EnqueueContext(ctx, task, asynq.Queue("default"), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("enqueue %s: %w", artworkModel.TaskProcessImage, err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// NopEnqueuer drops tasks. Used when Redis is unavailable so uploads
// still succeed; variants are simply not generated.
type NopEnqueuer struct{}

func (NopEnqueuer) EnqueueProcessImage(ctx context.Context, artworkID uuid.UUID) error { return nil }
func (NopEnqueuer) Close() error                                                       { return nil }
