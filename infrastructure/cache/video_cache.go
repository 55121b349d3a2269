package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"swishview/domain/model"
)

const videoKeyPrefix = "video_meta:"

// VideoCache keeps YouTube video metadata in Redis so campaign previews and
// the analytics sync job do not hammer the Data API.
type VideoCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewVideoCache(client *redis.Client) *VideoCache {
	return &VideoCache{client: client, ttl: 15 * time.Minute}
}

// Get returns the cached metadata or nil on miss (or when no cache is wired).
func (c *VideoCache) Get(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, videoKeyPrefix+videoID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var meta model.VideoMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (c *VideoCache) Set(ctx context.Context, meta *model.VideoMetadata) error {
	if c == nil || c.client == nil || meta == nil {
		return nil
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, videoKeyPrefix+meta.VideoID, raw, c.ttl).Err()
}
