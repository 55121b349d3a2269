package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
	"swishview/infrastructure/utils"
)

// Client looks up video metadata through the YouTube Data API using an API
// key. OAuth is not needed for the read-only statistics we consume.
type Client struct {
	service *youtubeapi.Service
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube api key not configured")
	}
	service, err := youtubeapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Client{service: service}, nil
}

func (c *Client) GetVideo(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	call := c.service.Videos.List([]string{"snippet", "statistics"}).Id(videoID).Context(ctx)
	resp, err := call.Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	item := resp.Items[0]

	meta := &model.VideoMetadata{
		VideoID:      videoID,
		ThumbnailURL: utils.ThumbnailURL(videoID),
	}
	if item.Snippet != nil {
		meta.Title = item.Snippet.Title
		meta.ChannelTitle = item.Snippet.ChannelTitle
		if t, parseErr := parsePublishedAt(item.Snippet.PublishedAt); parseErr == nil {
			meta.PublishedAt = t
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
			meta.ThumbnailURL = item.Snippet.Thumbnails.High.Url
		}
	}
	if item.Statistics != nil {
		meta.ViewCount = int64(item.Statistics.ViewCount)
		meta.LikeCount = int64(item.Statistics.LikeCount)
	}
	return meta, nil
}
