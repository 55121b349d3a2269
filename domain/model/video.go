package model

import "time"

// VideoMetadata is what we know about a YouTube video referenced by a
// campaign: fetched from the Data API and cached in Redis.
type VideoMetadata struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title"`
	ChannelTitle string    `json:"channel_title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	PublishedAt  time.Time `json:"published_at"`
}
