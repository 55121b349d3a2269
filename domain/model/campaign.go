package model

import "time"

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusPending   CampaignStatus = "pending"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
	CampaignStatusPaused    CampaignStatus = "paused"
)

// Campaign is a request to promote a YouTube video to a target view count
// within a budget and duration.
type Campaign struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	Title            string         `json:"title"`
	YouTubeVideoURL  string         `json:"youtube_video_url"`
	TargetViews      int64          `json:"target_views"`
	Budget           float64        `json:"budget"`
	TargetAudience   *string        `json:"target_audience,omitempty"`
	CampaignDuration int            `json:"campaign_duration"`
	Status           CampaignStatus `json:"status"`
	CurrentViews     int64          `json:"current_views"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// IsPayable reports whether the campaign may enter checkout. Only campaigns
// that have not been paid for (or otherwise advanced) can be paid.
func (c *Campaign) IsPayable() bool {
	return c.Status == CampaignStatusPending || c.Status == CampaignStatusDraft
}

func IsValidCampaignStatus(s CampaignStatus) bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusPending, CampaignStatusActive,
		CampaignStatusCompleted, CampaignStatusCancelled, CampaignStatusPaused:
		return true
	default:
		return false
	}
}
