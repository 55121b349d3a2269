package model

import "time"

// CampaignAnalytics is an append-only snapshot of campaign performance.
// There is no update or delete path.
type CampaignAnalytics struct {
	ID             int64     `json:"id"`
	CampaignID     string    `json:"campaign_id"`
	ViewsCount     int64     `json:"views_count"`
	ClicksCount    int64     `json:"clicks_count"`
	EngagementRate float64   `json:"engagement_rate"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// AdminStats is the read-side aggregation shown on the admin dashboard.
// Recomputed per request; nothing is cached.
type AdminStats struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalViews        int64   `json:"total_views"`
	TotalClicks       int64   `json:"total_clicks"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	TotalCampaigns    int64   `json:"total_campaigns"`
	ActiveCampaigns   int64   `json:"active_campaigns"`
	TotalUsers        int64   `json:"total_users"`
}

// AdminAudit is an append-only record of privileged operations.
type AdminAudit struct {
	AdminID   string    `json:"admin_id" bson:"admin_id"`
	Action    string    `json:"action" bson:"action"`
	TargetID  string    `json:"target_id" bson:"target_id"`
	Detail    string    `json:"detail" bson:"detail"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
