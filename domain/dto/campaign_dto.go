package dto

// CampaignReq carries create/update input for a campaign. Target views and
// budget are kept mutually consistent by the client at $0.02 per view;
// whichever field was edited last wins, the service validates both.
type CampaignReq struct {
	Title            string  `json:"title"`
	YouTubeVideoURL  string  `json:"youtube_video_url"`
	TargetViews      int64   `json:"target_views"`
	Budget           float64 `json:"budget"`
	TargetAudience   string  `json:"target_audience"`
	CampaignDuration int     `json:"campaign_duration"`
	Draft            bool    `json:"draft"`
}

// SetStatusReq is the admin status override body.
type SetStatusReq struct {
	Status string `json:"status"`
}

// PromoteReq is the admin role promotion body.
type PromoteReq struct {
	Email string `json:"email"`
}
