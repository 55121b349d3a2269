package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment providers supported by the checkout flow.
const (
	ProviderStripe = "stripe"
	ProviderPayPal = "paypal"
)

// Payment is one confirmed (or attempted) charge against a campaign.
// Rows are immutable after insert except for status; (provider, provider_order_id)
// is unique so replayed gateway confirmations cannot create duplicates.
type Payment struct {
	ID              string        `json:"id"`
	CampaignID      string        `json:"campaign_id"`
	UserID          string        `json:"user_id"`
	Amount          float64       `json:"amount"`
	Status          PaymentStatus `json:"status"`
	Provider        string        `json:"provider"`
	ProviderOrderID string        `json:"provider_order_id"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
