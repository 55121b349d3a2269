package repository

import (
	"context"

	"swishview/domain/model"
)

// OrderRequest is the provider-agnostic input for creating a checkout
// order/session. Campaign and user ids travel as opaque metadata so the
// asynchronous confirmation can find its way back.
type OrderRequest struct {
	CampaignID    string
	UserID        string
	CampaignTitle string
	Amount        float64
	ReturnURL     string
}

// OrderSession is the handle presented to the user to complete payment in
// the provider's UI.
type OrderSession struct {
	OrderID     string
	ApprovalURL string
}

// IPaymentGateway abstracts the external payment processor (Stripe Checkout,
// PayPal Orders). The orchestrator state machine is provider-agnostic.
type IPaymentGateway interface {
	Provider() string
	CreateOrder(ctx context.Context, req OrderRequest) (*OrderSession, error)
}

// GatewayEvent is a verified asynchronous confirmation from a provider
// (e.g. Stripe checkout.session.completed), already signature-checked.
type GatewayEvent struct {
	Provider       string
	EventType      string
	OrderID        string
	CampaignID     string
	UserID         string
	AmountCaptured float64
}

// IYouTube looks up metadata for videos referenced by campaigns.
type IYouTube interface {
	GetVideo(ctx context.Context, videoID string) (*model.VideoMetadata, error)
}
