package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"

	"swishview/domain/repository"
	"swishview/infrastructure/logger"
)

// Gateway implements repository.IPaymentGateway over Stripe Checkout.
type Gateway struct {
	secretKey     string
	webhookSecret string
}

func NewGateway(secretKey, webhookSecret string) *Gateway {
	if secretKey != "" {
		stripe.Key = secretKey
	}
	return &Gateway{secretKey: secretKey, webhookSecret: webhookSecret}
}

func (g *Gateway) Provider() string { return "stripe" }

func (g *Gateway) CreateOrder(ctx context.Context, req repository.OrderRequest) (*repository.OrderSession, error) {
	if g.secretKey == "" {
		return nil, errors.New("stripe secret key not configured")
	}
	// Stripe wants the amount in cents.
	amountCents := int64(math.Round(req.Amount * 100))
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Campaign: %s", req.CampaignTitle)),
						Description: stripe.String("SwishView Campaign Payment"),
					},
					UnitAmount: stripe.Int64(amountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.ReturnURL + "?payment=success&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(req.ReturnURL + "?payment=cancelled"),
	}
	params.AddMetadata("campaignId", req.CampaignID)
	params.AddMetadata("userId", req.UserID)

	s, err := session.New(params)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("stripe: checkout session creation failed")
		return nil, err
	}
	return &repository.OrderSession{OrderID: s.ID, ApprovalURL: s.URL}, nil
}

// ParseWebhookEvent verifies the event signature and maps a completed
// checkout session into a GatewayEvent. An invalid signature fails closed.
func (g *Gateway) ParseWebhookEvent(payload []byte, sigHeader string) (*repository.GatewayEvent, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}
	if event.Type != "checkout.session.completed" {
		logger.GetLogger().WithField("type", event.Type).Info("stripe: unhandled event type")
		return &repository.GatewayEvent{Provider: g.Provider(), EventType: string(event.Type)}, nil
	}
	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}
	return &repository.GatewayEvent{
		Provider:       g.Provider(),
		EventType:      string(event.Type),
		OrderID:        s.ID,
		CampaignID:     s.Metadata["campaignId"],
		UserID:         s.Metadata["userId"],
		AmountCaptured: float64(s.AmountTotal) / 100,
	}, nil
}
