package pubsub

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/pubsub"

	"swishview/infrastructure/logger"
)

// CampaignEvent is the payload published on campaign lifecycle changes.
type CampaignEvent struct {
	Type       string    `json:"type"` // payment_recorded | campaign_activated
	CampaignID string    `json:"campaign_id"`
	UserID     string    `json:"user_id"`
	Provider   string    `json:"provider,omitempty"`
	Amount     float64   `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ICampaignEvents interface {
	Publish(ctx context.Context, event CampaignEvent) error
}

// CampaignEvents publishes lifecycle events to a Pub/Sub topic. A nil client
// turns publishing into a no-op so the service runs without Pub/Sub locally.
type CampaignEvents struct {
	client *pubsub.Client
	topic  string
}

func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	return pubsub.NewClient(ctx, projectID)
}

func NewCampaignEvents(client *pubsub.Client, topic string) ICampaignEvents {
	return &CampaignEvents{client: client, topic: topic}
}

func (p *CampaignEvents) Publish(ctx context.Context, event CampaignEvent) error {
	if p.client == nil {
		return nil
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	topic := p.client.Topic(p.topic)
	exists, err := topic.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if _, err = p.client.CreateTopic(ctx, p.topic); err != nil {
			return err
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		return err
	}
	logger.GetLogger().WithFields(map[string]interface{}{
		"server_id": serverID,
		"type":      event.Type,
	}).Info("Campaign event published")
	return nil
}
