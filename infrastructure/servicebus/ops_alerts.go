package servicebus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"

	"swishview/infrastructure/logger"
)

// OpsAlert is a message for the support/operations queue. The one producer
// today is activation failure after a recorded payment, which needs manual
// reconciliation.
type OpsAlert struct {
	Severity   string    `json:"severity"`
	Subject    string    `json:"subject"`
	CampaignID string    `json:"campaign_id,omitempty"`
	PaymentID  string    `json:"payment_id,omitempty"`
	Detail     string    `json:"detail"`
	RaisedAt   time.Time `json:"raised_at"`
}

type IOpsAlerts interface {
	Send(ctx context.Context, alert OpsAlert) error
}

// OpsAlerts sends alerts to an Azure Service Bus queue. A nil client makes
// Send a no-op.
type OpsAlerts struct {
	client *azservicebus.Client
	queue  string
}

func NewServiceBus(ctx context.Context, namespace string) (*azservicebus.Client, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, err
	}
	return azservicebus.NewClient(namespace, credential, nil)
}

func NewOpsAlerts(client *azservicebus.Client, queue string) IOpsAlerts {
	return &OpsAlerts{client: client, queue: queue}
}

func (o *OpsAlerts) Send(ctx context.Context, alert OpsAlert) error {
	if o.client == nil {
		return nil
	}
	if alert.RaisedAt.IsZero() {
		alert.RaisedAt = time.Now().UTC()
	}
	sender, err := o.client.NewSender(o.queue, nil)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while making new sender service bus.")
		return err
	}
	defer func() {
		if closeErr := sender.Close(context.Background()); closeErr != nil {
			logger.GetLogger().WithField("error", closeErr).Error("Error while closing sender.")
		}
	}()

	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	if err := sender.SendMessage(ctx, &azservicebus.Message{Body: payload}, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending ops alert.")
		return err
	}
	return nil
}
