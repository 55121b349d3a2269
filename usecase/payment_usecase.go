package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"swishview/domain/dto"
	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
	"swishview/domain/repository"
	"swishview/infrastructure/logger"
	"swishview/infrastructure/pubsub"
	"swishview/infrastructure/servicebus"
	"swishview/infrastructure/utils"
)

// CheckoutState names the steps of a checkout from order creation through
// campaign activation. The state is reported to the caller; it is not
// persisted, the payments table and the campaign status together are the
// durable record.
type CheckoutState string

const (
	StateCreated           CheckoutState = "created"
	StateOrderPending      CheckoutState = "order_pending"
	StateProviderApproved  CheckoutState = "provider_approved"
	StatePaymentRecorded   CheckoutState = "payment_recorded"
	StateCampaignActivated CheckoutState = "campaign_activated"
	StateFailed            CheckoutState = "failed"
	StateCancelled         CheckoutState = "cancelled"
)

const gatewayTimeout = 20 * time.Second

type IPaymentUsecase interface {
	Initiate(ctx context.Context, sess model.Session, req dto.CheckoutReq) (*dto.CheckoutRes, error)
	ConfirmReturn(ctx context.Context, sess model.Session, req dto.ConfirmReq) (*dto.ConfirmRes, error)
	HandleGatewayEvent(ctx context.Context, event repository.GatewayEvent) error
}

type paymentUsecase struct {
	campaignRepo repository.ICampaign
	paymentRepo  repository.IPayment
	gateways     map[string]repository.IPaymentGateway
	events       pubsub.ICampaignEvents
	alerts       servicebus.IOpsAlerts
}

func NewPaymentUsecase(
	campaignRepo repository.ICampaign,
	paymentRepo repository.IPayment,
	gateways []repository.IPaymentGateway,
	events pubsub.ICampaignEvents,
	alerts servicebus.IOpsAlerts,
) IPaymentUsecase {
	byProvider := make(map[string]repository.IPaymentGateway, len(gateways))
	for _, gw := range gateways {
		byProvider[gw.Provider()] = gw
	}
	return &paymentUsecase{
		campaignRepo: campaignRepo,
		paymentRepo:  paymentRepo,
		gateways:     byProvider,
		events:       events,
		alerts:       alerts,
	}
}

// Initiate creates a provider order for a payable campaign owned by the
// caller and hands back the approval URL the browser must be sent to.
func (u *paymentUsecase) Initiate(ctx context.Context, sess model.Session, req dto.CheckoutReq) (*dto.CheckoutRes, error) {
	campaign, err := u.campaignRepo.GetByID(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.UserID != sess.UserID {
		return nil, domainerrors.ErrUnauthorized
	}
	if !campaign.IsPayable() {
		return nil, domainerrors.Validation("campaign in status %s cannot be paid for", campaign.Status)
	}
	gw, ok := u.gateways[req.Provider]
	if !ok {
		return nil, domainerrors.Validation("unsupported payment provider %q", req.Provider)
	}
	amount := req.Amount
	if amount <= 0 {
		amount = campaign.Budget
	}
	title := req.CampaignTitle
	if title == "" {
		title = campaign.Title
	}

	orderCtx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()
	session, err := gw.CreateOrder(orderCtx, repository.OrderRequest{
		CampaignID:    campaign.ID,
		UserID:        sess.UserID,
		CampaignTitle: title,
		Amount:        amount,
		ReturnURL:     req.ReturnURL,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("provider", req.Provider).Error("order creation failed")
		return nil, domainerrors.Gateway(err)
	}
	return &dto.CheckoutRes{
		OrderID:     session.OrderID,
		ApprovalURL: session.ApprovalURL,
		State:       string(StateOrderPending),
	}, nil
}

// ConfirmReturn handles the browser redirect back from the provider. The
// redirect carries no proof of capture, so the authoritative record is the
// webhook; this path exists so the user sees their campaign go live without
// waiting for asynchronous delivery.
func (u *paymentUsecase) ConfirmReturn(ctx context.Context, sess model.Session, req dto.ConfirmReq) (*dto.ConfirmRes, error) {
	if req.Indicator == "cancelled" {
		return &dto.ConfirmRes{State: string(StateCancelled), CampaignID: req.CampaignID}, nil
	}
	if req.Indicator != "success" {
		return nil, domainerrors.Validation("unknown payment indicator %q", req.Indicator)
	}
	if req.OrderID == "" {
		return nil, domainerrors.Validation("order id is required")
	}
	campaign, err := u.campaignRepo.GetByID(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.UserID != sess.UserID {
		return nil, domainerrors.ErrUnauthorized
	}
	paymentID, state, err := u.recordAndActivate(ctx, campaign, req.Provider, req.OrderID, campaign.Budget)
	if err != nil {
		return nil, err
	}
	return &dto.ConfirmRes{State: string(state), CampaignID: campaign.ID, PaymentID: paymentID}, nil
}

// HandleGatewayEvent processes a verified provider notification. Redelivery
// of the same order is a no-op; the unique index on (provider, order id)
// makes the second insert fail cleanly.
func (u *paymentUsecase) HandleGatewayEvent(ctx context.Context, event repository.GatewayEvent) error {
	log := logger.GetLogger().WithField("provider", event.Provider).WithField("order_id", event.OrderID)
	if event.OrderID == "" {
		log.WithField("event_type", event.EventType).Info("ignoring non-checkout event")
		return nil
	}
	if event.CampaignID == "" {
		log.Warn("event carries no campaign id, skipping")
		return nil
	}
	campaign, err := u.campaignRepo.GetByID(ctx, event.CampaignID)
	if err != nil {
		log.WithField("error", err).Error("campaign lookup failed for gateway event")
		return err
	}
	amount := event.AmountCaptured
	if amount <= 0 {
		amount = campaign.Budget
	}
	_, _, err = u.recordAndActivate(ctx, campaign, event.Provider, event.OrderID, amount)
	return err
}

// recordAndActivate is the shared tail of both confirmation paths: insert
// the payment row, then flip the campaign to active. Activation only moves
// pending or draft campaigns; anything else stays put and is reported as an
// unexpected state so a cancelled campaign can never be revived by a stale
// checkout.
func (u *paymentUsecase) recordAndActivate(ctx context.Context, campaign *model.Campaign, provider, orderID string, amount float64) (string, CheckoutState, error) {
	log := logger.GetLogger().WithField("campaign_id", campaign.ID).WithField("order_id", orderID)
	now := utils.GetCurrentTime()
	payment := &model.Payment{
		ID:              uuid.NewString(),
		CampaignID:      campaign.ID,
		UserID:          campaign.UserID,
		Provider:        provider,
		ProviderOrderID: orderID,
		Amount:          utils.Round2(amount),
		Status:          model.PaymentStatusCompleted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicatePayment) {
			log.Info("payment already recorded, treating as redelivery")
			return "", StateCampaignActivated, nil
		}
		return "", StateFailed, err
	}
	u.publish(ctx, "payment_recorded", campaign, provider, payment.Amount)

	affected, err := u.campaignRepo.UpdateStatus(ctx, campaign.ID, model.CampaignStatusActive, []model.CampaignStatus{
		model.CampaignStatusPending, model.CampaignStatusDraft,
	})
	if err != nil {
		log.WithField("error", err).Error("campaign activation failed after payment was recorded")
		u.alert(ctx, payment, campaign)
		return payment.ID, StatePaymentRecorded, domainerrors.ErrActivationFailed
	}
	if affected == 0 {
		log.WithField("status", campaign.Status).Warn("payment received for campaign not awaiting activation")
		return payment.ID, StatePaymentRecorded, domainerrors.ErrUnexpectedCampaignState
	}
	u.publish(ctx, "campaign_activated", campaign, provider, payment.Amount)
	return payment.ID, StateCampaignActivated, nil
}

func (u *paymentUsecase) publish(ctx context.Context, eventType string, campaign *model.Campaign, provider string, amount float64) {
	if u.events == nil {
		return
	}
	err := u.events.Publish(ctx, pubsub.CampaignEvent{
		Type:       eventType,
		CampaignID: campaign.ID,
		UserID:     campaign.UserID,
		Provider:   provider,
		Amount:     amount,
		OccurredAt: utils.GetCurrentTime(),
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("type", eventType).Warn("failed publishing campaign event")
	}
}

func (u *paymentUsecase) alert(ctx context.Context, payment *model.Payment, campaign *model.Campaign) {
	if u.alerts == nil {
		return
	}
	err := u.alerts.Send(ctx, servicebus.OpsAlert{
		Severity:   "critical",
		Subject:    "payment recorded but campaign activation failed",
		CampaignID: campaign.ID,
		PaymentID:  payment.ID,
		Detail:     "manual reconciliation required",
		RaisedAt:   utils.GetCurrentTime(),
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("failed sending ops alert")
	}
}
