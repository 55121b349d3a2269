package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("caller is not allowed to perform this operation")
	ErrNotFound     = errors.New("record not found")
	ErrGateway      = errors.New("payment gateway request failed")

	// ErrDuplicatePayment means a payment row for this (provider, order id)
	// already exists. Replayed webhooks and redirects hit this; callers treat
	// it as a benign no-op.
	ErrDuplicatePayment = errors.New("payment already recorded for this order")

	// ErrUnexpectedCampaignState means the campaign left the payable state
	// between order creation and confirmation. The orchestrator refuses to
	// activate and surfaces this instead of silently overwriting.
	ErrUnexpectedCampaignState = errors.New("campaign is not in an activatable state")

	// ErrActivationFailed is the highest-severity condition: the payment row
	// is recorded but the campaign status write failed. There is no automatic
	// retry; support must reconcile manually.
	ErrActivationFailed = errors.New("payment received but campaign activation failed")
)

func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func Gateway(cause error) error {
	return fmt.Errorf("%w: %v", ErrGateway, cause)
}

func IsValidation(err error) bool   { return errors.Is(err, ErrInvalidInput) }
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }
func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
