package dto

// CheckoutReq initiates a payment for a campaign. Amount and title mirror the
// stored campaign and are validated for presence; the order amount is always
// taken from the persisted campaign budget.
type CheckoutReq struct {
	CampaignID    string  `json:"campaignId"`
	Provider      string  `json:"provider"`
	Amount        float64 `json:"amount"`
	CampaignTitle string  `json:"campaignTitle"`
	ReturnURL     string  `json:"returnUrl"`
}

// CheckoutRes is the created order/session handle presented to the user.
type CheckoutRes struct {
	OrderID     string `json:"orderId"`
	ApprovalURL string `json:"approvalUrl,omitempty"`
	State       string `json:"state"`
}

// ConfirmReq is the redirect-return confirmation: the provider sends the user
// back with payment=success|cancelled in the URL.
type ConfirmReq struct {
	CampaignID string `json:"campaignId"`
	OrderID    string `json:"orderId"`
	Provider   string `json:"provider"`
	Indicator  string `json:"payment"`
}

// ConfirmRes reports the resulting checkout state.
type ConfirmRes struct {
	State      string `json:"state"`
	CampaignID string `json:"campaignId"`
	PaymentID  string `json:"paymentId,omitempty"`
}
