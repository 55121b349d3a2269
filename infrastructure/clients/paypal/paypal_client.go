package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"swishview/domain/repository"
	"swishview/infrastructure/logger"
)

// Gateway implements repository.IPaymentGateway over the PayPal Orders v2
// REST API. No SDK; the API surface we need is two endpoints.
type Gateway struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
}

func NewGateway(clientID, clientSecret, baseURL string) *Gateway {
	return &Gateway{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *Gateway) Provider() string { return "paypal" }

func (g *Gateway) CreateOrder(ctx context.Context, req repository.OrderRequest) (*repository.OrderSession, error) {
	if g.clientID == "" || g.clientSecret == "" {
		return nil, errors.New("paypal credentials not configured")
	}
	accessToken, err := g.fetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": "USD",
					"value":         strconv.FormatFloat(req.Amount, 'f', 2, 64),
				},
				"description": fmt.Sprintf("Campaign: %s", req.CampaignTitle),
				"custom_id":   req.CampaignID,
			},
		},
		"application_context": map[string]string{
			"return_url":  req.ReturnURL + "?payment=success",
			"cancel_url":  req.ReturnURL + "?payment=cancelled",
			"brand_name":  "Swish View",
			"user_action": "PAY_NOW",
		},
	}
	raw, _ := json.Marshal(body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v2/checkout/orders", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		logger.GetLogger().WithFields(map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(detail),
		}).Error("paypal: order creation failed")
		return nil, fmt.Errorf("paypal order creation failed: status %d", resp.StatusCode)
	}

	var order struct {
		ID    string `json:"id"`
		Links []struct {
			Href string `json:"href"`
			Rel  string `json:"rel"`
		} `json:"links"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	session := &repository.OrderSession{OrderID: order.ID}
	for _, link := range order.Links {
		if link.Rel == "approve" {
			session.ApprovalURL = link.Href
			break
		}
	}
	return session, nil
}

func (g *Gateway) fetchAccessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(g.clientID, g.clientSecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		logger.GetLogger().WithFields(map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(detail),
		}).Error("paypal: token request failed")
		return "", fmt.Errorf("failed to get paypal access token: status %d", resp.StatusCode)
	}
	var auth struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return "", err
	}
	if auth.AccessToken == "" {
		return "", errors.New("paypal token response missing access_token")
	}
	return auth.AccessToken, nil
}
