// Package yoco is a minimal client for the Yoco charges API. A charge
// collects funds for a previously tokenized card; each call is a
// distinct charge attempt with no retry or idempotency key.
package yoco

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const Currency = "ZAR"

// MinorUnits converts a rand amount to integer cents, truncating any
// fraction below one cent. The arithmetic is exact: 1999.99 maps to
// 199999, never 199998.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).IntPart()
}

type ChargeRequest struct {
	Token    string   `json:"token"`
	Amount   int64    `json:"amount"`
	Currency string   `json:"currency"`
	Metadata Metadata `json:"metadata"`
}

type Metadata struct {
	PurchaseID    uint64 `json:"purchase_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	PlanName      string `json:"plan_name"`
}

type ChargeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// APIError is a non-201 answer from the charges endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("yoco charge rejected (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("yoco charge rejected (%d)", e.StatusCode)
}

type Client interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error)
}

type client struct {
	http      *resty.Client
	chargeURL string
	secretKey string
}

func NewClient(chargeURL, secretKey string, timeout time.Duration) Client {
	return &client{
		http:      resty.New().SetTimeout(timeout),
		chargeURL: chargeURL,
		secretKey: secretKey,
	}
}

func (c *client) Charge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.secretKey).
		SetBody(req).
		Post(c.chargeURL)
	if err != nil {
		return nil, fmt.Errorf("yoco request: %w", err)
	}

	if resp.StatusCode() == http.StatusCreated {
		var out ChargeResponse
		if err := json.Unmarshal(resp.Body(), &out); err != nil {
			return nil, fmt.Errorf("yoco response: %w", err)
		}
		return &out, nil
	}

	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &body)
	return nil, &APIError{StatusCode: resp.StatusCode(), Message: body.Message}
}
