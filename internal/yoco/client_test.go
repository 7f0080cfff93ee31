package yoco

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   int64
	}{
		{"cents preserved", "1999.99", 199999},
		{"round amount", "250000.00", 25000000},
		{"whole rand", "100", 10000},
		{"sub-cent truncated", "10.999", 1099},
		{"zero", "0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinorUnits(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Fatalf("MinorUnits(%s)=%d want=%d", tt.amount, got, tt.want)
			}
		})
	}
}

func TestChargeSuccess(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ch_123","status":"successful"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc", 5*time.Second)
	resp, err := c.Charge(context.Background(), ChargeRequest{
		Token:    "tok_1",
		Amount:   199999,
		Currency: Currency,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != "ch_123" {
		t.Fatalf("id=%q want ch_123", resp.ID)
	}
	if gotAuth != "Bearer sk_test_abc" {
		t.Fatalf("auth header=%q", gotAuth)
	}
}

func TestChargeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"message":"insufficient_funds"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc", 5*time.Second)
	_, err := c.Charge(context.Background(), ChargeRequest{Token: "tok_1", Amount: 100, Currency: Currency})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusPaymentRequired {
		t.Fatalf("status=%d", apiErr.StatusCode)
	}
	if apiErr.Message != "insufficient_funds" {
		t.Fatalf("message=%q", apiErr.Message)
	}
}

func TestChargeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, "sk_test_abc", time.Second)
	_, err := c.Charge(context.Background(), ChargeRequest{Token: "tok_1", Amount: 100, Currency: Currency})
	if err == nil {
		t.Fatal("want transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure must not be an APIError: %v", err)
	}
}
