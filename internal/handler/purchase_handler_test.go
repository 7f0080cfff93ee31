package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"github.com/cedricplans/houseplans-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type stubPurchaseService struct {
	createFn func(ctx context.Context, in service.CreatePurchaseInput) (*model.Purchase, error)
	getFn    func(ctx context.Context, id uint64) (*model.Purchase, error)
}

func (s *stubPurchaseService) Create(ctx context.Context, in service.CreatePurchaseInput) (*model.Purchase, error) {
	return s.createFn(ctx, in)
}

func (s *stubPurchaseService) Get(ctx context.Context, id uint64) (*model.Purchase, error) {
	return s.getFn(ctx, id)
}

type stubPaymentService struct {
	chargeFn func(ctx context.Context, purchaseID uint64, token string) (*service.ChargeOutcome, error)
}

func (s *stubPaymentService) Charge(ctx context.Context, purchaseID uint64, token string) (*service.ChargeOutcome, error) {
	return s.chargeFn(ctx, purchaseID, token)
}

func doRequest(t *testing.T, h echo.HandlerFunc, method, target, body string, paramName, paramValue string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramName != "" {
		c.SetParamNames(paramName)
		c.SetParamValues(paramValue)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestCreatePurchaseReturnsIDAndPrice(t *testing.T) {
	h := NewPurchaseHandler(&stubPurchaseService{
		createFn: func(_ context.Context, in service.CreatePurchaseInput) (*model.Purchase, error) {
			if in.HousePlanID != 7 {
				t.Fatalf("house_plan_id=%d", in.HousePlanID)
			}
			return &model.Purchase{ID: 12, HousePlanID: 7, PlanPrice: decimal.RequireFromString("1999.99")}, nil
		},
	}, nil)

	body := `{"house_plan_id":7,"full_name":"Thandi Mokoena","email":"thandi@example.com","phone_number":"0812345678","province":"limpopo","city":"Thohoyandou"}`
	rec := doRequest(t, h.Create, http.MethodPost, "/api/purchases", body, "", "")

	if rec.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID    uint64 `json:"id"`
		Price string `json:"price"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ID != 12 || resp.Price != "1999.99" {
		t.Fatalf("resp=%+v", resp)
	}
}

func TestCreatePurchaseValidationError(t *testing.T) {
	h := NewPurchaseHandler(&stubPurchaseService{
		createFn: func(context.Context, service.CreatePurchaseInput) (*model.Purchase, error) {
			return nil, &service.ValidationError{Fields: []string{"full_name", "email"}}
		},
	}, nil)

	rec := doRequest(t, h.Create, http.MethodPost, "/api/purchases", `{"house_plan_id":7}`, "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "full_name") {
		t.Fatalf("body=%s", rec.Body.String())
	}
}

func TestCreatePurchaseUnknownPlan(t *testing.T) {
	h := NewPurchaseHandler(&stubPurchaseService{
		createFn: func(context.Context, service.CreatePurchaseInput) (*model.Purchase, error) {
			return nil, service.ErrNotFound
		},
	}, nil)

	rec := doRequest(t, h.Create, http.MethodPost, "/api/purchases", `{"house_plan_id":404}`, "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestChargeSuccess(t *testing.T) {
	h := NewPurchaseHandler(nil, &stubPaymentService{
		chargeFn: func(_ context.Context, purchaseID uint64, token string) (*service.ChargeOutcome, error) {
			if purchaseID != 12 || token != "tok_1" {
				t.Fatalf("purchaseID=%d token=%q", purchaseID, token)
			}
			return &service.ChargeOutcome{PurchaseID: 12, Reference: "ch_123"}, nil
		},
	})

	rec := doRequest(t, h.Charge, http.MethodPost, "/api/purchases/12/charge", `{"token":"tok_1"}`, "id", "12")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp ChargeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Reference != "ch_123" || resp.PurchaseID != 12 {
		t.Fatalf("resp=%+v", resp)
	}
}

func TestChargeErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"missing token", &service.ValidationError{Fields: []string{"token"}}, http.StatusBadRequest},
		{"already resolved", service.ErrNotPending, http.StatusConflict},
		{"gateway rejected", &service.PaymentError{Kind: service.PaymentRejected, Message: "insufficient_funds"}, http.StatusBadRequest},
		{"gateway unreachable", &service.PaymentError{Kind: service.PaymentUnreachable, Message: "Payment gateway unreachable"}, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPurchaseHandler(nil, &stubPaymentService{
				chargeFn: func(context.Context, uint64, string) (*service.ChargeOutcome, error) {
					return nil, tt.err
				},
			})
			rec := doRequest(t, h.Charge, http.MethodPost, "/api/purchases/12/charge", `{"token":"tok_1"}`, "id", "12")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d want=%d body=%s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestGetPurchase(t *testing.T) {
	ref := "ch_123"
	h := NewPurchaseHandler(&stubPurchaseService{
		getFn: func(_ context.Context, id uint64) (*model.Purchase, error) {
			return &model.Purchase{
				ID:               id,
				HousePlanID:      7,
				PlanPrice:        decimal.RequireFromString("1999.99"),
				PaymentStatus:    model.PaymentStatusCompleted,
				PaymentReference: &ref,
			}, nil
		},
	}, nil)

	rec := doRequest(t, h.Get, http.MethodGet, "/api/purchases/12", "", "id", "12")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"payment_status":"completed"`) {
		t.Fatalf("body=%s", rec.Body.String())
	}
}
