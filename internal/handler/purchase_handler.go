package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"github.com/cedricplans/houseplans-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PurchaseHandler struct {
	svc      service.PurchaseService
	payments service.PaymentService
}

func NewPurchaseHandler(svc service.PurchaseService, payments service.PaymentService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc, payments: payments}
}

type CreatePurchaseRequest struct {
	HousePlanID uint64 `json:"house_plan_id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Province    string `json:"province"`
	City        string `json:"city"`
	PickUpPoint string `json:"pick_up_point"`
	AreaMall    string `json:"area_mall"`
}

type CreatePurchaseResponse struct {
	ID    uint64          `json:"id"`
	Price decimal.Decimal `json:"price"`
}

type PurchaseResponse struct {
	ID               uint64          `json:"id"`
	HousePlanID      uint64          `json:"house_plan_id"`
	PlanPrice        decimal.Decimal `json:"plan_price"`
	FullName         string          `json:"full_name"`
	Email            string          `json:"email"`
	PhoneNumber      string          `json:"phone_number"`
	Province         string          `json:"province"`
	City             string          `json:"city"`
	PickUpPoint      string          `json:"pick_up_point"`
	AreaMall         string          `json:"area_mall"`
	PaymentStatus    string          `json:"payment_status"`
	PaymentReference *string         `json:"payment_reference"`
	PaymentDate      *string         `json:"payment_date"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

type ChargeRequest struct {
	Token string `json:"token"`
}

type ChargeResponse struct {
	Reference  string `json:"reference"`
	PurchaseID uint64 `json:"purchase_id"`
}

func (h *PurchaseHandler) Create(c echo.Context) error {
	var req CreatePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	p, err := h.svc.Create(c.Request().Context(), service.CreatePurchaseInput{
		HousePlanID: req.HousePlanID,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Province:    req.Province,
		City:        req.City,
		PickUpPoint: req.PickUpPoint,
		AreaMall:    req.AreaMall,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "house plan not found"))
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, NewValidationErrorResponse("missing required fields", verr.Fields))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to create purchase"))
		}
	}
	return c.JSON(http.StatusCreated, CreatePurchaseResponse{ID: p.ID, Price: p.PlanPrice})
}

func (h *PurchaseHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "purchase not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch purchase"))
	}
	return c.JSON(http.StatusOK, toPurchaseResponse(p))
}

func (h *PurchaseHandler) Charge(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid purchase id"))
	}
	var req ChargeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}

	outcome, err := h.payments.Charge(c.Request().Context(), id, req.Token)
	if err != nil {
		var verr *service.ValidationError
		var perr *service.PaymentError
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "purchase not found"))
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, NewValidationErrorResponse("payment token required", verr.Fields))
		case errors.Is(err, service.ErrNotPending):
			return c.JSON(http.StatusConflict, NewErrorResponse("conflict", "purchase is not awaiting payment"))
		case errors.As(err, &perr):
			if perr.Kind == service.PaymentUnreachable {
				return c.JSON(http.StatusBadGateway, NewErrorResponse("gateway_unreachable", perr.Message))
			}
			return c.JSON(http.StatusBadRequest, NewErrorResponse("payment_failed", perr.Message))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to process payment"))
		}
	}
	return c.JSON(http.StatusOK, ChargeResponse{Reference: outcome.Reference, PurchaseID: outcome.PurchaseID})
}

func toPurchaseResponse(p *model.Purchase) PurchaseResponse {
	var paymentDate *string
	if p.PaymentDate != nil {
		val := p.PaymentDate.Format(time.RFC3339)
		paymentDate = &val
	}
	return PurchaseResponse{
		ID:               p.ID,
		HousePlanID:      p.HousePlanID,
		PlanPrice:        p.PlanPrice,
		FullName:         p.FullName,
		Email:            p.Email,
		PhoneNumber:      p.PhoneNumber,
		Province:         p.Province,
		City:             p.City,
		PickUpPoint:      p.PickUpPoint,
		AreaMall:         p.AreaMall,
		PaymentStatus:    string(p.PaymentStatus),
		PaymentReference: p.PaymentReference,
		PaymentDate:      paymentDate,
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        p.UpdatedAt.Format(time.RFC3339),
	}
}
