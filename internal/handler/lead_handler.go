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

type LeadHandler struct {
	svc service.LeadService
}

func NewLeadHandler(svc service.LeadService) *LeadHandler {
	return &LeadHandler{svc: svc}
}

type CreateQuoteRequestRequest struct {
	FullName           string          `json:"full_name"`
	Email              string          `json:"email"`
	PhoneNumber        string          `json:"phone_number"`
	City               string          `json:"city"`
	PreferredStyle     string          `json:"preferred_style"`
	Bedrooms           int             `json:"bedrooms"`
	Bathrooms          int             `json:"bathrooms"`
	OtherRequiredRooms string          `json:"other_required_rooms"`
	StandLengthMeters  decimal.Decimal `json:"stand_length_meters"`
	StandBreadthMeters decimal.Decimal `json:"stand_breadth_meters"`
	Budget             string          `json:"budget"`
	ProjectDescription string          `json:"project_description"`
}

type QuoteRequestResponse struct {
	ID                 uint64          `json:"id"`
	FullName           string          `json:"full_name"`
	Email              string          `json:"email"`
	PhoneNumber        string          `json:"phone_number"`
	City               string          `json:"city"`
	PreferredStyle     string          `json:"preferred_style"`
	Bedrooms           int             `json:"bedrooms"`
	Bathrooms          int             `json:"bathrooms"`
	OtherRequiredRooms string          `json:"other_required_rooms"`
	StandLengthMeters  decimal.Decimal `json:"stand_length_meters"`
	StandBreadthMeters decimal.Decimal `json:"stand_breadth_meters"`
	Budget             string          `json:"budget"`
	ProjectDescription string          `json:"project_description"`
	IsReviewed         bool            `json:"is_reviewed"`
	CreatedAt          string          `json:"created_at"`
}

type CreateContactMessageRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

type ContactMessageResponse struct {
	ID          uint64 `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   string `json:"created_at"`
}

type CreatedResponse struct {
	ID uint64 `json:"id"`
}

func (h *LeadHandler) CreateQuoteRequest(c echo.Context) error {
	var req CreateQuoteRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	q, err := h.svc.CreateQuoteRequest(c.Request().Context(), service.CreateQuoteRequestInput{
		FullName:           req.FullName,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		City:               req.City,
		PreferredStyle:     req.PreferredStyle,
		Bedrooms:           req.Bedrooms,
		Bathrooms:          req.Bathrooms,
		OtherRequiredRooms: req.OtherRequiredRooms,
		StandLengthMeters:  req.StandLengthMeters,
		StandBreadthMeters: req.StandBreadthMeters,
		Budget:             req.Budget,
		ProjectDescription: req.ProjectDescription,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, NewValidationErrorResponse("missing required fields", verr.Fields))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to create quote request"))
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: q.ID})
}

func (h *LeadHandler) ListQuoteRequests(c echo.Context) error {
	list, err := h.svc.ListQuoteRequests(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch quote requests"))
	}
	resp := make([]QuoteRequestResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toQuoteRequestResponse(&list[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *LeadHandler) MarkQuoteReviewed(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid quote request id"))
	}
	if err := h.svc.MarkQuoteReviewed(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "quote request not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to update quote request"))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LeadHandler) CreateContactMessage(c echo.Context) error {
	var req CreateContactMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	m, err := h.svc.CreateContactMessage(c.Request().Context(), service.CreateContactMessageInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Subject:     req.Subject,
		Message:     req.Message,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, NewValidationErrorResponse("missing required fields", verr.Fields))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to create contact message"))
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: m.ID})
}

func (h *LeadHandler) ListContactMessages(c echo.Context) error {
	list, err := h.svc.ListContactMessages(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch contact messages"))
	}
	resp := make([]ContactMessageResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toContactMessageResponse(&list[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *LeadHandler) MarkContactRead(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid contact message id"))
	}
	if err := h.svc.MarkContactRead(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "contact message not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to update contact message"))
	}
	return c.NoContent(http.StatusNoContent)
}

func toQuoteRequestResponse(q *model.QuoteRequest) QuoteRequestResponse {
	return QuoteRequestResponse{
		ID:                 q.ID,
		FullName:           q.FullName,
		Email:              q.Email,
		PhoneNumber:        q.PhoneNumber,
		City:               q.City,
		PreferredStyle:     q.PreferredStyle,
		Bedrooms:           q.Bedrooms,
		Bathrooms:          q.Bathrooms,
		OtherRequiredRooms: q.OtherRequiredRooms,
		StandLengthMeters:  q.StandLengthMeters,
		StandBreadthMeters: q.StandBreadthMeters,
		Budget:             q.Budget,
		ProjectDescription: q.ProjectDescription,
		IsReviewed:         q.IsReviewed,
		CreatedAt:          q.CreatedAt.Format(time.RFC3339),
	}
}

func toContactMessageResponse(m *model.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:          m.ID,
		FullName:    m.FullName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Subject:     m.Subject,
		Message:     m.Message,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}
