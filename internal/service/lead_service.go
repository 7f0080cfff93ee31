package service

import (
	"context"
	"strings"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"github.com/cedricplans/houseplans-backend/internal/repository"
	"github.com/shopspring/decimal"
)

type CreateQuoteRequestInput struct {
	FullName           string
	Email              string
	PhoneNumber        string
	City               string
	PreferredStyle     string
	Bedrooms           int
	Bathrooms          int
	OtherRequiredRooms string
	StandLengthMeters  decimal.Decimal
	StandBreadthMeters decimal.Decimal
	Budget             string
	ProjectDescription string
}

type CreateContactMessageInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Subject     string
	Message     string
}

// LeadService covers quote requests and contact messages: create from
// the public site, list and mark handled from the back office.
type LeadService interface {
	CreateQuoteRequest(ctx context.Context, in CreateQuoteRequestInput) (*model.QuoteRequest, error)
	ListQuoteRequests(ctx context.Context) ([]model.QuoteRequest, error)
	MarkQuoteReviewed(ctx context.Context, id uint64) error

	CreateContactMessage(ctx context.Context, in CreateContactMessageInput) (*model.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]model.ContactMessage, error)
	MarkContactRead(ctx context.Context, id uint64) error
}

type leadService struct {
	quoteRepo   repository.QuoteRequestRepository
	contactRepo repository.ContactMessageRepository
}

func NewLeadService(quoteRepo repository.QuoteRequestRepository, contactRepo repository.ContactMessageRepository) LeadService {
	return &leadService{quoteRepo: quoteRepo, contactRepo: contactRepo}
}

func (s *leadService) CreateQuoteRequest(ctx context.Context, in CreateQuoteRequestInput) (*model.QuoteRequest, error) {
	var missing []string
	if strings.TrimSpace(in.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		missing = append(missing, "phone_number")
	}
	if strings.TrimSpace(in.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(in.PreferredStyle) == "" {
		missing = append(missing, "preferred_style")
	}
	if in.Bedrooms <= 0 {
		missing = append(missing, "bedrooms")
	}
	if in.Bathrooms <= 0 {
		missing = append(missing, "bathrooms")
	}
	if in.StandLengthMeters.IsZero() {
		missing = append(missing, "stand_length_meters")
	}
	if in.StandBreadthMeters.IsZero() {
		missing = append(missing, "stand_breadth_meters")
	}
	if strings.TrimSpace(in.Budget) == "" {
		missing = append(missing, "budget")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	q := &model.QuoteRequest{
		FullName:           strings.TrimSpace(in.FullName),
		Email:              strings.TrimSpace(in.Email),
		PhoneNumber:        strings.TrimSpace(in.PhoneNumber),
		City:               strings.TrimSpace(in.City),
		PreferredStyle:     strings.TrimSpace(in.PreferredStyle),
		Bedrooms:           in.Bedrooms,
		Bathrooms:          in.Bathrooms,
		OtherRequiredRooms: strings.TrimSpace(in.OtherRequiredRooms),
		StandLengthMeters:  in.StandLengthMeters,
		StandBreadthMeters: in.StandBreadthMeters,
		Budget:             strings.TrimSpace(in.Budget),
		ProjectDescription: strings.TrimSpace(in.ProjectDescription),
	}
	if err := s.quoteRepo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *leadService) ListQuoteRequests(ctx context.Context) ([]model.QuoteRequest, error) {
	return s.quoteRepo.List(ctx)
}

func (s *leadService) MarkQuoteReviewed(ctx context.Context, id uint64) error {
	rows, err := s.quoteRepo.MarkReviewed(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *leadService) CreateContactMessage(ctx context.Context, in CreateContactMessageInput) (*model.ContactMessage, error) {
	var missing []string
	if strings.TrimSpace(in.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		missing = append(missing, "phone_number")
	}
	if strings.TrimSpace(in.Subject) == "" {
		missing = append(missing, "subject")
	}
	if strings.TrimSpace(in.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	m := &model.ContactMessage{
		FullName:    strings.TrimSpace(in.FullName),
		Email:       strings.TrimSpace(in.Email),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Subject:     strings.TrimSpace(in.Subject),
		Message:     strings.TrimSpace(in.Message),
	}
	if err := s.contactRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *leadService) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return s.contactRepo.List(ctx)
}

func (s *leadService) MarkContactRead(ctx context.Context, id uint64) error {
	rows, err := s.contactRepo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
