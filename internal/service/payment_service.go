package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"github.com/cedricplans/houseplans-backend/internal/repository"
	"github.com/cedricplans/houseplans-backend/internal/yoco"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ChargeOutcome struct {
	PurchaseID uint64
	Reference  string
}

// PaymentService drives a single charge attempt against Yoco and maps
// the result onto the purchase's payment status.
type PaymentService interface {
	Charge(ctx context.Context, purchaseID uint64, token string) (*ChargeOutcome, error)
}

type paymentService struct {
	purchaseRepo repository.PurchaseRepository
	planRepo     repository.HousePlanRepository
	yoco         yoco.Client
	log          *zap.Logger
	now          func() time.Time
}

func NewPaymentService(purchaseRepo repository.PurchaseRepository, planRepo repository.HousePlanRepository, client yoco.Client, log *zap.Logger) PaymentService {
	return &paymentService{
		purchaseRepo: purchaseRepo,
		planRepo:     planRepo,
		yoco:         client,
		log:          log,
		now:          time.Now,
	}
}

func (s *paymentService) Charge(ctx context.Context, purchaseID uint64, token string) (*ChargeOutcome, error) {
	p, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(token) == "" {
		return nil, &ValidationError{Fields: []string{"token"}}
	}
	if !p.PaymentStatus.CanTransitionTo(model.PaymentStatusCompleted) {
		return nil, ErrNotPending
	}

	planName := ""
	if plan, err := s.planRepo.FindByID(ctx, p.HousePlanID); err == nil {
		planName = plan.Title
	}

	resp, err := s.yoco.Charge(ctx, yoco.ChargeRequest{
		Token:    token,
		Amount:   yoco.MinorUnits(p.PlanPrice),
		Currency: yoco.Currency,
		Metadata: yoco.Metadata{
			PurchaseID:    p.ID,
			CustomerName:  p.FullName,
			CustomerEmail: p.Email,
			PlanName:      planName,
		},
	})
	if err != nil {
		var apiErr *yoco.APIError
		if errors.As(err, &apiErr) {
			// The processor answered and declined. Resolve the purchase to
			// failed even though the caller gets an error.
			if _, ferr := s.purchaseRepo.MarkFailedIfPending(ctx, p.ID); ferr != nil {
				s.log.Error("mark purchase failed", zap.Uint64("purchase_id", p.ID), zap.Error(ferr))
			}
			msg := apiErr.Message
			if msg == "" {
				msg = "Payment processing failed"
			}
			return nil, &PaymentError{Kind: PaymentRejected, Message: msg, Err: err}
		}
		// No response received. The purchase stays pending so the charge
		// can be retried.
		s.log.Warn("yoco unreachable", zap.Uint64("purchase_id", p.ID), zap.Error(err))
		return nil, &PaymentError{Kind: PaymentUnreachable, Message: "Payment gateway unreachable", Err: err}
	}

	rows, err := s.purchaseRepo.MarkCompletedIfPending(ctx, p.ID, resp.ID, token, s.now())
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// A concurrent attempt resolved the purchase first. The charge
		// went through on the processor side, so say so loudly.
		s.log.Warn("charge succeeded but purchase already resolved",
			zap.Uint64("purchase_id", p.ID),
			zap.String("reference", resp.ID))
		return nil, ErrNotPending
	}

	s.log.Info("payment completed",
		zap.Uint64("purchase_id", p.ID),
		zap.String("reference", resp.ID))
	return &ChargeOutcome{PurchaseID: p.ID, Reference: resp.ID}, nil
}
