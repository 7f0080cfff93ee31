package service

import (
	"context"
	"errors"
	"strings"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"github.com/cedricplans/houseplans-backend/internal/repository"
	"gorm.io/gorm"
)

type CreatePurchaseInput struct {
	HousePlanID uint64
	FullName    string
	Email       string
	PhoneNumber string
	Province    string
	City        string
	PickUpPoint string
	AreaMall    string
}

type PurchaseService interface {
	Create(ctx context.Context, in CreatePurchaseInput) (*model.Purchase, error)
	Get(ctx context.Context, id uint64) (*model.Purchase, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	planRepo     repository.HousePlanRepository
}

func NewPurchaseService(purchaseRepo repository.PurchaseRepository, planRepo repository.HousePlanRepository) PurchaseService {
	return &purchaseService{purchaseRepo: purchaseRepo, planRepo: planRepo}
}

// Create validates the submission, snapshots the plan price and
// persists a pending purchase. Nothing is persisted on failure.
func (s *purchaseService) Create(ctx context.Context, in CreatePurchaseInput) (*model.Purchase, error) {
	if err := validateCreatePurchase(&in); err != nil {
		return nil, err
	}

	plan, err := s.planRepo.FindByID(ctx, in.HousePlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p := &model.Purchase{
		HousePlanID:   plan.ID,
		PlanPrice:     plan.Price,
		FullName:      in.FullName,
		Email:         in.Email,
		PhoneNumber:   in.PhoneNumber,
		Province:      in.Province,
		City:          in.City,
		PickUpPoint:   in.PickUpPoint,
		AreaMall:      in.AreaMall,
		PaymentStatus: model.PaymentStatusPending,
	}
	if err := s.purchaseRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *purchaseService) Get(ctx context.Context, id uint64) (*model.Purchase, error) {
	p, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func validateCreatePurchase(in *CreatePurchaseInput) error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Province = strings.TrimSpace(in.Province)
	in.City = strings.TrimSpace(in.City)
	in.PickUpPoint = strings.TrimSpace(in.PickUpPoint)
	in.AreaMall = strings.TrimSpace(in.AreaMall)

	var missing []string
	if in.HousePlanID == 0 {
		missing = append(missing, "house_plan_id")
	}
	if in.FullName == "" {
		missing = append(missing, "full_name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.PhoneNumber == "" {
		missing = append(missing, "phone_number")
	}
	if in.Province == "" {
		missing = append(missing, "province")
	}
	if in.City == "" {
		missing = append(missing, "city")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
