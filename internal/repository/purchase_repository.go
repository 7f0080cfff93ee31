package repository

import (
	"context"
	"time"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(ctx context.Context, p *model.Purchase) error
	FindByID(ctx context.Context, id uint64) (*model.Purchase, error)
	ListByPlan(ctx context.Context, housePlanID uint64) ([]model.Purchase, error)

	// MarkCompletedIfPending atomically resolves a pending purchase to
	// completed, recording the processor reference, the charge token and
	// the payment date. Returns the number of rows updated: 0 means the
	// purchase was no longer pending and nothing changed.
	MarkCompletedIfPending(ctx context.Context, id uint64, reference, token string, paidAt time.Time) (int64, error)

	// MarkFailedIfPending atomically resolves a pending purchase to
	// failed. Same rows-affected contract as MarkCompletedIfPending.
	MarkFailedIfPending(ctx context.Context, id uint64) (int64, error)

	SetDB(db *gorm.DB)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, p *model.Purchase) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *purchaseRepository) FindByID(ctx context.Context, id uint64) (*model.Purchase, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var p model.Purchase
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepository) ListByPlan(ctx context.Context, housePlanID uint64) ([]model.Purchase, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var list []model.Purchase
	if err := r.db.WithContext(ctx).
		Where("house_plan_id = ?", housePlanID).
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *purchaseRepository) MarkCompletedIfPending(ctx context.Context, id uint64, reference, token string, paidAt time.Time) (int64, error) {
	if r.db == nil {
		return 0, ErrDBNotReady
	}
	res := r.db.WithContext(ctx).
		Model(&model.Purchase{}).
		Where("id = ? AND payment_status = ?", id, model.PaymentStatusPending).
		Updates(map[string]interface{}{
			"payment_status":    model.PaymentStatusCompleted,
			"payment_reference": reference,
			"payment_token":     token,
			"payment_date":      paidAt,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *purchaseRepository) MarkFailedIfPending(ctx context.Context, id uint64) (int64, error) {
	if r.db == nil {
		return 0, ErrDBNotReady
	}
	res := r.db.WithContext(ctx).
		Model(&model.Purchase{}).
		Where("id = ? AND payment_status = ?", id, model.PaymentStatusPending).
		Update("payment_status", model.PaymentStatusFailed)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *purchaseRepository) SetDB(db *gorm.DB) {
	r.db = db
}
