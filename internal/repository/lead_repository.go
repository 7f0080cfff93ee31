package repository

import (
	"context"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"gorm.io/gorm"
)

type QuoteRequestRepository interface {
	Create(ctx context.Context, q *model.QuoteRequest) error
	List(ctx context.Context) ([]model.QuoteRequest, error)
	MarkReviewed(ctx context.Context, id uint64) (int64, error)
	SetDB(db *gorm.DB)
}

type quoteRequestRepository struct {
	db *gorm.DB
}

func NewQuoteRequestRepository(db *gorm.DB) QuoteRequestRepository {
	return &quoteRequestRepository{db: db}
}

func (r *quoteRequestRepository) Create(ctx context.Context, q *model.QuoteRequest) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *quoteRequestRepository) List(ctx context.Context) ([]model.QuoteRequest, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var list []model.QuoteRequest
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *quoteRequestRepository) MarkReviewed(ctx context.Context, id uint64) (int64, error) {
	if r.db == nil {
		return 0, ErrDBNotReady
	}
	res := r.db.WithContext(ctx).
		Model(&model.QuoteRequest{}).
		Where("id = ?", id).
		Update("is_reviewed", true)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *quoteRequestRepository) SetDB(db *gorm.DB) {
	r.db = db
}

type ContactMessageRepository interface {
	Create(ctx context.Context, m *model.ContactMessage) error
	List(ctx context.Context) ([]model.ContactMessage, error)
	MarkRead(ctx context.Context, id uint64) (int64, error)
	SetDB(db *gorm.DB)
}

type contactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, m *model.ContactMessage) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *contactMessageRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var list []model.ContactMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *contactMessageRepository) MarkRead(ctx context.Context, id uint64) (int64, error) {
	if r.db == nil {
		return 0, ErrDBNotReady
	}
	res := r.db.WithContext(ctx).
		Model(&model.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *contactMessageRepository) SetDB(db *gorm.DB) {
	r.db = db
}
