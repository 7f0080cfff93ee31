package repository

import (
	"context"
	"errors"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"gorm.io/gorm"
)

var ErrDBNotReady = errors.New("database not initialized")

type HousePlanRepository interface {
	FindByID(ctx context.Context, id uint64) (*model.HousePlan, error)
	List(ctx context.Context, displayLocation model.DisplayLocation) ([]model.HousePlan, error)
	AddImage(ctx context.Context, img *model.HousePlanImage) error
	SetDB(db *gorm.DB)
}

type housePlanRepository struct {
	db *gorm.DB
}

func NewHousePlanRepository(db *gorm.DB) HousePlanRepository {
	return &housePlanRepository{db: db}
}

func (r *housePlanRepository) FindByID(ctx context.Context, id uint64) (*model.HousePlan, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var plan model.HousePlan
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Floors", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Floors.Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Features", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Amenities", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *housePlanRepository) List(ctx context.Context, displayLocation model.DisplayLocation) ([]model.HousePlan, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	q := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Order("created_at DESC")
	if displayLocation != "" {
		q = q.Where("display_location = ?", displayLocation)
	}
	var plans []model.HousePlan
	if err := q.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *housePlanRepository) AddImage(ctx context.Context, img *model.HousePlanImage) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *housePlanRepository) SetDB(db *gorm.DB) {
	r.db = db
}
