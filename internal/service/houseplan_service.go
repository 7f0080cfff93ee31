package service

import (
	"context"
	"errors"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"github.com/cedricplans/houseplans-backend/internal/repository"
	"gorm.io/gorm"
)

type HousePlanService interface {
	Get(ctx context.Context, id uint64) (*model.HousePlan, error)
	List(ctx context.Context, displayLocation string) ([]model.HousePlan, error)
	BuiltHomes(ctx context.Context) ([]model.HousePlan, error)
	AttachImage(ctx context.Context, planID uint64, imageURL, title string, order int) (*model.HousePlanImage, error)
}

type housePlanService struct {
	repo repository.HousePlanRepository
}

func NewHousePlanService(repo repository.HousePlanRepository) HousePlanService {
	return &housePlanService{repo: repo}
}

func (s *housePlanService) Get(ctx context.Context, id uint64) (*model.HousePlan, error) {
	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *housePlanService) List(ctx context.Context, displayLocation string) ([]model.HousePlan, error) {
	return s.repo.List(ctx, model.DisplayLocation(displayLocation))
}

func (s *housePlanService) BuiltHomes(ctx context.Context) ([]model.HousePlan, error) {
	return s.repo.List(ctx, model.DisplayBuiltPlansPage)
}

func (s *housePlanService) AttachImage(ctx context.Context, planID uint64, imageURL, title string, order int) (*model.HousePlanImage, error) {
	if _, err := s.repo.FindByID(ctx, planID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	img := &model.HousePlanImage{
		HousePlanID: planID,
		ImageURL:    imageURL,
		Title:       title,
		Order:       order,
	}
	if err := s.repo.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}
