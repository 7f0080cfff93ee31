package service

import (
	"context"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"github.com/cedricplans/houseplans-backend/internal/repository"
)

type SiteSettingsService interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Update(ctx context.Context, s *model.SiteSettings) error
}

type siteSettingsService struct {
	repo repository.SiteSettingsRepository
}

func NewSiteSettingsService(repo repository.SiteSettingsRepository) SiteSettingsService {
	return &siteSettingsService{repo: repo}
}

func (s *siteSettingsService) Get(ctx context.Context) (*model.SiteSettings, error) {
	return s.repo.Get(ctx)
}

func (s *siteSettingsService) Update(ctx context.Context, settings *model.SiteSettings) error {
	return s.repo.Save(ctx, settings)
}
