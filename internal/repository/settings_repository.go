package repository

import (
	"context"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteSettingsRepository guards the singleton settings row at the
// storage layer: every read and write targets the fixed primary key,
// and no delete is offered.
type SiteSettingsRepository interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Save(ctx context.Context, s *model.SiteSettings) error
	SetDB(db *gorm.DB)
}

type siteSettingsRepository struct {
	db *gorm.DB
}

func NewSiteSettingsRepository(db *gorm.DB) SiteSettingsRepository {
	return &siteSettingsRepository{db: db}
}

func (r *siteSettingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	s := model.SiteSettings{ID: model.SiteSettingsID}
	if err := r.db.WithContext(ctx).FirstOrCreate(&s, model.SiteSettings{ID: model.SiteSettingsID}).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *siteSettingsRepository) Save(ctx context.Context, s *model.SiteSettings) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	s.ID = model.SiteSettingsID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(s).Error
}

func (r *siteSettingsRepository) SetDB(db *gorm.DB) {
	r.db = db
}
