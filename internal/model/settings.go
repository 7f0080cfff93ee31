package model

import "time"

// SiteSettingsID is the fixed primary key of the single settings row.
// The repository only ever reads and writes this row.
const SiteSettingsID uint64 = 1

type SiteSettings struct {
	ID uint64 `gorm:"primaryKey"`

	Phone   string `gorm:"size:20"`
	Email   string `gorm:"size:255"`
	Address string `gorm:"type:text"`

	MondayFridayHours string `gorm:"column:monday_friday_hours;size:100;not null;default:'9:00 AM - 6:00 PM'"`
	SaturdayHours     string `gorm:"column:saturday_hours;size:100;not null;default:'10:00 AM - 4:00 PM'"`
	SundayHours       string `gorm:"column:sunday_hours;size:100;not null;default:'Closed'"`

	CompanyName string `gorm:"column:company_name;size:200"`
	WebsiteURL  string `gorm:"column:website_url;size:512"`

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
