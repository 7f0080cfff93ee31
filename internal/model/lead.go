package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteRequest struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	FullName    string `gorm:"column:full_name;size:200;not null"`
	Email       string `gorm:"size:255;not null"`
	PhoneNumber string `gorm:"column:phone_number;size:20;not null"`
	City        string `gorm:"size:100;not null"`

	PreferredStyle     string `gorm:"column:preferred_style;size:50;not null"`
	Bedrooms           int    `gorm:"not null"`
	Bathrooms          int    `gorm:"not null"`
	OtherRequiredRooms string `gorm:"column:other_required_rooms;type:text"`

	StandLengthMeters  decimal.Decimal `gorm:"column:stand_length_meters;type:decimal(8,2);not null"`
	StandBreadthMeters decimal.Decimal `gorm:"column:stand_breadth_meters;type:decimal(8,2);not null"`
	Budget             string          `gorm:"size:20;not null"`

	ProjectDescription string `gorm:"column:project_description;type:text"`

	IsReviewed bool      `gorm:"column:is_reviewed;not null;default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (QuoteRequest) TableName() string {
	return "quote_requests"
}

type ContactMessage struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	FullName    string `gorm:"column:full_name;size:200;not null"`
	Email       string `gorm:"size:255;not null"`
	PhoneNumber string `gorm:"column:phone_number;size:20;not null"`

	Subject string `gorm:"size:200;not null"`
	Message string `gorm:"type:text;not null"`

	IsRead    bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
