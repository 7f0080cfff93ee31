package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// CanTransitionTo reports whether a purchase may move from s to next.
// Completed, cancelled and failed are terminal; only a pending
// purchase can be resolved, and only to completed or failed.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s != PaymentStatusPending {
		return false
	}
	return next == PaymentStatusCompleted || next == PaymentStatusFailed
}

type Purchase struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	HousePlanID uint64 `gorm:"column:house_plan_id;index;not null"`

	// Price of the plan at the time the purchase was created. Never
	// re-read from the catalog afterwards.
	PlanPrice decimal.Decimal `gorm:"column:plan_price;type:decimal(12,2);not null"`

	FullName    string `gorm:"column:full_name;size:255;not null"`
	Email       string `gorm:"size:255;not null"`
	PhoneNumber string `gorm:"column:phone_number;size:20;not null"`

	Province    string `gorm:"size:50;not null"`
	City        string `gorm:"size:150;not null"`
	PickUpPoint string `gorm:"column:pick_up_point;size:255"`
	AreaMall    string `gorm:"column:area_mall;size:255"`

	PaymentStatus    PaymentStatus `gorm:"column:payment_status;size:20;not null;default:pending"`
	PaymentReference *string       `gorm:"column:payment_reference;size:255"`
	PaymentToken     *string       `gorm:"column:payment_token;size:255"`
	PaymentDate      *time.Time    `gorm:"column:payment_date"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Purchase) TableName() string {
	return "purchases"
}
