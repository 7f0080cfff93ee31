package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DisplayLocation string

const (
	DisplayHousePlansPage DisplayLocation = "house_plans_page"
	DisplayBuiltPlansPage DisplayLocation = "built_plans_page"
)

type PlanStatus string

const (
	PlanStatusFeatured PlanStatus = "featured"
	PlanStatusNormal   PlanStatus = "normal"
	PlanStatusLimited  PlanStatus = "limited"
)

type HousePlan struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	Title       string          `gorm:"size:200;not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	DisplayLocation DisplayLocation `gorm:"column:display_location;size:50;not null;default:house_plans_page"`

	PropertyType string           `gorm:"column:property_type;size:50;not null;default:house"`
	LandSize     *decimal.Decimal `gorm:"column:land_size;type:decimal(10,2)"`
	Style        string           `gorm:"size:100"`
	Status       PlanStatus       `gorm:"size:20;not null;default:normal"`

	Bedrooms    int              `gorm:"not null;default:1"`
	Bathrooms   int              `gorm:"not null;default:1"`
	Garage      int              `gorm:"not null;default:0"`
	SquareFeet  *decimal.Decimal `gorm:"column:square_feet;type:decimal(10,2)"`
	WidthMeters *decimal.Decimal `gorm:"column:width_meters;type:decimal(8,2)"`
	DepthMeters *decimal.Decimal `gorm:"column:depth_meters;type:decimal(8,2)"`

	PrimaryImageURL *string `gorm:"column:primary_image_url;size:512"`
	VideoURL        *string `gorm:"column:video_url;size:512"`

	IsPopular     bool `gorm:"column:is_popular;not null;default:false"`
	IsBestSelling bool `gorm:"column:is_best_selling;not null;default:false"`
	IsNew         bool `gorm:"column:is_new;not null;default:false"`
	IsPetFriendly bool `gorm:"column:is_pet_friendly;not null;default:false"`

	Images    []HousePlanImage `gorm:"foreignKey:HousePlanID;constraint:OnDelete:CASCADE"`
	Floors    []Floor          `gorm:"foreignKey:HousePlanID;constraint:OnDelete:CASCADE"`
	Features  []Feature        `gorm:"foreignKey:HousePlanID;constraint:OnDelete:CASCADE"`
	Amenities []Amenity        `gorm:"foreignKey:HousePlanID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (HousePlan) TableName() string {
	return "house_plans"
}

type HousePlanImage struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	HousePlanID uint64 `gorm:"column:house_plan_id;index;not null"`
	ImageURL    string `gorm:"column:image_url;size:512;not null"`
	Title       string `gorm:"size:200"`
	Order       int    `gorm:"column:sort_order;not null;default:0"`
}

func (HousePlanImage) TableName() string {
	return "house_plan_images"
}

type FloorLevel string

const (
	FloorGround   FloorLevel = "ground"
	FloorFirst    FloorLevel = "first"
	FloorSecond   FloorLevel = "second"
	FloorThird    FloorLevel = "third"
	FloorFourth   FloorLevel = "fourth"
	FloorFifth    FloorLevel = "fifth"
	FloorSixth    FloorLevel = "sixth"
	FloorSeventh  FloorLevel = "seventh"
	FloorEighth   FloorLevel = "eighth"
	FloorNinth    FloorLevel = "ninth"
	FloorTenth    FloorLevel = "tenth"
	FloorBasement FloorLevel = "basement"
)

type Floor struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	HousePlanID uint64          `gorm:"column:house_plan_id;index;not null"`
	Level       FloorLevel      `gorm:"size:20;not null"`
	FloorArea   decimal.Decimal `gorm:"column:floor_area;type:decimal(10,2);not null;default:0"`
	Bedrooms    int             `gorm:"not null;default:0"`
	Bathrooms   int             `gorm:"not null;default:0"`
	Lounges     int             `gorm:"not null;default:0"`
	DiningAreas int             `gorm:"column:dining_areas;not null;default:0"`
	Notes       string          `gorm:"type:text"`
	Order       int             `gorm:"column:sort_order;not null;default:0"`

	Rooms []Room `gorm:"foreignKey:FloorID;constraint:OnDelete:CASCADE"`
}

func (Floor) TableName() string {
	return "floors"
}

type Room struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	FloorID     uint64 `gorm:"column:floor_id;index;not null"`
	Name        string `gorm:"size:200;not null"`
	Quantity    int    `gorm:"not null;default:1"`
	Description string `gorm:"type:text"`
	Order       int    `gorm:"column:sort_order;not null;default:0"`
}

func (Room) TableName() string {
	return "rooms"
}

type Feature struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	HousePlanID uint64 `gorm:"column:house_plan_id;index;not null"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Order       int    `gorm:"column:sort_order;not null;default:0"`
}

func (Feature) TableName() string {
	return "features"
}

type Amenity struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	HousePlanID uint64 `gorm:"column:house_plan_id;index;not null"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Order       int    `gorm:"column:sort_order;not null;default:0"`
}

func (Amenity) TableName() string {
	return "amenities"
}
