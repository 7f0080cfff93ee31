package main

import (
	"context"
	"fmt"
	"log"

	"github.com/cedricplans/houseplans-backend/internal/config"
	"github.com/cedricplans/houseplans-backend/internal/db"
	"github.com/cedricplans/houseplans-backend/internal/model"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}

	if err := gdb.WithContext(ctx).AutoMigrate(
		&model.HousePlan{},
		&model.HousePlanImage{},
		&model.Floor{},
		&model.Room{},
		&model.Feature{},
		&model.Amenity{},
		&model.QuoteRequest{},
		&model.ContactMessage{},
		&model.SiteSettings{},
		&model.Purchase{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := seedSettings(ctx, gdb); err != nil {
		return err
	}

	var count int64
	if err := gdb.WithContext(ctx).Model(&model.HousePlan{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count plans: %w", err)
	}
	if count > 0 {
		log.Printf("house plans already exist; skipping catalog seed")
		return nil
	}

	for _, plan := range samplePlans() {
		if err := gdb.WithContext(ctx).Create(plan).Error; err != nil {
			return fmt.Errorf("create plan %q: %w", plan.Title, err)
		}
		log.Printf("seeded plan %q (id=%d)", plan.Title, plan.ID)
	}
	return nil
}

func seedSettings(ctx context.Context, gdb *gorm.DB) error {
	s := model.SiteSettings{
		ID:      model.SiteSettingsID,
		Phone:   "0695885837",
		Email:   "info@cedricplans.co.za",
		Address: "South Africa, Venda",

		MondayFridayHours: "9:00 AM - 6:00 PM",
		SaturdayHours:     "10:00 AM - 4:00 PM",
		SundayHours:       "Closed",

		CompanyName: "Cedric House Plans",
	}
	if err := gdb.WithContext(ctx).FirstOrCreate(&s, model.SiteSettings{ID: model.SiteSettingsID}).Error; err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func samplePlans() []*model.HousePlan {
	return []*model.HousePlan{
		{
			Title:           "Thavhani Contemporary 3-Bed",
			Description:     "Single-storey contemporary family home with open-plan living and a double garage.",
			Price:           dec("4999.99"),
			DisplayLocation: model.DisplayHousePlansPage,
			PropertyType:    "house",
			Style:           "contemporary",
			Status:          model.PlanStatusFeatured,
			Bedrooms:        3,
			Bathrooms:       2,
			Garage:          2,
			SquareFeet:      decPtr("1850.00"),
			WidthMeters:     decPtr("18.50"),
			DepthMeters:     decPtr("14.20"),
			IsPopular:       true,
			IsNew:           true,
			Floors: []model.Floor{
				{
					Level:       model.FloorGround,
					FloorArea:   dec("172.00"),
					Bedrooms:    3,
					Bathrooms:   2,
					Lounges:     1,
					DiningAreas: 1,
					Rooms: []model.Room{
						{Name: "Master Bedroom", Quantity: 1, Order: 0},
						{Name: "Bedroom", Quantity: 2, Order: 1},
						{Name: "Kitchen", Quantity: 1, Order: 2},
						{Name: "Open-Plan Lounge", Quantity: 1, Order: 3},
					},
				},
			},
			Features: []model.Feature{
				{Name: "Open-plan kitchen", Order: 0},
				{Name: "Covered patio", Order: 1},
			},
			Amenities: []model.Amenity{
				{Name: "Double garage", Order: 0},
			},
		},
		{
			Title:           "Limpopo Double-Storey 5-Bed",
			Description:     "Spacious double-storey home with a balcony, study and entertainment area.",
			Price:           dec("7500.00"),
			DisplayLocation: model.DisplayHousePlansPage,
			PropertyType:    "house",
			Style:           "modern",
			Status:          model.PlanStatusNormal,
			Bedrooms:        5,
			Bathrooms:       3,
			Garage:          2,
			SquareFeet:      decPtr("3200.00"),
			IsBestSelling:   true,
			Floors: []model.Floor{
				{
					Level:       model.FloorGround,
					FloorArea:   dec("190.00"),
					Bedrooms:    1,
					Bathrooms:   1,
					Lounges:     2,
					DiningAreas: 1,
					Order:       0,
					Rooms: []model.Room{
						{Name: "Guest Bedroom", Quantity: 1, Order: 0},
						{Name: "Kitchen", Quantity: 1, Order: 1},
						{Name: "Entertainment Area", Quantity: 1, Order: 2},
					},
				},
				{
					Level:     model.FloorFirst,
					FloorArea: dec("165.00"),
					Bedrooms:  4,
					Bathrooms: 2,
					Order:     1,
					Rooms: []model.Room{
						{Name: "Master Bedroom", Quantity: 1, Order: 0},
						{Name: "Bedroom", Quantity: 3, Order: 1},
						{Name: "Study", Quantity: 1, Order: 2},
					},
				},
			},
			Features: []model.Feature{
				{Name: "First-floor balcony", Order: 0},
				{Name: "Walk-in closet", Order: 1},
			},
		},
		{
			Title:           "Venda Villa Showcase",
			Description:     "Completed villa build showcasing finishes and landscaping.",
			Price:           dec("12500.00"),
			DisplayLocation: model.DisplayBuiltPlansPage,
			PropertyType:    "villa",
			Style:           "mediterranean",
			Status:          model.PlanStatusLimited,
			Bedrooms:        4,
			Bathrooms:       3,
			Garage:          2,
		},
	}
}
