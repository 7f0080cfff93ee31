package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"github.com/cedricplans/houseplans-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type HousePlanHandler struct {
	svc service.HousePlanService
}

func NewHousePlanHandler(svc service.HousePlanService) *HousePlanHandler {
	return &HousePlanHandler{svc: svc}
}

type PlanImageResponse struct {
	ID       uint64 `json:"id"`
	ImageURL string `json:"image_url"`
	Title    string `json:"title"`
	Order    int    `json:"order"`
}

type RoomResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type FloorResponse struct {
	ID          uint64          `json:"id"`
	Level       string          `json:"level"`
	FloorArea   decimal.Decimal `json:"floor_area"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	Lounges     int             `json:"lounges"`
	DiningAreas int             `json:"dining_areas"`
	Notes       string          `json:"notes"`
	Order       int             `json:"order"`
	Rooms       []RoomResponse  `json:"rooms"`
}

type NamedEntryResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type HousePlanListItemResponse struct {
	ID            uint64              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `json:"price"`
	Bedrooms      int                 `json:"bedrooms"`
	Bathrooms     int                 `json:"bathrooms"`
	Garage        int                 `json:"garage"`
	SquareFeet    *decimal.Decimal    `json:"square_feet"`
	WidthMeters   *decimal.Decimal    `json:"width_meters"`
	DepthMeters   *decimal.Decimal    `json:"depth_meters"`
	PrimaryImage  *string             `json:"primary_image"`
	Images        []PlanImageResponse `json:"images"`
	Style         string              `json:"style"`
	Status        string              `json:"status"`
	IsPopular     bool                `json:"is_popular"`
	IsBestSelling bool                `json:"is_best_selling"`
	IsNew         bool                `json:"is_new"`
	IsPetFriendly bool                `json:"is_pet_friendly"`
}

type HousePlanDetailResponse struct {
	HousePlanListItemResponse
	VideoURL     *string              `json:"video_url"`
	PropertyType string               `json:"property_type"`
	LandSize     *decimal.Decimal     `json:"land_size"`
	Floors       []FloorResponse      `json:"floors"`
	Features     []NamedEntryResponse `json:"features"`
	Amenities    []NamedEntryResponse `json:"amenities"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
}

func (h *HousePlanHandler) List(c echo.Context) error {
	plans, err := h.svc.List(c.Request().Context(), c.QueryParam("display_on"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch house plans"))
	}
	return c.JSON(http.StatusOK, toPlanListResponse(plans))
}

func (h *HousePlanHandler) BuiltHomes(c echo.Context) error {
	plans, err := h.svc.BuiltHomes(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch built homes"))
	}
	return c.JSON(http.StatusOK, toPlanListResponse(plans))
}

func (h *HousePlanHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid house plan id"))
	}
	plan, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "house plan not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch house plan"))
	}
	return c.JSON(http.StatusOK, toPlanDetailResponse(plan))
}

func toPlanListResponse(plans []model.HousePlan) []HousePlanListItemResponse {
	resp := make([]HousePlanListItemResponse, 0, len(plans))
	for i := range plans {
		resp = append(resp, toPlanListItem(&plans[i]))
	}
	return resp
}

func toPlanListItem(p *model.HousePlan) HousePlanListItemResponse {
	images := make([]PlanImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, PlanImageResponse{
			ID:       img.ID,
			ImageURL: img.ImageURL,
			Title:    img.Title,
			Order:    img.Order,
		})
	}
	return HousePlanListItemResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		Garage:        p.Garage,
		SquareFeet:    p.SquareFeet,
		WidthMeters:   p.WidthMeters,
		DepthMeters:   p.DepthMeters,
		PrimaryImage:  p.PrimaryImageURL,
		Images:        images,
		Style:         p.Style,
		Status:        string(p.Status),
		IsPopular:     p.IsPopular,
		IsBestSelling: p.IsBestSelling,
		IsNew:         p.IsNew,
		IsPetFriendly: p.IsPetFriendly,
	}
}

func toPlanDetailResponse(p *model.HousePlan) HousePlanDetailResponse {
	floors := make([]FloorResponse, 0, len(p.Floors))
	for _, f := range p.Floors {
		rooms := make([]RoomResponse, 0, len(f.Rooms))
		for _, r := range f.Rooms {
			rooms = append(rooms, RoomResponse{
				ID:          r.ID,
				Name:        r.Name,
				Quantity:    r.Quantity,
				Description: r.Description,
				Order:       r.Order,
			})
		}
		floors = append(floors, FloorResponse{
			ID:          f.ID,
			Level:       string(f.Level),
			FloorArea:   f.FloorArea,
			Bedrooms:    f.Bedrooms,
			Bathrooms:   f.Bathrooms,
			Lounges:     f.Lounges,
			DiningAreas: f.DiningAreas,
			Notes:       f.Notes,
			Order:       f.Order,
			Rooms:       rooms,
		})
	}
	features := make([]NamedEntryResponse, 0, len(p.Features))
	for _, f := range p.Features {
		features = append(features, NamedEntryResponse{ID: f.ID, Name: f.Name, Description: f.Description, Order: f.Order})
	}
	amenities := make([]NamedEntryResponse, 0, len(p.Amenities))
	for _, a := range p.Amenities {
		amenities = append(amenities, NamedEntryResponse{ID: a.ID, Name: a.Name, Description: a.Description, Order: a.Order})
	}
	return HousePlanDetailResponse{
		HousePlanListItemResponse: toPlanListItem(p),
		VideoURL:                  p.VideoURL,
		PropertyType:              p.PropertyType,
		LandSize:                  p.LandSize,
		Floors:                    floors,
		Features:                  features,
		Amenities:                 amenities,
		CreatedAt:                 p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                 p.UpdatedAt.Format(time.RFC3339),
	}
}
