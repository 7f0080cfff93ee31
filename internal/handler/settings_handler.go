package handler

import (
	"net/http"
	"time"

	"github.com/cedricplans/houseplans-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type SiteSettingsHandler struct {
	svc           service.SiteSettingsService
	yocoPublicKey string
}

func NewSiteSettingsHandler(svc service.SiteSettingsService, yocoPublicKey string) *SiteSettingsHandler {
	return &SiteSettingsHandler{svc: svc, yocoPublicKey: yocoPublicKey}
}

type SiteSettingsResponse struct {
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	CompanyName       string `json:"company_name"`
	WebsiteURL        string `json:"website_url"`
	MondayFridayHours string `json:"monday_friday_hours"`
	SaturdayHours     string `json:"saturday_hours"`
	SundayHours       string `json:"sunday_hours"`
	UpdatedAt         string `json:"updated_at"`
}

func (h *SiteSettingsHandler) Get(c echo.Context) error {
	s, err := h.svc.Get(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch site settings"))
	}
	return c.JSON(http.StatusOK, SiteSettingsResponse{
		Phone:             s.Phone,
		Email:             s.Email,
		Address:           s.Address,
		CompanyName:       s.CompanyName,
		WebsiteURL:        s.WebsiteURL,
		MondayFridayHours: s.MondayFridayHours,
		SaturdayHours:     s.SaturdayHours,
		SundayHours:       s.SundayHours,
		UpdatedAt:         s.UpdatedAt.Format(time.RFC3339),
	})
}

func (h *SiteSettingsHandler) GetPublicKey(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"public_key": h.yocoPublicKey})
}
