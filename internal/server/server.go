package server

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cedricplans/houseplans-backend/internal/config"
	"github.com/cedricplans/houseplans-backend/internal/handler"
	"github.com/cedricplans/houseplans-backend/internal/repository"
	"github.com/cedricplans/houseplans-backend/internal/service"
	"github.com/cedricplans/houseplans-backend/internal/storage"
	"github.com/cedricplans/houseplans-backend/internal/yoco"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	e            *echo.Echo
	planRepo     repository.HousePlanRepository
	purchaseRepo repository.PurchaseRepository
	quoteRepo    repository.QuoteRequestRepository
	contactRepo  repository.ContactMessageRepository
	settingsRepo repository.SiteSettingsRepository
}

func New(db *gorm.DB, cfg *config.Config, log *zap.Logger, imageStore storage.ImageStore) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			host := u.Hostname()
			if strings.HasSuffix(host, "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	planRepo := repository.NewHousePlanRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	quoteRepo := repository.NewQuoteRequestRepository(db)
	contactRepo := repository.NewContactMessageRepository(db)
	settingsRepo := repository.NewSiteSettingsRepository(db)

	yocoClient := yoco.NewClient(cfg.YocoChargeURL, cfg.YocoSecretKey, time.Duration(cfg.YocoTimeoutSec)*time.Second)

	planSvc := service.NewHousePlanService(planRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, planRepo)
	paymentSvc := service.NewPaymentService(purchaseRepo, planRepo, yocoClient, log)
	leadSvc := service.NewLeadService(quoteRepo, contactRepo)
	settingsSvc := service.NewSiteSettingsService(settingsRepo)

	planHandler := handler.NewHousePlanHandler(planSvc)
	purchaseHandler := handler.NewPurchaseHandler(purchaseSvc, paymentSvc)
	leadHandler := handler.NewLeadHandler(leadSvc)
	settingsHandler := handler.NewSiteSettingsHandler(settingsSvc, cfg.YocoPublicKey)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")

	api.GET("/house-plans", planHandler.List)
	api.GET("/house-plans/:id", planHandler.Get)
	api.GET("/built-homes", planHandler.BuiltHomes)

	api.POST("/quote-requests", leadHandler.CreateQuoteRequest)
	api.GET("/quote-requests", leadHandler.ListQuoteRequests)
	api.POST("/quote-requests/:id/review", leadHandler.MarkQuoteReviewed)
	api.POST("/contact-messages", leadHandler.CreateContactMessage)
	api.GET("/contact-messages", leadHandler.ListContactMessages)
	api.POST("/contact-messages/:id/read", leadHandler.MarkContactRead)

	api.POST("/purchases", purchaseHandler.Create)
	api.GET("/purchases/:id", purchaseHandler.Get)
	api.POST("/purchases/:id/charge", purchaseHandler.Charge)

	api.GET("/site-settings", settingsHandler.Get)
	api.GET("/payments/public-key", settingsHandler.GetPublicKey)

	if imageStore != nil {
		imageHandler := handler.NewImageHandler(planSvc, imageStore)
		api.POST("/house-plans/:id/images", imageHandler.Upload)
	}

	return &Server{
		e:            e,
		planRepo:     planRepo,
		purchaseRepo: purchaseRepo,
		quoteRepo:    quoteRepo,
		contactRepo:  contactRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// SetDB injects the database connection once it is available. The
// server starts serving before the connection is up; repositories
// answer ErrDBNotReady until then.
func (s *Server) SetDB(db *gorm.DB) {
	s.planRepo.SetDB(db)
	s.purchaseRepo.SetDB(db)
	s.quoteRepo.SetDB(db)
	s.contactRepo.SetDB(db)
	s.settingsRepo.SetDB(db)
}
