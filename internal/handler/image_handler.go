package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cedricplans/houseplans-backend/internal/service"
	"github.com/cedricplans/houseplans-backend/internal/storage"
	"github.com/labstack/echo/v4"
)

type ImageHandler struct {
	plans service.HousePlanService
	store storage.ImageStore
}

func NewImageHandler(plans service.HousePlanService, store storage.ImageStore) *ImageHandler {
	return &ImageHandler{plans: plans, store: store}
}

type UploadImageResponse struct {
	ID       uint64 `json:"id"`
	ImageURL string `json:"image_url"`
}

// Upload accepts a multipart "image" file, writes it to object storage
// and attaches the resulting URL to the plan.
func (h *ImageHandler) Upload(c echo.Context) error {
	planID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid house plan id"))
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "image file required"))
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unreadable image file"))
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	url, err := h.store.Upload(c.Request().Context(), fh.Filename, contentType, src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to store image"))
	}

	title := c.FormValue("title")
	order, _ := strconv.Atoi(c.FormValue("order"))
	img, err := h.plans.AttachImage(c.Request().Context(), planID, url, title, order)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "house plan not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to attach image"))
	}
	return c.JSON(http.StatusCreated, UploadImageResponse{ID: img.ID, ImageURL: img.ImageURL})
}
