package handler

import (
	"errors"
	"fmt"

	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/pkg/response"
	"job-insight/internal/scraper"

	"github.com/gofiber/fiber/v3"
)

type ScrapingHandler struct {
	svc *scraper.Service
}

type triggerRequest struct {
	Source string `json:"source"`
}

func NewScrapingHandler(svc *scraper.Service) *ScrapingHandler {
	return &ScrapingHandler{svc: svc}
}

func (h *ScrapingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/trigger", h.Trigger)
	r.Get("/status", h.Status)
	r.Get("/stats", h.Stats)
	r.Delete("/clear", h.Clear)
}

func (h *ScrapingHandler) Trigger(c fiber.Ctx) error {
	var req triggerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.svc.Trigger(req.Source); err != nil {
		switch {
		case errors.Is(err, scraper.ErrAlreadyRunning):
			return middleware.NewAppError(fiber.StatusBadRequest, "A scrape run is already in progress", nil, err)
		case errors.Is(err, scraper.ErrUnknownSource):
			return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported scrape source", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"source": req.Source,
		"status": "started",
	})
}

func (h *ScrapingHandler) Status(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.svc.Status())
}

func (h *ScrapingHandler) Stats(c fiber.Ctx) error {
	stats, err := h.svc.Stats(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, stats)
}

func (h *ScrapingHandler) Clear(c fiber.Ctx) error {
	deleted, err := h.svc.Clear(c.Context())
	if err != nil {
		if errors.Is(err, scraper.ErrAlreadyRunning) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Cannot clear while a scrape run is in progress", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, fmt.Sprintf("Removed %d postings", deleted), fiber.Map{
		"deleted_count": deleted,
	})
}
