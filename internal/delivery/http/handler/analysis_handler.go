package handler

import (
	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/pkg/response"
	"job-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalysisHandler struct {
	analysis usecase.AnalysisUsecase
}

func NewAnalysisHandler(analysis usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/salary", h.Salary)
	r.Get("/city", h.City)
	r.Get("/experience", h.Experience)
	r.Get("/industry", h.Industry)
	r.Get("/real-time", h.RealTime)
}

func (h *AnalysisHandler) Salary(c fiber.Ctx) error {
	out, err := h.analysis.Salary(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalysisHandler) City(c fiber.Ctx) error {
	out, err := h.analysis.City(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalysisHandler) Experience(c fiber.Ctx) error {
	out, err := h.analysis.Experience(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalysisHandler) Industry(c fiber.Ctx) error {
	out, err := h.analysis.Industry(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalysisHandler) RealTime(c fiber.Ctx) error {
	out, err := h.analysis.RealTime(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
