package handler

import (
	"strconv"

	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/domain/recommend"
	"job-insight/internal/pkg/response"
	"job-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	skills usecase.SkillUsecase
}

type analyzeTextRequest struct {
	Text string `json:"text"`
	TopK int    `json:"top_k"`
}

type extractRequest struct {
	Text string `json:"text"`
}

type learningPathRequest struct {
	Skills []string `json:"skills"`
}

func NewSkillHandler(skills usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{skills: skills}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/analyze", h.Analyze)
	r.Post("/extract", h.Extract)
	r.Get("/trends", h.Trends)
	r.Get("/top-skills", h.TopSkills)
	r.Post("/recommendations", h.LearningPath)
}

func (h *SkillHandler) Analyze(c fiber.Ctx) error {
	var req analyzeTextRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.skills.AnalyzeText(c.Context(), req.Text, req.TopK)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *SkillHandler) Extract(c fiber.Ctx) error {
	var req extractRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills := recommend.ExtractSkills(req.Text)
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"skills": skills,
		"count":  len(skills),
	})
}

func (h *SkillHandler) Trends(c fiber.Ctx) error {
	trends, err := h.skills.Trends(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, trends)
}

func (h *SkillHandler) TopSkills(c fiber.Ctx) error {
	limit := 10
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
		}
		limit = v
	}

	top, err := h.skills.TopSkills(c.Context(), limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"top_skills": top,
	})
}

func (h *SkillHandler) LearningPath(c fiber.Ctx) error {
	var req learningPathRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	recs, err := h.skills.LearningPath(c.Context(), req.Skills)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, recs)
}
