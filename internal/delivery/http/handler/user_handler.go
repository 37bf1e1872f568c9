package handler

import (
	"errors"

	"job-insight/internal/delivery/http/dto"
	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/domain/user"
	"job-insight/internal/pkg/response"
	"job-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	users     usecase.UserUsecase
	recommend usecase.RecommendationUsecase
}

type updateProfileRequest struct {
	Title           string   `json:"title"`
	Skills          []string `json:"skills"`
	Location        string   `json:"location"`
	Education       string   `json:"education"`
	ExperienceYears int      `json:"experience_years"`
	CurrentSalary   int      `json:"current_salary"`
	TargetSalary    int      `json:"target_salary"`
	Resume          string   `json:"resume"`
}

type updateSkillsRequest struct {
	Skills []string `json:"skills"`
}

func NewUserHandler(users usecase.UserUsecase, recommend usecase.RecommendationUsecase) *UserHandler {
	return &UserHandler{users: users, recommend: recommend}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/me", h.Me)
	r.Put("/me", h.UpdateProfile)
	r.Put("/me/skills", h.UpdateSkills)
	r.Get("/me/recommendations", h.Recommendations)
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.users.GetProfile(c.Context(), userID)
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUser(usr))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.users.UpdateProfile(c.Context(), userID, user.Profile{
		Title:           req.Title,
		Skills:          req.Skills,
		Location:        req.Location,
		Education:       req.Education,
		ExperienceYears: req.ExperienceYears,
		CurrentSalary:   req.CurrentSalary,
		TargetSalary:    req.TargetSalary,
		Resume:          req.Resume,
	})
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUser(usr))
}

func (h *UserHandler) UpdateSkills(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.users.UpdateSkills(c.Context(), userID, req.Skills)
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUser(usr))
}

func (h *UserHandler) Recommendations(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	result, err := h.recommend.ForUser(c.Context(), userID)
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRecommendationResult(result))
}

func userIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	v := c.Locals(middleware.CtxUserIDKey)
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid input", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
