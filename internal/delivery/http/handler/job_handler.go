package handler

import (
	"errors"
	"strconv"

	"job-insight/internal/delivery/http/dto"
	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/domain/job"
	"job-insight/internal/pkg/response"
	"job-insight/internal/repository"
	"job-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	jobs usecase.JobUsecase
}

type jobRequest struct {
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	City               string   `json:"city"`
	SalaryMin          int      `json:"salary_min"`
	SalaryMax          int      `json:"salary_max"`
	ExperienceRequired string   `json:"experience_required"`
	EducationRequired  string   `json:"education_required"`
	Description        string   `json:"description"`
	Requirements       string   `json:"requirements"`
	Category           string   `json:"category"`
	Tags               []string `json:"tags"`
}

func NewJobHandler(jobs usecase.JobUsecase) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/search", h.Search)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	result, err := h.jobs.List(c.Context(), filterFromQuery(c))
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobListResponse{
		Items:  dto.FromPostings(result.Items),
		Total:  result.Total,
		Limit:  result.Limit,
		Offset: result.Offset,
	})
}

func (h *JobHandler) Search(c fiber.Ctx) error {
	result, err := h.jobs.Search(c.Context(), c.Query("keyword"), filterFromQuery(c))
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobListResponse{
		Items:  dto.FromPostings(result.Items),
		Total:  result.Total,
		Limit:  result.Limit,
		Offset: result.Offset,
	})
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	p, err := h.jobs.Get(c.Context(), id)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPosting(p))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.jobs.Create(c.Context(), postingFromRequest(req))
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromPosting(p))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p := postingFromRequest(req)
	p.ID = id
	updated, err := h.jobs.Update(c.Context(), p)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPosting(updated))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	if err := h.jobs.Delete(c.Context(), id); err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func filterFromQuery(c fiber.Ctx) repository.JobFilter {
	return repository.JobFilter{
		Keyword:    c.Query("keyword"),
		City:       c.Query("city"),
		Category:   c.Query("category"),
		Experience: c.Query("experience"),
		Education:  c.Query("education"),
		SalaryMin:  queryInt(c, "salary_min"),
		SalaryMax:  queryInt(c, "salary_max"),
		Limit:      queryInt(c, "limit"),
		Offset:     queryInt(c, "offset"),
	}
}

func queryInt(c fiber.Ctx, key string) int {
	s := c.Query(key)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func postingFromRequest(req jobRequest) job.Posting {
	return job.Posting{
		Title:              req.Title,
		Company:            req.Company,
		City:               req.City,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		ExperienceRequired: req.ExperienceRequired,
		EducationRequired:  req.EducationRequired,
		Description:        req.Description,
		Requirements:       req.Requirements,
		Category:           req.Category,
		Tags:               req.Tags,
	}
}

func mapJobError(err error) error {
	switch {
	case errors.Is(err, repository.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid input", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
