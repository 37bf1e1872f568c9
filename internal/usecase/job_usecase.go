package usecase

import (
	"context"
	"log"
	"strings"

	"job-insight/internal/domain/job"
	"job-insight/internal/repository"

	"github.com/google/uuid"
)

type JobListResult struct {
	Items  []job.Posting `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type JobUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (job.Posting, error)
	List(ctx context.Context, filter repository.JobFilter) (JobListResult, error)
	Search(ctx context.Context, keyword string, filter repository.JobFilter) (JobListResult, error)
	Create(ctx context.Context, p job.Posting) (job.Posting, error)
	Update(ctx context.Context, p job.Posting) (job.Posting, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Jobs struct {
	repo   repository.JobRepository
	cache  Cache
	logger *log.Logger
}

func NewJobUsecase(repo repository.JobRepository, cache Cache, logger *log.Logger) *Jobs {
	return &Jobs{repo: repo, cache: cache, logger: logger}
}

func (j *Jobs) Get(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	return j.repo.GetByID(ctx, id)
}

func (j *Jobs) List(ctx context.Context, filter repository.JobFilter) (JobListResult, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	key := jobListCacheKey(filter)
	if j.cache != nil {
		var cached JobListResult
		if ok, err := j.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	items, err := j.repo.List(ctx, filter)
	if err != nil {
		return JobListResult{}, err
	}
	total, err := j.repo.Count(ctx, filter)
	if err != nil {
		return JobListResult{}, err
	}

	result := JobListResult{Items: items, Total: total, Limit: filter.Limit, Offset: filter.Offset}
	if j.cache != nil {
		if err := j.cache.SetJSON(ctx, key, result, jobListCacheTTL); err != nil && j.logger != nil {
			j.logger.Printf("[Jobs] cache set failed | key=%s err=%v", key, err)
		}
	}
	return result, nil
}

func (j *Jobs) Search(ctx context.Context, keyword string, filter repository.JobFilter) (JobListResult, error) {
	filter.Keyword = strings.TrimSpace(keyword)
	return j.List(ctx, filter)
}

func (j *Jobs) Create(ctx context.Context, p job.Posting) (job.Posting, error) {
	if err := validatePosting(p); err != nil {
		return job.Posting{}, err
	}
	if err := j.repo.Create(ctx, &p); err != nil {
		return job.Posting{}, err
	}
	j.invalidateLists(ctx)
	return p, nil
}

func (j *Jobs) Update(ctx context.Context, p job.Posting) (job.Posting, error) {
	if p.ID == uuid.Nil {
		return job.Posting{}, ErrInvalidInput
	}
	if err := validatePosting(p); err != nil {
		return job.Posting{}, err
	}
	if err := j.repo.Update(ctx, &p); err != nil {
		return job.Posting{}, err
	}
	j.invalidateLists(ctx)
	return j.repo.GetByID(ctx, p.ID)
}

func (j *Jobs) Delete(ctx context.Context, id uuid.UUID) error {
	if err := j.repo.Delete(ctx, id); err != nil {
		return err
	}
	j.invalidateLists(ctx)
	return nil
}

func (j *Jobs) invalidateLists(ctx context.Context) {
	if j.cache == nil {
		return
	}
	if err := j.cache.DeleteByPattern(ctx, "jobs:list:*"); err != nil && j.logger != nil {
		j.logger.Printf("[Jobs] cache invalidate failed | err=%v", err)
	}
	_ = j.cache.DeleteByPattern(ctx, "analysis:*")
	_ = j.cache.DeleteByPattern(ctx, "recommend:user:*")
}

func validatePosting(p job.Posting) error {
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Company) == "" {
		return ErrInvalidInput
	}
	if p.SalaryMin < 0 || p.SalaryMax < 0 || (p.SalaryMax > 0 && p.SalaryMin > p.SalaryMax) {
		return ErrInvalidInput
	}
	return nil
}
