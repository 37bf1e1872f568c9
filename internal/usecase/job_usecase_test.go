package usecase

import (
	"context"
	"errors"
	"testing"

	"job-insight/internal/domain/job"
	"job-insight/internal/repository"

	"github.com/google/uuid"
)

func TestJobs_Create_RejectsInvalid(t *testing.T) {
	uc := NewJobUsecase(mockJobRepo{}, nil, nil)

	cases := []job.Posting{
		{Title: "", Company: "Acme"},
		{Title: "工程师", Company: ""},
		{Title: "工程师", Company: "Acme", SalaryMin: 20000, SalaryMax: 10000},
		{Title: "工程师", Company: "Acme", SalaryMin: -1},
	}
	for _, p := range cases {
		if _, err := uc.Create(context.Background(), p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", p, err)
		}
	}
}

func TestJobs_List_DefaultsAndTotal(t *testing.T) {
	fixture := analysisFixture()
	uc := NewJobUsecase(mockJobRepo{all: fixture}, nil, nil)

	out, err := uc.List(context.Background(), repository.JobFilter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Limit != 20 || out.Offset != 0 {
		t.Fatalf("defaults not applied: %+v", out)
	}
	if out.Total != len(fixture) {
		t.Fatalf("unexpected total: %d", out.Total)
	}
}

func TestJobs_List_ServedFromCache(t *testing.T) {
	cache := newMemoryCache()
	uc := NewJobUsecase(mockJobRepo{all: analysisFixture()}, cache, nil)
	first, err := uc.List(context.Background(), repository.JobFilter{City: "北京"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	uc2 := NewJobUsecase(mockJobRepo{err: errTest}, cache, nil)
	second, err := uc2.List(context.Background(), repository.JobFilter{City: "北京"})
	if err != nil {
		t.Fatalf("unexpected err on cached read: %v", err)
	}
	if second.Total != first.Total {
		t.Fatalf("cached result differs: %d vs %d", second.Total, first.Total)
	}
}

func TestJobs_Delete_InvalidatesListCache(t *testing.T) {
	cache := newMemoryCache()
	uc := NewJobUsecase(mockJobRepo{all: analysisFixture()}, cache, nil)
	if _, err := uc.List(context.Background(), repository.JobFilter{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.data) == 0 {
		t.Fatalf("expected cached list")
	}
	if err := uc.Delete(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.data) != 0 {
		t.Fatalf("cache not invalidated after delete")
	}
}

func TestJobs_Create_InvalidatesRecommendationCache(t *testing.T) {
	cache := newMemoryCache()
	userKey := recommendationCacheKey(uuid.New().String())
	if err := cache.SetJSON(context.Background(), userKey, RecommendationResult{}, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	if err := cache.SetJSON(context.Background(), analysisCacheKey("salary"), SalaryAnalysis{}, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	uc := NewJobUsecase(mockJobRepo{}, cache, nil)
	if _, err := uc.Create(context.Background(), job.Posting{Title: "工程师", Company: "Acme"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, ok := cache.data[userKey]; ok {
		t.Fatalf("recommendation cache survived a posting write")
	}
	if _, ok := cache.data[analysisCacheKey("salary")]; ok {
		t.Fatalf("analysis cache survived a posting write")
	}
}

func TestJobs_Search_TrimsKeyword(t *testing.T) {
	uc := NewJobUsecase(mockJobRepo{all: analysisFixture()}, nil, nil)
	out, err := uc.Search(context.Background(), "  Python  ", repository.JobFilter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Limit != 20 {
		t.Fatalf("expected defaulted limit, got %d", out.Limit)
	}
}
