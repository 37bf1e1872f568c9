package usecase

import (
	"context"
	"errors"
	"testing"

	"job-insight/internal/domain/job"

	"github.com/google/uuid"
)

var errTest = errors.New("test error")

func analysisFixture() []job.Posting {
	return []job.Posting{
		{ID: uuid.New(), City: "北京", Category: "后端开发", ExperienceRequired: "1-3年", SalaryMin: 10000, SalaryMax: 20000, Tags: []string{"Python", "MySQL"}},
		{ID: uuid.New(), City: "北京", Category: "后端开发", ExperienceRequired: "3-5年", SalaryMin: 20000, SalaryMax: 40000, Tags: []string{"Python", "Redis"}},
		{ID: uuid.New(), City: "深圳", Category: "前端开发", ExperienceRequired: "1-3年", SalaryMin: 8000, SalaryMax: 16000, Tags: []string{"JavaScript", "Vue"}},
		{ID: uuid.New(), City: "上海", Category: "数据分析", ExperienceRequired: "应届毕业生", SalaryMin: 4000, SalaryMax: 6000, Tags: []string{"Python", "SQL"}},
	}
}

func TestAnalysis_Salary(t *testing.T) {
	uc := NewAnalysisUsecase(mockJobRepo{all: analysisFixture()}, nil, nil)
	out, err := uc.Salary(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Midpoints are 15000, 30000, 12000, 5000.
	if out.AverageSalary != (15000+30000+12000+5000)/4 {
		t.Fatalf("unexpected average: %d", out.AverageSalary)
	}
	if out.TotalPositions != 4 {
		t.Fatalf("unexpected total: %d", out.TotalPositions)
	}
	if out.SalaryDistribution["10K-15K"] != 1 || out.SalaryDistribution["30K+"] != 1 || out.SalaryDistribution["5K-10K"] != 1 {
		t.Fatalf("unexpected distribution: %v", out.SalaryDistribution)
	}
	if len(out.TopPayingCities) != 3 || out.TopPayingCities[0].City != "北京" {
		t.Fatalf("unexpected top cities: %v", out.TopPayingCities)
	}
	if out.SalaryByExperience["1-3年"] != (15000+12000)/2 {
		t.Fatalf("unexpected experience salary: %v", out.SalaryByExperience)
	}
}

func TestAnalysis_Salary_EmptyStorage(t *testing.T) {
	uc := NewAnalysisUsecase(mockJobRepo{}, nil, nil)
	out, err := uc.Salary(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.AverageSalary != 0 || out.TotalPositions != 0 {
		t.Fatalf("expected zero analysis, got %+v", out)
	}
	if len(out.SalaryDistribution) != 6 {
		t.Fatalf("expected all buckets present, got %v", out.SalaryDistribution)
	}
}

func TestAnalysis_City(t *testing.T) {
	uc := NewAnalysisUsecase(mockJobRepo{all: analysisFixture()}, nil, nil)
	out, err := uc.City(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.CityJobDistribution["北京"] != 2 {
		t.Fatalf("unexpected distribution: %v", out.CityJobDistribution)
	}
	if out.CityAverageSalary["深圳"] != 12000 {
		t.Fatalf("unexpected city salary: %v", out.CityAverageSalary)
	}
}

func TestAnalysis_Experience(t *testing.T) {
	uc := NewAnalysisUsecase(mockJobRepo{all: analysisFixture()}, nil, nil)
	out, err := uc.Experience(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.ExperienceDistribution["1-3年"] != 2 {
		t.Fatalf("unexpected distribution: %v", out.ExperienceDistribution)
	}
	if out.AverageSalaryByExperience["3-5年"] != 30000 {
		t.Fatalf("unexpected salary: %v", out.AverageSalaryByExperience)
	}
}

func TestAnalysis_RealTime(t *testing.T) {
	uc := NewAnalysisUsecase(mockJobRepo{all: analysisFixture()}, nil, nil)
	out, err := uc.RealTime(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.TotalJobs != 4 {
		t.Fatalf("unexpected total: %d", out.TotalJobs)
	}
	if len(out.Cities) != len(out.Salaries) {
		t.Fatalf("cities and salaries not parallel")
	}
	if out.Cities[0] != "北京" {
		t.Fatalf("expected 北京 ranked first by salary, got %s", out.Cities[0])
	}
	if len(out.Skills) == 0 || out.Skills[0] != "Python" {
		t.Fatalf("expected Python as hottest tag, got %v", out.Skills)
	}
	if out.SkillCounts[0] != 3 {
		t.Fatalf("unexpected Python count: %d", out.SkillCounts[0])
	}
}

func TestAnalysis_CachedSecondRead(t *testing.T) {
	cache := newMemoryCache()
	uc := NewAnalysisUsecase(mockJobRepo{all: analysisFixture()}, cache, nil)
	first, err := uc.Industry(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// A broken repository is never reached when the cache holds the key.
	uc2 := NewAnalysisUsecase(mockJobRepo{err: errTest}, cache, nil)
	second, err := uc2.Industry(context.Background())
	if err != nil {
		t.Fatalf("unexpected err on cached read: %v", err)
	}
	if second.CategoryDistribution["后端开发"] != first.CategoryDistribution["后端开发"] {
		t.Fatalf("cached result differs")
	}
}
