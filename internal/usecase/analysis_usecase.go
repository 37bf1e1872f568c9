package usecase

import (
	"context"
	"log"
	"sort"

	"job-insight/internal/domain/job"
	"job-insight/internal/repository"
)

type CityAverage struct {
	City      string `json:"city"`
	AvgSalary int    `json:"avg_salary"`
}

type SalaryAnalysis struct {
	AverageSalary      int            `json:"average_salary"`
	SalaryDistribution map[string]int `json:"salary_distribution"`
	TopPayingCities    []CityAverage  `json:"top_paying_cities"`
	SalaryByExperience map[string]int `json:"salary_by_experience"`
	TotalPositions     int            `json:"total_positions"`
}

type CityAnalysis struct {
	CityJobDistribution map[string]int `json:"city_job_distribution"`
	CityAverageSalary   map[string]int `json:"city_average_salary"`
	TopJobCities        map[string]int `json:"top_job_cities"`
}

type ExperienceAnalysis struct {
	ExperienceDistribution    map[string]int `json:"experience_distribution"`
	AverageSalaryByExperience map[string]int `json:"average_salary_by_experience"`
}

type IndustryAnalysis struct {
	CategoryDistribution    map[string]int `json:"category_distribution"`
	AverageSalaryByCategory map[string]int `json:"average_salary_by_category"`
}

// RealTimeAnalysis feeds the dashboard charts: parallel slices keep
// the payload directly plottable on the client.
type RealTimeAnalysis struct {
	TotalJobs        int      `json:"total_jobs"`
	Cities           []string `json:"cities"`
	Salaries         []int    `json:"salaries"`
	Experiences      []string `json:"experiences"`
	Counts           []int    `json:"counts"`
	Industries       []string `json:"industries"`
	IndustrySalaries []int    `json:"industry_salaries"`
	Skills           []string `json:"skills"`
	SkillCounts      []int    `json:"skill_counts"`
}

type AnalysisUsecase interface {
	Salary(ctx context.Context) (SalaryAnalysis, error)
	City(ctx context.Context) (CityAnalysis, error)
	Experience(ctx context.Context) (ExperienceAnalysis, error)
	Industry(ctx context.Context) (IndustryAnalysis, error)
	RealTime(ctx context.Context) (RealTimeAnalysis, error)
}

type Analysis struct {
	jobs   repository.JobRepository
	cache  Cache
	logger *log.Logger
}

func NewAnalysisUsecase(jobs repository.JobRepository, cache Cache, logger *log.Logger) *Analysis {
	return &Analysis{jobs: jobs, cache: cache, logger: logger}
}

func (a *Analysis) Salary(ctx context.Context) (SalaryAnalysis, error) {
	var out SalaryAnalysis
	err := a.cached(ctx, "salary", &out, func(postings []job.Posting) any {
		out = salaryAnalysis(postings)
		return out
	})
	return out, err
}

func (a *Analysis) City(ctx context.Context) (CityAnalysis, error) {
	var out CityAnalysis
	err := a.cached(ctx, "city", &out, func(postings []job.Posting) any {
		out = cityAnalysis(postings)
		return out
	})
	return out, err
}

func (a *Analysis) Experience(ctx context.Context) (ExperienceAnalysis, error) {
	var out ExperienceAnalysis
	err := a.cached(ctx, "experience", &out, func(postings []job.Posting) any {
		out = experienceAnalysis(postings)
		return out
	})
	return out, err
}

func (a *Analysis) Industry(ctx context.Context) (IndustryAnalysis, error) {
	var out IndustryAnalysis
	err := a.cached(ctx, "industry", &out, func(postings []job.Posting) any {
		out = industryAnalysis(postings)
		return out
	})
	return out, err
}

func (a *Analysis) RealTime(ctx context.Context) (RealTimeAnalysis, error) {
	postings, err := a.jobs.ListAll(ctx)
	if err != nil {
		return RealTimeAnalysis{}, err
	}
	return realTimeAnalysis(postings), nil
}

// cached wraps an aggregation with a read-through cache keyed by kind.
func (a *Analysis) cached(ctx context.Context, kind string, out any, compute func([]job.Posting) any) error {
	key := analysisCacheKey(kind)
	if a.cache != nil {
		if ok, err := a.cache.GetJSON(ctx, key, out); err == nil && ok {
			return nil
		}
	}

	postings, err := a.jobs.ListAll(ctx)
	if err != nil {
		return err
	}
	result := compute(postings)

	if a.cache != nil {
		if err := a.cache.SetJSON(ctx, key, result, analysisCacheTTL); err != nil && a.logger != nil {
			a.logger.Printf("[Analysis] cache set failed | key=%s err=%v", key, err)
		}
	}
	return nil
}

func salaryAnalysis(postings []job.Posting) SalaryAnalysis {
	dist := map[string]int{
		"0-5K": 0, "5K-10K": 0, "10K-15K": 0, "15K-20K": 0, "20K-30K": 0, "30K+": 0,
	}
	if len(postings) == 0 {
		return SalaryAnalysis{
			SalaryDistribution: dist,
			TopPayingCities:    []CityAverage{},
			SalaryByExperience: map[string]int{},
		}
	}

	total := 0
	for _, p := range postings {
		avg := p.AverageSalary()
		total += avg
		switch {
		case avg < 5000:
			dist["0-5K"]++
		case avg < 10000:
			dist["5K-10K"]++
		case avg < 15000:
			dist["10K-15K"]++
		case avg < 20000:
			dist["15K-20K"]++
		case avg < 30000:
			dist["20K-30K"]++
		default:
			dist["30K+"]++
		}
	}

	topCities := make([]CityAverage, 0, 5)
	for _, e := range rankCounts(groupAverages(postings, func(p job.Posting) string { return p.City }), 5) {
		topCities = append(topCities, CityAverage{City: e.key, AvgSalary: e.count})
	}

	return SalaryAnalysis{
		AverageSalary:      total / len(postings),
		SalaryDistribution: dist,
		TopPayingCities:    topCities,
		SalaryByExperience: groupAverages(postings, func(p job.Posting) string { return p.ExperienceRequired }),
		TotalPositions:     len(postings),
	}
}

func cityAnalysis(postings []job.Posting) CityAnalysis {
	if len(postings) == 0 {
		return CityAnalysis{
			CityJobDistribution: map[string]int{},
			CityAverageSalary:   map[string]int{},
			TopJobCities:        map[string]int{},
		}
	}
	counts := groupCounts(postings, func(p job.Posting) string { return p.City })
	return CityAnalysis{
		CityJobDistribution: topCounts(counts, 20),
		CityAverageSalary:   groupAverages(postings, func(p job.Posting) string { return p.City }),
		TopJobCities:        topCounts(counts, 10),
	}
}

func experienceAnalysis(postings []job.Posting) ExperienceAnalysis {
	if len(postings) == 0 {
		return ExperienceAnalysis{
			ExperienceDistribution:    map[string]int{},
			AverageSalaryByExperience: map[string]int{},
		}
	}
	return ExperienceAnalysis{
		ExperienceDistribution:    groupCounts(postings, func(p job.Posting) string { return p.ExperienceRequired }),
		AverageSalaryByExperience: groupAverages(postings, func(p job.Posting) string { return p.ExperienceRequired }),
	}
}

func industryAnalysis(postings []job.Posting) IndustryAnalysis {
	if len(postings) == 0 {
		return IndustryAnalysis{
			CategoryDistribution:    map[string]int{},
			AverageSalaryByCategory: map[string]int{},
		}
	}
	return IndustryAnalysis{
		CategoryDistribution:    topCounts(groupCounts(postings, func(p job.Posting) string { return p.Category }), 20),
		AverageSalaryByCategory: groupAverages(postings, func(p job.Posting) string { return p.Category }),
	}
}

func realTimeAnalysis(postings []job.Posting) RealTimeAnalysis {
	out := RealTimeAnalysis{
		TotalJobs:        len(postings),
		Cities:           []string{},
		Salaries:         []int{},
		Experiences:      []string{},
		Counts:           []int{},
		Industries:       []string{},
		IndustrySalaries: []int{},
		Skills:           []string{},
		SkillCounts:      []int{},
	}
	if len(postings) == 0 {
		return out
	}

	for _, e := range rankCounts(groupAverages(postings, func(p job.Posting) string { return p.City }), 10) {
		out.Cities = append(out.Cities, e.key)
		out.Salaries = append(out.Salaries, e.count)
	}

	expCounts := groupCounts(postings, func(p job.Posting) string { return p.ExperienceRequired })
	for _, k := range sortedKeys(expCounts) {
		out.Experiences = append(out.Experiences, k)
		out.Counts = append(out.Counts, expCounts[k])
	}

	for _, e := range rankCounts(groupAverages(postings, func(p job.Posting) string { return p.Category }), 10) {
		out.Industries = append(out.Industries, e.key)
		out.IndustrySalaries = append(out.IndustrySalaries, e.count)
	}

	tagCounts := map[string]int{}
	for _, p := range postings {
		for _, t := range p.Tags {
			tagCounts[t]++
		}
	}
	for _, kv := range rankCounts(tagCounts, 10) {
		out.Skills = append(out.Skills, kv.key)
		out.SkillCounts = append(out.SkillCounts, kv.count)
	}
	return out
}

func groupCounts(postings []job.Posting, keyFn func(job.Posting) string) map[string]int {
	out := map[string]int{}
	for _, p := range postings {
		out[keyFn(p)]++
	}
	return out
}

func groupAverages(postings []job.Posting, keyFn func(job.Posting) string) map[string]int {
	sums := map[string]int{}
	counts := map[string]int{}
	for _, p := range postings {
		k := keyFn(p)
		sums[k] += p.AverageSalary()
		counts[k]++
	}
	out := make(map[string]int, len(sums))
	for k, sum := range sums {
		out[k] = sum / counts[k]
	}
	return out
}

type countEntry struct {
	key   string
	count int
}

func rankCounts(counts map[string]int, n int) []countEntry {
	entries := make([]countEntry, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, countEntry{key: k, count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func topCounts(counts map[string]int, n int) map[string]int {
	out := make(map[string]int, n)
	for _, e := range rankCounts(counts, n) {
		out[e.key] = e.count
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
