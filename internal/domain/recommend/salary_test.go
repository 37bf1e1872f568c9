package recommend

import (
	"testing"

	"job-insight/internal/domain/job"
	"job-insight/internal/domain/user"
)

func TestEstimateSalary_DefaultsWithoutRecommendations(t *testing.T) {
	got := EstimateSalary(user.Profile{CurrentSalary: 12000, TargetSalary: 18000}, nil)
	if got.ReasonableMin != defaultReasonableMin || got.ReasonableMax != defaultReasonableMax {
		t.Fatalf("expected defaults %d/%d, got %d/%d", defaultReasonableMin, defaultReasonableMax, got.ReasonableMin, got.ReasonableMax)
	}
	if got.SalaryGap != 6000 {
		t.Fatalf("expected gap 6000, got %d", got.SalaryGap)
	}
}

func TestEstimateSalary_ExperienceScaling(t *testing.T) {
	recs := []Recommendation{
		{Posting: job.Posting{SalaryMin: 15000, SalaryMax: 30000}},
	}
	got := EstimateSalary(user.Profile{ExperienceYears: 3}, recs)

	// factor = 1 + 0.15*3 = 1.45
	if got.ReasonableMin != int(15000*1.45*0.8) {
		t.Fatalf("expected min %d, got %d", int(15000*1.45*0.8), got.ReasonableMin)
	}
	if got.ReasonableMax != int(30000*1.45*1.2) {
		t.Fatalf("expected max %d, got %d", int(30000*1.45*1.2), got.ReasonableMax)
	}
}

func TestEstimateSalary_FactorCapped(t *testing.T) {
	recs := []Recommendation{
		{Posting: job.Posting{SalaryMin: 10000, SalaryMax: 20000}},
	}
	got := EstimateSalary(user.Profile{ExperienceYears: 30}, recs)

	// 1 + 0.15*30 = 5.5 capped at 2.5
	if got.ReasonableMin != int(10000*2.5*0.8) {
		t.Fatalf("expected capped min %d, got %d", int(10000*2.5*0.8), got.ReasonableMin)
	}
}

func TestEstimateSalary_GapZeroWhenCurrentUnknown(t *testing.T) {
	got := EstimateSalary(user.Profile{TargetSalary: 25000}, nil)
	if got.SalaryGap != 0 {
		t.Fatalf("expected zero gap when current salary unknown, got %d", got.SalaryGap)
	}
}

func TestEstimateSalary_AveragesAcrossRecommendations(t *testing.T) {
	recs := []Recommendation{
		{Posting: job.Posting{SalaryMin: 10000, SalaryMax: 20000}},
		{Posting: job.Posting{SalaryMin: 20000, SalaryMax: 40000}},
	}
	got := EstimateSalary(user.Profile{}, recs)

	// averages 15000 / 30000, factor 1.0
	if got.ReasonableMin != int(15000*0.8) {
		t.Fatalf("expected min %d, got %d", int(15000*0.8), got.ReasonableMin)
	}
	if got.ReasonableMax != int(30000*1.2) {
		t.Fatalf("expected max %d, got %d", int(30000*1.2), got.ReasonableMax)
	}
}
