package recommend

import (
	"math"

	"job-insight/internal/domain/user"
)

// Salary-estimate tunables.
const (
	defaultReasonableMin = 8000
	defaultReasonableMax = 20000

	experienceFactorStep = 0.15
	experienceFactorCap  = 2.5

	reasonableMinScale = 0.8
	reasonableMaxScale = 1.2
)

// SalaryEstimate frames the recommended postings' salary range against the
// user's own numbers.
type SalaryEstimate struct {
	ReasonableMin int
	ReasonableMax int
	CurrentSalary int
	TargetSalary  int
	SalaryGap     int
}

// EstimateSalary averages the recommendation salary bounds and scales them by
// an experience factor. Without recommendations it falls back to fixed
// defaults. SalaryGap is only meaningful when the current salary is known.
func EstimateSalary(profile user.Profile, recs []Recommendation) SalaryEstimate {
	current := profile.CurrentSalary
	if current < 0 {
		current = 0
	}
	target := profile.TargetSalary
	if target < 0 {
		target = 0
	}

	est := SalaryEstimate{
		ReasonableMin: defaultReasonableMin,
		ReasonableMax: defaultReasonableMax,
		CurrentSalary: current,
		TargetSalary:  target,
	}
	if current > 0 {
		est.SalaryGap = target - current
	}
	if len(recs) == 0 {
		return est
	}

	var sumMin, sumMax int
	for _, r := range recs {
		p := r.Posting
		if p.SalaryMin > 0 {
			sumMin += p.SalaryMin
		}
		if p.SalaryMax > 0 {
			sumMax += p.SalaryMax
		}
	}
	n := float64(len(recs))

	years := profile.ExperienceYears
	if years < 0 {
		years = 0
	}
	factor := 1 + experienceFactorStep*float64(years)
	if factor > experienceFactorCap {
		factor = experienceFactorCap
	}

	est.ReasonableMin = int(math.Round(float64(sumMin) / n * factor * reasonableMinScale))
	est.ReasonableMax = int(math.Round(float64(sumMax) / n * factor * reasonableMaxScale))
	return est
}
