package recommend

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"job-insight/internal/domain/job"
	"job-insight/internal/domain/user"
)

// Composite score weights. Empirical values carried over from the tuned
// production configuration; change with care.
const (
	weightSkill      = 0.6
	weightCity       = 0.2
	weightExperience = 0.1
	weightSalary     = 0.1

	// skill sub-score granted to profiles without any skills, so that new
	// users still get recommendations.
	emptySkillsBaseline = 30.0

	// experience-required labels are too noisy to parse, so the experience
	// sub-score is a stable constant.
	experienceBaseline = 80.0

	// upper-bound salary at which the attractiveness sub-score saturates.
	salaryAttractivenessCap = 30000.0
)

// MatchResult is the outcome of scoring one posting against one profile.
type MatchResult struct {
	PostingID     uuid.UUID
	Score         int
	MatchedSkills []string
}

// Score computes the 0-100 composite match of a posting against a profile.
// It is a pure function: malformed inputs (negative salaries, missing text)
// degrade to neutral values instead of failing.
func Score(p job.Posting, profile user.Profile) MatchResult {
	combined := strings.ToLower(p.Description + " " + p.Requirements + " " + strings.Join(p.Tags, " "))

	skills := nonEmptySkills(profile.Skills)
	matched := make([]string, 0, len(skills))
	skillScore := emptySkillsBaseline
	if len(skills) > 0 {
		tokens := strings.Fields(combined)
		for _, s := range skills {
			ls := strings.ToLower(s)
			if strings.Contains(combined, ls) || containsToken(tokens, ls) {
				matched = append(matched, s)
			}
		}
		skillScore = float64(len(matched)) / float64(len(skills)) * 100
	}

	cityScore := 50.0
	if profile.Location != "" && profile.Location == p.City {
		cityScore = 100.0
	}

	salaryMax := p.SalaryMax
	if salaryMax < 0 {
		salaryMax = 0
	}
	salaryRatio := float64(salaryMax) / salaryAttractivenessCap
	if salaryRatio > 1 {
		salaryRatio = 1
	}
	salaryScore := salaryRatio * 100

	composite := weightSkill*skillScore +
		weightCity*cityScore +
		weightExperience*experienceBaseline +
		weightSalary*salaryScore

	score := int(math.Round(composite))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return MatchResult{PostingID: p.ID, Score: score, MatchedSkills: matched}
}

func nonEmptySkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func containsToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}
