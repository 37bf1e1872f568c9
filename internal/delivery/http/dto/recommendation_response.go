package dto

import (
	"job-insight/internal/domain/recommend"
	"job-insight/internal/usecase"
)

type RecommendationItem struct {
	Job           JobResponse `json:"job"`
	MatchScore    int         `json:"match_score"`
	MatchedSkills []string    `json:"matched_skills"`
}

type SkillGapItem struct {
	Skill      string `json:"skill"`
	Importance string `json:"importance"`
	Reason     string `json:"reason"`
}

type SalaryEstimateResponse struct {
	ReasonableMin int `json:"reasonable_min"`
	ReasonableMax int `json:"reasonable_max"`
	CurrentSalary int `json:"current_salary"`
	TargetSalary  int `json:"target_salary"`
	SalaryGap     int `json:"salary_gap"`
}

type RecommendationResponse struct {
	Recommendations []RecommendationItem   `json:"recommendations"`
	SkillGaps       []SkillGapItem         `json:"skill_gaps"`
	SalaryEstimate  SalaryEstimateResponse `json:"salary_estimate"`
}

func FromRecommendationResult(r usecase.RecommendationResult) RecommendationResponse {
	items := make([]RecommendationItem, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		matched := rec.MatchedSkills
		if matched == nil {
			matched = []string{}
		}
		items = append(items, RecommendationItem{
			Job:           FromPosting(rec.Posting),
			MatchScore:    rec.MatchScore,
			MatchedSkills: matched,
		})
	}

	gaps := make([]SkillGapItem, 0, len(r.SkillGaps))
	for _, g := range r.SkillGaps {
		gaps = append(gaps, SkillGapItem{Skill: g.Skill, Importance: g.Importance, Reason: g.Reason})
	}

	return RecommendationResponse{
		Recommendations: items,
		SkillGaps:       gaps,
		SalaryEstimate:  fromSalaryEstimate(r.SalaryEstimate),
	}
}

func fromSalaryEstimate(e recommend.SalaryEstimate) SalaryEstimateResponse {
	return SalaryEstimateResponse{
		ReasonableMin: e.ReasonableMin,
		ReasonableMax: e.ReasonableMax,
		CurrentSalary: e.CurrentSalary,
		TargetSalary:  e.TargetSalary,
		SalaryGap:     e.SalaryGap,
	}
}
