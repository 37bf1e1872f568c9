package dto

import (
	"time"

	"job-insight/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	Company            string     `json:"company"`
	City               string     `json:"city"`
	SalaryMin          int        `json:"salary_min"`
	SalaryMax          int        `json:"salary_max"`
	ExperienceRequired string     `json:"experience_required"`
	EducationRequired  string     `json:"education_required"`
	Description        string     `json:"description"`
	Requirements       string     `json:"requirements"`
	Category           string     `json:"category"`
	Tags               []string   `json:"tags"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

func FromPosting(p job.Posting) JobResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return JobResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Company:            p.Company,
		City:               p.City,
		SalaryMin:          p.SalaryMin,
		SalaryMax:          p.SalaryMax,
		ExperienceRequired: p.ExperienceRequired,
		EducationRequired:  p.EducationRequired,
		Description:        p.Description,
		Requirements:       p.Requirements,
		Category:           p.Category,
		Tags:               tags,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromPostings(postings []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(postings))
	for _, p := range postings {
		out = append(out, FromPosting(p))
	}
	return out
}

type JobListResponse struct {
	Items  []JobResponse `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}
