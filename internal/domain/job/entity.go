package job

import (
	"time"

	"github.com/google/uuid"
)

// Posting is an ingested job-posting record. Postings are written by the
// seeder and the scrapers and are read-only everywhere else.
type Posting struct {
	ID                 uuid.UUID
	Title              string
	Company            string
	City               string
	SalaryMin          int
	SalaryMax          int
	ExperienceRequired string
	EducationRequired  string
	Description        string
	Requirements       string
	Category           string
	Tags               []string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// AverageSalary is the midpoint of the posted range, matching how the
// analytics aggregates bucket a posting.
func (p Posting) AverageSalary() int {
	minSal := p.SalaryMin
	maxSal := p.SalaryMax
	if minSal < 0 {
		minSal = 0
	}
	if maxSal < 0 {
		maxSal = 0
	}
	return (minSal + maxSal) / 2
}
