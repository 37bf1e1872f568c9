package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    *time.Time

	Profile Profile
}

// Profile carries the career fields the recommendation core scores against.
// Skills hold canonical skill names; Location may be empty; salary fields use
// 0 for unknown.
type Profile struct {
	Title           string
	Skills          []string
	Location        string
	Education       string
	ExperienceYears int
	CurrentSalary   int
	TargetSalary    int
	Resume          string
}
