package dto

import (
	"time"

	"job-insight/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID              uuid.UUID  `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	FullName        string     `json:"full_name"`
	Title           string     `json:"title"`
	Skills          []string   `json:"skills"`
	Location        string     `json:"location"`
	Education       string     `json:"education"`
	ExperienceYears int        `json:"experience_years"`
	CurrentSalary   int        `json:"current_salary"`
	TargetSalary    int        `json:"target_salary"`
	Resume          string     `json:"resume"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func FromUser(u user.User) UserResponse {
	skills := u.Profile.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		FullName:        u.FullName,
		Title:           u.Profile.Title,
		Skills:          skills,
		Location:        u.Profile.Location,
		Education:       u.Profile.Education,
		ExperienceYears: u.Profile.ExperienceYears,
		CurrentSalary:   u.Profile.CurrentSalary,
		TargetSalary:    u.Profile.TargetSalary,
		Resume:          u.Profile.Resume,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
