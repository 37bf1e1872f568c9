package seeder

import (
	"context"
	"fmt"

	"job-insight/internal/database"
	"job-insight/internal/domain/user"
	"job-insight/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UsersSeeder creates a demo account for local development. Skipped
// when the username is already taken.
type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users",
		"id", "username", "email", "password_hash", "full_name",
		"title", "skills", "location", "education", "experience_years",
		"current_salary", "target_salary", "resume", "created_at",
	); err != nil {
		return err
	}

	repo := repository.NewPostgresUserRepository(db)

	exists, err := repo.ExistsByUsernameOrEmail(ctx, "demo", "demo@example.com")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	u := user.User{
		Username:     "demo",
		Email:        "demo@example.com",
		PasswordHash: string(hash),
		FullName:     "演示用户",
		Profile: user.Profile{
			Title:           "后端开发工程师",
			Skills:          []string{"Python", "MySQL", "Git"},
			Location:        "北京",
			Education:       "本科",
			ExperienceYears: 3,
			CurrentSalary:   15000,
			TargetSalary:    22000,
		},
	}
	return repo.CreateUser(ctx, &u)
}
