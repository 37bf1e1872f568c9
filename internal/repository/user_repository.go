package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"job-insight/internal/database"
	"job-insight/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, full_name, title, skills, location, education, experience_years, current_salary, target_salary, resume, created_at, updated_at`

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var skills []byte
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.Profile.Title,
		&skills,
		&u.Profile.Location,
		&u.Profile.Education,
		&u.Profile.ExperienceYears,
		&u.Profile.CurrentSalary,
		&u.Profile.TargetSalary,
		&u.Profile.Resume,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &u.Profile.Skills); err != nil {
			return user.User{}, fmt.Errorf("decode skills for user %s: %w", u.ID, err)
		}
	}
	return u, nil
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, u *user.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	skills, err := encodeTags(u.Profile.Skills)
	if err != nil {
		return err
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (id, username, email, password_hash, full_name, title, skills, location, education, experience_years, current_salary, target_salary, resume)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.FullName,
		u.Profile.Title, skills, u.Profile.Location, u.Profile.Education,
		u.Profile.ExperienceYears, u.Profile.CurrentSalary, u.Profile.TargetSalary, u.Profile.Resume,
	)
	return row.Scan(&u.CreatedAt)
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`, username, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, p user.Profile) error {
	skills, err := encodeTags(p.Skills)
	if err != nil {
		return err
	}
	affected, err := r.db.Exec(ctx, `
		UPDATE users
		SET title = $2, skills = $3, location = $4, education = $5,
		    experience_years = $6, current_salary = $7, target_salary = $8,
		    resume = $9, updated_at = NOW()
		WHERE id = $1`,
		id, p.Title, skills, p.Location, p.Education,
		p.ExperienceYears, p.CurrentSalary, p.TargetSalary, p.Resume,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) UpdateSkills(ctx context.Context, id uuid.UUID, skills []string) error {
	encoded, err := encodeTags(skills)
	if err != nil {
		return err
	}
	affected, err := r.db.Exec(ctx, `UPDATE users SET skills = $2, updated_at = NOW() WHERE id = $1`, id, encoded)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}
