package usecase

import (
	"context"
	"strings"

	"job-insight/internal/domain/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, id uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p user.Profile) (user.User, error)
	UpdateSkills(ctx context.Context, id uuid.UUID, skills []string) (user.User, error)
}

type Users struct {
	users user.Repository
	cache Cache
}

func NewUserUsecase(users user.Repository, cache Cache) *Users {
	return &Users{users: users, cache: cache}
}

func (u *Users) GetProfile(ctx context.Context, id uuid.UUID) (user.User, error) {
	usr, err := u.users.GetUserByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	usr.PasswordHash = ""
	return usr, nil
}

func (u *Users) UpdateProfile(ctx context.Context, id uuid.UUID, p user.Profile) (user.User, error) {
	p.Skills = cleanSkills(p.Skills)
	if p.ExperienceYears < 0 || p.CurrentSalary < 0 || p.TargetSalary < 0 {
		return user.User{}, ErrInvalidInput
	}
	if err := u.users.UpdateProfile(ctx, id, p); err != nil {
		return user.User{}, err
	}
	u.invalidate(ctx, id)
	return u.GetProfile(ctx, id)
}

func (u *Users) UpdateSkills(ctx context.Context, id uuid.UUID, skills []string) (user.User, error) {
	if err := u.users.UpdateSkills(ctx, id, cleanSkills(skills)); err != nil {
		return user.User{}, err
	}
	u.invalidate(ctx, id)
	return u.GetProfile(ctx, id)
}

// invalidate drops cached recommendations after a profile change so
// the next request rescrores against the new skills.
func (u *Users) invalidate(ctx context.Context, id uuid.UUID) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, recommendationCacheKey(id.String()))
}

func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}
