package auth

import (
	"context"
	"errors"
	"testing"

	"job-insight/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byUsername map[string]user.User
	created    []user.User
	exists     bool
	err        error
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *user.User) error {
	if f.err != nil {
		return f.err
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.created = append(f.created, *u)
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range f.created {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (user.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(context.Context, string, string) (bool, error) {
	return f.exists, f.err
}

func (f *fakeUserRepo) UpdateProfile(context.Context, uuid.UUID, user.Profile) error { return nil }
func (f *fakeUserRepo) UpdateSkills(context.Context, uuid.UUID, []string) error      { return nil }

func TestRegister_Success(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "  Alice@Example.COM ",
		Password: "s3cret-pass",
		FullName: "Alice",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %s", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked in result")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one stored user")
	}
	stored := repo.created[0]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewService(&fakeUserRepo{})
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "a@b.com", Password: "short",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	svc := NewService(&fakeUserRepo{exists: true})
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "a@b.com", Password: "s3cret-pass",
	})
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &fakeUserRepo{byUsername: map[string]user.User{
		"alice": {ID: uuid.New(), Username: "alice", PasswordHash: string(hash)},
	}}
	svc := NewService(repo)

	u, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Username != "alice" || u.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	repo := &fakeUserRepo{byUsername: map[string]user.User{
		"alice": {ID: uuid.New(), Username: "alice", PasswordHash: string(hash)},
	}}
	svc := NewService(repo)

	_, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "nope"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewService(&fakeUserRepo{})
	_, err := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
