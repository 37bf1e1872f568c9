package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"job-insight/internal/domain/job"
	"job-insight/internal/domain/user"
	"job-insight/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	all []job.Posting
	err error
}

func (m mockJobRepo) GetByID(context.Context, uuid.UUID) (job.Posting, error) {
	return job.Posting{}, repository.ErrJobNotFound
}
func (m mockJobRepo) List(context.Context, repository.JobFilter) ([]job.Posting, error) {
	return m.all, m.err
}
func (m mockJobRepo) Count(context.Context, repository.JobFilter) (int, error) {
	return len(m.all), m.err
}
func (m mockJobRepo) ListAll(context.Context) ([]job.Posting, error) { return m.all, m.err }
func (m mockJobRepo) Create(context.Context, *job.Posting) error     { return nil }
func (m mockJobRepo) Update(context.Context, *job.Posting) error     { return nil }
func (m mockJobRepo) Delete(context.Context, uuid.UUID) error        { return nil }
func (m mockJobRepo) UpsertBatch(context.Context, []job.Posting) (int, error) {
	return 0, nil
}
func (m mockJobRepo) DeleteAll(context.Context) (int, error) { return 0, nil }

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func (m mockUserRepo) CreateUser(context.Context, *user.User) error { return nil }
func (m mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
func (m mockUserRepo) GetUserByUsername(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (m mockUserRepo) ExistsByUsernameOrEmail(context.Context, string, string) (bool, error) {
	return false, nil
}
func (m mockUserRepo) UpdateProfile(context.Context, uuid.UUID, user.Profile) error { return nil }
func (m mockUserRepo) UpdateSkills(context.Context, uuid.UUID, []string) error      { return nil }

type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string][]byte{}} }

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

type recordingNotifier struct {
	notified []uuid.UUID
}

func (n *recordingNotifier) NotifyAnalysisUpdated(userID uuid.UUID) {
	n.notified = append(n.notified, userID)
}

func TestRecommendations_ForUser_AssemblesAllSections(t *testing.T) {
	userID := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]user.User{
		userID: {
			ID: userID,
			Profile: user.Profile{
				Skills:          []string{"Python", "MySQL"},
				Location:        "北京",
				ExperienceYears: 3,
				CurrentSalary:   15000,
				TargetSalary:    22000,
			},
		},
	}}
	jobs := mockJobRepo{all: []job.Posting{
		{
			ID: uuid.New(), Title: "Python开发工程师", Company: "阿里巴巴", City: "北京",
			SalaryMin: 15000, SalaryMax: 25000,
			Description:  "负责后端开发",
			Requirements: "熟悉Python和MySQL",
		},
		{
			ID: uuid.New(), Title: "前端开发工程师", Company: "腾讯", City: "深圳",
			SalaryMin: 14000, SalaryMax: 24000,
			Description:  "负责前端页面开发",
			Requirements: "精通JavaScript和React",
		},
	}}
	notifier := &recordingNotifier{}

	uc := NewRecommendationUsecase(users, jobs, nil, notifier, nil)
	result, err := uc.ForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(result.Recommendations) == 0 {
		t.Fatalf("expected recommendations")
	}
	for i := 1; i < len(result.Recommendations); i++ {
		if result.Recommendations[i].MatchScore > result.Recommendations[i-1].MatchScore {
			t.Fatalf("recommendations not sorted by score")
		}
	}
	if result.Recommendations[0].Posting.Title != "Python开发工程师" {
		t.Fatalf("expected skill-matched posting first, got %s", result.Recommendations[0].Posting.Title)
	}
	if result.SalaryEstimate.SalaryGap != 22000-15000 {
		t.Fatalf("unexpected salary gap: %d", result.SalaryEstimate.SalaryGap)
	}
	if len(notifier.notified) != 1 || notifier.notified[0] != userID {
		t.Fatalf("expected one notification for %s, got %v", userID, notifier.notified)
	}
}

func TestRecommendations_ForUser_UserNotFound(t *testing.T) {
	uc := NewRecommendationUsecase(mockUserRepo{}, mockJobRepo{}, nil, nil, nil)
	_, err := uc.ForUser(context.Background(), uuid.New())
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user.ErrNotFound, got %v", err)
	}
}

func TestRecommendations_ForUser_UsesCache(t *testing.T) {
	userID := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]user.User{
		userID: {ID: userID, Profile: user.Profile{Skills: []string{"Go"}}},
	}}
	cache := newMemoryCache()

	uc := NewRecommendationUsecase(users, mockJobRepo{all: []job.Posting{
		{ID: uuid.New(), Title: "Go开发工程师", Company: "滴滴", City: "北京", SalaryMax: 30000, Requirements: "精通Golang"},
	}}, cache, nil, nil)

	first, err := uc.ForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Second call must be served from cache even if the store fails.
	uc2 := NewRecommendationUsecase(users, mockJobRepo{err: errors.New("db down")}, cache, nil, nil)
	second, err := uc2.ForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err on cached read: %v", err)
	}
	if len(second.Recommendations) != len(first.Recommendations) {
		t.Fatalf("cached result differs: %d vs %d", len(second.Recommendations), len(first.Recommendations))
	}
}

func TestRecommendations_ForProfile_EmptyStorage(t *testing.T) {
	uc := NewRecommendationUsecase(mockUserRepo{}, mockJobRepo{}, nil, nil, nil)
	result, err := uc.ForProfile(context.Background(), user.Profile{Skills: []string{"Python"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(result.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(result.Recommendations))
	}
	if len(result.SkillGaps) != 0 {
		t.Fatalf("expected no skill gaps, got %d", len(result.SkillGaps))
	}
	if result.SalaryEstimate.ReasonableMin != 8000 || result.SalaryEstimate.ReasonableMax != 20000 {
		t.Fatalf("expected default salary range, got %+v", result.SalaryEstimate)
	}
}
