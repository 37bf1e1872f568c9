package usecase

import (
	"context"
	"log"

	"job-insight/internal/domain/recommend"
	"job-insight/internal/domain/user"
	"job-insight/internal/repository"

	"github.com/google/uuid"
)

// Notifier pushes an event when a fresh analysis has been computed.
// The websocket hub implements it; a nil notifier is fine.
type Notifier interface {
	NotifyAnalysisUpdated(userID uuid.UUID)
}

type RecommendationResult struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
	SkillGaps       []recommend.SkillGap       `json:"skill_gaps"`
	SalaryEstimate  recommend.SalaryEstimate   `json:"salary_estimate"`
}

type RecommendationUsecase interface {
	ForUser(ctx context.Context, userID uuid.UUID) (RecommendationResult, error)
	ForProfile(ctx context.Context, profile user.Profile) (RecommendationResult, error)
}

type Recommendations struct {
	users    user.Repository
	jobs     repository.JobRepository
	cache    Cache
	notifier Notifier
	logger   *log.Logger
}

func NewRecommendationUsecase(
	users user.Repository,
	jobs repository.JobRepository,
	cache Cache,
	notifier Notifier,
	logger *log.Logger,
) *Recommendations {
	return &Recommendations{users: users, jobs: jobs, cache: cache, notifier: notifier, logger: logger}
}

// ForUser loads the profile, scores every posting against it and
// assembles recommendations, skill gaps and a salary estimate. Results
// are cached per user until the profile or the posting set changes.
func (r *Recommendations) ForUser(ctx context.Context, userID uuid.UUID) (RecommendationResult, error) {
	key := recommendationCacheKey(userID.String())
	if r.cache != nil {
		var cached RecommendationResult
		if ok, err := r.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	usr, err := r.users.GetUserByID(ctx, userID)
	if err != nil {
		return RecommendationResult{}, err
	}

	result, err := r.ForProfile(ctx, usr.Profile)
	if err != nil {
		return RecommendationResult{}, err
	}

	if r.cache != nil {
		if err := r.cache.SetJSON(ctx, key, result, recommendationCacheTTL); err != nil && r.logger != nil {
			r.logger.Printf("[Recommend] cache set failed | user=%s err=%v", userID, err)
		}
	}
	if r.notifier != nil {
		r.notifier.NotifyAnalysisUpdated(userID)
	}
	return result, nil
}

func (r *Recommendations) ForProfile(ctx context.Context, profile user.Profile) (RecommendationResult, error) {
	postings, err := r.jobs.ListAll(ctx)
	if err != nil {
		return RecommendationResult{}, err
	}

	recs := recommend.Recommend(profile, postings)
	gaps := recommend.AnalyzeGaps(profile, recs)
	estimate := recommend.EstimateSalary(profile, recs)

	return RecommendationResult{
		Recommendations: recs,
		SkillGaps:       gaps,
		SalaryEstimate:  estimate,
	}, nil
}
