package recommend

import (
	"sort"

	"job-insight/internal/domain/job"
	"job-insight/internal/domain/user"
)

// Ranker tunables. The thresholds are empirical and kept as named constants
// rather than re-derived.
const (
	// minimum composite score for the primary pool.
	PrimaryThreshold = 20
	// synthetic score assigned to salary-ordered backfill entries.
	BackfillScore = 25
	// added to BackfillScore when the posting city matches the profile.
	BackfillCityBonus = 10
	// synthetic score for the final floor-filling tier.
	FloorScore = 20

	MaxRecommendations = 6
	MinRecommendations = 3
	MaxMatchedSkills   = 5
)

// Recommendation is a posting with its match outcome. Slice position is the
// rank.
type Recommendation struct {
	Posting       job.Posting
	MatchScore    int
	MatchedSkills []string
}

// Recommend scores every posting against the profile and produces at most
// MaxRecommendations ranked entries. When fewer than MaxRecommendations
// postings clear PrimaryThreshold, the result is backfilled with high-salary
// postings (city matches boosted), and a final tier guarantees at least
// min(MinRecommendations, len(postings)) entries. An empty posting snapshot
// is the only input that produces an empty result.
func Recommend(profile user.Profile, postings []job.Posting) []Recommendation {
	out := make([]Recommendation, 0, MaxRecommendations)
	if len(postings) == 0 {
		return out
	}

	results := make([]MatchResult, len(postings))
	for i, p := range postings {
		results[i] = Score(p, profile)
	}

	// Tier 1: postings clearing the threshold, best first. The stable sort
	// keeps storage order on ties.
	primary := make([]int, 0, len(postings))
	for i := range postings {
		if results[i].Score >= PrimaryThreshold {
			primary = append(primary, i)
		}
	}
	sort.SliceStable(primary, func(a, b int) bool {
		return results[primary[a]].Score > results[primary[b]].Score
	})

	included := make(map[int]struct{}, MaxRecommendations)
	push := func(idx, score int) {
		included[idx] = struct{}{}
		out = append(out, Recommendation{
			Posting:       postings[idx],
			MatchScore:    score,
			MatchedSkills: capSkills(results[idx].MatchedSkills),
		})
	}

	for _, idx := range primary {
		if len(out) >= MaxRecommendations {
			break
		}
		push(idx, results[idx].Score)
	}

	// Tier 2: salary-ordered backfill from the remainder.
	if len(out) < MaxRecommendations {
		for _, idx := range bySalaryDesc(postings) {
			if len(out) >= MaxRecommendations {
				break
			}
			if _, ok := included[idx]; ok {
				continue
			}
			score := BackfillScore
			if profile.Location != "" && postings[idx].City == profile.Location {
				score += BackfillCityBonus
			}
			push(idx, score)
		}
	}

	// Tier 3: floor guarantee for very small corpora.
	if len(out) < MinRecommendations {
		for _, idx := range bySalaryDesc(postings) {
			if len(out) >= MinRecommendations {
				break
			}
			if _, ok := included[idx]; ok {
				continue
			}
			push(idx, FloorScore)
		}
	}

	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}

func bySalaryDesc(postings []job.Posting) []int {
	idx := make([]int, len(postings))
	for i := range postings {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return postings[idx[a]].SalaryMax > postings[idx[b]].SalaryMax
	})
	return idx
}

func capSkills(skills []string) []string {
	if len(skills) > MaxMatchedSkills {
		return skills[:MaxMatchedSkills]
	}
	return skills
}
