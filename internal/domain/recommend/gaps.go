package recommend

import (
	"strings"

	"job-insight/internal/domain/user"
)

// MaxSkillGaps caps the gap list handed back to callers.
const MaxSkillGaps = 5

// SkillGap is a skill mentioned by the recommended postings that the user
// does not have.
type SkillGap struct {
	Skill      string
	Importance string
	Reason     string
}

// AnalyzeGaps aggregates skills mentioned across the recommendation
// descriptions, subtracts the user's own skills (case-insensitively), and
// tags each remaining skill with an importance tier and rationale. Order
// follows extraction order across the recommendations; capped at
// MaxSkillGaps.
func AnalyzeGaps(profile user.Profile, recs []Recommendation) []SkillGap {
	out := make([]SkillGap, 0, MaxSkillGaps)
	if len(recs) == 0 {
		return out
	}

	known := make(map[string]struct{}, len(profile.Skills))
	for _, s := range profile.Skills {
		known[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	seen := make(map[string]struct{}, MaxSkillGaps)
	for _, rec := range recs {
		for _, skill := range ExtractSkills(rec.Posting.Description) {
			if len(out) >= MaxSkillGaps {
				return out
			}
			key := strings.ToLower(skill)
			if _, ok := known[key]; ok {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			info, ok := gapTable[skill]
			if !ok {
				info = gapInfo{Importance: ImportanceMedium, Reason: defaultGapReason}
			}
			out = append(out, SkillGap{Skill: skill, Importance: info.Importance, Reason: info.Reason})
		}
	}
	return out
}
