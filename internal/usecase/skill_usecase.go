package usecase

import (
	"context"
	"sort"
	"strings"

	"job-insight/internal/domain/recommend"
	"job-insight/internal/repository"
)

type SkillAnalysis struct {
	ExtractedSkills  []string            `json:"extracted_skills"`
	SkillFrequency   map[string]int      `json:"skill_frequency"`
	RelatedSkills    map[string][]string `json:"related_skills"`
	ConfidenceScores map[string]float64  `json:"confidence_scores"`
}

type SkillTrend struct {
	Skill  string `json:"skill"`
	Growth int    `json:"growth"`
	Demand int    `json:"demand"`
}

type CategoryDemand struct {
	Category string `json:"category"`
	Demand   int    `json:"demand"`
}

type SkillTrends struct {
	RisingSkills    []SkillTrend     `json:"rising_skills"`
	DecliningSkills []SkillTrend     `json:"declining_skills"`
	HotCategories   []CategoryDemand `json:"hot_categories"`
}

type LearningItem struct {
	Skill    string `json:"skill"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
	Priority string `json:"priority"`
}

type SkillGapSummary struct {
	TotalSkills        int      `json:"total_skills"`
	CoveragePercentage int      `json:"coverage_percentage"`
	MissingCategories  []string `json:"missing_categories"`
}

type LearningRecommendations struct {
	Recommendations  []LearningItem  `json:"recommendations"`
	SkillGapAnalysis SkillGapSummary `json:"skill_gap_analysis"`
}

type TopSkill struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type SkillUsecase interface {
	AnalyzeText(ctx context.Context, text string, topK int) (SkillAnalysis, error)
	Trends(ctx context.Context) (SkillTrends, error)
	TopSkills(ctx context.Context, limit int) ([]TopSkill, error)
	LearningPath(ctx context.Context, userSkills []string) (LearningRecommendations, error)
}

type Skills struct {
	jobs repository.JobRepository
}

func NewSkillUsecase(jobs repository.JobRepository) *Skills {
	return &Skills{jobs: jobs}
}

// AnalyzeText extracts vocabulary skills from free text and reports
// how often each one occurs, what usually accompanies it, and a
// frequency-based confidence per skill.
func (s *Skills) AnalyzeText(_ context.Context, text string, topK int) (SkillAnalysis, error) {
	if topK <= 0 {
		topK = 10
	}

	extracted := recommend.ExtractSkills(text)
	lower := strings.ToLower(text)

	freq := make(map[string]int, len(extracted))
	total := 0
	for _, skill := range extracted {
		n := strings.Count(lower, strings.ToLower(skill))
		if n == 0 {
			n = 1
		}
		freq[skill] = n
		total += n
	}

	confidence := make(map[string]float64, len(freq))
	for skill, n := range freq {
		confidence[skill] = float64(n) / float64(total)
	}

	related := make(map[string][]string, len(extracted))
	for _, skill := range extracted {
		related[skill] = relatedSkills(skill)
	}

	if len(extracted) > topK {
		extracted = extracted[:topK]
	}

	return SkillAnalysis{
		ExtractedSkills:  extracted,
		SkillFrequency:   freq,
		RelatedSkills:    related,
		ConfidenceScores: confidence,
	}, nil
}

// relatedSkills pairs a skill with the rest of its vocabulary category
// plus a few cross-category companions, capped at five.
func relatedSkills(skill string) []string {
	var related []string
	seen := map[string]struct{}{skill: {}}

	appendAll := func(candidates []string) {
		for _, c := range candidates {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			related = append(related, c)
		}
	}

	switch skill {
	case "Python", "Java", "JavaScript":
		appendAll([]string{"Git", "Docker", "Linux"})
	case "React", "Vue", "Angular":
		appendAll([]string{"JavaScript", "TypeScript", "HTML", "CSS"})
	case "MySQL", "PostgreSQL", "MongoDB":
		appendAll([]string{"SQL", "数据库设计", "性能优化"})
	case "Docker", "Kubernetes":
		appendAll([]string{"CI/CD", "DevOps", "Linux"})
	}

	if cat := recommend.CategoryOf(skill); cat != "" {
		appendAll(recommend.SkillsInCategory(cat))
	}

	if len(related) > 5 {
		related = related[:5]
	}
	return related
}

// Trends reports market movement per skill. The figures are a curated
// snapshot refreshed out of band, not computed from the posting set.
func (s *Skills) Trends(_ context.Context) (SkillTrends, error) {
	return SkillTrends{
		RisingSkills: []SkillTrend{
			{Skill: "Python", Growth: 25, Demand: 85},
			{Skill: "Docker", Growth: 22, Demand: 78},
			{Skill: "Kubernetes", Growth: 20, Demand: 72},
			{Skill: "React", Growth: 18, Demand: 80},
			{Skill: "TypeScript", Growth: 15, Demand: 65},
		},
		DecliningSkills: []SkillTrend{
			{Skill: "jQuery", Growth: -10, Demand: 30},
			{Skill: "PHP", Growth: -5, Demand: 45},
			{Skill: "AngularJS", Growth: -8, Demand: 25},
			{Skill: "Flash", Growth: -15, Demand: 5},
			{Skill: "VB.NET", Growth: -12, Demand: 20},
		},
		HotCategories: []CategoryDemand{
			{Category: "人工智能", Demand: 90},
			{Category: "云计算", Demand: 85},
			{Category: "前端开发", Demand: 80},
			{Category: "数据科学", Demand: 75},
			{Category: "移动开发", Demand: 70},
		},
	}, nil
}

// TopSkills counts tag occurrences across all stored postings.
func (s *Skills) TopSkills(ctx context.Context, limit int) ([]TopSkill, error) {
	if limit <= 0 {
		limit = 10
	}
	postings, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, p := range postings {
		for _, t := range p.Tags {
			counts[t]++
		}
	}

	out := make([]TopSkill, 0, len(counts))
	for skill, n := range counts {
		out = append(out, TopSkill{Skill: skill, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// coreSkills are the recommendations offered first when missing from a
// user's profile.
var coreSkills = []struct {
	Skill    string
	Category string
}{
	{"Python", recommend.CategoryLanguage},
	{"JavaScript", recommend.CategoryLanguage},
	{"React", recommend.CategoryWebFramework},
	{"Vue", recommend.CategoryWebFramework},
	{"MySQL", recommend.CategoryDatabase},
	{"Redis", recommend.CategoryDatabase},
	{"Git", recommend.CategoryDevOps},
	{"Docker", recommend.CategoryDevOps},
	{"AWS", recommend.CategoryCloud},
	{"阿里云", recommend.CategoryCloud},
}

func (s *Skills) LearningPath(_ context.Context, userSkills []string) (LearningRecommendations, error) {
	userSkills = cleanSkills(userSkills)
	have := make(map[string]struct{}, len(userSkills))
	for _, sk := range userSkills {
		have[strings.ToLower(sk)] = struct{}{}
	}
	owns := func(skill string) bool {
		_, ok := have[strings.ToLower(skill)]
		return ok
	}

	var recs []LearningItem
	recommended := map[string]struct{}{}
	push := func(item LearningItem) {
		if owns(item.Skill) {
			return
		}
		if _, ok := recommended[item.Skill]; ok {
			return
		}
		recommended[item.Skill] = struct{}{}
		recs = append(recs, item)
	}

	for _, core := range coreSkills {
		push(LearningItem{
			Skill:    core.Skill,
			Category: core.Category,
			Reason:   core.Skill + "是" + core.Category + "领域的重要技能",
			Priority: recommend.ImportanceHigh,
		})
	}

	for _, sk := range userSkills {
		related := relatedSkills(sk)
		if len(related) > 3 {
			related = related[:3]
		}
		for _, rel := range related {
			cat := recommend.CategoryOf(rel)
			if cat == "" {
				cat = "其他"
			}
			push(LearningItem{
				Skill:    rel,
				Category: cat,
				Reason:   "与" + sk + "相关的技能",
				Priority: recommend.ImportanceMedium,
			})
		}
	}

	if len(recs) > 10 {
		recs = recs[:10]
	}
	if recs == nil {
		recs = []LearningItem{}
	}

	ownedCategories := map[string]struct{}{}
	for _, sk := range userSkills {
		if cat := recommend.CategoryOf(sk); cat != "" {
			ownedCategories[cat] = struct{}{}
		}
	}
	missing := []string{}
	for _, cat := range []string{
		recommend.CategoryLanguage,
		recommend.CategoryWebFramework,
		recommend.CategoryDatabase,
		recommend.CategoryDevOps,
		recommend.CategoryCloud,
	} {
		if _, ok := ownedCategories[cat]; !ok {
			missing = append(missing, cat)
		}
	}

	coverage := len(userSkills) * 5
	if coverage > 100 {
		coverage = 100
	}

	return LearningRecommendations{
		Recommendations: recs,
		SkillGapAnalysis: SkillGapSummary{
			TotalSkills:        len(userSkills),
			CoveragePercentage: coverage,
			MissingCategories:  missing,
		},
	}, nil
}
