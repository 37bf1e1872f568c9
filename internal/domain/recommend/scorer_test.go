package recommend

import (
	"testing"

	"job-insight/internal/domain/job"
	"job-insight/internal/domain/user"
)

func TestScore_FullMatchExample(t *testing.T) {
	p := job.Posting{
		Title:       "Python开发工程师",
		Description: "Python Django MySQL",
		City:        "北京",
		SalaryMin:   15000,
		SalaryMax:   30000,
	}
	profile := user.Profile{
		Skills:          []string{"Python", "Django"},
		Location:        "北京",
		ExperienceYears: 3,
	}

	res := Score(p, profile)

	// 0.6*100 + 0.2*100 + 0.1*80 + 0.1*100
	if res.Score != 98 {
		t.Fatalf("expected composite 98, got %d", res.Score)
	}
	if len(res.MatchedSkills) != 2 || res.MatchedSkills[0] != "Python" || res.MatchedSkills[1] != "Django" {
		t.Fatalf("expected matched skills [Python Django], got %v", res.MatchedSkills)
	}
}

func TestScore_EmptySkillsBaseline(t *testing.T) {
	p := job.Posting{Description: "anything", City: "上海", SalaryMax: 0}
	profile := user.Profile{Location: "北京"}

	res := Score(p, profile)

	// 0.6*30 + 0.2*50 + 0.1*80 + 0.1*0 = 36
	if res.Score != 36 {
		t.Fatalf("expected 36 for empty-skill profile, got %d", res.Score)
	}
	if len(res.MatchedSkills) != 0 {
		t.Fatalf("expected no matched skills, got %v", res.MatchedSkills)
	}
}

func TestScore_MatchedSkillsFollowProfileOrder(t *testing.T) {
	p := job.Posting{Description: "Django与Python开发", City: "广州"}
	profile := user.Profile{Skills: []string{"Python", "Django", "Rust"}}

	res := Score(p, profile)
	if len(res.MatchedSkills) != 2 || res.MatchedSkills[0] != "Python" || res.MatchedSkills[1] != "Django" {
		t.Fatalf("expected profile-order [Python Django], got %v", res.MatchedSkills)
	}
}

func TestScore_TagsCountAsText(t *testing.T) {
	p := job.Posting{Tags: []string{"Kubernetes", "Go"}}
	profile := user.Profile{Skills: []string{"Kubernetes"}}

	res := Score(p, profile)
	if len(res.MatchedSkills) != 1 || res.MatchedSkills[0] != "Kubernetes" {
		t.Fatalf("expected tag match, got %v", res.MatchedSkills)
	}
}

func TestScore_NegativeSalaryTreatedAsZero(t *testing.T) {
	p := job.Posting{City: "深圳", SalaryMax: -5000}
	profile := user.Profile{Location: "深圳"}

	res := Score(p, profile)
	// 0.6*30 + 0.2*100 + 0.1*80 + 0.1*0 = 46
	if res.Score != 46 {
		t.Fatalf("expected 46, got %d", res.Score)
	}
}

func TestScore_RangeAlwaysValid(t *testing.T) {
	postings := []job.Posting{
		{},
		{Description: "Python Java Go Rust React Vue MySQL Redis Docker", SalaryMax: 1 << 30, City: "北京"},
		{Description: "无关描述", SalaryMin: -1, SalaryMax: -1},
	}
	profiles := []user.Profile{
		{},
		{Skills: []string{"Python"}, Location: "北京", ExperienceYears: 40},
		{Skills: []string{"", "  "}},
	}
	for _, p := range postings {
		for _, u := range profiles {
			res := Score(p, u)
			if res.Score < 0 || res.Score > 100 {
				t.Fatalf("score out of range: %d (posting=%+v profile=%+v)", res.Score, p, u)
			}
		}
	}
}
