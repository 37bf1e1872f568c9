package usecase

import (
	"context"
	"testing"

	"job-insight/internal/domain/job"

	"github.com/google/uuid"
)

func TestSkills_AnalyzeText(t *testing.T) {
	uc := NewSkillUsecase(mockJobRepo{})
	out, err := uc.AnalyzeText(context.Background(), "熟悉Python和Django，了解python爬虫，掌握MySQL", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	found := map[string]bool{}
	for _, s := range out.ExtractedSkills {
		found[s] = true
	}
	if !found["Python"] || !found["Django"] || !found["MySQL"] {
		t.Fatalf("missing expected skills: %v", out.ExtractedSkills)
	}
	if out.SkillFrequency["Python"] != 2 {
		t.Fatalf("expected Python twice, got %d", out.SkillFrequency["Python"])
	}
	if out.ConfidenceScores["Python"] <= out.ConfidenceScores["Django"] {
		t.Fatalf("more frequent skill should score higher confidence")
	}
	if len(out.RelatedSkills["Python"]) == 0 || len(out.RelatedSkills["Python"]) > 5 {
		t.Fatalf("unexpected related skills: %v", out.RelatedSkills["Python"])
	}
}

func TestSkills_AnalyzeText_Empty(t *testing.T) {
	uc := NewSkillUsecase(mockJobRepo{})
	out, err := uc.AnalyzeText(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.ExtractedSkills) != 0 {
		t.Fatalf("expected no skills, got %v", out.ExtractedSkills)
	}
}

func TestSkills_Trends(t *testing.T) {
	uc := NewSkillUsecase(mockJobRepo{})
	out, err := uc.Trends(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.RisingSkills) != 5 || len(out.DecliningSkills) != 5 || len(out.HotCategories) != 5 {
		t.Fatalf("unexpected trends payload: %+v", out)
	}
	if out.RisingSkills[0].Skill != "Python" {
		t.Fatalf("unexpected leading skill: %s", out.RisingSkills[0].Skill)
	}
}

func TestSkills_TopSkills(t *testing.T) {
	uc := NewSkillUsecase(mockJobRepo{all: []job.Posting{
		{ID: uuid.New(), Tags: []string{"Python", "MySQL"}},
		{ID: uuid.New(), Tags: []string{"Python", "Redis"}},
		{ID: uuid.New(), Tags: []string{"Python"}},
	}})
	out, err := uc.TopSkills(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0].Skill != "Python" || out[0].Count != 3 {
		t.Fatalf("unexpected leader: %+v", out[0])
	}
}

func TestSkills_LearningPath(t *testing.T) {
	uc := NewSkillUsecase(mockJobRepo{})
	out, err := uc.LearningPath(context.Background(), []string{"Python", "Git"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(out.Recommendations) == 0 || len(out.Recommendations) > 10 {
		t.Fatalf("unexpected recommendation count: %d", len(out.Recommendations))
	}
	for _, rec := range out.Recommendations {
		if rec.Skill == "Python" || rec.Skill == "Git" {
			t.Fatalf("recommended a skill the user already has: %s", rec.Skill)
		}
	}
	if out.Recommendations[0].Priority != "高" {
		t.Fatalf("core skills should come first with high priority, got %+v", out.Recommendations[0])
	}

	if out.SkillGapAnalysis.TotalSkills != 2 {
		t.Fatalf("unexpected total skills: %d", out.SkillGapAnalysis.TotalSkills)
	}
	if out.SkillGapAnalysis.CoveragePercentage != 10 {
		t.Fatalf("unexpected coverage: %d", out.SkillGapAnalysis.CoveragePercentage)
	}
	for _, cat := range out.SkillGapAnalysis.MissingCategories {
		if cat == "编程语言" || cat == "DevOps工具" {
			t.Fatalf("category already covered: %s", cat)
		}
	}
}

func TestSkills_LearningPath_NoSkills(t *testing.T) {
	uc := NewSkillUsecase(mockJobRepo{})
	out, err := uc.LearningPath(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.Recommendations) != 10 {
		t.Fatalf("expected the full core list, got %d", len(out.Recommendations))
	}
	if len(out.SkillGapAnalysis.MissingCategories) != 5 {
		t.Fatalf("expected all categories missing, got %v", out.SkillGapAnalysis.MissingCategories)
	}
}
