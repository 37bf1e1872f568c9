package recommend

import (
	"reflect"
	"testing"
)

func TestExtractSkills_EmptyText(t *testing.T) {
	if got := ExtractSkills(""); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if got := ExtractSkills("   \n\t"); len(got) != 0 {
		t.Fatalf("expected empty result for blank text, got %v", got)
	}
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	got := ExtractSkills("精通 python 和 DOCKER 部署")
	if !containsSkill(got, "Python") {
		t.Fatalf("expected Python in %v", got)
	}
	if !containsSkill(got, "Docker") {
		t.Fatalf("expected Docker in %v", got)
	}
}

func TestExtractSkills_AliasMapsToCanonical(t *testing.T) {
	got := ExtractSkills("要求熟悉SpringBoot框架")
	if !containsSkill(got, "Spring Boot") {
		t.Fatalf("expected alias SpringBoot to map to Spring Boot, got %v", got)
	}

	got = ExtractSkills("有机器学习项目经验")
	if !containsSkill(got, "Machine Learning") {
		t.Fatalf("expected 机器学习 to map to Machine Learning, got %v", got)
	}
}

func TestExtractSkills_DedupAcrossCanonicalAndAlias(t *testing.T) {
	got := ExtractSkills("React / ReactJS experience")
	count := 0
	for _, s := range got {
		if s == "React" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected React exactly once, got %v", got)
	}
}

func TestExtractSkills_ResultWithinKnownSet(t *testing.T) {
	known := map[string]struct{}{}
	for _, e := range Vocabulary {
		known[e.Name] = struct{}{}
	}
	for _, a := range Aliases {
		known[a.Canonical] = struct{}{}
	}

	got := ExtractSkills("熟悉Python、Vue.js、K8s与阿里云，了解深度学习")
	for _, s := range got {
		if _, ok := known[s]; !ok {
			t.Fatalf("extracted skill %q outside vocabulary and alias canonicals", s)
		}
	}
}

func TestExtractSkills_Idempotent(t *testing.T) {
	text := "负责基于Django和MySQL的后端服务，使用Docker与K8s部署"
	first := ExtractSkills(text)
	second := ExtractSkills(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v then %v", first, second)
	}
	if len(first) == 0 {
		t.Fatalf("expected non-empty extraction")
	}
}

func TestExtractSkills_VocabularyOrderPreserved(t *testing.T) {
	// Django precedes MySQL in the vocabulary, so extraction order must
	// not depend on their order in the text.
	got := ExtractSkills("MySQL and Django")
	di, mi := -1, -1
	for i, s := range got {
		switch s {
		case "Django":
			di = i
		case "MySQL":
			mi = i
		}
	}
	if di == -1 || mi == -1 {
		t.Fatalf("expected both Django and MySQL in %v", got)
	}
	if di > mi {
		t.Fatalf("expected vocabulary scan order, got %v", got)
	}
}

func containsSkill(skills []string, want string) bool {
	for _, s := range skills {
		if s == want {
			return true
		}
	}
	return false
}
