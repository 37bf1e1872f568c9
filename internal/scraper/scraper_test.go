package scraper

import (
	"strings"
	"testing"
)

func TestParseSalaryText(t *testing.T) {
	cases := []struct {
		in     string
		lo, hi int
	}{
		{"8千-1.5万/月", 8000, 15000},
		{"10000-20000", 10000, 20000},
		{"1万-2万", 10000, 20000},
		{"15k-25k", 15000, 25000},
		{"面议", 0, 0},
		{"", 0, 0},
		{"2万", 20000, 20000},
		{"8000", 8000, 8000},
	}
	for _, c := range cases {
		lo, hi := ParseSalaryText(c.in)
		if lo != c.lo || hi != c.hi {
			t.Fatalf("ParseSalaryText(%q) = (%d, %d), want (%d, %d)", c.in, lo, hi, c.lo, c.hi)
		}
	}
}

func TestExtractCity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"上海市浦东新区", "上海"},
		{"北京市", "北京"},
		{"杭州", "杭州"},
		{"", ""},
		{"  深圳市南山区  ", "深圳"},
	}
	for _, c := range cases {
		if got := ExtractCity(c.in); got != c.want {
			t.Fatalf("ExtractCity(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCategoryOfTitle(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Python开发工程师", "Python"},
		{"资深前端开发", "前端"},
		{"机器学习工程师", "机器学习"},
		{"运维工程师", "DevOps"},
		{"行政助理", "技术"},
	}
	for _, c := range cases {
		if got := CategoryOfTitle(c.title); got != c.want {
			t.Fatalf("CategoryOfTitle(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestToPostingNormalizes(t *testing.T) {
	p := ToPosting(RawJob{
		Title:       "  Python  开发工程师 ",
		Company:     " 阿里巴巴 ",
		Location:    "上海市浦东新区",
		SalaryText:  "1.5万-2.5万/月",
		Description: "负责后端服务开发，要求熟悉Python和MySQL。",
		Requirement: "了解Docker优先。",
		Tags:        []string{"Python"},
	})

	if p.Title != "Python 开发工程师" {
		t.Fatalf("unexpected title %q", p.Title)
	}
	if p.Company != "阿里巴巴" {
		t.Fatalf("unexpected company %q", p.Company)
	}
	if p.City != "上海" {
		t.Fatalf("unexpected city %q", p.City)
	}
	if p.SalaryMin != 15000 || p.SalaryMax != 25000 {
		t.Fatalf("unexpected salary range %d-%d", p.SalaryMin, p.SalaryMax)
	}
	if p.Category != "Python" {
		t.Fatalf("unexpected category %q", p.Category)
	}

	seen := map[string]int{}
	for _, tag := range p.Tags {
		seen[strings.ToLower(tag)]++
	}
	if seen["python"] != 1 {
		t.Fatalf("Python tag should appear exactly once, tags=%v", p.Tags)
	}
	if seen["mysql"] != 1 || seen["docker"] != 1 {
		t.Fatalf("skills from text missing, tags=%v", p.Tags)
	}
}

func TestMockSourceFetch(t *testing.T) {
	src := NewMockSource(1)
	postings := src.Fetch(20)
	if len(postings) != 20 {
		t.Fatalf("expected 20 postings, got %d", len(postings))
	}
	for _, p := range postings {
		if p.Title == "" || p.Company == "" || p.City == "" {
			t.Fatalf("incomplete posting: %+v", p)
		}
		if p.SalaryMin < 8000 || p.SalaryMax < 20000 {
			t.Fatalf("salary out of range: %d-%d", p.SalaryMin, p.SalaryMax)
		}
		if len(p.Tags) == 0 {
			t.Fatalf("posting without tags: %s", p.Title)
		}
	}
}

func TestMockSourceDeterministicWithSameSeed(t *testing.T) {
	a := NewMockSource(7).Fetch(5)
	b := NewMockSource(7).Fetch(5)
	for i := range a {
		if a[i].Title != b[i].Title || a[i].Company != b[i].Company {
			t.Fatalf("same seed should give same sequence, idx %d: %v vs %v", i, a[i], b[i])
		}
	}
}
