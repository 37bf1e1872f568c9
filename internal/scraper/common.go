package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"job-insight/internal/domain/job"
	"job-insight/internal/domain/recommend"
)

// RawJob is one posting as it comes off a source, before normalization.
type RawJob struct {
	Title       string
	Company     string
	Location    string
	SalaryText  string
	Experience  string
	Education   string
	Description string
	Requirement string
	Category    string
	Tags        []string
	URL         string
}

var (
	salaryRangeRe  = regexp.MustCompile(`([\d.]+)(万|千|k|w)?\s*[-~—至]\s*([\d.]+)(万|千|k|w)?`)
	salarySingleRe = regexp.MustCompile(`([\d.]+)(万|千|k|w)?`)
	spaceRe        = regexp.MustCompile(`\s+`)
)

// ParseSalaryText extracts a monthly salary range from free text.
// "8千-1.5万/月" becomes (8000, 15000); a single value fills both ends.
func ParseSalaryText(s string) (int, int) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, 0
	}

	if m := salaryRangeRe.FindStringSubmatch(s); m != nil {
		lo := applySalaryUnit(m[1], m[2])
		hi := applySalaryUnit(m[3], m[4])
		return lo, hi
	}
	if m := salarySingleRe.FindStringSubmatch(s); m != nil {
		v := applySalaryUnit(m[1], m[2])
		return v, v
	}
	return 0, 0
}

func applySalaryUnit(num, unit string) int {
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	switch unit {
	case "千", "k":
		v *= 1000
	case "万", "w":
		v *= 10000
	}
	return int(v)
}

// ExtractCity pulls the city name out of a location string.
// "上海市浦东新区" becomes "上海".
func ExtractCity(location string) string {
	location = strings.TrimSpace(location)
	if location == "" {
		return ""
	}
	if idx := strings.Index(location, "市"); idx >= 0 {
		return location[:idx]
	}
	fields := strings.Fields(location)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimSuffix(fields[0], "市")
}

// NormalizeTitle collapses whitespace in a job title.
func NormalizeTitle(title string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(title), " ")
}

var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"python", "Python"},
	{"前端", "前端"},
	{"java", "Java"},
	{"数据", "数据"},
	{"机器学习", "机器学习"},
	{"算法", "机器学习"},
	{"后端", "后端"},
	{"全栈", "全栈"},
	{"移动端", "移动端"},
	{"android", "移动端"},
	{"ios", "移动端"},
	{"devops", "DevOps"},
	{"运维", "DevOps"},
	{"测试", "测试"},
	{"产品", "产品"},
	{"设计", "设计"},
}

// CategoryOfTitle guesses a posting category from its title.
func CategoryOfTitle(title string) string {
	lower := strings.ToLower(title)
	for _, kc := range categoryKeywords {
		if strings.Contains(lower, kc.keyword) {
			return kc.category
		}
	}
	return "技术"
}

// ToPosting normalizes a raw job into a storable posting. Tags are the
// union of source tags and skills recognized in the text.
func ToPosting(raw RawJob) job.Posting {
	lo, hi := ParseSalaryText(raw.SalaryText)

	text := raw.Description + " " + raw.Requirement
	tags := append([]string(nil), raw.Tags...)
	tags = append(tags, recommend.ExtractSkills(text)...)
	tags = dedupTags(tags)

	category := strings.TrimSpace(raw.Category)
	if category == "" {
		category = CategoryOfTitle(raw.Title)
	}

	return job.Posting{
		Title:              NormalizeTitle(raw.Title),
		Company:            strings.TrimSpace(raw.Company),
		City:               ExtractCity(raw.Location),
		SalaryMin:          lo,
		SalaryMax:          hi,
		ExperienceRequired: strings.TrimSpace(raw.Experience),
		EducationRequired:  strings.TrimSpace(raw.Education),
		Description:        strings.TrimSpace(raw.Description),
		Requirements:       strings.TrimSpace(raw.Requirement),
		Category:           category,
		Tags:               tags,
	}
}

func dedupTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
