package scraper

import (
	"fmt"
	"math/rand"
	"strings"

	"job-insight/internal/domain/job"
)

// MockSource synthesizes realistic postings without touching the
// network. Used for local development and as a fallback when the board
// sources are unreachable.
type MockSource struct {
	rng *rand.Rand
}

func NewMockSource(seed int64) *MockSource {
	return &MockSource{rng: rand.New(rand.NewSource(seed))}
}

var (
	mockTitles = []string{
		"Python开发工程师", "前端开发工程师", "Java开发工程师", "数据分析师",
		"机器学习工程师", "后端开发工程师", "全栈工程师", "移动端开发工程师",
		"DevOps工程师", "测试工程师", "产品经理", "UI/UX设计师",
	}

	mockCompanies = []string{
		"阿里巴巴", "腾讯", "百度", "字节跳动", "美团", "滴滴", "京东",
		"华为", "小米", "网易", "拼多多", "快手", "B站", "携程",
	}

	mockCities = []string{
		"北京", "上海", "深圳", "广州", "杭州", "南京", "武汉", "成都", "西安", "厦门",
	}

	mockExperience = []string{"应届毕业生", "1年以内", "1-3年", "3-5年", "5-10年"}
	mockEducation  = []string{"大专", "本科", "硕士", "博士"}

	mockSkillsByCategory = map[string][]string{
		"Python":   {"Python", "Django", "Flask", "爬虫", "数据分析"},
		"前端":       {"JavaScript", "Vue.js", "React", "HTML5", "CSS3"},
		"Java":     {"Java", "Spring", "微服务", "分布式"},
		"数据":       {"Python", "SQL", "数据分析", "机器学习"},
		"机器学习":     {"Python", "TensorFlow", "PyTorch", "深度学习"},
		"后端":       {"Java", "Python", "MySQL", "Redis"},
		"全栈":       {"JavaScript", "Python", "Vue.js", "Node.js"},
		"移动端":      {"Android", "iOS", "Flutter", "React Native"},
		"DevOps":   {"Docker", "Kubernetes", "CI/CD", "Linux"},
		"测试":       {"自动化测试", "Selenium", "性能测试"},
		"产品":       {"产品设计", "需求分析", "项目管理"},
		"设计":       {"UI设计", "UX设计", "原型设计", "Sketch"},
	}
)

// Fetch generates n postings from the fixture pools.
func (m *MockSource) Fetch(n int) []job.Posting {
	if n <= 0 {
		n = 50
	}
	out := make([]job.Posting, 0, n)
	for i := 0; i < n; i++ {
		title := mockTitles[m.rng.Intn(len(mockTitles))]
		category := CategoryOfTitle(title)

		skills := mockSkillsByCategory[category]
		if len(skills) == 0 {
			skills = []string{"技术"}
		}
		tagCount := 3
		if tagCount > len(skills) {
			tagCount = len(skills)
		}
		tags := sampleStrings(m.rng, skills, tagCount)

		lo := 8000 + m.rng.Intn(12001)
		hi := 20000 + m.rng.Intn(30001)

		out = append(out, job.Posting{
			Title:              title,
			Company:            mockCompanies[m.rng.Intn(len(mockCompanies))],
			City:               mockCities[m.rng.Intn(len(mockCities))],
			SalaryMin:          lo,
			SalaryMax:          hi,
			ExperienceRequired: mockExperience[m.rng.Intn(len(mockExperience))],
			EducationRequired:  mockEducation[m.rng.Intn(len(mockEducation))],
			Description:        fmt.Sprintf("%s职位，负责相关技术开发工作。要求掌握%s。", title, strings.Join(tags, "、")),
			Requirements:       "要求具备扎实的专业知识和良好的团队合作精神，熟悉相关技术栈。",
			Category:           category,
			Tags:               tags,
		})
	}
	return out
}

func sampleStrings(rng *rand.Rand, pool []string, n int) []string {
	idx := rng.Perm(len(pool))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}
