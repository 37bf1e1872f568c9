package recommend

// Importance tiers used by the skill-gap analyzer.
const (
	ImportanceHigh   = "高"
	ImportanceMedium = "中"
)

// Vocabulary categories.
const (
	CategoryLanguage    = "编程语言"
	CategoryWebFramework = "Web框架"
	CategoryDatabase    = "数据库"
	CategoryCloud       = "云平台"
	CategoryDevOps      = "DevOps工具"
	CategoryDataScience = "数据科学"
	CategoryMobile      = "移动开发"
	CategorySoftSkill   = "软技能"
)

type VocabularyEntry struct {
	Name     string
	Category string
}

type AliasEntry struct {
	Alias     string
	Canonical string
}

// Vocabulary is the canonical skill table. Definition order is the
// deterministic scan order of the extractor, so entries must not be
// reordered casually.
var Vocabulary = []VocabularyEntry{
	{"Python", CategoryLanguage},
	{"Java", CategoryLanguage},
	{"JavaScript", CategoryLanguage},
	{"TypeScript", CategoryLanguage},
	{"C++", CategoryLanguage},
	{"C#", CategoryLanguage},
	{"Go", CategoryLanguage},
	{"Rust", CategoryLanguage},
	{"PHP", CategoryLanguage},
	{"Ruby", CategoryLanguage},
	{"Swift", CategoryLanguage},
	{"Kotlin", CategoryLanguage},
	{"Scala", CategoryLanguage},
	{"MATLAB", CategoryLanguage},
	{"SQL", CategoryLanguage},
	{"NoSQL", CategoryLanguage},

	{"React", CategoryWebFramework},
	{"Vue", CategoryWebFramework},
	{"Angular", CategoryWebFramework},
	{"Node.js", CategoryWebFramework},
	{"Express", CategoryWebFramework},
	{"Django", CategoryWebFramework},
	{"Flask", CategoryWebFramework},
	{"Spring", CategoryWebFramework},
	{"Spring Boot", CategoryWebFramework},
	{"Laravel", CategoryWebFramework},
	{"Rails", CategoryWebFramework},
	{"ASP.NET", CategoryWebFramework},
	{"Next.js", CategoryWebFramework},
	{"Nuxt.js", CategoryWebFramework},

	{"MySQL", CategoryDatabase},
	{"PostgreSQL", CategoryDatabase},
	{"MongoDB", CategoryDatabase},
	{"Redis", CategoryDatabase},
	{"Oracle", CategoryDatabase},
	{"SQLite", CategoryDatabase},
	{"Elasticsearch", CategoryDatabase},
	{"Cassandra", CategoryDatabase},
	{"MariaDB", CategoryDatabase},

	{"AWS", CategoryCloud},
	{"Azure", CategoryCloud},
	{"Google Cloud", CategoryCloud},
	{"阿里云", CategoryCloud},
	{"腾讯云", CategoryCloud},
	{"华为云", CategoryCloud},

	{"Docker", CategoryDevOps},
	{"Kubernetes", CategoryDevOps},
	{"Jenkins", CategoryDevOps},
	{"Git", CategoryDevOps},
	{"GitHub", CategoryDevOps},
	{"GitLab", CategoryDevOps},
	{"CI/CD", CategoryDevOps},
	{"Terraform", CategoryDevOps},
	{"Ansible", CategoryDevOps},
	{"Prometheus", CategoryDevOps},
	{"Grafana", CategoryDevOps},

	{"TensorFlow", CategoryDataScience},
	{"PyTorch", CategoryDataScience},
	{"Pandas", CategoryDataScience},
	{"NumPy", CategoryDataScience},
	{"Scikit-learn", CategoryDataScience},
	{"Spark", CategoryDataScience},
	{"Hadoop", CategoryDataScience},
	{"Airflow", CategoryDataScience},
	{"Kafka", CategoryDataScience},

	{"Android", CategoryMobile},
	{"iOS", CategoryMobile},
	{"Flutter", CategoryMobile},
	{"React Native", CategoryMobile},
	{"Xamarin", CategoryMobile},

	{"沟通能力", CategorySoftSkill},
	{"团队合作", CategorySoftSkill},
	{"问题解决", CategorySoftSkill},
	{"项目管理", CategorySoftSkill},
	{"领导力", CategorySoftSkill},
	{"时间管理", CategorySoftSkill},
	{"学习能力", CategorySoftSkill},
	{"创新思维", CategorySoftSkill},
}

// Aliases normalizes common alternate spellings to canonical names. Scanned
// after the vocabulary, in definition order. An alias canonical is not
// required to be a vocabulary member.
var Aliases = []AliasEntry{
	{"Python3", "Python"},
	{"Python 3", "Python"},
	{"ES6", "JavaScript"},
	{"NodeJS", "Node.js"},
	{"ReactJS", "React"},
	{"VueJS", "Vue"},
	{"Vue.js", "Vue"},
	{"AngularJS", "Angular"},
	{"SpringBoot", "Spring Boot"},
	{"Springboot", "Spring Boot"},
	{"K8s", "Kubernetes"},
	{"Postgres", "PostgreSQL"},
	{"机器学习", "Machine Learning"},
	{"深度学习", "Deep Learning"},
	{"人工智能", "Artificial Intelligence"},
}

type gapInfo struct {
	Importance string
	Reason     string
}

// defaultGapReason backs every skill without a dedicated table entry.
const defaultGapReason = "在当前技术环境中具有较高价值的通用技能"

// gapTable drives the importance tag and rationale of skill-gap entries.
var gapTable = map[string]gapInfo{
	"Python":     {ImportanceHigh, "Python是编程语言领域的重要技能，后端与数据方向需求量大"},
	"JavaScript": {ImportanceHigh, "JavaScript是Web开发的基础语言，前端岗位的必备技能"},
	"TypeScript": {ImportanceMedium, "TypeScript为大型前端项目提供类型保障，使用率持续上升"},
	"React":      {ImportanceHigh, "React是Web框架领域的重要技能，前端岗位招聘频率最高"},
	"Vue":        {ImportanceHigh, "Vue是Web框架领域的重要技能，国内前端岗位广泛使用"},
	"MySQL":      {ImportanceHigh, "MySQL是数据库领域的重要技能，绝大多数业务系统的默认选型"},
	"Redis":      {ImportanceHigh, "Redis是数据库领域的重要技能，高并发场景的标准缓存组件"},
	"Git":        {ImportanceHigh, "Git是DevOps工具领域的重要技能，团队协作的基础设施"},
	"Docker":     {ImportanceHigh, "Docker是DevOps工具领域的重要技能，部署交付的事实标准"},
	"Kubernetes": {ImportanceMedium, "Kubernetes是容器编排的主流方案，云原生岗位的核心要求"},
	"AWS":        {ImportanceHigh, "AWS是云平台领域的重要技能，海外云服务市场占有率第一"},
	"阿里云":     {ImportanceHigh, "阿里云是云平台领域的重要技能，国内云服务市场占有率第一"},
	"TensorFlow": {ImportanceMedium, "TensorFlow是数据科学领域的主流深度学习框架"},
	"Kafka":      {ImportanceMedium, "Kafka是大数据管道的标准消息组件，中大型系统常见要求"},
}

// CategoryOf returns the vocabulary category of a canonical skill name, or
// an empty string when the skill is not in the vocabulary.
func CategoryOf(skill string) string {
	for _, e := range Vocabulary {
		if e.Name == skill {
			return e.Category
		}
	}
	return ""
}

// SkillsInCategory lists vocabulary skills of one category in scan order.
func SkillsInCategory(category string) []string {
	var out []string
	for _, e := range Vocabulary {
		if e.Category == category {
			out = append(out, e.Name)
		}
	}
	return out
}
