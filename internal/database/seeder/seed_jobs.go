package seeder

import (
	"context"
	"fmt"

	"job-insight/internal/database"
	"job-insight/internal/domain/job"
	"job-insight/internal/repository"
)

// JobsSeeder loads a fixed set of postings so a fresh install has
// something to match and analyze before any scraper has run.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id", "title", "company", "city", "salary_min", "salary_max",
		"experience_required", "education_required", "description",
		"requirements", "category", "tags", "created_at",
	); err != nil {
		return err
	}

	repo := repository.NewPostgresJobRepository(db)
	written, err := repo.UpsertBatch(ctx, demoPostings())
	if err != nil {
		return fmt.Errorf("upsert demo jobs: %w", err)
	}
	_ = written
	return nil
}

func demoPostings() []job.Posting {
	return []job.Posting{
		{
			Title: "Python开发工程师", Company: "阿里巴巴", City: "北京",
			SalaryMin: 15000, SalaryMax: 25000,
			ExperienceRequired: "3-5年", EducationRequired: "本科",
			Description:  "负责后端服务的设计与开发，参与核心业务系统迭代。",
			Requirements: "熟悉Python、Django、Flask，了解MySQL和Redis，具备良好的工程素养。",
			Category:     "后端开发",
			Tags:         []string{"Python", "Django", "MySQL"},
		},
		{
			Title: "前端开发工程师", Company: "腾讯", City: "深圳",
			SalaryMin: 14000, SalaryMax: 24000,
			ExperienceRequired: "1-3年", EducationRequired: "本科",
			Description:  "负责业务前端页面与组件库开发，优化页面性能。",
			Requirements: "精通JavaScript、Vue.js或React，熟悉HTML5和CSS3。",
			Category:     "前端开发",
			Tags:         []string{"JavaScript", "Vue", "React"},
		},
		{
			Title: "Java开发工程师", Company: "美团", City: "北京",
			SalaryMin: 16000, SalaryMax: 28000,
			ExperienceRequired: "3-5年", EducationRequired: "本科",
			Description:  "负责交易链路微服务的开发与维护。",
			Requirements: "精通Java和Spring生态，熟悉分布式系统，了解Kafka和Redis。",
			Category:     "后端开发",
			Tags:         []string{"Java", "Spring", "Kafka"},
		},
		{
			Title: "数据分析师", Company: "字节跳动", City: "上海",
			SalaryMin: 13000, SalaryMax: 22000,
			ExperienceRequired: "1-3年", EducationRequired: "本科",
			Description:  "负责业务数据的分析与可视化，输出数据报告支持决策。",
			Requirements: "熟悉SQL和Python，掌握Pandas和NumPy，有数据建模经验优先。",
			Category:     "数据分析",
			Tags:         []string{"Python", "SQL", "Pandas"},
		},
		{
			Title: "机器学习工程师", Company: "百度", City: "北京",
			SalaryMin: 20000, SalaryMax: 40000,
			ExperienceRequired: "3-5年", EducationRequired: "硕士",
			Description:  "负责推荐系统模型的训练与上线。",
			Requirements: "熟悉TensorFlow或PyTorch，扎实的机器学习与深度学习基础。",
			Category:     "数据科学",
			Tags:         []string{"TensorFlow", "PyTorch", "Machine Learning"},
		},
		{
			Title: "DevOps工程师", Company: "华为", City: "杭州",
			SalaryMin: 15000, SalaryMax: 26000,
			ExperienceRequired: "3-5年", EducationRequired: "本科",
			Description:  "负责CI/CD流水线建设与容器平台运维。",
			Requirements: "熟悉Docker和Kubernetes，掌握Linux和Jenkins，了解Terraform优先。",
			Category:     "DevOps工具",
			Tags:         []string{"Docker", "Kubernetes", "Jenkins"},
		},
		{
			Title: "Go开发工程师", Company: "滴滴", City: "北京",
			SalaryMin: 18000, SalaryMax: 32000,
			ExperienceRequired: "3-5年", EducationRequired: "本科",
			Description:  "负责高并发网关与中间件服务开发。",
			Requirements: "精通Golang，熟悉gRPC与微服务架构，了解PostgreSQL和Redis。",
			Category:     "后端开发",
			Tags:         []string{"Golang", "PostgreSQL", "Redis"},
		},
		{
			Title: "移动端开发工程师", Company: "小米", City: "武汉",
			SalaryMin: 12000, SalaryMax: 20000,
			ExperienceRequired: "1-3年", EducationRequired: "本科",
			Description:  "负责Android应用的功能开发与性能优化。",
			Requirements: "熟悉Android开发，掌握Kotlin，了解Flutter优先。",
			Category:     "移动开发",
			Tags:         []string{"Android", "Kotlin", "Flutter"},
		},
		{
			Title: "全栈工程师", Company: "网易", City: "杭州",
			SalaryMin: 14000, SalaryMax: 25000,
			ExperienceRequired: "1-3年", EducationRequired: "本科",
			Description:  "独立负责内部工具从前端到后端的完整交付。",
			Requirements: "熟悉JavaScript、Node.js和Vue.js，了解Python和MongoDB。",
			Category:     "前端开发",
			Tags:         []string{"Node.js", "Vue", "MongoDB"},
		},
		{
			Title: "测试开发工程师", Company: "京东", City: "成都",
			SalaryMin: 10000, SalaryMax: 18000,
			ExperienceRequired: "1-3年", EducationRequired: "本科",
			Description:  "负责自动化测试框架建设与质量保障。",
			Requirements: "熟悉Python，掌握Selenium，了解性能测试方法。",
			Category:     "后端开发",
			Tags:         []string{"Python", "Selenium"},
		},
	}
}
