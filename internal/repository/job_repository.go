package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"job-insight/internal/database"
	"job-insight/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows List and Count. Zero values mean "no constraint".
type JobFilter struct {
	Keyword    string
	City       string
	Category   string
	Experience string
	Education  string
	SalaryMin  int
	SalaryMax  int
	Limit      int
	Offset     int
}

type JobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	List(ctx context.Context, filter JobFilter) ([]job.Posting, error)
	Count(ctx context.Context, filter JobFilter) (int, error)
	ListAll(ctx context.Context) ([]job.Posting, error)
	Create(ctx context.Context, p *job.Posting) error
	Update(ctx context.Context, p *job.Posting) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpsertBatch(ctx context.Context, postings []job.Posting) (int, error)
	DeleteAll(ctx context.Context) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, company, city, salary_min, salary_max, experience_required, education_required, description, requirements, category, tags, created_at, updated_at`

func scanPosting(row database.Row) (job.Posting, error) {
	var p job.Posting
	var tags []byte
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Company,
		&p.City,
		&p.SalaryMin,
		&p.SalaryMax,
		&p.ExperienceRequired,
		&p.EducationRequired,
		&p.Description,
		&p.Requirements,
		&p.Category,
		&tags,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return job.Posting{}, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &p.Tags); err != nil {
			return job.Posting{}, fmt.Errorf("decode tags for job %s: %w", p.ID, err)
		}
	}
	return p, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func buildFilter(filter JobFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		args = append(args, "%"+kw+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d)", n, n, n))
	}
	if c := strings.TrimSpace(filter.City); c != "" {
		add("city = $%d", c)
	}
	if c := strings.TrimSpace(filter.Category); c != "" {
		add("category = $%d", c)
	}
	if e := strings.TrimSpace(filter.Experience); e != "" {
		add("experience_required = $%d", e)
	}
	if e := strings.TrimSpace(filter.Education); e != "" {
		add("education_required = $%d", e)
	}
	if filter.SalaryMin > 0 {
		add("salary_max >= $%d", filter.SalaryMin)
	}
	if filter.SalaryMax > 0 {
		add("salary_min <= $%d", filter.SalaryMax)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PostgresJobRepository) List(ctx context.Context, filter JobFilter) ([]job.Posting, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	where, args := buildFilter(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM jobs%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		jobColumns, where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	postings := make([]job.Posting, 0, limit)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

func (r *PostgresJobRepository) Count(ctx context.Context, filter JobFilter) (int, error) {
	where, args := buildFilter(filter)
	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`+where, args...)
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// ListAll loads the full posting set. The matcher and market analytics
// score in memory, so they need the whole table, not a page.
func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []job.Posting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func (r *PostgresJobRepository) Create(ctx context.Context, p *job.Posting) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO jobs (id, title, company, city, salary_min, salary_max, experience_required, education_required, description, requirements, category, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at`,
		p.ID, p.Title, p.Company, p.City, p.SalaryMin, p.SalaryMax,
		p.ExperienceRequired, p.EducationRequired, p.Description, p.Requirements, p.Category, tags,
	)
	return row.Scan(&p.CreatedAt)
}

func (r *PostgresJobRepository) Update(ctx context.Context, p *job.Posting) error {
	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}
	affected, err := r.db.Exec(ctx, `
		UPDATE jobs
		SET title = $2, company = $3, city = $4, salary_min = $5, salary_max = $6,
		    experience_required = $7, education_required = $8, description = $9,
		    requirements = $10, category = $11, tags = $12, updated_at = NOW()
		WHERE id = $1`,
		p.ID, p.Title, p.Company, p.City, p.SalaryMin, p.SalaryMax,
		p.ExperienceRequired, p.EducationRequired, p.Description, p.Requirements, p.Category, tags,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// UpsertBatch inserts scraped or seeded postings, refreshing rows that
// already exist for the same (title, company, city). Returns how many
// rows were written.
func (r *PostgresJobRepository) UpsertBatch(ctx context.Context, postings []job.Posting) (int, error) {
	if len(postings) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	written := 0
	for i := range postings {
		p := &postings[i]
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		tags, err := encodeTags(p.Tags)
		if err != nil {
			return written, err
		}
		affected, err := tx.Exec(ctx, `
			INSERT INTO jobs (id, title, company, city, salary_min, salary_max, experience_required, education_required, description, requirements, category, tags)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (title, company, city) DO UPDATE
			SET salary_min = EXCLUDED.salary_min,
			    salary_max = EXCLUDED.salary_max,
			    experience_required = EXCLUDED.experience_required,
			    education_required = EXCLUDED.education_required,
			    description = EXCLUDED.description,
			    requirements = EXCLUDED.requirements,
			    category = EXCLUDED.category,
			    tags = EXCLUDED.tags,
			    updated_at = NOW()`,
			p.ID, p.Title, p.Company, p.City, p.SalaryMin, p.SalaryMax,
			p.ExperienceRequired, p.EducationRequired, p.Description, p.Requirements, p.Category, tags,
		)
		if err != nil {
			return written, fmt.Errorf("upsert job %q at %q: %w", p.Title, p.Company, err)
		}
		written += int(affected)
	}

	if err := tx.Commit(ctx); err != nil {
		return written, err
	}
	return written, nil
}

// DeleteAll wipes the postings table. Returns the number of rows removed.
func (r *PostgresJobRepository) DeleteAll(ctx context.Context) (int, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs`)
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}
