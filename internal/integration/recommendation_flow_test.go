package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"job-insight/internal/config"
	"job-insight/internal/database"
	"job-insight/internal/database/migration"
	dbpostgres "job-insight/internal/database/postgres"
	"job-insight/internal/database/seeder"
	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	AccessToken string `json:"access_token"`
}

type recommendationData struct {
	Recommendations []struct {
		Job struct {
			Title string `json:"title"`
			City  string `json:"city"`
		} `json:"job"`
		MatchScore    float64  `json:"match_score"`
		MatchedSkills []string `json:"matched_skills"`
	} `json:"recommendations"`
	SkillGaps []struct {
		Skill      string `json:"skill"`
		Importance string `json:"importance"`
	} `json:"skill_gaps"`
	SalaryEstimate struct {
		ReasonableMin int `json:"reasonable_min"`
		ReasonableMax int `json:"reasonable_max"`
	} `json:"salary_estimate"`
}

// Exercises the full flow against a live database: register, login,
// set skills, fetch recommendations and one analysis slice.
func TestRecommendationFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)
	seedPostings(t, ctx, db)

	app := newTestApp(t, db)

	username := fmt.Sprintf("it_%d", time.Now().UnixNano())
	registerBody := map[string]any{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "integration-pass",
		"full_name": "Integration Tester",
	}
	var reg semanticResponse
	doJSON(t, app, "POST", "/api/v1/auth/register", "", registerBody, &reg)
	if reg.Status != 200 {
		t.Fatalf("register failed: %+v", reg)
	}

	var login semanticResponse
	doJSON(t, app, "POST", "/api/v1/auth/login", "", map[string]any{
		"username": username,
		"password": "integration-pass",
	}, &login)
	var auth authData
	if err := json.Unmarshal(login.Data, &auth); err != nil || auth.AccessToken == "" {
		t.Fatalf("login: missing access_token: %s", string(login.Data))
	}

	// A brand-new account has updated_at NULL; reading it back must work
	// before any profile write touches the row.
	var fresh semanticResponse
	doJSON(t, app, "GET", "/api/v1/users/me", auth.AccessToken, nil, &fresh)
	if fresh.Status != 200 {
		t.Fatalf("fresh profile read failed: %+v", fresh)
	}
	var freshUser struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(fresh.Data, &freshUser); err != nil {
		t.Fatalf("decode fresh profile: %v", err)
	}
	if freshUser.Username != username {
		t.Fatalf("fresh profile username = %q, want %q", freshUser.Username, username)
	}

	var profile semanticResponse
	doJSON(t, app, "PUT", "/api/v1/users/me", auth.AccessToken, map[string]any{
		"title":            "后端开发工程师",
		"skills":           []string{"Python", "MySQL", "Git"},
		"location":         "北京",
		"experience_years": 3,
		"current_salary":   15000,
		"target_salary":    22000,
	}, &profile)
	if profile.Status != 200 {
		t.Fatalf("update profile failed: %+v", profile)
	}

	var recsRes semanticResponse
	doJSON(t, app, "GET", "/api/v1/users/me/recommendations", auth.AccessToken, nil, &recsRes)
	if recsRes.Status != 200 {
		t.Fatalf("recommendations failed: %+v", recsRes)
	}
	var recs recommendationData
	if err := json.Unmarshal(recsRes.Data, &recs); err != nil {
		t.Fatalf("decode recommendations: %v", err)
	}
	if len(recs.Recommendations) == 0 {
		t.Fatalf("expected at least one recommendation")
	}
	for i := 1; i < len(recs.Recommendations); i++ {
		if recs.Recommendations[i].MatchScore > recs.Recommendations[i-1].MatchScore {
			t.Fatalf("recommendations not sorted by score desc at %d", i)
		}
	}
	if recs.SalaryEstimate.ReasonableMin <= 0 || recs.SalaryEstimate.ReasonableMax < recs.SalaryEstimate.ReasonableMin {
		t.Fatalf("implausible salary estimate: %+v", recs.SalaryEstimate)
	}

	var salary semanticResponse
	doJSON(t, app, "GET", "/api/v1/analysis/salary", "", nil, &salary)
	if salary.Status != 200 {
		t.Fatalf("salary analysis failed: %+v", salary)
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := envOr("JOBINSIGHT_TEST_DB_HOST", os.Getenv("DB_HOST"))
	port := envOr("JOBINSIGHT_TEST_DB_PORT", os.Getenv("DB_PORT"))
	name := envOr("JOBINSIGHT_TEST_DB_NAME", os.Getenv("DB_NAME"))
	user := envOr("JOBINSIGHT_TEST_DB_USER", os.Getenv("DB_USER"))
	pass := envOr("JOBINSIGHT_TEST_DB_PASSWORD", os.Getenv("DB_PASSWORD"))
	ssl := envOr("JOBINSIGHT_TEST_DB_SSL_MODE", os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set JOBINSIGHT_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_*)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve migrations dir: runtime.Caller failed")
	}
	migDir := filepath.Join(filepath.Dir(file), "..", "..", "migrations")
	if st, err := os.Stat(migDir); err != nil || !st.IsDir() {
		t.Fatalf("migrations dir not found: %s", migDir)
	}

	r := migration.Runner{Dir: migDir}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func seedPostings(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()
	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func newTestApp(t *testing.T, db database.DB) *fiber.App {
	t.Helper()

	cfg := config.Config{}
	cfg.App.AppName = "job-insight-test"
	cfg.JWT.AccessSecret = "integration-access-secret"
	cfg.JWT.RefreshSecret = "integration-refresh-secret"
	cfg.JWT.AccessTTL = 15 * time.Minute
	cfg.JWT.RefreshTTL = time.Hour

	f := fiber.New(fiber.Config{})
	errMw := middleware.NewErrorMiddleware(nil)
	f.Use(errMw.Middleware())

	registry := routes.NewRegistry(routes.Deps{Config: cfg, DB: db})
	registry.Register(f)
	return f
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any, out *semanticResponse) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
