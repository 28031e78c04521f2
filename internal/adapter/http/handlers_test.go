package adapthttp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	adapthttp "fitplan/internal/adapter/http"
	"fitplan/internal/adapter/memory"
	"fitplan/internal/app"
	"fitplan/internal/domain"
)

// ---------------------------------------------------------------------------
// Mock repositories (function-fields pattern)
// ---------------------------------------------------------------------------

type mockProgressRepo struct {
	addFn    func(ctx context.Context, l domain.ProgressLog) (int64, error)
	listFn   func(ctx context.Context, userID int64, limit int) ([]domain.ProgressLog, error)
	deleteFn func(ctx context.Context, userID int64) (bool, error)
}

func (m *mockProgressRepo) AddProgressLog(ctx context.Context, l domain.ProgressLog) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, l)
	}
	return 1, nil
}

func (m *mockProgressRepo) ListRecentProgressLogs(ctx context.Context, userID int64, limit int) ([]domain.ProgressLog, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockProgressRepo) DeleteLatestProgressLog(ctx context.Context, userID int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return true, nil
}

// ---------------------------------------------------------------------------
// Test-server helper
// ---------------------------------------------------------------------------

type testEnv struct {
	db       *memory.DB
	progress   domain.ProgressRepository
	withAuth   bool
	trustProxy bool
}

func newTestServer(t *testing.T, env testEnv) *httptest.Server {
	t.Helper()

	if env.db == nil {
		env.db = memory.New()
	}
	if env.progress == nil {
		env.progress = env.db
	}

	qs := app.NewQuizService(env.db, env.db)
	ps := app.NewProfileService(env.db)
	pr := app.NewProgressService(env.progress)
	ds := app.NewDashboardService(env.db, env.db, env.progress)
	authSvc := app.NewAuthService(env.db, env.db.NewSessionRepo(), env.db)

	webDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(webDir, "index.html"), []byte("<html></html>"), 0o600); err != nil {
		t.Fatal(err)
	}

	srv := adapthttp.New(qs, ps, pr, ds, authSvc, webDir)
	if !env.withAuth {
		srv = srv.WithoutAuth()
	}
	if env.trustProxy {
		srv = srv.WithForwardAuth()
	}
	return httptest.NewServer(srv.Handler())
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return m
}

func doJSON(t *testing.T, method, url string, payload any, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func quizPayload() map[string]any {
	return map[string]any{
		"age":               30,
		"gender":            "male",
		"heightCm":          175,
		"weightKg":          80,
		"targetWeightKg":    72,
		"activityLevel":     "light",
		"goalType":          "lose_weight",
		"fitnessLevel":      "beginner",
		"workoutPreference": "home",
		"dietPreference":    "balanced",
		"availableDays":     2,
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, testEnv{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["ok"] != true {
		t.Fatalf("expected ok=true, got %v", body["ok"])
	}
	if resp.Header.Get("Cache-Control") != "no-store" {
		t.Errorf("expected no-store, got %q", resp.Header.Get("Cache-Control"))
	}
}

func TestQuizSubmit(t *testing.T) {
	ts := newTestServer(t, testEnv{})
	defer ts.Close()

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/quiz", quizPayload())
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d; body: %v", resp.StatusCode, decodeBody(t, resp))
	}

	var result domain.QuizResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.ID == "" {
		t.Error("expected result id")
	}
	if result.DailyCalories != 1724 {
		t.Errorf("expected 1724 kcal, got %d", result.DailyCalories)
	}
	want := []string{
		"Segunda: Flexões, Agachamentos, Prancha (20 min)",
		"Quarta: Burpees, Lunges, Mountain Climbers (20 min)",
	}
	if len(result.Plan.Workout) != len(want) {
		t.Fatalf("expected %d workout days, got %v", len(want), result.Plan.Workout)
	}
	for i := range want {
		if result.Plan.Workout[i] != want[i] {
			t.Errorf("workout[%d] = %q, want %q", i, result.Plan.Workout[i], want[i])
		}
	}

	latest, err := http.Get(ts.URL + "/api/plan/latest")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer latest.Body.Close() //nolint:errcheck
	if latest.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for latest plan, got %d", latest.StatusCode)
	}
	body := decodeBody(t, latest)
	if body["id"] != result.ID {
		t.Errorf("expected latest id %q, got %v", result.ID, body["id"])
	}
	if _, ok := body["recommendedPlan"]; !ok {
		t.Error("response missing 'recommendedPlan'")
	}
}

func TestQuizSubmit_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"zero height", func(p map[string]any) { p["heightCm"] = 0 }},
		{"negative weight", func(p map[string]any) { p["weightKg"] = -80 }},
		{"zero age", func(p map[string]any) { p["age"] = 0 }},
		{"eight days", func(p map[string]any) { p["availableDays"] = 8 }},
		{"bad weight unit", func(p map[string]any) { p["weightUnit"] = "stone" }},
		{"bad height unit", func(p map[string]any) { p["heightUnit"] = "ft" }},
		{"unknown field", func(p map[string]any) { p["shoeSize"] = 42 }},
	}

	ts := newTestServer(t, testEnv{})
	defer ts.Close()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := quizPayload()
			tc.mutate(p)
			resp := doJSON(t, http.MethodPost, ts.URL+"/api/quiz", p)
			defer resp.Body.Close() //nolint:errcheck

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
			if _, ok := decodeBody(t, resp)["error"]; !ok {
				t.Error("response missing 'error'")
			}
		})
	}
}

func TestQuizPreview_ImperialUnits(t *testing.T) {
	ts := newTestServer(t, testEnv{})
	defer ts.Close()

	p := quizPayload()
	p["weightUnit"] = "lb"
	p["weightKg"] = 80 * 2.2046226218
	p["targetWeightKg"] = 72 * 2.2046226218
	p["heightUnit"] = "in"
	p["heightCm"] = 175 / 2.54

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/quiz/preview", p)
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	energy, ok := body["energy"].(map[string]any)
	if !ok {
		t.Fatal("response missing 'energy'")
	}
	if energy["dailyCalories"] != float64(1724) {
		t.Errorf("expected 1724 kcal after conversion, got %v", energy["dailyCalories"])
	}

	latest, err := http.Get(ts.URL + "/api/plan/latest")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer latest.Body.Close() //nolint:errcheck
	if latest.StatusCode != http.StatusNotFound {
		t.Errorf("preview must not persist; expected 404, got %d", latest.StatusCode)
	}
}

func TestPlanHistory(t *testing.T) {
	ts := newTestServer(t, testEnv{})
	defer ts.Close()

	for i := 0; i < 3; i++ {
		resp := doJSON(t, http.MethodPost, ts.URL+"/api/quiz", quizPayload())
		resp.Body.Close() //nolint:errcheck
	}

	resp, err := http.Get(ts.URL + "/api/plan/history?limit=2")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	arr, ok := decodeBody(t, resp)["items"].([]any)
	if !ok {
		t.Fatal("response missing 'items' array")
	}
	if len(arr) != 2 {
		t.Fatalf("expected 2 items, got %d", len(arr))
	}
}

func TestProfile_GetAndPatch(t *testing.T) {
	ts := newTestServer(t, testEnv{})
	defer ts.Close()

	resp := doJSON(t, http.MethodPatch, ts.URL+"/api/profile", map[string]any{
		"fullName":        "Ana",
		"age":             30,
		"gender":          "male",
		"heightCm":        175,
		"currentWeightKg": 80,
		"activityLevel":   "light",
		"goalType":        "lose_weight",
	})
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %v", resp.StatusCode, decodeBody(t, resp))
	}
	if got := decodeBody(t, resp)["dailyCalories"]; got != float64(1724) {
		t.Errorf("expected recomputed 1724 kcal, got %v", got)
	}

	bad := doJSON(t, http.MethodPatch, ts.URL+"/api/profile", map[string]any{"activityLevel": "couch"})
	defer bad.Body.Close() //nolint:errcheck
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", bad.StatusCode)
	}

	get, err := http.Get(ts.URL + "/api/profile")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer get.Body.Close() //nolint:errcheck
	if got := decodeBody(t, get)["fullName"]; got != "Ana" {
		t.Errorf("expected fullName Ana, got %v", got)
	}
}

func TestProgress_RecordListUndo(t *testing.T) {
	ts := newTestServer(t, testEnv{})
	defer ts.Close()

	tests := []struct {
		name       string
		payload    map[string]any
		wantStatus int
	}{
		{"valid", map[string]any{"weightKg": 79.5, "caloriesConsumed": 1800}, http.StatusCreated},
		{"no weight", map[string]any{"exercisesCompleted": 3, "notes": "leg day"}, http.StatusCreated},
		{"zero weight", map[string]any{"weightKg": 0}, http.StatusBadRequest},
		{"negative calories", map[string]any{"caloriesBurned": -10}, http.StatusBadRequest},
		{"long notes", map[string]any{"notes": strings.Repeat("x", 501)}, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodPost, ts.URL+"/api/progress", tc.payload)
			defer resp.Body.Close() //nolint:errcheck
			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("expected %d, got %d; body: %v", tc.wantStatus, resp.StatusCode, decodeBody(t, resp))
			}
		})
	}

	resp, err := http.Get(ts.URL + "/api/progress/recent")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	arr, _ := decodeBody(t, resp)["items"].([]any)
	if len(arr) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(arr))
	}

	undo := doJSON(t, http.MethodPost, ts.URL+"/api/progress/undo-last", nil)
	defer undo.Body.Close() //nolint:errcheck
	body := decodeBody(t, undo)
	if body["ok"] != true || body["deleted"] != true {
		t.Fatalf("expected ok and deleted, got %v", body)
	}
}

func TestProgress_StoreFailure(t *testing.T) {
	ts := newTestServer(t, testEnv{progress: &mockProgressRepo{
		addFn: func(_ context.Context, _ domain.ProgressLog) (int64, error) {
			return 0, errors.New("connection reset")
		},
	}})
	defer ts.Close()

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/progress", map[string]any{"caloriesConsumed": 100})
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if msg := decodeBody(t, resp)["error"]; msg != "internal error" {
		t.Errorf("expected generic error message, got %v", msg)
	}
}

func TestStoreErrorsAreNotEchoed(t *testing.T) {
	failing := &mockProgressRepo{
		listFn: func(_ context.Context, _ int64, _ int) ([]domain.ProgressLog, error) {
			return nil, errors.New(`pq: relation "progress_logs" does not exist`)
		},
		deleteFn: func(_ context.Context, _ int64) (bool, error) {
			return false, errors.New(`pq: relation "progress_logs" does not exist`)
		},
	}
	ts := newTestServer(t, testEnv{progress: failing})
	defer ts.Close()

	tests := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/progress/recent"},
		{http.MethodPost, "/api/progress/undo-last"},
		{http.MethodGet, "/api/dashboard"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			resp := doJSON(t, tc.method, ts.URL+tc.path, nil)
			defer resp.Body.Close() //nolint:errcheck
			if resp.StatusCode != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", resp.StatusCode)
			}
			msg, _ := decodeBody(t, resp)["error"].(string)
			if msg != "internal error" || strings.Contains(msg, "pq:") {
				t.Errorf("expected generic error message, got %q", msg)
			}
		})
	}
}

func TestDashboard(t *testing.T) {
	ts := newTestServer(t, testEnv{})
	defer ts.Close()

	quiz := doJSON(t, http.MethodPost, ts.URL+"/api/quiz", quizPayload())
	quiz.Body.Close() //nolint:errcheck
	logResp := doJSON(t, http.MethodPost, ts.URL+"/api/progress", map[string]any{"weightKg": 76})
	logResp.Body.Close() //nolint:errcheck

	resp, err := http.Get(ts.URL + "/api/dashboard")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["latestResult"] == nil {
		t.Error("expected latest result")
	}
	if body["todayLog"] == nil {
		t.Error("expected today's log")
	}
	// (80 - 76) / (80 - 72) = 50%
	if body["weightProgress"] != float64(50) {
		t.Errorf("expected 50%% progress, got %v", body["weightProgress"])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, testEnv{})
	defer ts.Close()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/quiz"},
		{http.MethodGet, "/api/quiz/preview"},
		{http.MethodPost, "/api/plan/latest"},
		{http.MethodDelete, "/api/profile"},
		{http.MethodGet, "/api/progress"},
		{http.MethodGet, "/api/progress/undo-last"},
		{http.MethodPost, "/api/dashboard"},
		{http.MethodGet, "/api/auth/register"},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp := doJSON(t, tc.method, ts.URL+tc.path, nil)
			defer resp.Body.Close() //nolint:errcheck
			if resp.StatusCode != http.StatusMethodNotAllowed {
				t.Fatalf("expected 405, got %d", resp.StatusCode)
			}
		})
	}
}

func TestAuth_RequiredWithoutSession(t *testing.T) {
	ts := newTestServer(t, testEnv{withAuth: true})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/dashboard")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuth_ForwardAuthHeader(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		want       int
	}{
		{"ignored by default", false, http.StatusUnauthorized},
		{"accepted when trusted", true, http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := memory.New()
			ts := newTestServer(t, testEnv{db: db, withAuth: true, trustProxy: tc.trustProxy})
			defer ts.Close()

			req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/dashboard", nil)
			if err != nil {
				t.Fatal(err)
			}
			req.Header.Set("Remote-User", "mallory")
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close() //nolint:errcheck
			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}

			u, _ := db.GetByUsername(context.Background(), "mallory")
			if provisioned := u != nil; provisioned != tc.trustProxy {
				t.Errorf("expected provisioned=%v, got %v", tc.trustProxy, provisioned)
			}
		})
	}
}

func TestAuth_RegisterThenUseSession(t *testing.T) {
	ts := newTestServer(t, testEnv{withAuth: true})
	defer ts.Close()

	reg := doJSON(t, http.MethodPost, ts.URL+"/api/auth/register", map[string]any{
		"username": "ana",
		"password": "secret1",
		"fullName": "Ana",
	})
	defer reg.Body.Close() //nolint:errcheck
	if reg.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d; body: %v", reg.StatusCode, decodeBody(t, reg))
	}

	var session *http.Cookie
	for _, c := range reg.Cookies() {
		if c.Name == "session" {
			session = c
		}
	}
	if session == nil || session.Value == "" {
		t.Fatal("expected session cookie")
	}

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/profile", nil, session)
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := decodeBody(t, resp)["fullName"]; got != "Ana" {
		t.Errorf("expected profile created at registration, got fullName %v", got)
	}

	dup := doJSON(t, http.MethodPost, ts.URL+"/api/auth/register", map[string]any{
		"username": "ana",
		"password": "another1",
	})
	defer dup.Body.Close() //nolint:errcheck
	if dup.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", dup.StatusCode)
	}

	weak := doJSON(t, http.MethodPost, ts.URL+"/api/auth/register", map[string]any{
		"username": "bob",
		"password": "123",
	})
	defer weak.Body.Close() //nolint:errcheck
	if weak.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak password, got %d", weak.StatusCode)
	}
}

func TestAuth_LoginLogout(t *testing.T) {
	db := memory.New()
	ts := newTestServer(t, testEnv{db: db, withAuth: true})
	defer ts.Close()

	authSvc := app.NewAuthService(db, db.NewSessionRepo(), db)
	if _, err := authSvc.Register(context.Background(), "carl", "hunter22", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	bad := doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", map[string]any{"username": "carl", "password": "nope"})
	defer bad.Body.Close() //nolint:errcheck
	if bad.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", bad.StatusCode)
	}

	login := doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", map[string]any{"username": "carl", "password": "hunter22"})
	defer login.Body.Close() //nolint:errcheck
	if login.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", login.StatusCode)
	}
	cookies := login.Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie")
	}

	logout := doJSON(t, http.MethodPost, ts.URL+"/api/auth/logout", nil, cookies...)
	defer logout.Body.Close() //nolint:errcheck

	after := doJSON(t, http.MethodGet, ts.URL+"/api/dashboard", nil, cookies...)
	defer after.Body.Close() //nolint:errcheck
	if after.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", after.StatusCode)
	}
}

func TestConfigEndpoint(t *testing.T) {
	ts := newTestServer(t, testEnv{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/config")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	body := decodeBody(t, resp)
	if body["sso_enabled"] != false {
		t.Errorf("expected sso_enabled=false, got %v", body["sso_enabled"])
	}

	sso, err := http.Get(ts.URL + "/api/auth/sso/login")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer sso.Body.Close() //nolint:errcheck
	if sso.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 with sso disabled, got %d", sso.StatusCode)
	}
}

func TestSPAFallback(t *testing.T) {
	ts := newTestServer(t, testEnv{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/dashboard/some/route")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestCORS(t *testing.T) {
	db := memory.New()
	srv := adapthttp.New(
		app.NewQuizService(db, db),
		app.NewProfileService(db),
		app.NewProgressService(db),
		app.NewDashboardService(db, db, db),
		app.NewAuthService(db, db.NewSessionRepo(), db),
		t.TempDir(),
	).WithCORS([]string{"http://localhost:5173"})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/health", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected allowed origin header, got %q", got)
	}
	if resp.Header.Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("expected credentials to be allowed")
	}
}
