package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coachdesk/coachdesk-backend/internal/config"
	"github.com/coachdesk/coachdesk-backend/internal/database"
	"github.com/coachdesk/coachdesk-backend/internal/handlers"
	"github.com/coachdesk/coachdesk-backend/internal/routes"
	"github.com/coachdesk/coachdesk-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the full router against an in-memory SQLite store, the
// same way main does against Postgres.
func newTestApp(t *testing.T, mutate func(*config.Config)) *fiber.App {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		EnableRegister: true,
		AppURL:         "http://localhost:5173",
		UploadDir:      t.TempDir(),
		CORSOrigins:    "*",
	}
	if mutate != nil {
		mutate(cfg)
	}

	mailer := services.NewMailer(cfg)
	authService := services.NewAuthService(db, cfg, mailer)
	athleteService := services.NewAthleteService(db, cfg.UploadDir)
	assessmentService := services.NewAssessmentService(db)
	movementService := services.NewMovementService(db)
	injuryService := services.NewInjuryService(db)
	noteService := services.NewNoteService(db)
	dashboardService := services.NewDashboardService(db)

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(authService, cfg),
		handlers.NewHealthHandler(),
		handlers.NewAthleteHandler(athleteService, noteService),
		handlers.NewAssessmentHandler(assessmentService),
		handlers.NewMovementHandler(movementService),
		handlers.NewInjuryHandler(injuryService),
		handlers.NewNoteHandler(noteService),
		handlers.NewDashboardHandler(dashboardService),
		handlers.NewFileHandler(cfg.UploadDir),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 30000)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doJSON(t, app, "GET", "/api/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["db"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestAthleteLifecycle(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/athletes",
		`{"first_name":"Mia","last_name":"Chen","sport":"Soccer","date_of_birth":"2008-04-12"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	decode(t, resp, &created)
	id := int(created["id"].(float64))
	assert.Equal(t, "2008-04-12", created["date_of_birth"])

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/athletes/%d", id), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "PATCH", fmt.Sprintf("/api/athletes/%d", id), `{"city":"Austin"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var patched map[string]interface{}
	decode(t, resp, &patched)
	assert.Equal(t, "Austin", patched["city"])
	assert.Equal(t, "Soccer", patched["sport"])
	assert.Equal(t, "Mia", patched["first_name"])
	assert.Equal(t, "2008-04-12", patched["date_of_birth"])

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/api/athletes/%d", id), "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/athletes/%d", id), "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errBody map[string]interface{}
	decode(t, resp, &errBody)
	assert.Equal(t, true, errBody["error"])
	assert.NotEmpty(t, errBody["message"])
}

func TestAthleteCreateRejectsMissingName(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/athletes", `{"first_name":"Mia"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/athletes/notanumber", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAthleteListRendersEmptyArray(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doJSON(t, app, "GET", "/api/athletes", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
}

func TestAssessmentEndpoints(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/athletes", `{"first_name":"Mia","last_name":"Chen"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var athlete map[string]interface{}
	decode(t, resp, &athlete)
	id := int(athlete["id"].(float64))

	resp = doJSON(t, app, "POST", "/api/assessments",
		fmt.Sprintf(`{"athlete_id":%d,"cmf_left":400,"cmf_right":410.5,"cmp_left":388,"cmp_right":395.2,"date":"2024-05-01"}`, id))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/assessments",
		fmt.Sprintf(`{"athlete_id":%d,"cmf_left":400}`, id))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/assessments",
		`{"athlete_id":9999,"cmf_left":1,"cmf_right":1,"cmp_left":1,"cmp_right":1}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/assessments/athlete/%d", id), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]interface{}
	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, 410.5, list[0]["cmf_right"])
	assert.Equal(t, "2024-05-01", list[0]["date"])
}

func TestInjuryEndpointsValidateEnums(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/athletes", `{"first_name":"Mia","last_name":"Chen"}`)
	var athlete map[string]interface{}
	decode(t, resp, &athlete)
	id := int(athlete["id"].(float64))

	resp = doJSON(t, app, "POST", "/api/injuries",
		fmt.Sprintf(`{"athlete_id":%d,"area":"Knee","severity":"Catastrophic"}`, id))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/injuries",
		fmt.Sprintf(`{"athlete_id":%d,"area":"Knee","severity":"Moderate","status":"Active"}`, id))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/injuries/%d", id), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]interface{}
	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Moderate", list[0]["severity"])
}

func TestNoteEndpoints(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/athletes", `{"first_name":"Mia","last_name":"Chen"}`)
	var athlete map[string]interface{}
	decode(t, resp, &athlete)
	id := int(athlete["id"].(float64))

	resp = doJSON(t, app, "POST", "/api/notes",
		fmt.Sprintf(`{"athlete_id":%d,"text":"watch form","tags":["technique"]}`, id))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var note map[string]interface{}
	decode(t, resp, &note)
	noteID := int(note["id"].(float64))
	assert.Equal(t, "Coach", note["author"])

	resp = doJSON(t, app, "PATCH", fmt.Sprintf("/api/notes/%d/pin", noteID), `{"pinned":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/athletes/%d/notes", id), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]interface{}
	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, true, list[0]["pinned"])

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/api/notes/%d", noteID), "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Deleting again is still a 204.
	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/api/notes/%d", noteID), "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDashboardOverviewEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/athletes", `{"first_name":"Mia","last_name":"Chen"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/dashboard/overview", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decode(t, resp, &body)
	assert.Equal(t, 1.0, body["total_athletes"])
	assert.Equal(t, 0.0, body["total_assessments"])
	latest, ok := body["latest_athletes"].([]interface{})
	require.True(t, ok)
	assert.Len(t, latest, 1)
	_, ok = body["latest_injuries"].([]interface{})
	assert.True(t, ok, "empty lists must render as arrays")
}

func uploadFile(t *testing.T, app *fiber.App, path, filename string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, 30000)
	require.NoError(t, err)
	return resp
}

func TestUploadGeneratesDistinctLowercaseNames(t *testing.T) {
	app := newTestApp(t, nil)

	resp := uploadFile(t, app, "/api/upload", "photo.PNG")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var first map[string]string
	decode(t, resp, &first)

	resp = uploadFile(t, app, "/api/files/photo", "photo.PNG")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var second map[string]string
	decode(t, resp, &second)

	for _, body := range []map[string]string{first, second} {
		assert.True(t, strings.HasPrefix(body["url"], "/uploads/"))
		assert.True(t, strings.HasSuffix(body["url"], ".png"))
	}
	assert.NotEqual(t, first["url"], second["url"])

	resp = uploadFile(t, app, "/api/upload", "noextension")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var third map[string]string
	decode(t, resp, &third)
	assert.True(t, strings.HasSuffix(third["url"], ".bin"))
}

func TestUploadRequiresFile(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/upload", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthSessionFlow(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/auth/register",
		`{"email":"coach@example.com","password":"longenough","full_name":"Coach"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/auth/login",
		`{"email":"coach@example.com","password":"longenough"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "access_token" {
			session = c
		}
	}
	require.NotNil(t, session, "login must set the session cookie")
	assert.True(t, session.HttpOnly)
	assert.NotEmpty(t, session.Value)

	// Authenticated /me
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.AddCookie(session)
	meResp, err := app.Test(req, 30000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, meResp.StatusCode)
	var me map[string]interface{}
	decode(t, meResp, &me)
	assert.Equal(t, "coach@example.com", me["email"])
	_, leaked := me["password_hash"]
	assert.False(t, leaked)

	// No cookie, garbage cookie: both uniform 401s.
	resp = doJSON(t, app, "GET", "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "garbage"})
	badResp, err := app.Test(req, 30000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, badResp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == "access_token" {
			assert.Empty(t, c.Value)
		}
	}
}

func TestAuthRegistrationDisabledByDefault(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) { c.EnableRegister = false })

	resp := doJSON(t, app, "POST", "/api/auth/register",
		`{"email":"coach@example.com","password":"longenough"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthAllowListBlocksLogin(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) {
		c.AllowedEmails = []string{"coach@example.com"}
	})

	resp := doJSON(t, app, "POST", "/api/auth/login",
		`{"email":"stranger@example.com","password":"whatever1"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthRequestResetNeverLeaks(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/auth/request-reset", `{"email":"nobody@example.com"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	decode(t, resp, &body)
	assert.Equal(t, true, body["ok"])

	resp = doJSON(t, app, "POST", "/api/auth/reset", `{"token":"bogus","new_password":"newpassword"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
